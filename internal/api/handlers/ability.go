package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/tomd/hero-build-planner/internal/domain"
	"github.com/tomd/hero-build-planner/internal/service"
)

type AbilityHandler struct {
	abilityService *service.AbilityService
}

func NewAbilityHandler(abilityService *service.AbilityService) *AbilityHandler {
	return &AbilityHandler{abilityService: abilityService}
}

type AbilitySummary struct {
	ID   uint   `json:"id"`
	Hero uint   `json:"hero"`
	Name string `json:"name"`
}

type AbilityResponse struct {
	ID          uint    `json:"id"`
	Hero        uint    `json:"hero"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Cooldown    *int    `json:"cooldown"`
	IconURL     *string `json:"iconUrl"`
}

func (h *AbilityHandler) List(w http.ResponseWriter, r *http.Request) {
	abilities, err := h.abilityService.List(r.Context())
	if err != nil {
		log.Printf("ERROR [ability.List]: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to list abilities")
		return
	}

	resp := make([]AbilitySummary, len(abilities))
	for i, ability := range abilities {
		resp[i] = AbilitySummary{ID: ability.ID, Hero: ability.HeroID, Name: ability.Name}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *AbilityHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusNotFound, "Ability not found")
		return
	}

	ability, err := h.abilityService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrAbilityNotFound) {
			writeError(w, http.StatusNotFound, "Ability not found")
			return
		}
		log.Printf("ERROR [ability.Get] abilityID=%d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to get ability")
		return
	}

	writeJSON(w, http.StatusOK, abilityResponse(ability))
}

func (h *AbilityHandler) Create(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	input := service.CreateAbilityInput{
		Cooldown: fieldInt(fields, "cooldown"),
		IconURL:  fieldString(fields, "iconUrl"),
	}
	if hero := fieldUint(fields, "hero"); hero != nil {
		input.HeroID = *hero
	}
	if name := fieldString(fields, "name"); name != nil {
		input.Name = *name
	}
	if description := fieldString(fields, "description"); description != nil {
		input.Description = *description
	}

	ability, err := h.abilityService.Create(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrHeroNotFound) {
			writeError(w, http.StatusNotFound, "Hero not found")
			return
		}
		log.Printf("ERROR [ability.Create]: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create ability")
		return
	}

	writeJSON(w, http.StatusCreated, idResponse{ID: ability.ID})
}

func (h *AbilityHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusNotFound, "Ability not found")
		return
	}

	fields, err := decodeFields(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	input := service.UpdateAbilityInput{
		HeroID:      fieldUint(fields, "hero"),
		Name:        fieldString(fields, "name"),
		Description: fieldString(fields, "description"),
		Cooldown:    fieldInt(fields, "cooldown"),
		CooldownSet: fieldPresent(fields, "cooldown"),
		IconURL:     fieldString(fields, "iconUrl"),
		IconURLSet:  fieldPresent(fields, "iconUrl"),
	}

	if _, err := h.abilityService.Update(r.Context(), id, input); err != nil {
		if errors.Is(err, domain.ErrAbilityNotFound) {
			writeError(w, http.StatusNotFound, "Ability not found")
			return
		}
		log.Printf("ERROR [ability.Update] abilityID=%d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to update ability")
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}

func (h *AbilityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusNotFound, "Ability not found")
		return
	}

	if err := h.abilityService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrAbilityNotFound) {
			writeError(w, http.StatusNotFound, "Ability not found")
			return
		}
		log.Printf("ERROR [ability.Delete] abilityID=%d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to delete ability")
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{Status: "deleted"})
}

func abilityResponse(ability *domain.Ability) AbilityResponse {
	return AbilityResponse{
		ID:          ability.ID,
		Hero:        ability.HeroID,
		Name:        ability.Name,
		Description: ability.Description,
		Cooldown:    ability.Cooldown,
		IconURL:     ability.IconURL,
	}
}
