package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/tomd/hero-build-planner/internal/domain"
	"github.com/tomd/hero-build-planner/internal/repository"
	"github.com/tomd/hero-build-planner/internal/service"
)

type HeroHandler struct {
	heroService *service.HeroService
}

func NewHeroHandler(heroService *service.HeroService) *HeroHandler {
	return &HeroHandler{heroService: heroService}
}

type HeroSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type HeroResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Role        string  `json:"role"`
	Description string  `json:"description"`
	ImageURL    *string `json:"imageUrl"`
}

func (h *HeroHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := repository.HeroFilter{
		Role:   q.Get("role"),
		Search: q.Get("search"),
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit > 0 {
		filter.Limit = limit
		if page, err := strconv.Atoi(q.Get("page")); err == nil && page > 1 {
			filter.Offset = (page - 1) * limit
		}
	}

	heroes, err := h.heroService.List(r.Context(), filter)
	if err != nil {
		log.Printf("ERROR [hero.List]: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to list heroes")
		return
	}

	resp := make([]HeroSummary, len(heroes))
	for i, hero := range heroes {
		resp[i] = HeroSummary{ID: hero.ID, Name: hero.Name, Role: hero.Role}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *HeroHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusNotFound, "Hero not found")
		return
	}

	hero, err := h.heroService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrHeroNotFound) {
			writeError(w, http.StatusNotFound, "Hero not found")
			return
		}
		log.Printf("ERROR [hero.Get] heroID=%d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to get hero")
		return
	}

	writeJSON(w, http.StatusOK, heroResponse(hero))
}

func (h *HeroHandler) Create(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	input := service.CreateHeroInput{
		ImageURL: fieldString(fields, "imageUrl"),
	}
	if name := fieldString(fields, "name"); name != nil {
		input.Name = *name
	}
	if role := fieldString(fields, "role"); role != nil {
		input.Role = *role
	}
	if description := fieldString(fields, "description"); description != nil {
		input.Description = *description
	}

	hero, err := h.heroService.Create(r.Context(), input)
	if err != nil {
		log.Printf("ERROR [hero.Create]: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create hero")
		return
	}

	writeJSON(w, http.StatusCreated, idResponse{ID: hero.ID})
}

func (h *HeroHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusNotFound, "Hero not found")
		return
	}

	fields, err := decodeFields(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	input := service.UpdateHeroInput{
		Name:        fieldString(fields, "name"),
		Role:        fieldString(fields, "role"),
		Description: fieldString(fields, "description"),
		ImageURL:    fieldString(fields, "imageUrl"),
		ImageURLSet: fieldPresent(fields, "imageUrl"),
	}

	if _, err := h.heroService.Update(r.Context(), id, input); err != nil {
		if errors.Is(err, domain.ErrHeroNotFound) {
			writeError(w, http.StatusNotFound, "Hero not found")
			return
		}
		log.Printf("ERROR [hero.Update] heroID=%d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to update hero")
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}

func (h *HeroHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusNotFound, "Hero not found")
		return
	}

	if err := h.heroService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrHeroNotFound) {
			writeError(w, http.StatusNotFound, "Hero not found")
			return
		}
		log.Printf("ERROR [hero.Delete] heroID=%d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to delete hero")
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{Status: "deleted"})
}

func heroResponse(hero *domain.Hero) HeroResponse {
	return HeroResponse{
		ID:          hero.ID,
		Name:        hero.Name,
		Role:        hero.Role,
		Description: hero.Description,
		ImageURL:    hero.ImageURL,
	}
}
