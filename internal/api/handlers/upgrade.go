package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/tomd/hero-build-planner/internal/domain"
	"github.com/tomd/hero-build-planner/internal/service"
	"gorm.io/datatypes"
)

type UpgradeHandler struct {
	upgradeService *service.UpgradeService
}

func NewUpgradeHandler(upgradeService *service.UpgradeService) *UpgradeHandler {
	return &UpgradeHandler{upgradeService: upgradeService}
}

type UpgradeSummary struct {
	ID      uint   `json:"id"`
	Ability uint   `json:"ability"`
	Name    string `json:"name"`
	Cost    int    `json:"cost"`
}

type UpgradeResponse struct {
	ID          uint            `json:"id"`
	Ability     uint            `json:"ability"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Cost        int             `json:"cost"`
	Effect      json.RawMessage `json:"effect"`
}

func (h *UpgradeHandler) List(w http.ResponseWriter, r *http.Request) {
	upgrades, err := h.upgradeService.List(r.Context())
	if err != nil {
		log.Printf("ERROR [upgrade.List]: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to list upgrades")
		return
	}

	resp := make([]UpgradeSummary, len(upgrades))
	for i, upgrade := range upgrades {
		resp[i] = UpgradeSummary{
			ID:      upgrade.ID,
			Ability: upgrade.AbilityID,
			Name:    upgrade.Name,
			Cost:    upgrade.Cost,
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *UpgradeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusNotFound, "Upgrade not found")
		return
	}

	upgrade, err := h.upgradeService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUpgradeNotFound) {
			writeError(w, http.StatusNotFound, "Upgrade not found")
			return
		}
		log.Printf("ERROR [upgrade.Get] upgradeID=%d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to get upgrade")
		return
	}

	writeJSON(w, http.StatusOK, upgradeResponse(upgrade))
}

func (h *UpgradeHandler) Create(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	input := service.CreateUpgradeInput{}
	if ability := fieldUint(fields, "ability"); ability != nil {
		input.AbilityID = *ability
	}
	if name := fieldString(fields, "name"); name != nil {
		input.Name = *name
	}
	if description := fieldString(fields, "description"); description != nil {
		input.Description = *description
	}
	if cost := fieldInt(fields, "cost"); cost != nil {
		input.Cost = *cost
	}
	if raw, ok := fields["effect"]; ok {
		input.Effect = datatypes.JSON(raw)
	}

	upgrade, err := h.upgradeService.Create(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrAbilityNotFound) {
			writeError(w, http.StatusNotFound, "Ability not found")
			return
		}
		log.Printf("ERROR [upgrade.Create]: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create upgrade")
		return
	}

	writeJSON(w, http.StatusCreated, idResponse{ID: upgrade.ID})
}

func (h *UpgradeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusNotFound, "Upgrade not found")
		return
	}

	fields, err := decodeFields(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	input := service.UpdateUpgradeInput{
		AbilityID:   fieldUint(fields, "ability"),
		Name:        fieldString(fields, "name"),
		Description: fieldString(fields, "description"),
		Cost:        fieldInt(fields, "cost"),
	}
	if raw, ok := fields["effect"]; ok {
		input.Effect = datatypes.JSON(raw)
	}

	if _, err := h.upgradeService.Update(r.Context(), id, input); err != nil {
		if errors.Is(err, domain.ErrUpgradeNotFound) {
			writeError(w, http.StatusNotFound, "Upgrade not found")
			return
		}
		log.Printf("ERROR [upgrade.Update] upgradeID=%d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to update upgrade")
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}

func (h *UpgradeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusNotFound, "Upgrade not found")
		return
	}

	if err := h.upgradeService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrUpgradeNotFound) {
			writeError(w, http.StatusNotFound, "Upgrade not found")
			return
		}
		log.Printf("ERROR [upgrade.Delete] upgradeID=%d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to delete upgrade")
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{Status: "deleted"})
}

func upgradeResponse(upgrade *domain.Upgrade) UpgradeResponse {
	return UpgradeResponse{
		ID:          upgrade.ID,
		Ability:     upgrade.AbilityID,
		Name:        upgrade.Name,
		Description: upgrade.Description,
		Cost:        upgrade.Cost,
		Effect:      json.RawMessage(upgrade.Effect),
	}
}
