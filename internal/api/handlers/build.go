package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/tomd/hero-build-planner/internal/api/middleware"
	"github.com/tomd/hero-build-planner/internal/domain"
	"github.com/tomd/hero-build-planner/internal/service"
)

type BuildHandler struct {
	buildService *service.BuildService
}

func NewBuildHandler(buildService *service.BuildService) *BuildHandler {
	return &BuildHandler{buildService: buildService}
}

type BuildSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Hero uint   `json:"hero"`
}

type BuildItem struct {
	Upgrade uint `json:"upgrade"`
	Slot    int  `json:"slot"`
}

type BuildResponse struct {
	ID          uint        `json:"id"`
	Name        string      `json:"name"`
	Hero        uint        `json:"hero"`
	Description string      `json:"description"`
	IsPublic    bool        `json:"isPublic"`
	Items       []BuildItem `json:"items"`
}

func (h *BuildHandler) List(w http.ResponseWriter, r *http.Request) {
	builds, err := h.buildService.List(r.Context())
	if err != nil {
		log.Printf("ERROR [build.List]: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to list builds")
		return
	}

	resp := make([]BuildSummary, len(builds))
	for i, build := range builds {
		resp[i] = BuildSummary{ID: build.ID, Name: build.Name, Hero: build.HeroID}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *BuildHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusNotFound, "Build not found")
		return
	}

	result, err := h.buildService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrBuildNotFound) {
			writeError(w, http.StatusNotFound, "Build not found")
			return
		}
		log.Printf("ERROR [build.Get] buildID=%d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to get build")
		return
	}

	items := make([]BuildItem, len(result.Items))
	for i, bu := range result.Items {
		items[i] = BuildItem{Upgrade: bu.UpgradeID, Slot: bu.Slot}
	}

	writeJSON(w, http.StatusOK, BuildResponse{
		ID:          result.Build.ID,
		Name:        result.Build.Name,
		Hero:        result.Build.HeroID,
		Description: result.Build.Description,
		IsPublic:    result.Build.IsPublic,
		Items:       items,
	})
}

func (h *BuildHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	fields, err := decodeFields(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	input := service.CreateBuildInput{
		Items: decodeItems(fields),
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
	if isPublic := fieldBool(fields, "isPublic"); isPublic != nil {
		input.IsPublic = *isPublic
	}

	build, err := h.buildService.Create(r.Context(), userID, input)
	if err != nil {
		if errors.Is(err, domain.ErrHeroNotFound) {
			writeError(w, http.StatusNotFound, "Hero not found")
			return
		}
		if errors.Is(err, domain.ErrUpgradeNotFound) {
			writeError(w, http.StatusNotFound, "Upgrade not found")
			return
		}
		log.Printf("ERROR [build.Create]: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create build")
		return
	}

	writeJSON(w, http.StatusCreated, idResponse{ID: build.ID})
}

func (h *BuildHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusNotFound, "Build not found")
		return
	}

	fields, err := decodeFields(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	input := service.UpdateBuildInput{
		HeroID:      fieldUint(fields, "hero"),
		Name:        fieldString(fields, "name"),
		Description: fieldString(fields, "description"),
		IsPublic:    fieldBool(fields, "isPublic"),
		Items:       decodeItems(fields),
		ItemsSet:    fieldPresent(fields, "items"),
	}

	if _, err := h.buildService.Update(r.Context(), id, input); err != nil {
		if errors.Is(err, domain.ErrBuildNotFound) {
			writeError(w, http.StatusNotFound, "Build not found")
			return
		}
		if errors.Is(err, domain.ErrUpgradeNotFound) {
			writeError(w, http.StatusNotFound, "Upgrade not found")
			return
		}
		log.Printf("ERROR [build.Update] buildID=%d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to update build")
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}

func (h *BuildHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusNotFound, "Build not found")
		return
	}

	if err := h.buildService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrBuildNotFound) {
			writeError(w, http.StatusNotFound, "Build not found")
			return
		}
		log.Printf("ERROR [build.Delete] buildID=%d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to delete build")
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{Status: "deleted"})
}

func decodeItems(fields map[string]json.RawMessage) []service.BuildItemInput {
	raw, ok := fields["items"]
	if !ok {
		return nil
	}

	var items []BuildItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}

	inputs := make([]service.BuildItemInput, len(items))
	for i, item := range items {
		inputs[i] = service.BuildItemInput{UpgradeID: item.Upgrade, Slot: item.Slot}
	}
	return inputs
}
