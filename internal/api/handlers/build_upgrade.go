package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/tomd/hero-build-planner/internal/domain"
	"github.com/tomd/hero-build-planner/internal/service"
)

type BuildUpgradeHandler struct {
	buildUpgradeService *service.BuildUpgradeService
}

func NewBuildUpgradeHandler(buildUpgradeService *service.BuildUpgradeService) *BuildUpgradeHandler {
	return &BuildUpgradeHandler{buildUpgradeService: buildUpgradeService}
}

type BuildUpgradeResponse struct {
	ID      uint `json:"id"`
	Build   uint `json:"build"`
	Upgrade uint `json:"upgrade"`
	Slot    int  `json:"slot"`
}

func (h *BuildUpgradeHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.buildUpgradeService.List(r.Context())
	if err != nil {
		log.Printf("ERROR [buildUpgrade.List]: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to list build upgrades")
		return
	}

	resp := make([]BuildUpgradeResponse, len(records))
	for i, bu := range records {
		resp[i] = buildUpgradeResponse(bu)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *BuildUpgradeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusNotFound, "Record not found")
		return
	}

	bu, err := h.buildUpgradeService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrBuildUpgradeNotFound) {
			writeError(w, http.StatusNotFound, "Record not found")
			return
		}
		log.Printf("ERROR [buildUpgrade.Get] id=%d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to get build upgrade")
		return
	}

	writeJSON(w, http.StatusOK, buildUpgradeResponse(bu))
}

func (h *BuildUpgradeHandler) Create(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	input := service.CreateBuildUpgradeInput{}
	if build := fieldUint(fields, "build"); build != nil {
		input.BuildID = *build
	}
	if upgrade := fieldUint(fields, "upgrade"); upgrade != nil {
		input.UpgradeID = *upgrade
	}
	if slot := fieldInt(fields, "slot"); slot != nil {
		input.Slot = *slot
	}

	bu, err := h.buildUpgradeService.Create(r.Context(), input)
	if err != nil {
		// Either missing reference is an invalid payload here, matching the
		// original controller's combined check.
		if errors.Is(err, domain.ErrBuildNotFound) || errors.Is(err, domain.ErrUpgradeNotFound) {
			writeError(w, http.StatusBadRequest, "Invalid payload")
			return
		}
		log.Printf("ERROR [buildUpgrade.Create]: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create build upgrade")
		return
	}

	writeJSON(w, http.StatusCreated, idResponse{ID: bu.ID})
}

func (h *BuildUpgradeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusNotFound, "Record not found")
		return
	}

	fields, err := decodeFields(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	input := service.UpdateBuildUpgradeInput{
		BuildID:   fieldUint(fields, "build"),
		UpgradeID: fieldUint(fields, "upgrade"),
		Slot:      fieldInt(fields, "slot"),
	}

	if _, err := h.buildUpgradeService.Update(r.Context(), id, input); err != nil {
		if errors.Is(err, domain.ErrBuildUpgradeNotFound) {
			writeError(w, http.StatusNotFound, "Record not found")
			return
		}
		log.Printf("ERROR [buildUpgrade.Update] id=%d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to update build upgrade")
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}

func (h *BuildUpgradeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusNotFound, "Record not found")
		return
	}

	if err := h.buildUpgradeService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrBuildUpgradeNotFound) {
			writeError(w, http.StatusNotFound, "Record not found")
			return
		}
		log.Printf("ERROR [buildUpgrade.Delete] id=%d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to delete build upgrade")
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{Status: "deleted"})
}

func buildUpgradeResponse(bu *domain.BuildUpgrade) BuildUpgradeResponse {
	return BuildUpgradeResponse{
		ID:      bu.ID,
		Build:   bu.BuildID,
		Upgrade: bu.UpgradeID,
		Slot:    bu.Slot,
	}
}
