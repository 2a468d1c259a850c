package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type errorResponse struct {
	Error string `json:"error"`
}

type statusResponse struct {
	Status string `json:"status"`
}

type idResponse struct {
	ID uint `json:"id"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func urlID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	return uint(id), err
}

// decodeFields reads the body as a key → raw JSON map so handlers can tell
// an absent key from an explicit null. Partial updates depend on this.
func decodeFields(r *http.Request) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// The field accessors return nil both for an absent key and for an explicit
// null, mirroring the original's isset() checks. Callers that must
// distinguish the two (nullable columns) pair them with fieldPresent.

func fieldString(fields map[string]json.RawMessage, key string) *string {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	var v *string
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return v
}

func fieldInt(fields map[string]json.RawMessage, key string) *int {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	var v *int
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return v
}

func fieldUint(fields map[string]json.RawMessage, key string) *uint {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	var v *uint
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return v
}

func fieldBool(fields map[string]json.RawMessage, key string) *bool {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	var v *bool
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return v
}

func fieldPresent(fields map[string]json.RawMessage, key string) bool {
	_, ok := fields[key]
	return ok
}
