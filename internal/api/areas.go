package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/homeforge-app/homeforge/internal/store"
)

type AreasHandler struct {
	store store.Store
}

func NewAreasHandler(s store.Store) *AreasHandler {
	return &AreasHandler{store: s}
}

func (h *AreasHandler) Create(w http.ResponseWriter, r *http.Request) {
	var area store.Area
	if err := json.NewDecoder(r.Body).Decode(&area); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if area.Name == "" || area.State == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name and state required"})
		return
	}
	if area.Tier == "" {
		area.Tier = store.TierContender
	}

	if err := h.store.CreateArea(r.Context(), &area); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, &area)
}

func (h *AreasHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := store.AreaFilter{
		State: r.URL.Query().Get("state"),
		Tag:   r.URL.Query().Get("tag"),
	}
	if t := r.URL.Query().Get("tier"); t != "" {
		tier := store.AreaTier(t)
		filter.Tier = &tier
	}

	areas, err := h.store.ListAreas(r.Context(), filter)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if areas == nil {
		areas = []*store.Area{}
	}
	writeJSON(w, http.StatusOK, areas)
}

func (h *AreasHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid area id"})
		return
	}

	area, err := h.store.GetArea(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if area == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "area not found"})
		return
	}
	writeJSON(w, http.StatusOK, area)
}

func (h *AreasHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid area id"})
		return
	}

	existing, err := h.store.GetArea(r.Context(), id)
	if err != nil || existing == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "area not found"})
		return
	}

	var area store.Area
	if err := json.NewDecoder(r.Body).Decode(&area); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	area.ID = id
	// Score edits go through the dedicated score endpoints.
	area.Scores = existing.Scores

	if err := h.store.UpdateArea(r.Context(), &area); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, &area)
}

func (h *AreasHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid area id"})
		return
	}
	if err := h.store.DeleteArea(r.Context(), id); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
