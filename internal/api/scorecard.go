package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/homeforge-app/homeforge/internal/profile"
	"github.com/homeforge-app/homeforge/internal/ranking"
	"github.com/homeforge-app/homeforge/internal/schema"
	"github.com/homeforge-app/homeforge/internal/store"
)

// ScorecardHandler serves the criteria schema, per-criterion score writes,
// weight profiles, and the ranking/comparison views.
type ScorecardHandler struct {
	store store.Store
}

func NewScorecardHandler(s store.Store) *ScorecardHandler {
	return &ScorecardHandler{store: s}
}

func (h *ScorecardHandler) SchemaCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, schema.Categories())
}

type bandResponse struct {
	Score  float64 `json:"score"`
	Letter string  `json:"letter"`
	Color  string  `json:"color"`
	Label  string  `json:"label"`
}

func (h *ScorecardHandler) SchemaBands(w http.ResponseWriter, r *http.Request) {
	// One row per half point so the UI can render the full band scale.
	var bands []bandResponse
	for s := 0.0; s <= 10; s += 0.5 {
		b := schema.BandFor(s)
		bands = append(bands, bandResponse{Score: s, Letter: b.Letter, Color: b.Color, Label: b.Label})
	}
	writeJSON(w, http.StatusOK, bands)
}

func (h *ScorecardHandler) SetScore(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid area id"})
		return
	}
	categoryID := chi.URLParam(r, "category")
	criterionID := chi.URLParam(r, "criterion")
	if !schema.HasCriterion(categoryID, criterionID) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown criterion"})
		return
	}

	var body struct {
		Score int `json:"score"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if err := h.store.SetScore(r.Context(), id, categoryID, criterionID, body.Score); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *ScorecardHandler) SetNotes(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid area id"})
		return
	}
	categoryID := chi.URLParam(r, "category")
	criterionID := chi.URLParam(r, "criterion")
	if !schema.HasCriterion(categoryID, criterionID) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown criterion"})
		return
	}

	var body struct {
		Notes string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if err := h.store.SetNotes(r.Context(), id, categoryID, criterionID, body.Notes); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *ScorecardHandler) manager(r *http.Request) (*profile.Manager, error) {
	st, err := h.store.GetProfileState(r.Context())
	if err != nil {
		return nil, err
	}
	return profile.NewManager(st), nil
}

func (h *ScorecardHandler) save(r *http.Request, m *profile.Manager) error {
	return h.store.SaveProfileState(r.Context(), m.State())
}

type weightsResponse struct {
	Weights map[string]float64 `json:"weights"`
	Total   float64            `json:"total"`
}

func (h *ScorecardHandler) Weights(w http.ResponseWriter, r *http.Request) {
	m, err := h.manager(r)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, weightsResponse{Weights: m.ActiveWeights(), Total: m.TotalWeight()})
}

func (h *ScorecardHandler) SetWeight(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "category")
	if schema.CategoryByID(categoryID) == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown category"})
		return
	}

	var body struct {
		Value float64 `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	m, err := h.manager(r)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	m.SetWeight(categoryID, body.Value)
	if err := h.save(r, m); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, weightsResponse{Weights: m.ActiveWeights(), Total: m.TotalWeight()})
}

type profilesResponse struct {
	Profiles        []profile.Profile `json:"profiles"`
	ActiveProfileID *uuid.UUID        `json:"active_profile_id,omitempty"`
}

func (h *ScorecardHandler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	m, err := h.manager(r)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, profilesResponse{
		Profiles:        m.Profiles(),
		ActiveProfileID: m.State().ActiveProfileID,
	})
}

func (h *ScorecardHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name    string             `json:"name"`
		Weights map[string]float64 `json:"weights,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name required"})
		return
	}

	m, err := h.manager(r)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	id := m.CreateProfile(body.Name, body.Weights)
	if err := h.save(r, m); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (h *ScorecardHandler) RenameProfile(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid profile id"})
		return
	}
	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name required"})
		return
	}

	m, err := h.manager(r)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if err := m.RenameProfile(id, body.Name); err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	if err := h.save(r, m); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *ScorecardHandler) ActivateProfile(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid profile id"})
		return
	}

	m, err := h.manager(r)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if err := m.SetActive(id); err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	if err := h.save(r, m); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *ScorecardHandler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid profile id"})
		return
	}

	m, err := h.manager(r)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if err := m.DeleteProfile(id); err != nil {
		status := http.StatusNotFound
		if errors.Is(err, profile.ErrLastProfile) {
			status = http.StatusConflict
		}
		writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}
	if err := h.save(r, m); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *ScorecardHandler) Rankings(w http.ResponseWriter, r *http.Request) {
	m, err := h.manager(r)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	areas, err := h.store.ListAreas(r.Context(), store.AreaFilter{})
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	weights := m.ActiveWeights()
	var ranked []ranking.Ranked
	if categoryID := r.URL.Query().Get("category"); categoryID != "" {
		if schema.CategoryByID(categoryID) == nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown category"})
			return
		}
		ranked = ranking.RankByCategory(areas, weights, categoryID)
	} else {
		ranked = ranking.Rank(areas, weights)
	}
	if ranked == nil {
		ranked = []ranking.Ranked{}
	}
	writeJSON(w, http.StatusOK, ranked)
}

func (h *ScorecardHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var body struct {
		AreaIDs []uuid.UUID `json:"area_ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body.AreaIDs) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "area_ids required"})
		return
	}

	m, err := h.manager(r)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	areas := make([]*store.Area, 0, len(body.AreaIDs))
	for _, id := range body.AreaIDs {
		area, err := h.store.GetArea(r.Context(), id)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		if area == nil {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "area not found: " + id.String()})
			return
		}
		areas = append(areas, area)
	}

	writeJSON(w, http.StatusOK, ranking.Compare(areas, m.ActiveWeights()))
}
