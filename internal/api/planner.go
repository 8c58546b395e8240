package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/homeforge-app/homeforge/internal/store"
)

// PlannerHandler covers the budget, requirements, timeline, and settings
// endpoints.
type PlannerHandler struct {
	store store.Store
}

func NewPlannerHandler(s store.Store) *PlannerHandler {
	return &PlannerHandler{store: s}
}

func (h *PlannerHandler) CreateBudgetCategory(w http.ResponseWriter, r *http.Request) {
	var c store.BudgetCategory
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil || c.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name required"})
		return
	}
	if err := h.store.CreateBudgetCategory(r.Context(), &c); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, &c)
}

func (h *PlannerHandler) ListBudget(w http.ResponseWriter, r *http.Request) {
	cats, err := h.store.ListBudgetCategories(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if cats == nil {
		cats = []*store.BudgetCategory{}
	}

	var estimate, actual float64
	for _, c := range cats {
		estimate += c.Estimate
		actual += c.Actual
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"categories":     cats,
		"total_estimate": estimate,
		"total_actual":   actual,
	})
}

func (h *PlannerHandler) UpdateBudgetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	var c store.BudgetCategory
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	c.ID = id
	if err := h.store.UpdateBudgetCategory(r.Context(), &c); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, &c)
}

func (h *PlannerHandler) DeleteBudgetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	if err := h.store.DeleteBudgetCategory(r.Context(), id); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *PlannerHandler) CreateRequirement(w http.ResponseWriter, r *http.Request) {
	var req store.Requirement
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name required"})
		return
	}
	if req.Priority == "" {
		req.Priority = store.PriorityNiceToHave
	}
	if err := h.store.CreateRequirement(r.Context(), &req); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, &req)
}

func (h *PlannerHandler) ListRequirements(w http.ResponseWriter, r *http.Request) {
	reqs, err := h.store.ListRequirements(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if reqs == nil {
		reqs = []*store.Requirement{}
	}
	writeJSON(w, http.StatusOK, reqs)
}

func (h *PlannerHandler) UpdateRequirement(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	var req store.Requirement
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	req.ID = id
	if err := h.store.UpdateRequirement(r.Context(), &req); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, &req)
}

func (h *PlannerHandler) DeleteRequirement(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	if err := h.store.DeleteRequirement(r.Context(), id); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *PlannerHandler) CreateMilestone(w http.ResponseWriter, r *http.Request) {
	var m store.Milestone
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil || m.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name required"})
		return
	}
	if m.Status == "" {
		m.Status = store.MilestoneNotStarted
	}
	if err := h.store.CreateMilestone(r.Context(), &m); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, &m)
}

func (h *PlannerHandler) ListMilestones(w http.ResponseWriter, r *http.Request) {
	milestones, err := h.store.ListMilestones(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if milestones == nil {
		milestones = []*store.Milestone{}
	}
	writeJSON(w, http.StatusOK, milestones)
}

func (h *PlannerHandler) UpdateMilestone(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	var m store.Milestone
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	m.ID = id
	if err := h.store.UpdateMilestone(r.Context(), &m); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, &m)
}

func (h *PlannerHandler) DeleteMilestone(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	if err := h.store.DeleteMilestone(r.Context(), id); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *PlannerHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	st, err := h.store.GetSettings(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (h *PlannerHandler) SaveSettings(w http.ResponseWriter, r *http.Request) {
	var st store.Settings
	if err := json.NewDecoder(r.Body).Decode(&st); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if err := h.store.SaveSettings(r.Context(), &st); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, &st)
}
