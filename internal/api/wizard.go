package api

import (
	"encoding/json"
	"net/http"

	"github.com/homeforge-app/homeforge/internal/profile"
	"github.com/homeforge-app/homeforge/internal/store"
	"github.com/homeforge-app/homeforge/internal/wizard"
)

type WizardHandler struct {
	store store.Store
}

func NewWizardHandler(s store.Store) *WizardHandler {
	return &WizardHandler{store: s}
}

func (h *WizardHandler) Questions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, wizard.Questions())
}

func (h *WizardHandler) Results(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Answers wizard.Answers `json:"answers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if body.Answers == nil {
		body.Answers = wizard.Answers{}
	}

	st, err := h.store.GetProfileState(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	areas, err := h.store.ListAreas(r.Context(), store.AreaFilter{})
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	out := wizard.Run(areas, profile.NewManager(st).ActiveWeights(), body.Answers)
	writeJSON(w, http.StatusOK, out)
}
