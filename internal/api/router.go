package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/homeforge-app/homeforge/internal/ollama"
	"github.com/homeforge-app/homeforge/internal/store"
)

func NewRouter(s store.Store, oc ollama.Client, defaultModel string, adminToken string, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(240))

	areas := NewAreasHandler(s)
	scorecard := NewScorecardHandler(s)
	wizard := NewWizardHandler(s)
	planner := NewPlannerHandler(s)
	chat := NewChatHandler(s, oc, defaultModel)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/schema/categories", scorecard.SchemaCategories)
		r.Get("/schema/bands", scorecard.SchemaBands)

		r.Post("/areas", areas.Create)
		r.Get("/areas", areas.List)
		r.Get("/areas/{id}", areas.Get)
		r.Put("/areas/{id}", areas.Update)
		r.Put("/areas/{id}/scores/{category}/{criterion}", scorecard.SetScore)
		r.Put("/areas/{id}/notes/{category}/{criterion}", scorecard.SetNotes)

		r.Get("/weights", scorecard.Weights)
		r.Put("/weights/{category}", scorecard.SetWeight)

		r.Get("/profiles", scorecard.ListProfiles)
		r.Post("/profiles", scorecard.CreateProfile)
		r.Patch("/profiles/{id}", scorecard.RenameProfile)
		r.Post("/profiles/{id}/activate", scorecard.ActivateProfile)
		r.Delete("/profiles/{id}", scorecard.DeleteProfile)

		r.Get("/rankings", scorecard.Rankings)
		r.Post("/compare", scorecard.Compare)

		r.Get("/wizard/questions", wizard.Questions)
		r.Post("/wizard/results", wizard.Results)

		r.Post("/budget", planner.CreateBudgetCategory)
		r.Get("/budget", planner.ListBudget)
		r.Put("/budget/{id}", planner.UpdateBudgetCategory)
		r.Delete("/budget/{id}", planner.DeleteBudgetCategory)

		r.Post("/requirements", planner.CreateRequirement)
		r.Get("/requirements", planner.ListRequirements)
		r.Put("/requirements/{id}", planner.UpdateRequirement)
		r.Delete("/requirements/{id}", planner.DeleteRequirement)

		r.Post("/timeline", planner.CreateMilestone)
		r.Get("/timeline", planner.ListMilestones)
		r.Put("/timeline/{id}", planner.UpdateMilestone)
		r.Delete("/timeline/{id}", planner.DeleteMilestone)

		r.Get("/chat", chat.History)
		r.Post("/chat", chat.Send)
		r.Get("/chat/status", chat.Status)

		r.Get("/settings", planner.GetSettings)
		r.Put("/settings", planner.SaveSettings)

		// Destructive operations sit behind the admin token.
		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(adminToken))
			r.Delete("/areas/{id}", areas.Delete)
			r.Delete("/chat", chat.Clear)
		})
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
