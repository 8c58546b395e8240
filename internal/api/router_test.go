package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/homeforge-app/homeforge/internal/ollama"
	"github.com/homeforge-app/homeforge/internal/profile"
	"github.com/homeforge-app/homeforge/internal/ranking"
	"github.com/homeforge-app/homeforge/internal/scoring"
	"github.com/homeforge-app/homeforge/internal/store"
)

// Mocks
type mockStore struct {
	areas        map[uuid.UUID]*store.Area
	profileState profile.State
	budget       map[uuid.UUID]*store.BudgetCategory
	requirements map[uuid.UUID]*store.Requirement
	milestones   map[uuid.UUID]*store.Milestone
	chat         []*store.ChatMessage
	settings     store.Settings
}

func newMockStore() *mockStore {
	return &mockStore{
		areas:        make(map[uuid.UUID]*store.Area),
		budget:       make(map[uuid.UUID]*store.BudgetCategory),
		requirements: make(map[uuid.UUID]*store.Requirement),
		milestones:   make(map[uuid.UUID]*store.Milestone),
	}
}

func (m *mockStore) CreateArea(_ context.Context, a *store.Area) error {
	a.ID = uuid.New()
	a.CreatedAt = time.Now()
	a.UpdatedAt = time.Now()
	if a.Scores == nil {
		a.Scores = scoring.AreaScores{}
	}
	m.areas[a.ID] = a
	return nil
}
func (m *mockStore) GetArea(_ context.Context, id uuid.UUID) (*store.Area, error) {
	return m.areas[id], nil
}
func (m *mockStore) ListAreas(_ context.Context, _ store.AreaFilter) ([]*store.Area, error) {
	var out []*store.Area
	for _, a := range m.areas {
		out = append(out, a)
	}
	return out, nil
}
func (m *mockStore) UpdateArea(_ context.Context, a *store.Area) error {
	m.areas[a.ID] = a
	return nil
}
func (m *mockStore) DeleteArea(_ context.Context, id uuid.UUID) error {
	delete(m.areas, id)
	return nil
}
func (m *mockStore) SetScore(_ context.Context, areaID uuid.UUID, categoryID, criterionID string, score int) error {
	a := m.areas[areaID]
	if a == nil {
		return nil
	}
	a.Scores.SetScore(categoryID, criterionID, score)
	return nil
}
func (m *mockStore) SetNotes(_ context.Context, areaID uuid.UUID, categoryID, criterionID, notes string) error {
	a := m.areas[areaID]
	if a == nil {
		return nil
	}
	a.Scores.SetNotes(categoryID, criterionID, notes)
	return nil
}
func (m *mockStore) GetProfileState(_ context.Context) (profile.State, error) {
	return m.profileState, nil
}
func (m *mockStore) SaveProfileState(_ context.Context, st profile.State) error {
	m.profileState = st
	return nil
}
func (m *mockStore) CreateBudgetCategory(_ context.Context, c *store.BudgetCategory) error {
	c.ID = uuid.New()
	m.budget[c.ID] = c
	return nil
}
func (m *mockStore) ListBudgetCategories(_ context.Context) ([]*store.BudgetCategory, error) {
	var out []*store.BudgetCategory
	for _, c := range m.budget {
		out = append(out, c)
	}
	return out, nil
}
func (m *mockStore) UpdateBudgetCategory(_ context.Context, c *store.BudgetCategory) error {
	m.budget[c.ID] = c
	return nil
}
func (m *mockStore) DeleteBudgetCategory(_ context.Context, id uuid.UUID) error {
	delete(m.budget, id)
	return nil
}
func (m *mockStore) CreateRequirement(_ context.Context, r *store.Requirement) error {
	r.ID = uuid.New()
	m.requirements[r.ID] = r
	return nil
}
func (m *mockStore) ListRequirements(_ context.Context) ([]*store.Requirement, error) {
	var out []*store.Requirement
	for _, r := range m.requirements {
		out = append(out, r)
	}
	return out, nil
}
func (m *mockStore) UpdateRequirement(_ context.Context, r *store.Requirement) error {
	m.requirements[r.ID] = r
	return nil
}
func (m *mockStore) DeleteRequirement(_ context.Context, id uuid.UUID) error {
	delete(m.requirements, id)
	return nil
}
func (m *mockStore) CreateMilestone(_ context.Context, ms *store.Milestone) error {
	ms.ID = uuid.New()
	m.milestones[ms.ID] = ms
	return nil
}
func (m *mockStore) ListMilestones(_ context.Context) ([]*store.Milestone, error) {
	var out []*store.Milestone
	for _, ms := range m.milestones {
		out = append(out, ms)
	}
	return out, nil
}
func (m *mockStore) UpdateMilestone(_ context.Context, ms *store.Milestone) error {
	m.milestones[ms.ID] = ms
	return nil
}
func (m *mockStore) DeleteMilestone(_ context.Context, id uuid.UUID) error {
	delete(m.milestones, id)
	return nil
}
func (m *mockStore) AppendChatMessage(_ context.Context, msg *store.ChatMessage) error {
	msg.ID = uuid.New()
	msg.CreatedAt = time.Now()
	m.chat = append(m.chat, msg)
	return nil
}
func (m *mockStore) ListChatMessages(_ context.Context, _ int) ([]*store.ChatMessage, error) {
	return m.chat, nil
}
func (m *mockStore) ClearChatMessages(_ context.Context) error {
	m.chat = nil
	return nil
}
func (m *mockStore) GetSettings(_ context.Context) (*store.Settings, error) {
	return &m.settings, nil
}
func (m *mockStore) SaveSettings(_ context.Context, st *store.Settings) error {
	m.settings = *st
	return nil
}
func (m *mockStore) Close() error { return nil }

type mockOllama struct{}

func (m *mockOllama) Chat(_ context.Context, _ string, _ []ollama.Message) (*ollama.Message, error) {
	return &ollama.Message{Role: "assistant", Content: "mock reply"}, nil
}
func (m *mockOllama) Available(_ context.Context) bool { return true }
func (m *mockOllama) ListModels(_ context.Context) ([]string, error) {
	return []string{"llama3.1"}, nil
}

func setupTestRouter() (http.Handler, *mockStore) {
	ms := newMockStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := NewRouter(ms, &mockOllama{}, "llama3.1", "test-token", logger)
	return router, ms
}

func TestCreateArea(t *testing.T) {
	router, _ := setupTestRouter()

	body := `{"name":"Hill Country","state":"TX","tags":["texas"]}`
	req := httptest.NewRequest("POST", "/api/v1/areas", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var area store.Area
	json.NewDecoder(w.Body).Decode(&area)
	if area.Name != "Hill Country" {
		t.Errorf("expected 'Hill Country', got '%s'", area.Name)
	}
	if area.Tier != store.TierContender {
		t.Errorf("expected default tier contender, got '%s'", area.Tier)
	}
}

func TestCreateAreaMissingName(t *testing.T) {
	router, _ := setupTestRouter()

	body := `{"state":"TX"}`
	req := httptest.NewRequest("POST", "/api/v1/areas", bytes.NewBufferString(body))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestSetScoreEndpoint(t *testing.T) {
	router, ms := setupTestRouter()

	area := &store.Area{Name: "Boise", State: "ID"}
	ms.CreateArea(context.Background(), area)

	body := `{"score":12}`
	req := httptest.NewRequest("PUT", "/api/v1/areas/"+area.ID.String()+"/scores/climate/sunshine", bytes.NewBufferString(body))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := ms.areas[area.ID].Scores.Get("climate", "sunshine").Score; got != 10 {
		t.Errorf("expected clamp to 10, got %d", got)
	}
}

func TestSetScoreUnknownCriterion(t *testing.T) {
	router, ms := setupTestRouter()

	area := &store.Area{Name: "Boise", State: "ID"}
	ms.CreateArea(context.Background(), area)

	body := `{"score":5}`
	req := httptest.NewRequest("PUT", "/api/v1/areas/"+area.ID.String()+"/scores/climate/bogus", bytes.NewBufferString(body))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestWeightsRoundTrip(t *testing.T) {
	router, _ := setupTestRouter()

	body := `{"value":30}`
	req := httptest.NewRequest("PUT", "/api/v1/weights/financial", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp weightsResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Weights["financial"] != 30 {
		t.Errorf("financial = %v, want 30", resp.Weights["financial"])
	}
	// 100 - 18 + 30
	if resp.Total != 112 {
		t.Errorf("total = %v, want 112", resp.Total)
	}
}

func TestProfileLifecycle(t *testing.T) {
	router, ms := setupTestRouter()

	// Create
	req := httptest.NewRequest("POST", "/api/v1/profiles", bytes.NewBufferString(`{"name":"Budget Focus","weights":{"financial":30}}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var created map[string]string
	json.NewDecoder(w.Body).Decode(&created)
	id := created["id"]

	// Rename
	req = httptest.NewRequest("PATCH", "/api/v1/profiles/"+id, bytes.NewBufferString(`{"name":"Value Focus"}`))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("rename: expected 200, got %d", w.Code)
	}
	if ms.profileState.Profiles[0].Name != "Value Focus" {
		t.Errorf("name = %s", ms.profileState.Profiles[0].Name)
	}

	// Deleting the only profile is rejected.
	req = httptest.NewRequest("DELETE", "/api/v1/profiles/"+id, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusConflict {
		t.Errorf("delete last: expected 409, got %d", w.Code)
	}
	if len(ms.profileState.Profiles) != 1 {
		t.Error("last profile should survive the delete attempt")
	}
}

func TestRankingsEndpoint(t *testing.T) {
	router, ms := setupTestRouter()

	low := &store.Area{Name: "Low", State: "OH", Scores: scoring.AreaScores{
		"financial": {"propertyTax": {Score: 3}},
	}}
	high := &store.Area{Name: "High", State: "TX", Scores: scoring.AreaScores{
		"financial": {"propertyTax": {Score: 9}},
	}}
	ms.CreateArea(context.Background(), low)
	ms.CreateArea(context.Background(), high)

	req := httptest.NewRequest("GET", "/api/v1/rankings", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var ranked []ranking.Ranked
	json.NewDecoder(w.Body).Decode(&ranked)
	if len(ranked) != 2 {
		t.Fatalf("expected 2 results, got %d", len(ranked))
	}
	if ranked[0].Area.Name != "High" {
		t.Errorf("top ranked = %s, want High", ranked[0].Area.Name)
	}
}

func TestWizardResultsEndpoint(t *testing.T) {
	router, ms := setupTestRouter()

	area := &store.Area{Name: "Far", State: "MT", Scores: scoring.AreaScores{
		"healthcare": {"mgDistance": {Score: 2}},
	}}
	ms.CreateArea(context.Background(), area)

	body := `{"answers":{"dealbreakers":["mgClose"]}}`
	req := httptest.NewRequest("POST", "/api/v1/wizard/results", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var out struct {
		Results []struct {
			Eliminated         bool     `json:"eliminated"`
			EliminationReasons []string `json:"elimination_reasons"`
		} `json:"results"`
	}
	json.NewDecoder(w.Body).Decode(&out)
	if len(out.Results) != 1 || !out.Results[0].Eliminated {
		t.Fatalf("results = %+v, want one eliminated area", out.Results)
	}
}

func TestDeleteAreaRequiresAdminToken(t *testing.T) {
	router, ms := setupTestRouter()

	area := &store.Area{Name: "Gone", State: "NV"}
	ms.CreateArea(context.Background(), area)

	req := httptest.NewRequest("DELETE", "/api/v1/areas/"+area.ID.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}

	req = httptest.NewRequest("DELETE", "/api/v1/areas/"+area.ID.String(), nil)
	req.Header.Set("Authorization", "Bearer test-token")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if len(ms.areas) != 0 {
		t.Error("area should be deleted")
	}
}

func TestSchemaEndpoint(t *testing.T) {
	router, _ := setupTestRouter()

	req := httptest.NewRequest("GET", "/api/v1/schema/categories", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var cats []struct {
		ID string `json:"id"`
	}
	json.NewDecoder(w.Body).Decode(&cats)
	if len(cats) != 11 {
		t.Errorf("expected 11 categories, got %d", len(cats))
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := NewMetricsRouter()
	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}
