package profile

import (
	"testing"

	"github.com/google/uuid"

	"github.com/homeforge-app/homeforge/internal/schema"
)

func TestActiveWeightsFallbackChain(t *testing.T) {
	// No profiles, no flat weights: pure defaults.
	m := NewManager(State{})
	got := m.ActiveWeights()
	for _, cat := range schema.Categories() {
		if got[cat.ID] != float64(cat.DefaultWeight) {
			t.Errorf("default weights: %s = %v, want %v", cat.ID, got[cat.ID], cat.DefaultWeight)
		}
	}

	// Flat weights present, no active profile: flat map wins per category.
	m = NewManager(State{Weights: map[string]float64{"financial": 30}})
	got = m.ActiveWeights()
	if got["financial"] != 30 {
		t.Errorf("flat weights: financial = %v, want 30", got["financial"])
	}
	if got["climate"] != 10 {
		t.Errorf("flat weights: climate = %v, want default 10", got["climate"])
	}

	// Active profile present: profile wins over the flat map.
	id := m.CreateProfile("Custom", map[string]float64{"financial": 5})
	got = m.ActiveWeights()
	if got["financial"] != 5 {
		t.Errorf("profile weights: financial = %v, want 5", got["financial"])
	}
	if got["schools"] != 10 {
		t.Errorf("profile weights: schools = %v, want default 10", got["schools"])
	}
	if m.State().ActiveProfileID == nil || *m.State().ActiveProfileID != id {
		t.Error("CreateProfile should activate the new profile")
	}
}

func TestProfileWeightOverride(t *testing.T) {
	m := NewManager(State{})
	m.CreateProfile("Budget", map[string]float64{"financial": 30})

	got := m.ActiveWeights()
	if got["financial"] != 30 {
		t.Errorf("financial = %v, want 30", got["financial"])
	}
	for _, cat := range schema.Categories() {
		if cat.ID == "financial" {
			continue
		}
		if got[cat.ID] != float64(cat.DefaultWeight) {
			t.Errorf("%s = %v, want default %v", cat.ID, got[cat.ID], cat.DefaultWeight)
		}
	}
}

func TestCreateProfileNilWeightsUsesDefaults(t *testing.T) {
	m := NewManager(State{})
	m.CreateProfile("Fresh", nil)

	p := m.ActiveProfile()
	if p == nil {
		t.Fatal("expected an active profile")
	}
	if p.Weights["financial"] != 18 {
		t.Errorf("financial = %v, want 18", p.Weights["financial"])
	}
	if len(p.Weights) != len(schema.Categories()) {
		t.Errorf("got %d weight entries, want %d", len(p.Weights), len(schema.Categories()))
	}
}

func TestSetWeightClampsAndTargetsActiveProfile(t *testing.T) {
	m := NewManager(State{})

	// No active profile: writes land in the flat map.
	m.SetWeight("financial", 150)
	if m.State().Weights["financial"] != 100 {
		t.Errorf("flat financial = %v, want clamp to 100", m.State().Weights["financial"])
	}
	m.SetWeight("climate", -5)
	if m.State().Weights["climate"] != 0 {
		t.Errorf("flat climate = %v, want clamp to 0", m.State().Weights["climate"])
	}

	// Active profile: writes land in the profile, flat map untouched.
	m.CreateProfile("Custom", map[string]float64{})
	m.SetWeight("financial", 42)
	if m.ActiveProfile().Weights["financial"] != 42 {
		t.Errorf("profile financial = %v, want 42", m.ActiveProfile().Weights["financial"])
	}
	if m.State().Weights["financial"] != 100 {
		t.Error("flat weights should not change while a profile is active")
	}
}

func TestDeleteProfile(t *testing.T) {
	m := NewManager(State{})
	first := m.CreateProfile("First", nil)
	second := m.CreateProfile("Second", nil)

	// Deleting the active profile promotes the first remaining one.
	if err := m.DeleteProfile(second); err != nil {
		t.Fatalf("delete active: %v", err)
	}
	if m.State().ActiveProfileID == nil || *m.State().ActiveProfileID != first {
		t.Error("expected first remaining profile to become active")
	}

	// Deleting the last remaining profile is rejected and changes nothing.
	if err := m.DeleteProfile(first); err != ErrLastProfile {
		t.Fatalf("delete last: got %v, want ErrLastProfile", err)
	}
	if len(m.Profiles()) != 1 {
		t.Errorf("got %d profiles, want 1", len(m.Profiles()))
	}

	if err := m.DeleteProfile(uuid.New()); err != ErrNotFound {
		t.Errorf("delete unknown: got %v, want ErrNotFound", err)
	}
}

func TestRenameAndSetActive(t *testing.T) {
	m := NewManager(State{})
	a := m.CreateProfile("A", nil)
	b := m.CreateProfile("B", nil)

	if err := m.SetActive(a); err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	if m.ActiveProfile().ID != a {
		t.Error("expected profile A active")
	}

	if err := m.RenameProfile(b, "B2"); err != nil {
		t.Fatalf("RenameProfile: %v", err)
	}
	found := false
	for _, p := range m.Profiles() {
		if p.ID == b && p.Name == "B2" {
			found = true
		}
	}
	if !found {
		t.Error("rename did not stick")
	}

	if err := m.SetActive(uuid.New()); err != ErrNotFound {
		t.Errorf("SetActive unknown: got %v, want ErrNotFound", err)
	}
}
