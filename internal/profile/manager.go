// Package profile owns the named weight profiles and the active-profile
// selection, and resolves the effective category weight vector.
package profile

import (
	"errors"

	"github.com/google/uuid"

	"github.com/homeforge-app/homeforge/internal/schema"
)

var (
	// ErrNotFound is returned when a profile id does not resolve.
	ErrNotFound = errors.New("weight profile not found")
	// ErrLastProfile is returned when deleting the only remaining profile.
	// Once any profile exists, at least one must remain.
	ErrLastProfile = errors.New("cannot delete the last weight profile")
)

// Profile is a named, user-editable set of category weights. Categories
// absent from Weights fall back to the schema default.
type Profile struct {
	ID      uuid.UUID          `json:"id"`
	Name    string             `json:"name"`
	Weights map[string]float64 `json:"weights"`
}

// State is the persisted shape of the profile subsystem: the profile list,
// the active selection, and the legacy flat weight map used before any
// profile exists.
type State struct {
	Profiles        []Profile          `json:"weight_profiles,omitempty"`
	ActiveProfileID *uuid.UUID         `json:"active_profile_id,omitempty"`
	Weights         map[string]float64 `json:"weights,omitempty"`
}

// Manager owns the profile list and active-id selection. It performs no
// weight normalization: weights are not required to sum to 100 here, that
// is a display-level warning only.
type Manager struct {
	state State
}

// NewManager wraps persisted state. A nil-ish zero State is valid and means
// "use schema defaults".
func NewManager(st State) *Manager {
	return &Manager{state: st}
}

// State returns the current persisted shape.
func (m *Manager) State() State {
	return m.state
}

// Profiles returns the profile list in creation order.
func (m *Manager) Profiles() []Profile {
	return m.state.Profiles
}

// ActiveProfile returns the active profile, or nil when none is selected.
func (m *Manager) ActiveProfile() *Profile {
	if m.state.ActiveProfileID == nil {
		return nil
	}
	return m.find(*m.state.ActiveProfileID)
}

// ActiveWeights resolves the effective weight vector with the three-tier
// fallback: active profile weights merged over defaults, else the flat
// weight map merged over defaults, else pure schema defaults. Per-category:
// a set value wins, an unset category falls back to its default weight.
func (m *Manager) ActiveWeights() map[string]float64 {
	weights := schema.DefaultWeights()

	if p := m.ActiveProfile(); p != nil {
		merge(weights, p.Weights)
		return weights
	}
	merge(weights, m.state.Weights)
	return weights
}

// TotalWeight sums the effective weights. The UI shows "Total: N/100" as a
// non-blocking warning when this is not 100.
func (m *Manager) TotalWeight() float64 {
	var sum float64
	for _, w := range m.ActiveWeights() {
		sum += w
	}
	return sum
}

// CreateProfile appends a new profile and makes it active. A nil
// initialWeights starts from the schema defaults.
func (m *Manager) CreateProfile(name string, initialWeights map[string]float64) uuid.UUID {
	weights := make(map[string]float64, len(initialWeights))
	if initialWeights == nil {
		weights = schema.DefaultWeights()
	} else {
		for k, v := range initialWeights {
			weights[k] = clampWeight(v)
		}
	}

	p := Profile{ID: uuid.New(), Name: name, Weights: weights}
	m.state.Profiles = append(m.state.Profiles, p)
	m.state.ActiveProfileID = &p.ID
	return p.ID
}

// RenameProfile changes a profile's display name.
func (m *Manager) RenameProfile(id uuid.UUID, name string) error {
	p := m.find(id)
	if p == nil {
		return ErrNotFound
	}
	p.Name = name
	return nil
}

// DeleteProfile removes a profile. Deleting the active profile promotes the
// first remaining profile; deleting the last remaining profile is rejected
// so the active id can never point at nothing.
func (m *Manager) DeleteProfile(id uuid.UUID) error {
	idx := -1
	for i := range m.state.Profiles {
		if m.state.Profiles[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}
	if len(m.state.Profiles) == 1 {
		return ErrLastProfile
	}

	wasActive := m.state.ActiveProfileID != nil && *m.state.ActiveProfileID == id
	m.state.Profiles = append(m.state.Profiles[:idx], m.state.Profiles[idx+1:]...)

	if wasActive {
		first := m.state.Profiles[0].ID
		m.state.ActiveProfileID = &first
	}
	return nil
}

// SetActive selects the active profile.
func (m *Manager) SetActive(id uuid.UUID) error {
	if m.find(id) == nil {
		return ErrNotFound
	}
	m.state.ActiveProfileID = &id
	return nil
}

// SetWeight writes one category weight, clamped to [0, 100], into the
// active profile, or into the flat map when no profile is active.
func (m *Manager) SetWeight(categoryID string, value float64) {
	value = clampWeight(value)

	if p := m.ActiveProfile(); p != nil {
		if p.Weights == nil {
			p.Weights = make(map[string]float64)
		}
		p.Weights[categoryID] = value
		return
	}
	if m.state.Weights == nil {
		m.state.Weights = make(map[string]float64)
	}
	m.state.Weights[categoryID] = value
}

func (m *Manager) find(id uuid.UUID) *Profile {
	for i := range m.state.Profiles {
		if m.state.Profiles[i].ID == id {
			return &m.state.Profiles[i]
		}
	}
	return nil
}

func merge(dst, src map[string]float64) {
	for k, v := range src {
		dst[k] = v
	}
}

func clampWeight(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
