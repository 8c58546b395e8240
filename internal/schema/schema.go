// Package schema is the single source of truth for scorecard categories,
// criteria, and default weights. It is static data: changes here are a
// deployment-time edit, not a runtime operation.
package schema

// Criterion is a single scored dimension within a category. The guide is a
// human-readable rubric mapping score bands to qualitative meaning; it is
// never machine-parsed.
type Criterion struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Guide       string `json:"guide"`
}

// Category groups related criteria under a default weight. Default weights
// across all categories are intended to sum to 100, but nothing at runtime
// enforces that; a mismatched sum is a display warning, not an error.
type Category struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	DefaultWeight int         `json:"default_weight"`
	Criteria      []Criterion `json:"criteria"`
}

// Categories returns every category in display order.
func Categories() []Category {
	return categories
}

// CategoryByID resolves a category id, or nil if unknown.
func CategoryByID(id string) *Category {
	for i := range categories {
		if categories[i].ID == id {
			return &categories[i]
		}
	}
	return nil
}

// CriteriaFor returns the criteria of one category, or nil if the category
// id does not resolve.
func CriteriaFor(categoryID string) []Criterion {
	if cat := CategoryByID(categoryID); cat != nil {
		return cat.Criteria
	}
	return nil
}

// HasCriterion reports whether (categoryID, criterionID) resolves in the
// schema. Every criterion belongs to exactly one category, so this pair is
// the unique key for score entries.
func HasCriterion(categoryID, criterionID string) bool {
	cat := CategoryByID(categoryID)
	if cat == nil {
		return false
	}
	for _, c := range cat.Criteria {
		if c.ID == criterionID {
			return true
		}
	}
	return false
}

// DefaultWeights returns a fresh categoryID -> default weight map.
func DefaultWeights() map[string]float64 {
	w := make(map[string]float64, len(categories))
	for _, cat := range categories {
		w[cat.ID] = float64(cat.DefaultWeight)
	}
	return w
}
