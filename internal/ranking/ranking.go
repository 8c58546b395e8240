// Package ranking orders and compares areas by composite or category score.
package ranking

import (
	"sort"

	"github.com/homeforge-app/homeforge/internal/schema"
	"github.com/homeforge-app/homeforge/internal/scoring"
	"github.com/homeforge-app/homeforge/internal/store"
)

// Ranked pairs an area with its computed scores for one ranking pass.
type Ranked struct {
	Area           *store.Area        `json:"area"`
	Composite      float64            `json:"composite_score"`
	CategoryScores map[string]float64 `json:"category_scores"`
}

// Rank scores every area against the given weight vector and returns them in
// descending composite order. Ties keep input order.
func Rank(areas []*store.Area, weights map[string]float64) []Ranked {
	out := make([]Ranked, 0, len(areas))
	for _, a := range areas {
		out = append(out, Ranked{
			Area:           a,
			Composite:      scoring.CompositeScore(a.Scores, weights),
			CategoryScores: scoring.CategoryScores(a.Scores),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Composite > out[j].Composite
	})
	return out
}

// RankByCategory orders areas by one category's average, descending. Areas
// with nothing scored in that category sink to the bottom.
func RankByCategory(areas []*store.Area, weights map[string]float64, categoryID string) []Ranked {
	out := make([]Ranked, 0, len(areas))
	for _, a := range areas {
		out = append(out, Ranked{
			Area:           a,
			Composite:      scoring.CompositeScore(a.Scores, weights),
			CategoryScores: scoring.CategoryScores(a.Scores),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CategoryScores[categoryID] > out[j].CategoryScores[categoryID]
	})
	return out
}

// ComparisonRow is one category across every compared area. BestIndex is -1
// when no compared area has the category scored.
type ComparisonRow struct {
	CategoryID   string    `json:"category_id"`
	CategoryName string    `json:"category_name"`
	Scores       []float64 `json:"scores"`
	BestIndex    int       `json:"best_index"`
}

// Comparison is a side-by-side view of the selected areas: one row per
// schema category plus the composite line, areas in selection order.
type Comparison struct {
	Areas      []*store.Area `json:"areas"`
	Rows       []ComparisonRow `json:"rows"`
	Composites []float64     `json:"composite_scores"`
}

// Compare builds the side-by-side view for the selected areas.
func Compare(areas []*store.Area, weights map[string]float64) Comparison {
	cmp := Comparison{
		Areas:      areas,
		Composites: make([]float64, len(areas)),
	}
	for i, a := range areas {
		cmp.Composites[i] = scoring.CompositeScore(a.Scores, weights)
	}

	for _, cat := range schema.Categories() {
		row := ComparisonRow{
			CategoryID:   cat.ID,
			CategoryName: cat.Name,
			Scores:       make([]float64, len(areas)),
			BestIndex:    -1,
		}
		var best float64
		for i, a := range areas {
			s := scoring.CategoryAverage(a.Scores, cat.ID)
			row.Scores[i] = s
			if s > best {
				best = s
				row.BestIndex = i
			}
		}
		cmp.Rows = append(cmp.Rows, row)
	}
	return cmp
}
