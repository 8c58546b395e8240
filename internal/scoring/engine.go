package scoring

import (
	"github.com/homeforge-app/homeforge/internal/schema"
)

// Bonuses holds additive score bonuses keyed by category id, then criterion
// id. Bonuses lift already-scored criteria only; they never make an unscored
// criterion count.
type Bonuses map[string]map[string]int

// CategoryAverage returns the arithmetic mean of the category's criteria
// that are present and scored above zero, or 0 when none qualify. Unscored
// criteria are excluded from both numerator and denominator.
func CategoryAverage(scores AreaScores, categoryID string) float64 {
	return categoryAverage(scores, categoryID, nil)
}

// CategoryScores returns the per-category averages for every category in the
// schema. Categories with no qualifying criteria report 0.
func CategoryScores(scores AreaScores) map[string]float64 {
	out := make(map[string]float64, len(schema.Categories()))
	for _, cat := range schema.Categories() {
		out[cat.ID] = categoryAverage(scores, cat.ID, nil)
	}
	return out
}

// CompositeScore reduces (scores, weights) to a single weighted average in
// [0, 10]. Categories with no qualifying criteria contribute neither to the
// weighted sum nor to the total weight — they are skipped entirely, not
// counted as zero. An area with nothing scored at all returns 0.
//
// Weight keys missing from the map fall back to the category's default
// weight, mirroring the weight-profile resolution rules.
func CompositeScore(scores AreaScores, weights map[string]float64) float64 {
	return compositeScore(scores, weights, nil)
}

// CompositeScoreWithBonuses is the wizard-path variant of CompositeScore:
// each criterion's raw score is lifted by its accumulated bonus and clamped
// to 10 before averaging. A raw score of 0 stays excluded regardless of any
// bonus.
func CompositeScoreWithBonuses(scores AreaScores, weights map[string]float64, bonuses Bonuses) float64 {
	return compositeScore(scores, weights, bonuses)
}

func compositeScore(scores AreaScores, weights map[string]float64, bonuses Bonuses) float64 {
	var weightedSum, totalWeight float64

	for _, cat := range schema.Categories() {
		avg := categoryAverage(scores, cat.ID, bonuses)
		if avg <= 0 {
			continue
		}
		w := weightFor(weights, cat)
		weightedSum += avg * w
		totalWeight += w
	}

	if totalWeight <= 0 {
		return 0
	}
	return weightedSum / totalWeight
}

func categoryAverage(scores AreaScores, categoryID string, bonuses Bonuses) float64 {
	cat := schema.CategoryByID(categoryID)
	if cat == nil {
		return 0
	}
	catScores, ok := scores[categoryID]
	if !ok {
		return 0
	}

	var sum float64
	var n int
	for _, c := range cat.Criteria {
		raw := catScores[c.ID].Score
		if raw <= 0 {
			continue
		}
		v := raw + bonuses[categoryID][c.ID]
		if v > 10 {
			v = 10
		}
		sum += float64(v)
		n++
	}

	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func weightFor(weights map[string]float64, cat schema.Category) float64 {
	if w, ok := weights[cat.ID]; ok {
		return w
	}
	return float64(cat.DefaultWeight)
}
