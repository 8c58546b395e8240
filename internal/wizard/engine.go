package wizard

import (
	"sort"

	"github.com/homeforge-app/homeforge/internal/schema"
	"github.com/homeforge-app/homeforge/internal/scoring"
	"github.com/homeforge-app/homeforge/internal/store"
)

// Answers maps question id to selected option ids. Single-select questions
// hold at most one entry; multi-select questions hold zero or more.
type Answers map[string][]string

// single returns the lone selection for a single-select question, or "".
func (a Answers) single(questionID string) string {
	sel := a[questionID]
	if len(sel) == 0 {
		return ""
	}
	return sel[0]
}

// Result is one area's outcome for a wizard run. Eliminated areas still
// carry a composite score so they can be shown greyed out below the cut.
type Result struct {
	Area               *store.Area `json:"area"`
	CompositeScore     float64     `json:"composite_score"`
	Eliminated         bool        `json:"eliminated"`
	EliminationReasons []string    `json:"elimination_reasons,omitempty"`
	Insights           Insights    `json:"insights"`
}

// Output is a full wizard run: ranked results plus the normalized weight
// vector the run used, for display alongside the results.
type Output struct {
	Results []Result           `json:"results"`
	Weights map[string]float64 `json:"weights"`
}

// Run evaluates the questionnaire answers against every area. The pipeline
// is: multiply weights by single-select modifiers, normalize to 100,
// eliminate areas failing any selected filter, accumulate multi-select
// bonuses, recompute bonus-adjusted composites, generate insights, and sort
// non-eliminated areas first by descending score.
func Run(areas []*store.Area, baseWeights map[string]float64, answers Answers) Output {
	weights := adjustWeights(baseWeights, answers)
	normalizeWeights(weights)
	bonuses := accumulateBonuses(answers)

	results := make([]Result, 0, len(areas))
	for _, a := range areas {
		eliminated, reasons := eliminate(a, answers)
		results = append(results, Result{
			Area:               a,
			CompositeScore:     scoring.CompositeScoreWithBonuses(a.Scores, weights, bonuses),
			Eliminated:         eliminated,
			EliminationReasons: reasons,
			Insights:           generateInsights(a.Scores, answers),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Eliminated != results[j].Eliminated {
			return !results[i].Eliminated
		}
		return results[i].CompositeScore > results[j].CompositeScore
	})

	return Output{Results: results, Weights: weights}
}

// adjustWeights composes the single-select multipliers onto a copy of the
// base vector. Multi-select answers never modify weights. Categories missing
// from the base vector start at their schema default.
func adjustWeights(base map[string]float64, answers Answers) map[string]float64 {
	weights := schema.DefaultWeights()
	for k, v := range base {
		weights[k] = v
	}

	for _, q := range questions {
		if q.Type != TypeSingle {
			continue
		}
		opt := q.option(answers.single(q.ID))
		if opt == nil {
			continue
		}
		for catID, mult := range opt.WeightMods {
			weights[catID] *= mult
		}
	}
	return weights
}

// normalizeWeights rescales in place so the weights sum to exactly 100. A
// degenerate all-zero vector is left unmodified.
func normalizeWeights(weights map[string]float64) {
	var total float64
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return
	}
	for k := range weights {
		weights[k] = weights[k] / total * 100
	}
}

// accumulateBonuses sums criterion bonuses across every selected
// multi-select option, stacking options that target the same criterion.
func accumulateBonuses(answers Answers) scoring.Bonuses {
	bonuses := scoring.Bonuses{}
	for _, q := range questions {
		if q.Type != TypeMulti {
			continue
		}
		for _, optID := range answers[q.ID] {
			opt := q.option(optID)
			if opt == nil {
				continue
			}
			for catID, criteria := range opt.ScoreBonuses {
				if bonuses[catID] == nil {
					bonuses[catID] = make(map[string]int)
				}
				for critID, b := range criteria {
					bonuses[catID][critID] += b
				}
			}
		}
	}
	return bonuses
}

// eliminate checks every selected filter in question order and collects a
// human-readable reason per failed check.
func eliminate(area *store.Area, answers Answers) (bool, []string) {
	var reasons []string

	for _, q := range questions {
		switch q.Type {
		case TypeMulti:
			// Deal-breaker filters: every selected option with a filter
			// must pass.
			for _, optID := range answers[q.ID] {
				opt := q.option(optID)
				if opt == nil || opt.Filter == nil {
					continue
				}
				if !passes(area.Scores, opt.Filter) {
					reasons = append(reasons, opt.Label)
				}
			}
			// Tag filters: if any tag-carrying option is selected, the
			// area's tags must intersect the selected set.
			if tagReason := checkTags(area, q, answers[q.ID]); tagReason != "" {
				reasons = append(reasons, tagReason)
			}
		case TypeSingle:
			opt := q.option(answers.single(q.ID))
			if opt == nil || opt.ScoreFilter == nil {
				continue
			}
			if !passes(area.Scores, opt.ScoreFilter) {
				reasons = append(reasons, q.Title+": "+opt.Label)
			}
		}
	}

	return len(reasons) > 0, reasons
}

func checkTags(area *store.Area, q Question, selected []string) string {
	var wanted []string
	for _, optID := range selected {
		opt := q.option(optID)
		if opt != nil && opt.TagFilter != "" {
			wanted = append(wanted, opt.TagFilter)
		}
	}
	if len(wanted) == 0 {
		return ""
	}
	for _, tag := range area.Tags {
		for _, w := range wanted {
			if tag == w {
				return ""
			}
		}
	}
	return "Region preference"
}

func passes(scores scoring.AreaScores, cond *Condition) bool {
	return scores.Get(cond.CategoryID, cond.CriterionID).Score >= cond.Min
}
