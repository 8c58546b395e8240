package wizard

import "github.com/homeforge-app/homeforge/internal/scoring"

const (
	maxStrengths = 5
	maxConcerns  = 4
)

// Insights are short generated strength/concern strings for one area,
// derived from fixed threshold rules, capped for display.
type Insights struct {
	Strengths []string `json:"strengths"`
	Concerns  []string `json:"concerns"`
}

type ruleKind int

const (
	strength ruleKind = iota
	concern
)

// check is one threshold against a criterion's raw score. AtMost rules also
// fire on unscored criteria, which read as 0.
type check struct {
	categoryID  string
	criterionID string
	atLeast     int
	atMost      int
}

func atLeast(cat, crit string, n int) check {
	return check{categoryID: cat, criterionID: crit, atLeast: n, atMost: -1}
}

func atMost(cat, crit string, n int) check {
	return check{categoryID: cat, criterionID: crit, atLeast: -1, atMost: n}
}

// insightRule fires when every check holds (and the gating answer, if any,
// was given). Rules are evaluated in order; caps apply per kind.
type insightRule struct {
	kind   ruleKind
	text   string
	checks []check

	// Optional answer gate: the rule fires only when this option was the
	// selected answer to its question.
	questionID string
	optionID   string
}

var insightRules = []insightRule{
	{kind: strength, text: "No state income tax", checks: []check{atLeast("financial", "incomeTax", 10)}},
	{kind: strength, text: "Very low property tax", checks: []check{atLeast("financial", "propertyTax", 8)}},
	{kind: concern, text: "High property tax", checks: []check{atMost("financial", "propertyTax", 4)}},
	{kind: strength, text: "Very affordable land", checks: []check{atLeast("financial", "landCost", 8)}},
	{kind: concern, text: "Expensive land", checks: []check{atMost("financial", "landCost", 4)}},
	{kind: strength, text: "Owner-builder paradise", checks: []check{atLeast("buildingFreedom", "ownerBuilder", 9)}},
	{kind: concern, text: "Strict permitting", checks: []check{atMost("buildingFreedom", "ownerBuilder", 4)}},
	{kind: strength, text: "Excellent MG care nearby", checks: []check{atLeast("healthcare", "mgDistance", 8), atLeast("healthcare", "mgQuality", 8)}},
	{kind: concern, text: "MG specialist is far", checks: []check{atMost("healthcare", "mgDistance", 4)}},
	{kind: strength, text: "Comfortable summers", checks: []check{atLeast("climate", "summerComfort", 8)}},
	{kind: concern, text: "Extreme summer heat", checks: []check{atMost("climate", "summerComfort", 3)}},
	{kind: concern, text: "Harsh winters", checks: []check{atMost("climate", "winterComfort", 3)}},
	{kind: strength, text: "300+ days of sunshine", checks: []check{atLeast("climate", "sunshine", 9)}},
	{kind: strength, text: "Top-rated school district", checks: []check{atLeast("schools", "districtRating", 9)}},
	{kind: concern, text: "Average schools", checks: []check{atMost("schools", "districtRating", 5)}},
	{kind: strength, text: "Easy access for NJ friends", checks: []check{atLeast("community", "friendsFamily", 7)}},
	{kind: concern, text: "Far from NJ friends", checks: []check{atMost("community", "friendsFamily", 3)}, questionID: "social", optionID: "mustDrive"},
	{kind: strength, text: "Fiber internet available", checks: []check{atLeast("infrastructure", "internet", 8)}},
	{kind: concern, text: "Limited internet options", checks: []check{atMost("infrastructure", "internet", 4)}},
}

func generateInsights(scores scoring.AreaScores, answers Answers) Insights {
	ins := Insights{Strengths: []string{}, Concerns: []string{}}

	for _, r := range insightRules {
		if r.questionID != "" && answers.single(r.questionID) != r.optionID {
			continue
		}
		if !r.holds(scores) {
			continue
		}
		switch r.kind {
		case strength:
			if len(ins.Strengths) < maxStrengths {
				ins.Strengths = append(ins.Strengths, r.text)
			}
		case concern:
			if len(ins.Concerns) < maxConcerns {
				ins.Concerns = append(ins.Concerns, r.text)
			}
		}
	}
	return ins
}

func (r insightRule) holds(scores scoring.AreaScores) bool {
	for _, c := range r.checks {
		score := scores.Get(c.categoryID, c.criterionID).Score
		if c.atLeast >= 0 && score < c.atLeast {
			return false
		}
		if c.atMost >= 0 && score > c.atMost {
			return false
		}
	}
	return true
}
