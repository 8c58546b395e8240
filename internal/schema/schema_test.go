package schema

import "testing"

func TestDefaultWeightsSumToOneHundred(t *testing.T) {
	var sum float64
	for _, w := range DefaultWeights() {
		sum += w
	}
	if sum != 100 {
		t.Errorf("default weights sum to %v, want 100", sum)
	}
}

func TestCategoryLookups(t *testing.T) {
	cat := CategoryByID("healthcare")
	if cat == nil {
		t.Fatal("healthcare category missing")
	}
	if cat.Name != "Healthcare" {
		t.Errorf("Name = %q, want Healthcare", cat.Name)
	}
	if CategoryByID("bogus") != nil {
		t.Error("expected nil for unknown category id")
	}

	if !HasCriterion("healthcare", "mgDistance") {
		t.Error("healthcare.mgDistance should exist")
	}
	if HasCriterion("healthcare", "propertyTax") {
		t.Error("propertyTax does not belong to healthcare")
	}
	if HasCriterion("bogus", "mgDistance") {
		t.Error("unknown category should have no criteria")
	}
}

func TestCriteriaIDsUnique(t *testing.T) {
	catIDs := make(map[string]bool)
	for _, cat := range Categories() {
		if catIDs[cat.ID] {
			t.Errorf("duplicate category id %q", cat.ID)
		}
		catIDs[cat.ID] = true

		critIDs := make(map[string]bool)
		for _, c := range cat.Criteria {
			if critIDs[c.ID] {
				t.Errorf("duplicate criterion id %q in %q", c.ID, cat.ID)
			}
			critIDs[c.ID] = true
			if c.Name == "" || c.Guide == "" {
				t.Errorf("criterion %s.%s missing name or guide", cat.ID, c.ID)
			}
		}
	}
	if len(catIDs) != 11 {
		t.Errorf("got %d categories, want 11", len(catIDs))
	}
}

func TestBandTable(t *testing.T) {
	cases := []struct {
		score  float64
		letter string
		color  string
		label  string
	}{
		{9.5, "A+", "green", "Excellent"},
		{9, "A+", "green", "Excellent"},
		{8.2, "A", "green", "Good"},
		{7.5, "B+", "blue", "Good"},
		{6.1, "B", "blue", "Average"},
		{5, "C+", "amber", "Average"},
		{4.4, "C", "amber", "Below Avg"},
		{3, "D", "red", "Below Avg"},
		{1.2, "F", "red", "Poor"},
		{0, "--", "gray", ""},
		{-1, "--", "gray", ""},
	}

	for _, tc := range cases {
		if got := LetterGrade(tc.score); got != tc.letter {
			t.Errorf("LetterGrade(%v) = %q, want %q", tc.score, got, tc.letter)
		}
		if got := ScoreColor(tc.score); got != tc.color {
			t.Errorf("ScoreColor(%v) = %q, want %q", tc.score, got, tc.color)
		}
		if got := ScoreLabel(tc.score); got != tc.label {
			t.Errorf("ScoreLabel(%v) = %q, want %q", tc.score, got, tc.label)
		}
	}
}
