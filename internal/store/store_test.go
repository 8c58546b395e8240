package store

import (
	"testing"
)

func TestAreaTierValues(t *testing.T) {
	tiers := []AreaTier{TierTop, TierContender, TierBackup, TierRuledOut}
	expected := []string{"top", "contender", "backup", "ruled_out"}
	for i, tier := range tiers {
		if string(tier) != expected[i] {
			t.Errorf("expected %s, got %s", expected[i], tier)
		}
	}
}

func TestAreaFilterDefaults(t *testing.T) {
	f := AreaFilter{}
	if f.Limit != 0 {
		t.Errorf("expected 0 default limit, got %d", f.Limit)
	}
	if f.Tier != nil {
		t.Error("expected nil tier filter")
	}
	if f.State != "" {
		t.Error("expected empty state filter")
	}
}

func TestRequirementPriorityValues(t *testing.T) {
	priorities := []RequirementPriority{PriorityMustHave, PriorityNiceToHave, PriorityFuture}
	expected := []string{"must_have", "nice_to_have", "future"}
	for i, p := range priorities {
		if string(p) != expected[i] {
			t.Errorf("expected %s, got %s", expected[i], p)
		}
	}
}

func TestMilestoneStatusValues(t *testing.T) {
	statuses := []MilestoneStatus{MilestoneNotStarted, MilestoneInProgress, MilestoneDone}
	expected := []string{"not_started", "in_progress", "done"}
	for i, s := range statuses {
		if string(s) != expected[i] {
			t.Errorf("expected %s, got %s", expected[i], s)
		}
	}
}
