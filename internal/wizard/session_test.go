package wizard

import "testing"

func TestSessionWalkthrough(t *testing.T) {
	s := NewSession()
	if s.Phase() != PhaseAsking || s.Step() != 0 {
		t.Fatalf("new session at phase %s step %d", s.Phase(), s.Step())
	}
	if s.Current().ID != "dealbreakers" {
		t.Fatalf("first question = %s, want dealbreakers", s.Current().ID)
	}

	// Multi-select may be skipped empty.
	if err := s.Next(); err != nil {
		t.Fatalf("skip multi: %v", err)
	}

	// Single-select blocks until answered.
	if s.Current().ID != "budget" {
		t.Fatalf("question = %s, want budget", s.Current().ID)
	}
	if err := s.Next(); err != ErrAnswerRequired {
		t.Fatalf("advance unanswered single: got %v, want ErrAnswerRequired", err)
	}
	if err := s.Select("budgetBalanced"); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if err := s.Next(); err != nil {
		t.Fatalf("advance answered single: %v", err)
	}

	// Walk the rest: answer singles, skip multis.
	for s.Phase() == PhaseAsking {
		q := s.Current()
		if q.Type == TypeSingle {
			if err := s.Select(q.Options[0].ID); err != nil {
				t.Fatalf("Select on %s: %v", q.ID, err)
			}
		}
		if err := s.Next(); err != nil {
			t.Fatalf("Next on %s: %v", q.ID, err)
		}
	}

	if s.Phase() != PhaseShowingResults {
		t.Fatalf("phase = %s, want showing_results", s.Phase())
	}
	if s.Current() != nil {
		t.Error("Current should be nil while showing results")
	}
	if err := s.Select("anything"); err != ErrNotAsking {
		t.Errorf("Select at results: got %v, want ErrNotAsking", err)
	}

	// Back returns to the last question with answers intact.
	s.Back()
	if s.Phase() != PhaseAsking || s.Current().ID != "region" {
		t.Errorf("back from results landed on %v", s.Current())
	}
	if got := s.Answers().single("budget"); got != "budgetBalanced" {
		t.Errorf("budget answer = %q, want budgetBalanced", got)
	}
}

func TestSessionSelectSemantics(t *testing.T) {
	s := NewSession()

	// Multi-select toggles.
	if err := s.Select("noIncomeTax"); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if err := s.Select("mgClose"); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if got := s.Answers()["dealbreakers"]; len(got) != 2 {
		t.Fatalf("selections = %v, want 2", got)
	}
	if err := s.Select("noIncomeTax"); err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	got := s.Answers()["dealbreakers"]
	if len(got) != 1 || got[0] != "mgClose" {
		t.Errorf("selections = %v, want [mgClose]", got)
	}

	if err := s.Select("bogus"); err != ErrUnknownOption {
		t.Errorf("unknown option: got %v, want ErrUnknownOption", err)
	}

	// Single-select replaces.
	if err := s.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	s.Select("budgetFirst")
	s.Select("qualityFirst")
	if got := s.Answers()["budget"]; len(got) != 1 || got[0] != "qualityFirst" {
		t.Errorf("budget = %v, want [qualityFirst]", got)
	}
}

func TestSessionBackAndRestart(t *testing.T) {
	s := NewSession()
	s.Back() // no-op at first question
	if s.Step() != 0 {
		t.Errorf("step = %d, want 0", s.Step())
	}

	s.Select("noIncomeTax")
	s.Next()
	s.Select("budgetFirst")
	s.Next()
	s.Back()
	if s.Current().ID != "budget" {
		t.Errorf("question = %s, want budget", s.Current().ID)
	}

	s.Restart()
	if s.Step() != 0 || s.Phase() != PhaseAsking || len(s.Answers()) != 0 {
		t.Errorf("restart left step=%d phase=%s answers=%v", s.Step(), s.Phase(), s.Answers())
	}
}
