package wizard

import "errors"

var (
	// ErrAnswerRequired is returned when advancing past an unanswered
	// single-select question.
	ErrAnswerRequired = errors.New("select an option before continuing")
	// ErrUnknownOption is returned when a selection does not belong to the
	// current question.
	ErrUnknownOption = errors.New("unknown option for current question")
	// ErrNotAsking is returned for selections made outside the asking phase.
	ErrNotAsking = errors.New("wizard is not on a question")
)

type Phase string

const (
	PhaseAsking         Phase = "asking"
	PhaseShowingResults Phase = "showing_results"
)

// Session is one user's pass through the questionnaire. It tracks the
// current step and collected answers; the engine itself stays stateless.
type Session struct {
	step    int
	phase   Phase
	answers Answers
}

func NewSession() *Session {
	return &Session{phase: PhaseAsking, answers: Answers{}}
}

func (s *Session) Phase() Phase { return s.phase }

// Step returns the current question index while asking. Meaningless once
// results are showing.
func (s *Session) Step() int { return s.step }

// Current returns the question being asked, or nil when showing results.
func (s *Session) Current() *Question {
	if s.phase != PhaseAsking {
		return nil
	}
	return &questions[s.step]
}

// Answers returns the collected answers. The engine consumes this shape
// directly via Run.
func (s *Session) Answers() Answers { return s.answers }

// Select records an option for the current question. Single-select replaces
// the previous choice; multi-select toggles the option in and out.
func (s *Session) Select(optionID string) error {
	q := s.Current()
	if q == nil {
		return ErrNotAsking
	}
	if q.option(optionID) == nil {
		return ErrUnknownOption
	}

	if q.Type == TypeSingle {
		s.answers[q.ID] = []string{optionID}
		return nil
	}

	selected := s.answers[q.ID]
	for i, id := range selected {
		if id == optionID {
			s.answers[q.ID] = append(selected[:i], selected[i+1:]...)
			return nil
		}
	}
	s.answers[q.ID] = append(selected, optionID)
	return nil
}

// Next advances to the following question, or to results from the last one.
// Single-select questions require an answer first; multi-select questions
// may be skipped empty.
func (s *Session) Next() error {
	q := s.Current()
	if q == nil {
		return ErrNotAsking
	}
	if q.Type == TypeSingle && len(s.answers[q.ID]) == 0 {
		return ErrAnswerRequired
	}

	if s.step == len(questions)-1 {
		s.phase = PhaseShowingResults
		return nil
	}
	s.step++
	return nil
}

// Back steps to the previous question. From results it returns to the last
// question; at the first question it is a no-op. Answers are kept.
func (s *Session) Back() {
	if s.phase == PhaseShowingResults {
		s.phase = PhaseAsking
		s.step = len(questions) - 1
		return
	}
	if s.step > 0 {
		s.step--
	}
}

// Restart clears every answer and returns to the first question.
func (s *Session) Restart() {
	s.step = 0
	s.phase = PhaseAsking
	s.answers = Answers{}
}
