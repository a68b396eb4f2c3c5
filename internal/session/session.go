// Package session drives quiz play for one loaded quiz. A Session is an
// explicitly scoped object created on quiz load and discarded on restart or
// navigation away; nothing in it is shared across quizzes.
package session

import (
	"docquiz/internal/domain"
	"docquiz/internal/dto"
	"docquiz/internal/util"
)

// State is the lifecycle phase of a Session.
type State int

const (
	// StateInProgress means the session has a current question and accepts
	// selections and submissions.
	StateInProgress State = iota
	// StateCompleted is terminal; the score is fixed until Restart.
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateInProgress:
		return "in_progress"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// noSelection marks the absence of a pending option choice.
const noSelection = -1

// Answer is one recorded answer, keyed in the session by question display id.
type Answer struct {
	QuestionID     int
	SelectedAnswer int
	Correct        bool
}

// Session is the quiz-taking state machine for one quiz. Answers are held in
// a map keyed by question display id, so re-answering a question replaces the
// earlier entry structurally instead of by filtering.
type Session struct {
	quiz         *dto.QuizDetailResponse
	state        State
	currentIndex int
	selected     int
	showFeedback bool
	answers      map[int]Answer
}

// New creates a session for loaded quiz data. A nil quiz or one without
// questions means no quiz is available to play.
func New(quiz *dto.QuizDetailResponse) (*Session, error) {
	if quiz == nil || len(quiz.Questions) == 0 {
		return nil, domain.NewValidationError("No quiz data available. Please upload a document first.")
	}
	return &Session{
		quiz:     quiz,
		state:    StateInProgress,
		selected: noSelection,
		answers:  make(map[int]Answer),
	}, nil
}

// State returns the current lifecycle phase.
func (s *Session) State() State {
	return s.state
}

// CurrentIndex returns the zero-based index of the question being shown.
func (s *Session) CurrentIndex() int {
	return s.currentIndex
}

// CurrentQuestion returns the question at the current index.
func (s *Session) CurrentQuestion() dto.QuestionResponse {
	return s.quiz.Questions[s.currentIndex]
}

// SelectedAnswer returns the pending option choice, or -1 when none is made.
func (s *Session) SelectedAnswer() int {
	return s.selected
}

// ShowFeedback reports whether the current question's feedback is visible.
func (s *Session) ShowFeedback() bool {
	return s.showFeedback
}

// Answers returns a copy of the recorded answers keyed by question display id.
func (s *Session) Answers() map[int]Answer {
	copied := make(map[int]Answer, len(s.answers))
	for id, a := range s.answers {
		copied[id] = a
	}
	return copied
}

// Select records a pending option choice for the current question.
func (s *Session) Select(option int) error {
	if s.state != StateInProgress {
		return domain.NewValidationError("Quiz is already completed")
	}
	if option < 0 || option >= domain.OptionsPerQuestion {
		return domain.NewValidationError("Selected option is out of range")
	}
	s.selected = option
	return nil
}

// Submit evaluates the pending selection against the current question and
// records the answer, replacing any earlier answer for the same question.
// Submitting without a selection is rejected and changes nothing.
func (s *Session) Submit() (bool, error) {
	if s.state != StateInProgress {
		return false, domain.NewValidationError("Quiz is already completed")
	}
	if s.selected == noSelection {
		return false, domain.NewValidationError("Please select an answer")
	}

	question := s.quiz.Questions[s.currentIndex]
	correct := s.selected == question.CorrectAnswer
	s.answers[question.ID] = Answer{
		QuestionID:     question.ID,
		SelectedAnswer: s.selected,
		Correct:        correct,
	}
	s.showFeedback = true
	return correct, nil
}

// Next clears feedback and the pending selection, then advances. Advancing
// from the last question completes the session.
func (s *Session) Next() {
	if s.state != StateInProgress {
		return
	}
	s.showFeedback = false
	s.selected = noSelection
	if s.currentIndex >= len(s.quiz.Questions)-1 {
		s.state = StateCompleted
		return
	}
	s.currentIndex++
}

// Previous moves back one question when possible. If the now-current question
// was already answered, its selection is restored and feedback re-shown.
func (s *Session) Previous() {
	if s.state != StateInProgress || s.currentIndex == 0 {
		return
	}
	s.currentIndex--

	question := s.quiz.Questions[s.currentIndex]
	if answer, ok := s.answers[question.ID]; ok {
		s.selected = answer.SelectedAnswer
		s.showFeedback = true
		return
	}
	s.selected = noSelection
	s.showFeedback = false
}

// Restart re-enters the state machine for the same quiz data: index 0, no
// recorded answers, no feedback.
func (s *Session) Restart() {
	s.state = StateInProgress
	s.currentIndex = 0
	s.selected = noSelection
	s.showFeedback = false
	s.answers = make(map[int]Answer)
}

// Score returns the count of correct recorded answers, the total question
// count, and the rounded percentage. The rounding matches what the server
// reports for a submission of the same answers.
func (s *Session) Score() (correct, total, percent int) {
	for _, answer := range s.answers {
		if answer.Correct {
			correct++
		}
	}
	total = len(s.quiz.Questions)
	return correct, total, util.RoundPercent(correct, total)
}
