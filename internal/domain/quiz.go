package domain

import (
	"fmt"
	"time"
)

// OptionsPerQuestion is the fixed number of answer options every question carries.
const OptionsPerQuestion = 4

// Quiz is a persisted set of questions generated from one Upload.
type Quiz struct {
	ID             string
	UploadID       string
	Title          string
	TotalQuestions int
	CreatedAt      time.Time
	Questions      []*Question
}

// Question is one multiple-choice item belonging to a Quiz.
// Order is a dense, 1-based display sequence within the quiz.
type Question struct {
	ID            string
	QuizID        string
	Text          string
	Options       []string
	CorrectAnswer int
	Explanation   string
	DiveDeeper    string
	Order         int
}

// Validate checks the structural invariants of a question.
func (q *Question) Validate() error {
	if q.Text == "" {
		return NewValidationError("question text must not be empty")
	}
	if len(q.Options) != OptionsPerQuestion {
		return NewValidationError(fmt.Sprintf("question must have exactly %d options, got %d", OptionsPerQuestion, len(q.Options)))
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= OptionsPerQuestion {
		return NewValidationError(fmt.Sprintf("correct answer index must be in [0,%d], got %d", OptionsPerQuestion-1, q.CorrectAnswer))
	}
	return nil
}

// SubmittedAnswer is one entry of a submission payload. QuestionID is the
// 1-based display id, not a database identifier.
type SubmittedAnswer struct {
	QuestionID     int `json:"questionId"`
	SelectedAnswer int `json:"selectedAnswer"`
}

// QuizAttempt is one persisted record of a user's submitted answers and
// resulting score. Attempts are append-only.
type QuizAttempt struct {
	ID        string
	QuizID    string
	Answers   []SubmittedAnswer
	Score     int
	CreatedAt time.Time
}

// GeneratedQuestion is one multiple-choice item as returned by the LLM.
// The json tags match the format the prompt instructs the model to emit.
type GeneratedQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
	DiveDeeper    string   `json:"diveDeeper"`
}

// Validate checks that the LLM produced a structurally usable question.
func (g *GeneratedQuestion) Validate() error {
	if g.Question == "" {
		return NewValidationError("generated question text is empty")
	}
	if len(g.Options) != OptionsPerQuestion {
		return NewValidationError(fmt.Sprintf("generated question must have exactly %d options, got %d", OptionsPerQuestion, len(g.Options)))
	}
	if g.CorrectAnswer < 0 || g.CorrectAnswer >= OptionsPerQuestion {
		return NewValidationError(fmt.Sprintf("generated correct answer index out of range: %d", g.CorrectAnswer))
	}
	return nil
}
