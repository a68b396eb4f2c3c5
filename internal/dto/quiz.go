package dto

import "time"

// GenerateQuizRequest asks for a quiz to be generated from an upload.
// QuestionCount is optional; it defaults to 5 when zero.
type GenerateQuizRequest struct {
	UploadID      string `json:"uploadId"`
	QuestionCount int    `json:"questionCount,omitempty"`
}

// QuestionResponse is the display projection of one question. ID is the
// 1-based display position within the quiz, not a database identifier.
type QuestionResponse struct {
	ID            int      `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
	DiveDeeper    string   `json:"diveDeeper"`
}

// GenerateQuizResponse returns the freshly created quiz.
type GenerateQuizResponse struct {
	QuizID    string             `json:"quizId"`
	Title     string             `json:"title"`
	Questions []QuestionResponse `json:"questions"`
}

// QuizDetailResponse returns a stored quiz for display. The retrieval
// endpoint is open-book: correct answers and explanations are included.
type QuizDetailResponse struct {
	QuizID         string             `json:"quizId"`
	Title          string             `json:"title"`
	Questions      []QuestionResponse `json:"questions"`
	SourceDocument string             `json:"sourceDocument"`
	CreatedAt      time.Time          `json:"createdAt"`
}

// AnswerSubmission is one submitted answer, keyed by 1-based display id.
type AnswerSubmission struct {
	QuestionID     int `json:"questionId"`
	SelectedAnswer int `json:"selectedAnswer"`
}

// SubmitQuizRequest carries all answers of one attempt.
type SubmitQuizRequest struct {
	Answers []AnswerSubmission `json:"answers"`
}

// AnswerResult is the per-question outcome of a submission. CorrectAnswer is
// -1 when the submitted display id did not map to a question.
type AnswerResult struct {
	QuestionID    int    `json:"questionId"`
	Correct       bool   `json:"correct"`
	Explanation   string `json:"explanation"`
	DiveDeeper    string `json:"diveDeeper"`
	UserAnswer    int    `json:"userAnswer"`
	CorrectAnswer int    `json:"correctAnswer"`
}

// SubmitQuizResponse is the scored result of an attempt.
type SubmitQuizResponse struct {
	Score          int            `json:"score"`
	TotalQuestions int            `json:"totalQuestions"`
	Percentage     int            `json:"percentage"`
	Results        []AnswerResult `json:"results"`
	Message        string         `json:"message"`
}
