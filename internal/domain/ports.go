package domain

import "context"

// TextExtractor defines the interface for extracting plain text from an
// uploaded document on disk.
type TextExtractor interface {
	ExtractText(ctx context.Context, path string) (string, error)
}

// QuizGenerationService defines the interface for generating multiple-choice
// questions from document text through an LLM.
type QuizGenerationService interface {
	GenerateQuestions(ctx context.Context, documentText string, numQuestions int) ([]*GeneratedQuestion, error)
}

// UploadRepository persists and loads Upload records.
type UploadRepository interface {
	SaveUpload(ctx context.Context, upload *Upload) error
	GetUploadByID(ctx context.Context, id string) (*Upload, error)
}

// QuizRepository persists and loads Quiz and Question records.
type QuizRepository interface {
	SaveQuiz(ctx context.Context, quiz *Quiz) error
	SaveQuestions(ctx context.Context, questions []*Question) error
	GetQuizByID(ctx context.Context, id string) (*Quiz, error)
	GetQuestionsByQuizID(ctx context.Context, quizID string) ([]*Question, error)
}

// QuizAttemptRepository persists submission attempts. Attempts are never
// updated or merged.
type QuizAttemptRepository interface {
	SaveAttempt(ctx context.Context, attempt *QuizAttempt) error
}

// TransactionManager runs a function inside a single database transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
