package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"docquiz/internal/domain"
	"docquiz/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// QuizDatabaseAdapter implements domain.QuizRepository and
// domain.QuizAttemptRepository using sqlx.
type QuizDatabaseAdapter struct {
	db *sqlx.DB
}

func NewQuizDatabaseAdapter(db *sqlx.DB) *QuizDatabaseAdapter {
	return &QuizDatabaseAdapter{db: db}
}

var _ domain.QuizRepository = (*QuizDatabaseAdapter)(nil)
var _ domain.QuizAttemptRepository = (*QuizDatabaseAdapter)(nil)

// SaveQuiz implements domain.QuizRepository.
func (a *QuizDatabaseAdapter) SaveQuiz(ctx context.Context, quiz *domain.Quiz) error {
	if quiz == nil {
		return fmt.Errorf("cannot save nil quiz")
	}

	query := `INSERT INTO quizzes (
		id, upload_id, title, total_questions, created_at
	) VALUES (
		:1, :2, :3, :4, :5
	)`

	createdAt := quiz.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
		quiz.CreatedAt = createdAt
	}

	exec := GetExecutor(ctx, a.db)
	_, err := exec.ExecContext(ctx, query,
		quiz.ID,
		quiz.UploadID,
		quiz.Title,
		quiz.TotalQuestions,
		createdAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save quiz: %w", err)
	}
	return nil
}

// SaveQuestions implements domain.QuizRepository. Questions are inserted in
// the order given; callers run this inside a transaction together with
// SaveQuiz so a quiz never exists without its full question set.
func (a *QuizDatabaseAdapter) SaveQuestions(ctx context.Context, questions []*domain.Question) error {
	query := `INSERT INTO questions (
		id, quiz_id, question_text, options, correct_answer, explanation, dive_deeper, question_order
	) VALUES (
		:1, :2, :3, :4, :5, :6, :7, :8
	)`

	exec := GetExecutor(ctx, a.db)
	for _, q := range questions {
		model := toModelQuestion(q)
		if _, err := exec.ExecContext(ctx, query,
			model.ID,
			model.QuizID,
			model.QuestionText,
			model.Options,
			model.CorrectAnswer,
			model.Explanation,
			model.DiveDeeper,
			model.QuestionOrder,
		); err != nil {
			return fmt.Errorf("failed to save question order %d: %w", q.Order, err)
		}
	}
	return nil
}

// GetQuizByID implements domain.QuizRepository. Returns (nil, nil) when no
// row matches. Questions are not loaded; use GetQuestionsByQuizID.
func (a *QuizDatabaseAdapter) GetQuizByID(ctx context.Context, id string) (*domain.Quiz, error) {
	var model models.Quiz
	query := `SELECT
		id "id",
		upload_id "upload_id",
		title "title",
		total_questions "total_questions",
		created_at "created_at"
	FROM quizzes
	WHERE id = :1`

	exec := GetExecutor(ctx, a.db)
	err := exec.GetContext(ctx, &model, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz by ID %s: %w", id, err)
	}

	return &domain.Quiz{
		ID:             model.ID,
		UploadID:       model.UploadID,
		Title:          model.Title,
		TotalQuestions: model.TotalQuestions,
		CreatedAt:      model.CreatedAt,
	}, nil
}

// GetQuestionsByQuizID implements domain.QuizRepository. Questions come back
// ordered by their stored display sequence.
func (a *QuizDatabaseAdapter) GetQuestionsByQuizID(ctx context.Context, quizID string) ([]*domain.Question, error) {
	var modelQuestions []models.Question
	query := `SELECT
		id "id",
		quiz_id "quiz_id",
		question_text "question_text",
		options "options",
		correct_answer "correct_answer",
		explanation "explanation",
		dive_deeper "dive_deeper",
		question_order "question_order"
	FROM questions
	WHERE quiz_id = :1
	ORDER BY question_order ASC`

	exec := GetExecutor(ctx, a.db)
	if err := exec.SelectContext(ctx, &modelQuestions, query, quizID); err != nil {
		return nil, fmt.Errorf("failed to get questions for quiz %s: %w", quizID, err)
	}

	questions := make([]*domain.Question, 0, len(modelQuestions))
	for i := range modelQuestions {
		questions = append(questions, toDomainQuestion(&modelQuestions[i]))
	}
	return questions, nil
}

// SaveAttempt implements domain.QuizAttemptRepository. The raw submitted
// answer array is stored as JSON alongside the computed score.
func (a *QuizDatabaseAdapter) SaveAttempt(ctx context.Context, attempt *domain.QuizAttempt) error {
	if attempt == nil {
		return fmt.Errorf("cannot save nil attempt")
	}

	answersJSON, err := json.Marshal(attempt.Answers)
	if err != nil {
		return fmt.Errorf("failed to marshal attempt answers: %w", err)
	}

	createdAt := attempt.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
		attempt.CreatedAt = createdAt
	}

	query := `INSERT INTO quiz_attempts (
		id, quiz_id, answers, score, created_at
	) VALUES (
		:1, :2, :3, :4, :5
	)`

	exec := GetExecutor(ctx, a.db)
	_, err = exec.ExecContext(ctx, query,
		attempt.ID,
		attempt.QuizID,
		string(answersJSON),
		attempt.Score,
		createdAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save quiz attempt: %w", err)
	}
	return nil
}

func toModelQuestion(q *domain.Question) *models.Question {
	explanation := sql.NullString{}
	if q.Explanation != "" {
		explanation = sql.NullString{String: q.Explanation, Valid: true}
	}
	diveDeeper := sql.NullString{}
	if q.DiveDeeper != "" {
		diveDeeper = sql.NullString{String: q.DiveDeeper, Valid: true}
	}
	return &models.Question{
		ID:            q.ID,
		QuizID:        q.QuizID,
		QuestionText:  q.Text,
		Options:       models.StringSlice(q.Options),
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   explanation,
		DiveDeeper:    diveDeeper,
		QuestionOrder: q.Order,
	}
}

func toDomainQuestion(m *models.Question) *domain.Question {
	return &domain.Question{
		ID:            m.ID,
		QuizID:        m.QuizID,
		Text:          m.QuestionText,
		Options:       []string(m.Options),
		CorrectAnswer: m.CorrectAnswer,
		Explanation:   m.Explanation.String,
		DiveDeeper:    m.DiveDeeper.String,
		Order:         m.QuestionOrder,
	}
}
