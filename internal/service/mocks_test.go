package service

import (
	"context"
	"time"

	"docquiz/internal/domain"
	"docquiz/internal/dto"
)

type mockUploadRepository struct {
	SaveUploadFunc    func(ctx context.Context, upload *domain.Upload) error
	GetUploadByIDFunc func(ctx context.Context, id string) (*domain.Upload, error)
}

func (m *mockUploadRepository) SaveUpload(ctx context.Context, upload *domain.Upload) error {
	return m.SaveUploadFunc(ctx, upload)
}

func (m *mockUploadRepository) GetUploadByID(ctx context.Context, id string) (*domain.Upload, error) {
	return m.GetUploadByIDFunc(ctx, id)
}

type mockQuizRepository struct {
	SaveQuizFunc             func(ctx context.Context, quiz *domain.Quiz) error
	SaveQuestionsFunc        func(ctx context.Context, questions []*domain.Question) error
	GetQuizByIDFunc          func(ctx context.Context, id string) (*domain.Quiz, error)
	GetQuestionsByQuizIDFunc func(ctx context.Context, quizID string) ([]*domain.Question, error)
}

func (m *mockQuizRepository) SaveQuiz(ctx context.Context, quiz *domain.Quiz) error {
	return m.SaveQuizFunc(ctx, quiz)
}

func (m *mockQuizRepository) SaveQuestions(ctx context.Context, questions []*domain.Question) error {
	return m.SaveQuestionsFunc(ctx, questions)
}

func (m *mockQuizRepository) GetQuizByID(ctx context.Context, id string) (*domain.Quiz, error) {
	return m.GetQuizByIDFunc(ctx, id)
}

func (m *mockQuizRepository) GetQuestionsByQuizID(ctx context.Context, quizID string) ([]*domain.Question, error) {
	return m.GetQuestionsByQuizIDFunc(ctx, quizID)
}

type mockQuizAttemptRepository struct {
	SaveAttemptFunc func(ctx context.Context, attempt *domain.QuizAttempt) error
}

func (m *mockQuizAttemptRepository) SaveAttempt(ctx context.Context, attempt *domain.QuizAttempt) error {
	return m.SaveAttemptFunc(ctx, attempt)
}

type mockQuizGenerationService struct {
	GenerateQuestionsFunc func(ctx context.Context, documentText string, numQuestions int) ([]*domain.GeneratedQuestion, error)
}

func (m *mockQuizGenerationService) GenerateQuestions(ctx context.Context, documentText string, numQuestions int) ([]*domain.GeneratedQuestion, error) {
	return m.GenerateQuestionsFunc(ctx, documentText, numQuestions)
}

type mockTextExtractor struct {
	ExtractTextFunc func(ctx context.Context, path string) (string, error)
}

func (m *mockTextExtractor) ExtractText(ctx context.Context, path string) (string, error) {
	return m.ExtractTextFunc(ctx, path)
}

// mockTransactionManager runs the function directly on the caller's context.
type mockTransactionManager struct{}

func (m *mockTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockQuizCacheService struct {
	GetQuizDetailFunc func(ctx context.Context, quizID string) (*dto.QuizDetailResponse, error)
	PutQuizDetailFunc func(ctx context.Context, quizID string, detail *dto.QuizDetailResponse) error
}

func (m *mockQuizCacheService) GetQuizDetail(ctx context.Context, quizID string) (*dto.QuizDetailResponse, error) {
	return m.GetQuizDetailFunc(ctx, quizID)
}

func (m *mockQuizCacheService) PutQuizDetail(ctx context.Context, quizID string, detail *dto.QuizDetailResponse) error {
	return m.PutQuizDetailFunc(ctx, quizID, detail)
}

type mockCache struct {
	GetFunc    func(ctx context.Context, key string) (string, error)
	SetFunc    func(ctx context.Context, key string, value string, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
	PingFunc   func(ctx context.Context) error
}

func (m *mockCache) Get(ctx context.Context, key string) (string, error) {
	return m.GetFunc(ctx, key)
}

func (m *mockCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return m.SetFunc(ctx, key, value, ttl)
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	return m.DeleteFunc(ctx, key)
}

func (m *mockCache) Ping(ctx context.Context) error {
	return m.PingFunc(ctx)
}
