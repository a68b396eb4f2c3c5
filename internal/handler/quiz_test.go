package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"docquiz/internal/domain"
	"docquiz/internal/dto"
	"docquiz/internal/handler"
	"docquiz/internal/middleware"
	"docquiz/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Manual Mocks ---

type MockQuizService struct {
	GenerateQuizFunc func(ctx context.Context, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error)
	GetQuizFunc      func(ctx context.Context, quizID string) (*dto.QuizDetailResponse, error)
	SubmitQuizFunc   func(ctx context.Context, quizID string, req *dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error)
}

func (m *MockQuizService) GenerateQuiz(ctx context.Context, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error) {
	if m.GenerateQuizFunc != nil {
		return m.GenerateQuizFunc(ctx, req)
	}
	panic("MockQuizService.GenerateQuizFunc not implemented")
}

func (m *MockQuizService) GetQuiz(ctx context.Context, quizID string) (*dto.QuizDetailResponse, error) {
	if m.GetQuizFunc != nil {
		return m.GetQuizFunc(ctx, quizID)
	}
	panic("MockQuizService.GetQuizFunc not implemented")
}

func (m *MockQuizService) SubmitQuiz(ctx context.Context, quizID string, req *dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error) {
	if m.SubmitQuizFunc != nil {
		return m.SubmitQuizFunc(ctx, quizID, req)
	}
	panic("MockQuizService.SubmitQuizFunc not implemented")
}

const validQuizID = "01HGZ8VNRYXS8QKNJV5GRWPWDQ"
const validUploadID = "01HGZ8VNRYXS8QKNJV5GRWPWDR"

func newQuizTestApp(svc *MockQuizService) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})
	h := handler.NewQuizHandler(svc, validation.NewValidator())
	app.Post("/api/quiz/generate", h.Generate)
	app.Get("/api/quiz/:id", h.Get)
	app.Post("/api/quiz/:id/submit", h.Submit)
	return app
}

func decodeEnvelope(t *testing.T, resp io.Reader) dto.Response {
	t.Helper()
	var envelope dto.Response
	require.NoError(t, json.NewDecoder(resp).Decode(&envelope))
	return envelope
}

func TestQuizHandler_Generate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &MockQuizService{
			GenerateQuizFunc: func(ctx context.Context, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error) {
				assert.Equal(t, validUploadID, req.UploadID)
				assert.Equal(t, 5, req.QuestionCount)
				return &dto.GenerateQuizResponse{
					QuizID: validQuizID,
					Title:  "Quiz from notes.pdf",
					Questions: []dto.QuestionResponse{
						{ID: 1, Question: "Q1", Options: []string{"A", "B", "C", "D"}, CorrectAnswer: 0},
					},
				}, nil
			},
		}
		app := newQuizTestApp(svc)

		body, _ := json.Marshal(dto.GenerateQuizRequest{UploadID: validUploadID, QuestionCount: 5})
		req := httptest.NewRequest("POST", "/api/quiz/generate", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		envelope := decodeEnvelope(t, resp.Body)
		assert.True(t, envelope.Success)
		assert.Empty(t, envelope.Error)
	})

	t.Run("Missing uploadId", func(t *testing.T) {
		app := newQuizTestApp(&MockQuizService{})

		body, _ := json.Marshal(dto.GenerateQuizRequest{})
		req := httptest.NewRequest("POST", "/api/quiz/generate", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		envelope := decodeEnvelope(t, resp.Body)
		assert.False(t, envelope.Success)
		assert.Contains(t, envelope.Error, "uploadId")
	})

	t.Run("QuestionCount out of range", func(t *testing.T) {
		app := newQuizTestApp(&MockQuizService{})

		body, _ := json.Marshal(dto.GenerateQuizRequest{UploadID: validUploadID, QuestionCount: 50})
		req := httptest.NewRequest("POST", "/api/quiz/generate", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Upload not found", func(t *testing.T) {
		svc := &MockQuizService{
			GenerateQuizFunc: func(ctx context.Context, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error) {
				return nil, domain.NewUploadNotFoundError(req.UploadID)
			},
		}
		app := newQuizTestApp(svc)

		body, _ := json.Marshal(dto.GenerateQuizRequest{UploadID: validUploadID})
		req := httptest.NewRequest("POST", "/api/quiz/generate", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

		envelope := decodeEnvelope(t, resp.Body)
		assert.False(t, envelope.Success)
	})

	t.Run("LLM failure maps to 500 with safe message", func(t *testing.T) {
		svc := &MockQuizService{
			GenerateQuizFunc: func(ctx context.Context, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error) {
				return nil, domain.NewLLMServiceError(assert.AnError)
			},
		}
		app := newQuizTestApp(svc)

		body, _ := json.Marshal(dto.GenerateQuizRequest{UploadID: validUploadID})
		req := httptest.NewRequest("POST", "/api/quiz/generate", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

		envelope := decodeEnvelope(t, resp.Body)
		assert.Equal(t, "Quiz generation failed. Please try again.", envelope.Error)
	})
}

func TestQuizHandler_Get(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &MockQuizService{
			GetQuizFunc: func(ctx context.Context, quizID string) (*dto.QuizDetailResponse, error) {
				assert.Equal(t, validQuizID, quizID)
				return &dto.QuizDetailResponse{QuizID: quizID, Title: "Quiz from notes.pdf"}, nil
			},
		}
		app := newQuizTestApp(svc)

		resp, err := app.Test(httptest.NewRequest("GET", "/api/quiz/"+validQuizID, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		envelope := decodeEnvelope(t, resp.Body)
		assert.True(t, envelope.Success)
	})

	t.Run("Malformed id", func(t *testing.T) {
		app := newQuizTestApp(&MockQuizService{})

		resp, err := app.Test(httptest.NewRequest("GET", "/api/quiz/not-a-ulid-at-all", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Not found", func(t *testing.T) {
		svc := &MockQuizService{
			GetQuizFunc: func(ctx context.Context, quizID string) (*dto.QuizDetailResponse, error) {
				return nil, domain.NewQuizNotFoundError(quizID)
			},
		}
		app := newQuizTestApp(svc)

		resp, err := app.Test(httptest.NewRequest("GET", "/api/quiz/"+validQuizID, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestQuizHandler_Submit(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &MockQuizService{
			SubmitQuizFunc: func(ctx context.Context, quizID string, req *dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error) {
				assert.Equal(t, validQuizID, quizID)
				require.Len(t, req.Answers, 1)
				return &dto.SubmitQuizResponse{
					Score:          1,
					TotalQuestions: 1,
					Percentage:     100,
					Message:        "Excellent! Outstanding performance!",
				}, nil
			},
		}
		app := newQuizTestApp(svc)

		body, _ := json.Marshal(dto.SubmitQuizRequest{Answers: []dto.AnswerSubmission{{QuestionID: 1, SelectedAnswer: 2}}})
		req := httptest.NewRequest("POST", "/api/quiz/"+validQuizID+"/submit", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		envelope := decodeEnvelope(t, resp.Body)
		assert.True(t, envelope.Success)
	})

	t.Run("Non-array answers rejected", func(t *testing.T) {
		svc := &MockQuizService{
			SubmitQuizFunc: func(ctx context.Context, quizID string, req *dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error) {
				return nil, domain.NewValidationError("Invalid answers format")
			},
		}
		app := newQuizTestApp(svc)

		req := httptest.NewRequest("POST", "/api/quiz/"+validQuizID+"/submit", bytes.NewReader([]byte(`{"answers": null}`)))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		envelope := decodeEnvelope(t, resp.Body)
		assert.Equal(t, "Invalid answers format", envelope.Error)
	})

	t.Run("Malformed JSON body", func(t *testing.T) {
		app := newQuizTestApp(&MockQuizService{})

		req := httptest.NewRequest("POST", "/api/quiz/"+validQuizID+"/submit", bytes.NewReader([]byte(`{answers:`)))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}
