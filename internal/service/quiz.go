package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"docquiz/internal/domain"
	"docquiz/internal/dto"
	"docquiz/internal/logger"
	"docquiz/internal/util"

	"go.uber.org/zap"
)

const (
	// DefaultQuestionCount is used when the request does not ask for a
	// specific number of questions.
	DefaultQuestionCount = 5

	// maxPromptChars bounds how much document text is sent to the LLM.
	// Longer documents are truncated, not summarized or chunked.
	maxPromptChars = 4000
)

// QuizService defines the quiz lifecycle operations.
type QuizService interface {
	GenerateQuiz(ctx context.Context, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error)
	GetQuiz(ctx context.Context, quizID string) (*dto.QuizDetailResponse, error)
	SubmitQuiz(ctx context.Context, quizID string, req *dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error)
}

type quizService struct {
	uploads   domain.UploadRepository
	quizzes   domain.QuizRepository
	attempts  domain.QuizAttemptRepository
	generator domain.QuizGenerationService
	txManager domain.TransactionManager
	quizCache QuizCacheService
}

func NewQuizService(
	uploads domain.UploadRepository,
	quizzes domain.QuizRepository,
	attempts domain.QuizAttemptRepository,
	generator domain.QuizGenerationService,
	txManager domain.TransactionManager,
	quizCache QuizCacheService,
) QuizService {
	return &quizService{
		uploads:   uploads,
		quizzes:   quizzes,
		attempts:  attempts,
		generator: generator,
		txManager: txManager,
		quizCache: quizCache,
	}
}

// GenerateQuiz implements QuizService. The quiz row and its questions are
// created inside one transaction so a quiz never exists without its full
// question set.
func (s *quizService) GenerateQuiz(ctx context.Context, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error) {
	upload, err := s.uploads.GetUploadByID(ctx, req.UploadID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to look up upload", err)
	}
	if upload == nil || strings.TrimSpace(upload.ExtractedText) == "" {
		return nil, domain.NewUploadNotFoundError(req.UploadID)
	}

	questionCount := req.QuestionCount
	if questionCount == 0 {
		questionCount = DefaultQuestionCount
	}

	documentText := truncateAtRuneBoundary(upload.ExtractedText, maxPromptChars)

	generated, err := s.generator.GenerateQuestions(ctx, documentText, questionCount)
	if err != nil {
		return nil, err
	}

	quiz := &domain.Quiz{
		ID:             util.NewULID(),
		UploadID:       upload.ID,
		Title:          fmt.Sprintf("Quiz from %s", upload.OriginalName),
		TotalQuestions: len(generated),
		CreatedAt:      time.Now(),
	}

	questions := make([]*domain.Question, 0, len(generated))
	for i, g := range generated {
		questions = append(questions, &domain.Question{
			ID:            util.NewULID(),
			QuizID:        quiz.ID,
			Text:          g.Question,
			Options:       g.Options,
			CorrectAnswer: g.CorrectAnswer,
			Explanation:   g.Explanation,
			DiveDeeper:    g.DiveDeeper,
			Order:         i + 1,
		})
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.quizzes.SaveQuiz(txCtx, quiz); err != nil {
			return err
		}
		return s.quizzes.SaveQuestions(txCtx, questions)
	})
	if err != nil {
		return nil, domain.NewInternalError("Failed to persist generated quiz", err)
	}

	logger.Get().Info("Quiz generated",
		zap.String("quiz_id", quiz.ID),
		zap.String("upload_id", upload.ID),
		zap.Int("questions", len(questions)))

	return &dto.GenerateQuizResponse{
		QuizID:    quiz.ID,
		Title:     quiz.Title,
		Questions: toQuestionResponses(questions),
	}, nil
}

// GetQuiz implements QuizService. The display projection is served from the
// cache when possible; quizzes are immutable, so cached entries never go stale.
func (s *quizService) GetQuiz(ctx context.Context, quizID string) (*dto.QuizDetailResponse, error) {
	if s.quizCache != nil {
		cached, err := s.quizCache.GetQuizDetail(ctx, quizID)
		if err != nil {
			logger.Get().Warn("Quiz cache lookup failed",
				zap.String("quiz_id", quizID),
				zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	quiz, err := s.quizzes.GetQuizByID(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to fetch quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(quizID)
	}

	questions, err := s.quizzes.GetQuestionsByQuizID(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to fetch quiz questions", err)
	}

	upload, err := s.uploads.GetUploadByID(ctx, quiz.UploadID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to fetch source document", err)
	}

	sourceDocument := ""
	if upload != nil {
		sourceDocument = upload.OriginalName
	}

	detail := &dto.QuizDetailResponse{
		QuizID:         quiz.ID,
		Title:          quiz.Title,
		Questions:      toQuestionResponses(questions),
		SourceDocument: sourceDocument,
		CreatedAt:      quiz.CreatedAt,
	}

	if s.quizCache != nil {
		if err := s.quizCache.PutQuizDetail(ctx, quizID, detail); err != nil {
			logger.Get().Warn("Failed to cache quiz detail",
				zap.String("quiz_id", quizID),
				zap.Error(err))
		}
	}

	return detail, nil
}

// SubmitQuiz implements QuizService. Malformed individual answers are scored
// as incorrect with a sentinel correctAnswer of -1 instead of failing the
// whole request. The attempt stores the raw submitted answers plus the final
// score; per-question results are recomputable on demand.
func (s *quizService) SubmitQuiz(ctx context.Context, quizID string, req *dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error) {
	if req == nil || req.Answers == nil {
		return nil, domain.NewValidationError("Invalid answers format")
	}

	quiz, err := s.quizzes.GetQuizByID(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to fetch quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(quizID)
	}

	questions, err := s.quizzes.GetQuestionsByQuizID(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to fetch quiz questions", err)
	}

	score := 0
	results := make([]dto.AnswerResult, 0, len(req.Answers))
	submitted := make([]domain.SubmittedAnswer, 0, len(req.Answers))

	for _, answer := range req.Answers {
		submitted = append(submitted, domain.SubmittedAnswer{
			QuestionID:     answer.QuestionID,
			SelectedAnswer: answer.SelectedAnswer,
		})

		questionIndex := answer.QuestionID - 1
		if questionIndex < 0 || questionIndex >= len(questions) {
			results = append(results, dto.AnswerResult{
				QuestionID:    answer.QuestionID,
				Correct:       false,
				Explanation:   "Invalid question",
				DiveDeeper:    "",
				UserAnswer:    answer.SelectedAnswer,
				CorrectAnswer: -1,
			})
			continue
		}

		question := questions[questionIndex]
		correct := question.CorrectAnswer == answer.SelectedAnswer
		if correct {
			score++
		}

		results = append(results, dto.AnswerResult{
			QuestionID:    answer.QuestionID,
			Correct:       correct,
			Explanation:   question.Explanation,
			DiveDeeper:    question.DiveDeeper,
			UserAnswer:    answer.SelectedAnswer,
			CorrectAnswer: question.CorrectAnswer,
		})
	}

	attempt := &domain.QuizAttempt{
		ID:        util.NewULID(),
		QuizID:    quiz.ID,
		Answers:   submitted,
		Score:     score,
		CreatedAt: time.Now(),
	}
	if err := s.attempts.SaveAttempt(ctx, attempt); err != nil {
		return nil, domain.NewInternalError("Failed to submit quiz", err)
	}

	totalQuestions := len(questions)
	percentage := util.RoundPercent(score, totalQuestions)

	logger.Get().Info("Quiz attempt recorded",
		zap.String("quiz_id", quiz.ID),
		zap.String("attempt_id", attempt.ID),
		zap.Int("score", score),
		zap.Int("total", totalQuestions))

	return &dto.SubmitQuizResponse{
		Score:          score,
		TotalQuestions: totalQuestions,
		Percentage:     percentage,
		Results:        results,
		Message:        scoreMessage(percentage),
	}, nil
}

// truncateAtRuneBoundary cuts s to at most max bytes without splitting a
// multi-byte UTF-8 rune.
func truncateAtRuneBoundary(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

func toQuestionResponses(questions []*domain.Question) []dto.QuestionResponse {
	responses := make([]dto.QuestionResponse, 0, len(questions))
	for i, q := range questions {
		responses = append(responses, dto.QuestionResponse{
			ID:            i + 1,
			Question:      q.Text,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
			DiveDeeper:    q.DiveDeeper,
		})
	}
	return responses
}

// scoreMessage returns the tier-banded feedback line. Tier lower bounds are
// inclusive: 90, 80, 70, 60.
func scoreMessage(percentage int) string {
	switch {
	case percentage >= 90:
		return "Excellent! Outstanding performance!"
	case percentage >= 80:
		return "Great job! Well done!"
	case percentage >= 70:
		return "Good work! Keep it up!"
	case percentage >= 60:
		return "Not bad! Room for improvement."
	default:
		return "Keep studying! You can do better!"
	}
}
