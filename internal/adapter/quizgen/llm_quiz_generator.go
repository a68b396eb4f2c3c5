package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"docquiz/internal/domain"
	"docquiz/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

const promptTemplate = `
You are an expert quiz generator. Based on the following document content, create exactly %d multiple-choice questions.

Document Content:
%s

Requirements:
1. Generate %d diverse questions covering different aspects of the document
2. Each question should have 4 options (A, B, C, D)
3. Provide the correct answer index (0-3, where 0=A, 1=B, 2=C, 3=D)
4. Include a brief explanation for the correct answer
5. Provide an extended "dive deeper" explanation with additional context

Return ONLY a valid JSON object in this exact format:
{
  "questions": [
    {
      "question": "Question text here?",
      "options": ["Option A", "Option B", "Option C", "Option D"],
      "correctAnswer": 0,
      "explanation": "Brief explanation why this is correct.",
      "diveDeeper": "Extended explanation with additional context and details."
    }
  ]
}

Make sure the JSON is valid and properly formatted. Do not include any other text or markdown formatting.
`

// LLMQuizGenerator implements domain.QuizGenerationService on top of a
// langchaingo model.
type LLMQuizGenerator struct {
	llm llms.Model
}

func NewLLMQuizGenerator(llm llms.Model) domain.QuizGenerationService {
	return &LLMQuizGenerator{llm: llm}
}

// quizPayload is the schema boundary for the model's reply. Anything that
// does not unmarshal into it, or fails per-question validation, is rejected.
type quizPayload struct {
	Questions []*domain.GeneratedQuestion `json:"questions"`
}

// GenerateQuestions implements domain.QuizGenerationService.
func (g *LLMQuizGenerator) GenerateQuestions(ctx context.Context, documentText string, numQuestions int) ([]*domain.GeneratedQuestion, error) {
	l := logger.Get()

	prompt := fmt.Sprintf(promptTemplate, numQuestions, documentText, numQuestions)

	l.Info("Requesting quiz generation from LLM",
		zap.Int("num_questions", numQuestions),
		zap.Int("document_chars", len(documentText)))

	rawResponse, err := llms.GenerateFromSinglePrompt(ctx, g.llm, prompt)
	if err != nil {
		l.Error("LLM quiz generation call failed", zap.Error(err))
		return nil, domain.NewLLMServiceError(err)
	}

	jsonText := stripCodeFences(rawResponse)

	var payload quizPayload
	if err := json.Unmarshal([]byte(jsonText), &payload); err != nil {
		// The raw reply stays in the logs for diagnosis; it never reaches the caller.
		l.Error("Failed to parse LLM response as JSON",
			zap.Error(err),
			zap.String("raw_response", rawResponse))
		return nil, domain.NewInvalidAIResponseError(fmt.Errorf("invalid JSON response from AI: %w", err))
	}

	if len(payload.Questions) == 0 {
		l.Error("LLM response contained no questions", zap.String("raw_response", rawResponse))
		return nil, domain.NewInvalidAIResponseError(fmt.Errorf("invalid quiz format from AI: empty questions array"))
	}

	for i, q := range payload.Questions {
		if err := q.Validate(); err != nil {
			l.Error("LLM generated a structurally invalid question",
				zap.Int("index", i),
				zap.Error(err),
				zap.String("raw_response", rawResponse))
			return nil, domain.NewInvalidAIResponseError(fmt.Errorf("question %d: %w", i+1, err))
		}
	}

	l.Info("LLM quiz generation succeeded", zap.Int("questions", len(payload.Questions)))
	return payload.Questions, nil
}

// stripCodeFences removes a leading/trailing markdown code fence, optionally
// tagged "json", which some models wrap around their reply despite
// instructions.
func stripCodeFences(s string) string {
	out := strings.TrimSpace(s)
	if strings.HasPrefix(out, "```json") {
		out = strings.TrimPrefix(out, "```json")
	} else if strings.HasPrefix(out, "```") {
		out = strings.TrimPrefix(out, "```")
	}
	out = strings.TrimSuffix(strings.TrimSpace(out), "```")
	return strings.TrimSpace(out)
}

var _ domain.QuizGenerationService = (*LLMQuizGenerator)(nil)
