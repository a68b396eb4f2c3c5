package handler

import (
	"docquiz/internal/domain"
	"docquiz/internal/dto"
	"docquiz/internal/service"
	"docquiz/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService, validator *validation.Validator) *QuizHandler {
	return &QuizHandler{
		service:   service,
		validator: validator,
	}
}

// Generate godoc
// @Summary Generate a quiz from an upload
// @Description Generates multiple-choice questions from a previously uploaded document
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuizRequest true "Generation request"
// @Success 200 {object} dto.Response{data=dto.GenerateQuizResponse}
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Failure 500 {object} dto.Response
// @Router /quiz/generate [post]
func (h *QuizHandler) Generate(c *fiber.Ctx) error {
	var req dto.GenerateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewValidationError("Invalid request body")
	}

	if errs := h.validator.ValidateGenerateQuizRequest(req.UploadID, req.QuestionCount); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.GenerateQuiz(c.Context(), &req)
	if err != nil {
		return err
	}

	return c.JSON(dto.NewSuccessResponse(resp))
}

// Get godoc
// @Summary Get a quiz
// @Description Returns a stored quiz with its questions in display order
// @Tags quiz
// @Accept json
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} dto.Response{data=dto.QuizDetailResponse}
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /quiz/{id} [get]
func (h *QuizHandler) Get(c *fiber.Ctx) error {
	quizID := c.Params("id")
	if errs := h.validator.ValidateQuizID(quizID); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.GetQuiz(c.Context(), quizID)
	if err != nil {
		return err
	}

	return c.JSON(dto.NewSuccessResponse(resp))
}

// Submit godoc
// @Summary Submit quiz answers
// @Description Scores a set of submitted answers and records the attempt
// @Tags quiz
// @Accept json
// @Produce json
// @Param id path string true "Quiz ID"
// @Param request body dto.SubmitQuizRequest true "Submitted answers"
// @Success 200 {object} dto.Response{data=dto.SubmitQuizResponse}
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Failure 500 {object} dto.Response
// @Router /quiz/{id}/submit [post]
func (h *QuizHandler) Submit(c *fiber.Ctx) error {
	quizID := c.Params("id")
	if errs := h.validator.ValidateQuizID(quizID); len(errs) > 0 {
		return errs
	}

	var req dto.SubmitQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewValidationError("Invalid answers format")
	}

	resp, err := h.service.SubmitQuiz(c.Context(), quizID, &req)
	if err != nil {
		return err
	}

	return c.JSON(dto.NewSuccessResponse(resp))
}
