package middleware

import (
	"errors"
	"net/http"

	"docquiz/internal/domain"
	"docquiz/internal/dto"
	"docquiz/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorHandler is a centralized error handling middleware. Every error is
// rendered through the shared response envelope; internal details (causes,
// raw AI text) stay in the logs.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log := logger.Get()

		// Handle field validation errors
		var validationErrs domain.ValidationErrors
		if errors.As(err, &validationErrs) {
			log.Warn("Request validation failed",
				zap.String("path", c.Path()),
				zap.Int("error_count", len(validationErrs)),
			)
			return c.Status(http.StatusBadRequest).JSON(dto.NewErrorResponse(validationErrs.Error()))
		}

		// Handle domain errors
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			statusCode := mapDomainErrorToHTTPStatus(domainErr)

			log.Error("Domain error occurred",
				zap.String("code", string(domainErr.Code)),
				zap.String("message", domainErr.Message),
				zap.Int("status", statusCode),
				zap.String("path", c.Path()),
				zap.Error(domainErr.Cause),
			)

			return c.Status(statusCode).JSON(dto.NewErrorResponse(domainErr.Message))
		}

		// Handle fiber errors
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			// Bodies over the transport limit are rejected before any handler
			// runs; report them like the upload size check does.
			if fiberErr.Code == http.StatusRequestEntityTooLarge {
				log.Warn("Request body over transport limit",
					zap.String("path", c.Path()),
				)
				return c.Status(http.StatusBadRequest).JSON(dto.NewErrorResponse("File too large (max 10MB)"))
			}

			log.Warn("Fiber error occurred",
				zap.Int("code", fiberErr.Code),
				zap.String("message", fiberErr.Message),
			)
			return c.Status(fiberErr.Code).JSON(dto.NewErrorResponse(fiberErr.Message))
		}

		// Handle unknown errors
		log.Error("Unknown error occurred",
			zap.String("path", c.Path()),
			zap.Error(err),
		)

		return c.Status(http.StatusInternalServerError).JSON(dto.NewErrorResponse("Internal server error"))
	}
}

// mapDomainErrorToHTTPStatus maps domain errors to HTTP status codes
func mapDomainErrorToHTTPStatus(err *domain.DomainError) int {
	switch err.Code {
	case domain.CodeNotFound, domain.CodeUploadNotFound, domain.CodeQuizNotFound:
		return http.StatusNotFound
	case domain.CodeValidation:
		return http.StatusBadRequest
	case domain.CodeLLMServiceError, domain.CodeInvalidAIResponse, domain.CodeExtractionFailed:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
