package handler

import (
	"io"

	"docquiz/internal/domain"
	"docquiz/internal/dto"
	"docquiz/internal/logger"
	"docquiz/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// UploadHandler handles PDF upload HTTP requests
type UploadHandler struct {
	service service.UploadService
}

// NewUploadHandler creates a new UploadHandler instance
func NewUploadHandler(service service.UploadService) *UploadHandler {
	return &UploadHandler{
		service: service,
	}
}

// Upload godoc
// @Summary Upload a PDF document
// @Description Accepts a PDF file, extracts its text and stores an upload record
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF document"
// @Success 200 {object} dto.Response{data=dto.UploadResponse}
// @Failure 400 {object} dto.Response
// @Failure 500 {object} dto.Response
// @Router /upload [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return domain.NewValidationError("No file uploaded")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return domain.NewInternalError("Upload failed. Please try again.", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return domain.NewInternalError("Upload failed. Please try again.", err)
	}

	resp, err := h.service.ProcessUpload(c.Context(), &service.UploadInput{
		OriginalName: fileHeader.Filename,
		ContentType:  fileHeader.Header.Get("Content-Type"),
		Size:         fileHeader.Size,
		Data:         data,
	})
	if err != nil {
		return err
	}

	logger.Get().Info("Upload accepted",
		zap.String("upload_id", resp.UploadID),
		zap.String("original_name", resp.OriginalName),
	)

	return c.JSON(dto.NewSuccessResponse(resp))
}
