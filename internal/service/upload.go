package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"docquiz/internal/config"
	"docquiz/internal/domain"
	"docquiz/internal/dto"
	"docquiz/internal/logger"
	"docquiz/internal/util"

	"go.uber.org/zap"
)

// PDFMimeType is the only declared content type accepted for uploads.
const PDFMimeType = "application/pdf"

// UploadInput carries one uploaded file through validation and persistence.
type UploadInput struct {
	OriginalName string
	ContentType  string
	Size         int64
	Data         []byte
}

// UploadService ingests PDFs: validate, store on disk, extract text, persist.
type UploadService interface {
	ProcessUpload(ctx context.Context, input *UploadInput) (*dto.UploadResponse, error)
}

type uploadService struct {
	uploads   domain.UploadRepository
	extractor domain.TextExtractor
	cfg       config.UploadConfig
}

func NewUploadService(uploads domain.UploadRepository, extractor domain.TextExtractor, cfg config.UploadConfig) UploadService {
	return &uploadService{
		uploads:   uploads,
		extractor: extractor,
		cfg:       cfg,
	}
}

// ProcessUpload implements UploadService. The upload row is created only
// after text extraction passed the minimum-length check; the file written to
// disk is intentionally left in place on later failure.
func (s *uploadService) ProcessUpload(ctx context.Context, input *UploadInput) (*dto.UploadResponse, error) {
	if input.ContentType != PDFMimeType {
		return nil, domain.NewValidationError("Only PDF files allowed")
	}
	if input.Size > s.cfg.MaxFileSize {
		return nil, domain.NewValidationError("File too large (max 10MB)")
	}

	if err := os.MkdirAll(s.cfg.Dir, 0o755); err != nil {
		return nil, domain.NewInternalError("Upload failed. Please try again.", err)
	}

	filename := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(input.OriginalName))
	uploadPath := filepath.Join(s.cfg.Dir, filename)

	if err := os.WriteFile(uploadPath, input.Data, 0o644); err != nil {
		return nil, domain.NewInternalError("Upload failed. Please try again.", err)
	}

	rawText, err := s.extractor.ExtractText(ctx, uploadPath)
	if err != nil {
		return nil, err
	}

	extractedText := strings.TrimSpace(rawText)
	if len(extractedText) < s.cfg.MinTextLength {
		return nil, domain.NewValidationError("Unable to extract sufficient text from PDF. Please ensure the PDF contains readable text.")
	}

	upload := &domain.Upload{
		ID:            util.NewULID(),
		Filename:      filename,
		OriginalName:  input.OriginalName,
		FileSize:      input.Size,
		MimeType:      input.ContentType,
		ExtractedText: extractedText,
		UploadPath:    uploadPath,
		CreatedAt:     time.Now(),
	}

	if err := s.uploads.SaveUpload(ctx, upload); err != nil {
		return nil, domain.NewInternalError("Upload failed. Please try again.", err)
	}

	logger.Get().Info("Upload ingested",
		zap.String("upload_id", upload.ID),
		zap.String("original_name", upload.OriginalName),
		zap.Int64("file_size", upload.FileSize),
		zap.Int("extracted_chars", len(extractedText)))

	return &dto.UploadResponse{
		UploadID:            upload.ID,
		Filename:            upload.Filename,
		OriginalName:        upload.OriginalName,
		ExtractedTextLength: len(extractedText),
		ProcessingStatus:    "completed",
	}, nil
}
