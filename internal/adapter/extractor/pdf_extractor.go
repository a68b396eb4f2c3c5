package extractor

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"docquiz/internal/domain"
	"docquiz/internal/logger"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

// PDFTextExtractor implements domain.TextExtractor for PDF files on disk.
type PDFTextExtractor struct{}

func NewPDFTextExtractor() domain.TextExtractor {
	return &PDFTextExtractor{}
}

// ExtractText reads the PDF at path and returns its plain text content.
// A PDF that cannot be opened or yields no text fails with an extraction error.
func (e *PDFTextExtractor) ExtractText(ctx context.Context, path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		logger.Get().Error("Failed to open PDF for extraction",
			zap.String("path", path),
			zap.Error(err))
		return "", domain.NewExtractionFailedError(err)
	}
	defer f.Close()

	textReader, err := r.GetPlainText()
	if err != nil {
		logger.Get().Error("Failed to extract text from PDF",
			zap.String("path", path),
			zap.Error(err))
		return "", domain.NewExtractionFailedError(err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(textReader); err != nil {
		return "", domain.NewExtractionFailedError(err)
	}

	text := buf.String()
	if strings.TrimSpace(text) == "" {
		return "", domain.NewExtractionFailedError(fmt.Errorf("no text extracted from PDF"))
	}

	return text, nil
}
