package domain

import "time"

// Upload is a persisted record of one ingested PDF and its extracted text.
// Rows are immutable once created.
type Upload struct {
	ID            string
	Filename      string
	OriginalName  string
	FileSize      int64
	MimeType      string
	ExtractedText string
	UploadPath    string
	CreatedAt     time.Time
}
