package dto

// UploadResponse describes a successfully ingested PDF.
// @Description Result of a PDF upload
type UploadResponse struct {
	UploadID            string `json:"uploadId"`
	Filename            string `json:"filename"`
	OriginalName        string `json:"originalName"`
	ExtractedTextLength int    `json:"extractedTextLength"`
	ProcessingStatus    string `json:"processingStatus"`
}
