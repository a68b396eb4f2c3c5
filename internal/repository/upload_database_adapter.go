package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"docquiz/internal/domain"
	"docquiz/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// UploadDatabaseAdapter implements domain.UploadRepository using sqlx.
type UploadDatabaseAdapter struct {
	db *sqlx.DB
}

func NewUploadDatabaseAdapter(db *sqlx.DB) domain.UploadRepository {
	return &UploadDatabaseAdapter{db: db}
}

// SaveUpload implements domain.UploadRepository. The upload's ID and
// CreatedAt are expected to be set by the caller.
func (a *UploadDatabaseAdapter) SaveUpload(ctx context.Context, upload *domain.Upload) error {
	if upload == nil {
		return fmt.Errorf("cannot save nil upload")
	}
	model := toModelUpload(upload)

	query := `INSERT INTO uploads (
		id, filename, original_name, file_size, mime_type, extracted_text, upload_path, created_at
	) VALUES (
		:1, :2, :3, :4, :5, :6, :7, :8
	)`

	exec := GetExecutor(ctx, a.db)
	_, err := exec.ExecContext(ctx, query,
		model.ID,
		model.Filename,
		model.OriginalName,
		model.FileSize,
		model.MimeType,
		model.ExtractedText,
		model.UploadPath,
		model.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save upload: %w", err)
	}
	return nil
}

// GetUploadByID implements domain.UploadRepository. Returns (nil, nil) when
// no row matches.
func (a *UploadDatabaseAdapter) GetUploadByID(ctx context.Context, id string) (*domain.Upload, error) {
	var model models.Upload
	query := `SELECT
		id "id",
		filename "filename",
		original_name "original_name",
		file_size "file_size",
		mime_type "mime_type",
		extracted_text "extracted_text",
		upload_path "upload_path",
		created_at "created_at"
	FROM uploads
	WHERE id = :1`

	exec := GetExecutor(ctx, a.db)
	err := exec.GetContext(ctx, &model, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get upload by ID %s: %w", id, err)
	}
	return toDomainUpload(&model), nil
}

func toModelUpload(u *domain.Upload) *models.Upload {
	extracted := sql.NullString{}
	if u.ExtractedText != "" {
		extracted = sql.NullString{String: u.ExtractedText, Valid: true}
	}
	createdAt := u.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	return &models.Upload{
		ID:            u.ID,
		Filename:      u.Filename,
		OriginalName:  u.OriginalName,
		FileSize:      u.FileSize,
		MimeType:      u.MimeType,
		ExtractedText: extracted,
		UploadPath:    u.UploadPath,
		CreatedAt:     createdAt,
	}
}

func toDomainUpload(m *models.Upload) *domain.Upload {
	return &domain.Upload{
		ID:            m.ID,
		Filename:      m.Filename,
		OriginalName:  m.OriginalName,
		FileSize:      m.FileSize,
		MimeType:      m.MimeType,
		ExtractedText: m.ExtractedText.String,
		UploadPath:    m.UploadPath,
		CreatedAt:     m.CreatedAt,
	}
}
