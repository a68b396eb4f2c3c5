package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// StringSlice stores a string array as a JSON document in a CLOB column.
type StringSlice []string

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("StringSlice Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*s = StringSlice{}
		return nil
	}

	return json.Unmarshal(bytesToParse, s)
}

// Upload maps the uploads table.
type Upload struct {
	ID            string         `db:"id"`
	Filename      string         `db:"filename"`
	OriginalName  string         `db:"original_name"`
	FileSize      int64          `db:"file_size"`
	MimeType      string         `db:"mime_type"`
	ExtractedText sql.NullString `db:"extracted_text"`
	UploadPath    string         `db:"upload_path"`
	CreatedAt     time.Time      `db:"created_at"`
}

// Quiz maps the quizzes table.
type Quiz struct {
	ID             string    `db:"id"`
	UploadID       string    `db:"upload_id"`
	Title          string    `db:"title"`
	TotalQuestions int       `db:"total_questions"`
	CreatedAt      time.Time `db:"created_at"`
}

// Question maps the questions table. Options holds the JSON-encoded option
// array; QuestionOrder is the dense 1-based display sequence.
type Question struct {
	ID            string         `db:"id"`
	QuizID        string         `db:"quiz_id"`
	QuestionText  string         `db:"question_text"`
	Options       StringSlice    `db:"options"`
	CorrectAnswer int            `db:"correct_answer"`
	Explanation   sql.NullString `db:"explanation"`
	DiveDeeper    sql.NullString `db:"dive_deeper"`
	QuestionOrder int            `db:"question_order"`
}

// QuizAttempt maps the quiz_attempts table. Answers holds the raw submitted
// answer array as JSON.
type QuizAttempt struct {
	ID        string    `db:"id"`
	QuizID    string    `db:"quiz_id"`
	Answers   string    `db:"answers"`
	Score     int       `db:"score"`
	CreatedAt time.Time `db:"created_at"`
}
