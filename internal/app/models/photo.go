package models

import "time"

// Photo references a student's stored photo file. The binary lives on disk
// under the configured storage path; the row holds the relative path.
type Photo struct {
	StudentID   string    `json:"student_id"`
	FilePath    string    `json:"file_path"`
	ContentType string    `json:"content_type"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
