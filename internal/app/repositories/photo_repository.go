package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dkaya/collegedb/internal/app/models"
)

// PhotoRepository handles database operations for student photos
type PhotoRepository struct {
	db *pgxpool.Pool
}

// NewPhotoRepository creates a new photo repository
func NewPhotoRepository(db *pgxpool.Pool) *PhotoRepository {
	return &PhotoRepository{
		db: db,
	}
}

// GetByStudent retrieves a student's photo record. Returns (nil, nil) when absent.
func (r *PhotoRepository) GetByStudent(ctx context.Context, studentID string) (*models.Photo, error) {
	query := `
		SELECT student_id, file_path, content_type, uploaded_at
		FROM photo
		WHERE student_id = $1
	`

	var photo models.Photo
	err := r.db.QueryRow(ctx, query, studentID).Scan(
		&photo.StudentID,
		&photo.FilePath,
		&photo.ContentType,
		&photo.UploadedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving photo: %w", err)
	}

	return &photo, nil
}

// Upsert stores or replaces a student's photo record and returns the previous
// file path so the caller can remove the superseded file.
func (r *PhotoRepository) Upsert(ctx context.Context, photo *models.Photo) (string, error) {
	var previousPath string
	err := r.db.QueryRow(ctx,
		`SELECT file_path FROM photo WHERE student_id = $1`,
		photo.StudentID).Scan(&previousPath)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return "", fmt.Errorf("error checking existing photo: %w", err)
	}

	query := `
		INSERT INTO photo (student_id, file_path, content_type, uploaded_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (student_id) DO UPDATE
		SET file_path = EXCLUDED.file_path,
		    content_type = EXCLUDED.content_type,
		    uploaded_at = EXCLUDED.uploaded_at
	`

	if _, err := r.db.Exec(ctx, query,
		photo.StudentID, photo.FilePath, photo.ContentType, photo.UploadedAt); err != nil {
		return "", err
	}

	return previousPath, nil
}
