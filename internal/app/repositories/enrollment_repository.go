package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dkaya/collegedb/internal/app/models"
)

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
	}
}

// GetByStudent retrieves all enrollments for a student, enriched with the
// current course name and credits from the joined course row.
func (r *EnrollmentRepository) GetByStudent(ctx context.Context, studentID string) ([]*models.Enrollment, error) {
	query := `
		SELECT e.student_id, e.course_id, e.semester_no, e.enrollment_date, e.academic_year,
		       c.course_name, c.credits
		FROM enrollment e
		JOIN course c ON e.course_id = c.course_id
		WHERE e.student_id = $1
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		var enrollment models.Enrollment
		if err := rows.Scan(
			&enrollment.StudentID,
			&enrollment.CourseID,
			&enrollment.SemesterNo,
			&enrollment.EnrollmentDate,
			&enrollment.AcademicYear,
			&enrollment.CourseName,
			&enrollment.Credits,
		); err != nil {
			return nil, err
		}
		enrollments = append(enrollments, &enrollment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enrollments, nil
}

// Create creates a new enrollment
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	query := `
		INSERT INTO enrollment (student_id, course_id, semester_no, enrollment_date, academic_year)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		enrollment.StudentID, enrollment.CourseID, enrollment.SemesterNo,
		enrollment.EnrollmentDate, enrollment.AcademicYear)
	return err
}

// Delete removes an enrollment by its composite key. Deleting a missing
// enrollment is not an error.
func (r *EnrollmentRepository) Delete(ctx context.Context, studentID, courseID string) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM enrollment WHERE student_id = $1 AND course_id = $2`,
		studentID, courseID)
	if err != nil {
		return fmt.Errorf("error deleting enrollment: %w", err)
	}

	return nil
}
