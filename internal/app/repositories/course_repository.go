package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dkaya/collegedb/internal/app/models"
)

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// GetAll retrieves all courses
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	query := `
		SELECT course_id, course_name, credits, dept_id
		FROM course
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.CourseID,
			&course.CourseName,
			&course.Credits,
			&course.DeptID,
		); err != nil {
			return nil, err
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// Create creates a new course. A nonexistent department surfaces as the
// store's foreign key violation, not a pre-check.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO course (course_id, course_name, credits, dept_id)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query, course.CourseID, course.CourseName, course.Credits, course.DeptID)
	return err
}

// Delete deletes a course by ID. Deleting a missing course is not an error.
func (r *CourseRepository) Delete(ctx context.Context, courseID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM course WHERE course_id = $1`, courseID)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	return nil
}
