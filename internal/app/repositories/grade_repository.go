package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dkaya/collegedb/internal/app/models"
)

// GradeRepository handles database operations for grades
type GradeRepository struct {
	db *pgxpool.Pool
}

// NewGradeRepository creates a new grade repository
func NewGradeRepository(db *pgxpool.Pool) *GradeRepository {
	return &GradeRepository{
		db: db,
	}
}

// GetByStudent retrieves all grades for a student, enriched with the current
// course name and credits from the joined course row.
func (r *GradeRepository) GetByStudent(ctx context.Context, studentID string) ([]*models.Grade, error) {
	query := `
		SELECT g.student_id, g.course_id, g.semester_no, g.marks, g.grade_letter,
		       c.course_name, c.credits
		FROM grade g
		JOIN course c ON g.course_id = c.course_id
		WHERE g.student_id = $1
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grades []*models.Grade
	for rows.Next() {
		var grade models.Grade
		if err := rows.Scan(
			&grade.StudentID,
			&grade.CourseID,
			&grade.SemesterNo,
			&grade.Marks,
			&grade.GradeLetter,
			&grade.CourseName,
			&grade.Credits,
		); err != nil {
			return nil, err
		}
		grades = append(grades, &grade)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return grades, nil
}

// Create creates a new grade record
func (r *GradeRepository) Create(ctx context.Context, grade *models.Grade) error {
	query := `
		INSERT INTO grade (student_id, course_id, semester_no, marks, grade_letter)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		grade.StudentID, grade.CourseID, grade.SemesterNo, grade.Marks, grade.GradeLetter)
	return err
}

// Update overwrites marks and grade letter for an existing grade row keyed by
// the (student, course, semester) triple.
func (r *GradeRepository) Update(ctx context.Context, studentID, courseID string, semesterNo int, marks float64, gradeLetter string) error {
	query := `
		UPDATE grade
		SET marks = $1, grade_letter = $2
		WHERE student_id = $3 AND course_id = $4 AND semester_no = $5
	`

	_, err := r.db.Exec(ctx, query, marks, gradeLetter, studentID, courseID, semesterNo)
	if err != nil {
		return fmt.Errorf("error updating grade: %w", err)
	}

	return nil
}
