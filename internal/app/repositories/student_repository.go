package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dkaya/collegedb/internal/app/models"
	"github.com/dkaya/collegedb/internal/db"
	"github.com/dkaya/collegedb/internal/pkg/helpers"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

const studentColumns = "student_id, first_name, last_name, dob, email, phone, dept_id, college_id_number"

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	err := row.Scan(
		&student.StudentID,
		&student.FirstName,
		&student.LastName,
		&student.DOB,
		&student.Email,
		&student.Phone,
		&student.DeptID,
		&student.CollegeIDNumber,
	)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// GetAll retrieves all students
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := fmt.Sprintf("SELECT %s FROM student", studentColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// GetByID retrieves a student by ID. Returns (nil, nil) when absent.
func (r *StudentRepository) GetByID(ctx context.Context, studentID string) (*models.Student, error) {
	query := fmt.Sprintf("SELECT %s FROM student WHERE student_id = $1", studentColumns)

	student, err := scanStudent(r.db.QueryRow(ctx, query, studentID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// CreateWithIdentity inserts the identity card, the student row and the
// credential row as one transaction. Any failure rolls back all three.
func (r *StudentRepository) CreateWithIdentity(ctx context.Context, student *models.Student, card *models.CollegeID, login *models.UserLogin) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO college_id (college_id_number, issue_date, expiry_date, status)
			VALUES ($1, $2, $3, $4)`,
			card.CollegeIDNumber, card.IssueDate, card.ExpiryDate, card.Status)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO student (student_id, first_name, last_name, dob, email, phone, dept_id, college_id_number)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			student.StudentID, student.FirstName, student.LastName, student.DOB,
			student.Email, student.Phone, student.DeptID, student.CollegeIDNumber)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO user_login (user_id, user_type, password)
			VALUES ($1, $2, $3)`,
			login.UserID, login.UserType, login.Password)
		return err
	})
}

// UpdateFields applies a partial update built from a field mask
func (r *StudentRepository) UpdateFields(ctx context.Context, studentID string, mask *helpers.UpdateBuilder) error {
	query, args, err := mask.Build("student_id", studentID)
	if err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}

	return nil
}

// DeleteCascade removes a student and every dependent row in one transaction,
// children before parents: user_login, grade, enrollment, photo, address (via
// the college ID), the student row, and its college ID. Deleting a missing
// student is a no-op. The stored photo path, if any, is returned so the
// caller can remove the file after commit.
func (r *StudentRepository) DeleteCascade(ctx context.Context, studentID string) (string, error) {
	var photoPath string

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var collegeID string
		err := tx.QueryRow(ctx,
			`SELECT college_id_number FROM student WHERE student_id = $1`,
			studentID).Scan(&collegeID)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}

		err = tx.QueryRow(ctx,
			`SELECT file_path FROM photo WHERE student_id = $1`,
			studentID).Scan(&photoPath)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return err
		}

		statements := []struct {
			query string
			arg   string
		}{
			{`DELETE FROM user_login WHERE user_id = $1`, studentID},
			{`DELETE FROM grade WHERE student_id = $1`, studentID},
			{`DELETE FROM enrollment WHERE student_id = $1`, studentID},
			{`DELETE FROM photo WHERE student_id = $1`, studentID},
			{`DELETE FROM address WHERE college_id_number = $1`, collegeID},
			{`DELETE FROM student WHERE student_id = $1`, studentID},
			{`DELETE FROM college_id WHERE college_id_number = $1`, collegeID},
		}

		for _, stmt := range statements {
			if _, err := tx.Exec(ctx, stmt.query, stmt.arg); err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		return "", err
	}
	return photoPath, nil
}
