package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dkaya/collegedb/internal/app/models"
)

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db *pgxpool.Pool
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{
		db: db,
	}
}

// GetAll retrieves all departments
func (r *DepartmentRepository) GetAll(ctx context.Context) ([]*models.Department, error) {
	query := `
		SELECT dept_id, dept_name, hod_name
		FROM department
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []*models.Department
	for rows.Next() {
		var department models.Department
		if err := rows.Scan(
			&department.DeptID,
			&department.DeptName,
			&department.HODName,
		); err != nil {
			return nil, err
		}
		departments = append(departments, &department)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}

// Create creates a new department
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	query := `
		INSERT INTO department (dept_id, dept_name, hod_name)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.Exec(ctx, query, department.DeptID, department.DeptName, department.HODName)
	return err
}

// Delete deletes a department by ID. Deleting a missing department is not an error.
func (r *DepartmentRepository) Delete(ctx context.Context, deptID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM department WHERE dept_id = $1`, deptID)
	if err != nil {
		return fmt.Errorf("error deleting department: %w", err)
	}

	return nil
}
