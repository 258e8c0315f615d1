package services

import (
	"context"
	"fmt"

	"github.com/dkaya/collegedb/internal/app/models"
	"github.com/dkaya/collegedb/internal/app/models/dto"
	"github.com/dkaya/collegedb/internal/app/repositories"
)

// DepartmentService handles department operations
type DepartmentService interface {
	GetAllDepartments(ctx context.Context) ([]*models.Department, error)
	CreateDepartment(ctx context.Context, req *dto.CreateDepartmentRequest) error
	DeleteDepartment(ctx context.Context, deptID string) error
}

type departmentService struct {
	departmentRepo *repositories.DepartmentRepository
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(departmentRepo *repositories.DepartmentRepository) DepartmentService {
	return &departmentService{
		departmentRepo: departmentRepo,
	}
}

// GetAllDepartments retrieves all departments
func (s *departmentService) GetAllDepartments(ctx context.Context) ([]*models.Department, error) {
	departments, err := s.departmentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving departments: %w", err)
	}
	return departments, nil
}

// CreateDepartment creates a new department. A duplicate ID surfaces as a
// conflict carrying the store's detail.
func (s *departmentService) CreateDepartment(ctx context.Context, req *dto.CreateDepartmentRequest) error {
	department := &models.Department{
		DeptID:   req.DeptID,
		DeptName: req.DeptName,
		HODName:  req.HODName,
	}

	if err := s.departmentRepo.Create(ctx, department); err != nil {
		return classifyWriteError(err)
	}
	return nil
}

// DeleteDepartment deletes a department; deleting a missing one succeeds
func (s *departmentService) DeleteDepartment(ctx context.Context, deptID string) error {
	if err := s.departmentRepo.Delete(ctx, deptID); err != nil {
		return classifyWriteError(err)
	}
	return nil
}
