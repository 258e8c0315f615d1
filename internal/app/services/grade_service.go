package services

import (
	"context"
	"fmt"

	"github.com/dkaya/collegedb/internal/app/models"
	"github.com/dkaya/collegedb/internal/app/models/dto"
	"github.com/dkaya/collegedb/internal/app/repositories"
)

// GradeService handles grade operations
type GradeService interface {
	GetStudentGrades(ctx context.Context, studentID string) ([]*models.Grade, error)
	CreateGrade(ctx context.Context, req *dto.CreateGradeRequest) error
	UpdateGrade(ctx context.Context, studentID, courseID string, semesterNo int, req *dto.UpdateGradeRequest) error
}

type gradeService struct {
	gradeRepo *repositories.GradeRepository
}

// NewGradeService creates a new grade service instance
func NewGradeService(gradeRepo *repositories.GradeRepository) GradeService {
	return &gradeService{
		gradeRepo: gradeRepo,
	}
}

// GetStudentGrades lists a student's grades enriched with current course
// data. An unknown student yields an empty list, not an error.
func (s *gradeService) GetStudentGrades(ctx context.Context, studentID string) ([]*models.Grade, error) {
	grades, err := s.gradeRepo.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving grades: %w", err)
	}
	return grades, nil
}

// CreateGrade records a new grade. A duplicate (student, course, semester)
// triple or unknown foreign key surfaces as the store's constraint violation.
func (s *gradeService) CreateGrade(ctx context.Context, req *dto.CreateGradeRequest) error {
	grade := &models.Grade{
		StudentID:   req.StudentID,
		CourseID:    req.CourseID,
		SemesterNo:  req.SemesterNo,
		Marks:       *req.Marks,
		GradeLetter: req.GradeLetter,
	}

	if err := s.gradeRepo.Create(ctx, grade); err != nil {
		return classifyWriteError(err)
	}
	return nil
}

// UpdateGrade overwrites marks and letter for the grade row keyed by the
// composite key.
func (s *gradeService) UpdateGrade(ctx context.Context, studentID, courseID string, semesterNo int, req *dto.UpdateGradeRequest) error {
	if err := s.gradeRepo.Update(ctx, studentID, courseID, semesterNo, *req.Marks, req.GradeLetter); err != nil {
		return classifyWriteError(err)
	}
	return nil
}
