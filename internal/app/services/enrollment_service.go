package services

import (
	"context"
	"fmt"

	"github.com/dkaya/collegedb/internal/app/models"
	"github.com/dkaya/collegedb/internal/app/models/dto"
	"github.com/dkaya/collegedb/internal/app/repositories"
)

// EnrollmentService handles enrollment operations
type EnrollmentService interface {
	GetStudentEnrollments(ctx context.Context, studentID string) ([]*models.Enrollment, error)
	CreateEnrollment(ctx context.Context, req *dto.CreateEnrollmentRequest) error
	DeleteEnrollment(ctx context.Context, studentID, courseID string) error
}

type enrollmentService struct {
	enrollmentRepo *repositories.EnrollmentRepository
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(enrollmentRepo *repositories.EnrollmentRepository) EnrollmentService {
	return &enrollmentService{
		enrollmentRepo: enrollmentRepo,
	}
}

// GetStudentEnrollments lists a student's enrollments enriched with current
// course data. An unknown student yields an empty list, not an error.
func (s *enrollmentService) GetStudentEnrollments(ctx context.Context, studentID string) ([]*models.Enrollment, error) {
	enrollments, err := s.enrollmentRepo.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrollments: %w", err)
	}
	return enrollments, nil
}

// CreateEnrollment creates a new enrollment. Unknown student or course
// surfaces as the store's foreign key violation.
func (s *enrollmentService) CreateEnrollment(ctx context.Context, req *dto.CreateEnrollmentRequest) error {
	enrollmentDate, err := parseDate("enrollment_date", req.EnrollmentDate)
	if err != nil {
		return err
	}

	enrollment := &models.Enrollment{
		StudentID:      req.StudentID,
		CourseID:       req.CourseID,
		SemesterNo:     req.SemesterNo,
		EnrollmentDate: enrollmentDate,
		AcademicYear:   req.AcademicYear,
	}

	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		return classifyWriteError(err)
	}
	return nil
}

// DeleteEnrollment deletes an enrollment; deleting a missing one succeeds
func (s *enrollmentService) DeleteEnrollment(ctx context.Context, studentID, courseID string) error {
	if err := s.enrollmentRepo.Delete(ctx, studentID, courseID); err != nil {
		return classifyWriteError(err)
	}
	return nil
}
