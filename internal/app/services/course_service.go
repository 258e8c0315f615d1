package services

import (
	"context"
	"fmt"

	"github.com/dkaya/collegedb/internal/app/models"
	"github.com/dkaya/collegedb/internal/app/models/dto"
	"github.com/dkaya/collegedb/internal/app/repositories"
)

// CourseService handles course operations
type CourseService interface {
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) error
	DeleteCourse(ctx context.Context, courseID string) error
}

type courseService struct {
	courseRepo *repositories.CourseRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo *repositories.CourseRepository) CourseService {
	return &courseService{
		courseRepo: courseRepo,
	}
}

// GetAllCourses retrieves all courses
func (s *courseService) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

// CreateCourse creates a new course. A duplicate ID or unknown department
// surfaces as the store's constraint violation.
func (s *courseService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) error {
	course := &models.Course{
		CourseID:   req.CourseID,
		CourseName: req.CourseName,
		Credits:    *req.Credits,
		DeptID:     req.DeptID,
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return classifyWriteError(err)
	}
	return nil
}

// DeleteCourse deletes a course; deleting a missing one succeeds
func (s *courseService) DeleteCourse(ctx context.Context, courseID string) error {
	if err := s.courseRepo.Delete(ctx, courseID); err != nil {
		return classifyWriteError(err)
	}
	return nil
}
