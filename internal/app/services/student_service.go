package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/rs/zerolog"

	"github.com/dkaya/collegedb/internal/app/models"
	"github.com/dkaya/collegedb/internal/app/models/dto"
	"github.com/dkaya/collegedb/internal/app/repositories"
	"github.com/dkaya/collegedb/internal/pkg/apperrors"
	"github.com/dkaya/collegedb/internal/pkg/auth"
	"github.com/dkaya/collegedb/internal/pkg/filestorage"
	"github.com/dkaya/collegedb/internal/pkg/helpers"
)

// photoSubdir is the storage subdirectory for student photos
const photoSubdir = "photos"

// StudentService handles student operations including the creation and
// deletion cascades.
type StudentService interface {
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
	GetStudentByID(ctx context.Context, studentID string) (*models.Student, error)
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (string, error)
	UpdateStudent(ctx context.Context, studentID string, req *dto.UpdateStudentRequest) error
	DeleteStudent(ctx context.Context, studentID string) error
	UploadPhoto(ctx context.Context, studentID string, file *multipart.FileHeader) (*models.Photo, error)
	GetPhoto(ctx context.Context, studentID string) (*models.Photo, error)
}

type studentService struct {
	studentRepo *repositories.StudentRepository
	photoRepo   *repositories.PhotoRepository
	storage     *filestorage.LocalStorage
	logger      zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(
	studentRepo *repositories.StudentRepository,
	photoRepo *repositories.PhotoRepository,
	storage *filestorage.LocalStorage,
	logger zerolog.Logger,
) StudentService {
	return &studentService{
		studentRepo: studentRepo,
		photoRepo:   photoRepo,
		storage:     storage,
		logger:      logger,
	}
}

// GetAllStudents retrieves all students
func (s *studentService) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// GetStudentByID retrieves a student by ID
func (s *studentService) GetStudentByID(ctx context.Context, studentID string) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

// CreateStudent creates the identity card, student row and credential row as
// one unit and returns the allocated card number. The card is issued today,
// expires after the standard validity period, and starts Active.
func (s *studentService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (string, error) {
	dob, err := parseDate("dob", req.DOB)
	if err != nil {
		return "", err
	}

	collegeID := "CID" + req.StudentID
	issueDate := time.Now()

	card := &models.CollegeID{
		CollegeIDNumber: collegeID,
		IssueDate:       issueDate,
		ExpiryDate:      issueDate.AddDate(models.CollegeIDValidityYears, 0, 0),
		Status:          models.CollegeIDStatusActive,
	}

	student := &models.Student{
		StudentID:       req.StudentID,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		DOB:             dob,
		Email:           req.Email,
		Phone:           req.Phone,
		DeptID:          req.DeptID,
		CollegeIDNumber: collegeID,
	}

	login := &models.UserLogin{
		UserID:   req.StudentID,
		UserType: models.UserTypeStudent,
		Password: auth.HashPassword(req.Password),
	}

	if err := s.studentRepo.CreateWithIdentity(ctx, student, card, login); err != nil {
		return "", classifyWriteError(err)
	}

	s.logger.Info().Str("studentId", req.StudentID).Str("collegeId", collegeID).Msg("Student created")
	return collegeID, nil
}

// UpdateStudent applies a partial update. Only supplied non-empty fields are
// written; supplying none is a bad request.
func (s *studentService) UpdateStudent(ctx context.Context, studentID string, req *dto.UpdateStudentRequest) error {
	mask := helpers.NewUpdateBuilder("student", "first_name", "last_name", "email", "phone")

	fields := []struct {
		column string
		value  string
	}{
		{"first_name", req.FirstName},
		{"last_name", req.LastName},
		{"email", req.Email},
		{"phone", req.Phone},
	}
	for _, f := range fields {
		if err := mask.SetIfPresent(f.column, f.value); err != nil {
			return err
		}
	}

	if err := s.studentRepo.UpdateFields(ctx, studentID, mask); err != nil {
		return classifyWriteError(err)
	}

	return nil
}

// DeleteStudent removes the student and all dependent rows in one
// transaction. Deleting a missing student succeeds as a no-op. The stored
// photo file, if any, is removed from disk after commit; a leftover file is
// logged, not an error.
func (s *studentService) DeleteStudent(ctx context.Context, studentID string) error {
	photoPath, err := s.studentRepo.DeleteCascade(ctx, studentID)
	if err != nil {
		return classifyWriteError(err)
	}

	if photoPath != "" {
		if err := s.storage.Remove(photoPath); err != nil {
			s.logger.Warn().Err(err).Str("path", photoPath).Msg("Failed to remove photo file after student deletion")
		}
	}

	s.logger.Info().Str("studentId", studentID).Msg("Student deleted")
	return nil
}

// UploadPhoto stores the uploaded file and upserts the student's photo row.
// A superseded file is removed from disk.
func (s *studentService) UploadPhoto(ctx context.Context, studentID string, file *multipart.FileHeader) (*models.Photo, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}

	path, err := s.storage.Save(file, photoSubdir)
	if err != nil {
		return nil, fmt.Errorf("error storing photo: %w", err)
	}

	photo := &models.Photo{
		StudentID:   studentID,
		FilePath:    path,
		ContentType: file.Header.Get("Content-Type"),
		UploadedAt:  time.Now(),
	}

	previousPath, err := s.photoRepo.Upsert(ctx, photo)
	if err != nil {
		// The row failed, so the freshly stored file is orphaned.
		if rmErr := s.storage.Remove(path); rmErr != nil {
			s.logger.Warn().Err(rmErr).Str("path", path).Msg("Failed to remove orphaned photo file")
		}
		return nil, classifyWriteError(err)
	}

	if previousPath != "" && previousPath != path {
		if err := s.storage.Remove(previousPath); err != nil {
			s.logger.Warn().Err(err).Str("path", previousPath).Msg("Failed to remove superseded photo file")
		}
	}

	return photo, nil
}

// GetPhoto retrieves a student's photo record
func (s *studentService) GetPhoto(ctx context.Context, studentID string) (*models.Photo, error) {
	photo, err := s.photoRepo.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving photo: %w", err)
	}
	if photo == nil {
		return nil, apperrors.ErrPhotoNotFound
	}
	return photo, nil
}
