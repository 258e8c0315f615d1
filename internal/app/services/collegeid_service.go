package services

import (
	"context"
	"fmt"

	"github.com/dkaya/collegedb/internal/app/models"
	"github.com/dkaya/collegedb/internal/app/models/dto"
	"github.com/dkaya/collegedb/internal/app/repositories"
	"github.com/dkaya/collegedb/internal/pkg/apperrors"
)

// CollegeIDService handles identity card operations
type CollegeIDService interface {
	GetAllCollegeIDs(ctx context.Context) ([]*models.CollegeID, error)
	GetCollegeIDByNumber(ctx context.Context, number string) (*models.CollegeID, error)
	CreateCollegeID(ctx context.Context, req *dto.CreateCollegeIDRequest) error
	DeleteCollegeID(ctx context.Context, number string) error
}

type collegeIDService struct {
	collegeIDRepo *repositories.CollegeIDRepository
}

// NewCollegeIDService creates a new college ID service instance
func NewCollegeIDService(collegeIDRepo *repositories.CollegeIDRepository) CollegeIDService {
	return &collegeIDService{
		collegeIDRepo: collegeIDRepo,
	}
}

// GetAllCollegeIDs retrieves all identity cards
func (s *collegeIDService) GetAllCollegeIDs(ctx context.Context) ([]*models.CollegeID, error) {
	cards, err := s.collegeIDRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving college IDs: %w", err)
	}
	return cards, nil
}

// GetCollegeIDByNumber retrieves an identity card by number
func (s *collegeIDService) GetCollegeIDByNumber(ctx context.Context, number string) (*models.CollegeID, error) {
	card, err := s.collegeIDRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("error retrieving college ID: %w", err)
	}
	if card == nil {
		return nil, apperrors.ErrCollegeIDNotFound
	}
	return card, nil
}

// CreateCollegeID creates an identity card record directly
func (s *collegeIDService) CreateCollegeID(ctx context.Context, req *dto.CreateCollegeIDRequest) error {
	issueDate, err := parseDate("issue_date", req.IssueDate)
	if err != nil {
		return err
	}
	expiryDate, err := parseDate("expiry_date", req.ExpiryDate)
	if err != nil {
		return err
	}

	card := &models.CollegeID{
		CollegeIDNumber: req.CollegeIDNumber,
		IssueDate:       issueDate,
		ExpiryDate:      expiryDate,
		Status:          req.Status,
	}

	if err := s.collegeIDRepo.Create(ctx, card); err != nil {
		return classifyWriteError(err)
	}
	return nil
}

// DeleteCollegeID deletes an identity card; deleting a missing one succeeds
func (s *collegeIDService) DeleteCollegeID(ctx context.Context, number string) error {
	if err := s.collegeIDRepo.Delete(ctx, number); err != nil {
		return classifyWriteError(err)
	}
	return nil
}
