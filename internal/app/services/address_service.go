package services

import (
	"context"
	"fmt"

	"github.com/dkaya/collegedb/internal/app/models"
	"github.com/dkaya/collegedb/internal/app/models/dto"
	"github.com/dkaya/collegedb/internal/app/repositories"
	"github.com/dkaya/collegedb/internal/pkg/apperrors"
)

// AddressService handles addresses attached to identity cards
type AddressService interface {
	CreateAddress(ctx context.Context, req *dto.CreateAddressRequest) (*models.Address, error)
	GetAddressByCollegeID(ctx context.Context, collegeIDNumber string) (*models.Address, error)
	DeleteAddress(ctx context.Context, collegeIDNumber string) error
}

type addressService struct {
	addressRepo *repositories.AddressRepository
	studentRepo *repositories.StudentRepository
}

// NewAddressService creates a new address service instance
func NewAddressService(
	addressRepo *repositories.AddressRepository,
	studentRepo *repositories.StudentRepository,
) AddressService {
	return &addressService{
		addressRepo: addressRepo,
		studentRepo: studentRepo,
	}
}

// CreateAddress resolves the student's identity card and attaches the
// address to it.
func (s *addressService) CreateAddress(ctx context.Context, req *dto.CreateAddressRequest) (*models.Address, error) {
	student, err := s.studentRepo.GetByID(ctx, req.StudentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}

	address := &models.Address{
		CollegeIDNumber: student.CollegeIDNumber,
		Street:          req.Street,
		City:            req.City,
		State:           req.State,
		Zip:             req.ZipCode,
	}

	if err := s.addressRepo.Create(ctx, address); err != nil {
		return nil, classifyWriteError(err)
	}
	return address, nil
}

// GetAddressByCollegeID retrieves the address attached to an identity card
func (s *addressService) GetAddressByCollegeID(ctx context.Context, collegeIDNumber string) (*models.Address, error) {
	address, err := s.addressRepo.GetByCollegeID(ctx, collegeIDNumber)
	if err != nil {
		return nil, fmt.Errorf("error retrieving address: %w", err)
	}
	if address == nil {
		return nil, apperrors.ErrAddressNotFound
	}
	return address, nil
}

// DeleteAddress deletes an address; deleting a missing one succeeds
func (s *addressService) DeleteAddress(ctx context.Context, collegeIDNumber string) error {
	if err := s.addressRepo.Delete(ctx, collegeIDNumber); err != nil {
		return classifyWriteError(err)
	}
	return nil
}
