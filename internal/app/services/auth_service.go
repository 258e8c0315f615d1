package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dkaya/collegedb/internal/app/models"
	"github.com/dkaya/collegedb/internal/app/models/dto"
	"github.com/dkaya/collegedb/internal/app/repositories"
	"github.com/dkaya/collegedb/internal/pkg/apperrors"
	"github.com/dkaya/collegedb/internal/pkg/auth"
)

// AuthService handles authentication operations
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	userRepo    *repositories.UserRepository
	studentRepo *repositories.StudentRepository
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo *repositories.UserRepository,
	studentRepo *repositories.StudentRepository,
	logger zerolog.Logger,
) AuthService {
	return &authService{
		userRepo:    userRepo,
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// Login succeeds iff a credential row exists matching all three of user ID,
// user type and password digest. The display name comes from the admin or
// student profile depending on the role; a missing profile yields a null
// first_name, not a failure.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	digest := auth.HashPassword(req.Password)

	matched, err := s.userRepo.MatchLogin(ctx, req.UserID, req.UserType, digest)
	if err != nil {
		return nil, fmt.Errorf("error checking credentials: %w", err)
	}
	if !matched {
		return nil, apperrors.ErrInvalidCredentials
	}

	resp := &dto.LoginResponse{
		UserID:   req.UserID,
		UserType: req.UserType,
	}

	// Profile lookup is decoupled from login success.
	switch req.UserType {
	case models.UserTypeAdmin:
		admin, err := s.userRepo.GetAdminByID(ctx, req.UserID)
		if err != nil {
			s.logger.Warn().Err(err).Str("userId", req.UserID).Msg("Admin profile lookup failed after login")
		} else if admin != nil {
			resp.FirstName = &admin.FirstName
		}
	default:
		student, err := s.studentRepo.GetByID(ctx, req.UserID)
		if err != nil {
			s.logger.Warn().Err(err).Str("userId", req.UserID).Msg("Student profile lookup failed after login")
		} else if student != nil {
			resp.FirstName = &student.FirstName
		}
	}

	return resp, nil
}
