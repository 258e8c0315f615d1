package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/dkaya/collegedb/internal/app/models"
	"github.com/dkaya/collegedb/internal/app/repositories"
	"github.com/dkaya/collegedb/internal/pkg/auth"
)

const (
	defaultAdminID       = "admin001"
	defaultAdminPassword = "admin123"
	defaultAdminEmail    = "admin@college.edu"
)

// CreateDefaultAdmin ensures the default administrator account exists. It is
// idempotent: when the admin row is already present nothing is written. The
// default password is a bootstrap credential and should be changed after the
// first login.
func CreateDefaultAdmin(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)

	exists, err := userRepo.AdminExists(ctx, defaultAdminID)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to check for default admin")
		return fmt.Errorf("failed to check for default admin: %w", err)
	}
	if exists {
		lgr.Debug().Str("adminId", defaultAdminID).Msg("Default admin already present, skipping seed")
		return nil
	}

	admin := &models.Admin{
		AdminID:   defaultAdminID,
		Email:     defaultAdminEmail,
		FirstName: "System",
		LastName:  "Administrator",
	}
	if err := userRepo.CreateAdmin(ctx, admin); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default admin profile")
		return fmt.Errorf("failed to create default admin profile: %w", err)
	}

	login := &models.UserLogin{
		UserID:   defaultAdminID,
		UserType: models.UserTypeAdmin,
		Password: auth.HashPassword(defaultAdminPassword),
	}
	if err := userRepo.CreateLogin(ctx, login); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default admin credentials")
		return fmt.Errorf("failed to create default admin credentials: %w", err)
	}

	lgr.Info().Str("adminId", defaultAdminID).Msg("Default admin account created")
	return nil
}
