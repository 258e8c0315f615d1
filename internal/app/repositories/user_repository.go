package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dkaya/collegedb/internal/app/models"
)

// UserRepository handles database operations for credentials and admin profiles
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// MatchLogin reports whether a credential row exists matching all three of
// user ID, user type and password digest.
func (r *UserRepository) MatchLogin(ctx context.Context, userID, userType, digest string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM user_login
			WHERE user_id = $1 AND user_type = $2 AND password = $3
		)`,
		userID, userType, digest).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking credentials: %w", err)
	}

	return exists, nil
}

// GetAdminByID retrieves an admin profile. Returns (nil, nil) when absent.
func (r *UserRepository) GetAdminByID(ctx context.Context, adminID string) (*models.Admin, error) {
	query := `
		SELECT admin_id, email, first_name, last_name
		FROM admin
		WHERE admin_id = $1
	`

	var admin models.Admin
	err := r.db.QueryRow(ctx, query, adminID).Scan(
		&admin.AdminID,
		&admin.Email,
		&admin.FirstName,
		&admin.LastName,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving admin: %w", err)
	}

	return &admin, nil
}

// AdminExists checks whether an admin row with the given ID exists
func (r *UserRepository) AdminExists(ctx context.Context, adminID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM admin WHERE admin_id = $1)`,
		adminID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking admin existence: %w", err)
	}

	return exists, nil
}

// CreateAdmin inserts an admin profile row
func (r *UserRepository) CreateAdmin(ctx context.Context, admin *models.Admin) error {
	query := `
		INSERT INTO admin (admin_id, email, first_name, last_name)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query, admin.AdminID, admin.Email, admin.FirstName, admin.LastName)
	if err != nil {
		return fmt.Errorf("error creating admin: %w", err)
	}

	return nil
}

// CreateLogin inserts a credential row. Password must already be a digest.
func (r *UserRepository) CreateLogin(ctx context.Context, login *models.UserLogin) error {
	query := `
		INSERT INTO user_login (user_id, user_type, password)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.Exec(ctx, query, login.UserID, login.UserType, login.Password)
	if err != nil {
		return fmt.Errorf("error creating login: %w", err)
	}

	return nil
}
