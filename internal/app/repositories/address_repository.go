package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dkaya/collegedb/internal/app/models"
)

// AddressRepository handles database operations for identity card addresses
type AddressRepository struct {
	db *pgxpool.Pool
}

// NewAddressRepository creates a new address repository
func NewAddressRepository(db *pgxpool.Pool) *AddressRepository {
	return &AddressRepository{
		db: db,
	}
}

// GetByCollegeID retrieves the address attached to an identity card. Returns
// (nil, nil) when absent.
func (r *AddressRepository) GetByCollegeID(ctx context.Context, collegeIDNumber string) (*models.Address, error) {
	query := `
		SELECT college_id_number, street, city, state, zip
		FROM address
		WHERE college_id_number = $1
	`

	var address models.Address
	err := r.db.QueryRow(ctx, query, collegeIDNumber).Scan(
		&address.CollegeIDNumber,
		&address.Street,
		&address.City,
		&address.State,
		&address.Zip,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving address: %w", err)
	}

	return &address, nil
}

// Create creates a new address row
func (r *AddressRepository) Create(ctx context.Context, address *models.Address) error {
	query := `
		INSERT INTO address (college_id_number, street, city, state, zip)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		address.CollegeIDNumber, address.Street, address.City, address.State, address.Zip)
	return err
}

// Delete deletes an address by its identity card number. Deleting a missing
// address is not an error.
func (r *AddressRepository) Delete(ctx context.Context, collegeIDNumber string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM address WHERE college_id_number = $1`, collegeIDNumber)
	if err != nil {
		return fmt.Errorf("error deleting address: %w", err)
	}

	return nil
}
