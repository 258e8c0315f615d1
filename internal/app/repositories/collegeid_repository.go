package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dkaya/collegedb/internal/app/models"
)

// CollegeIDRepository handles database operations for identity cards
type CollegeIDRepository struct {
	db *pgxpool.Pool
}

// NewCollegeIDRepository creates a new college ID repository
func NewCollegeIDRepository(db *pgxpool.Pool) *CollegeIDRepository {
	return &CollegeIDRepository{
		db: db,
	}
}

// GetAll retrieves all identity cards
func (r *CollegeIDRepository) GetAll(ctx context.Context) ([]*models.CollegeID, error) {
	query := `
		SELECT college_id_number, issue_date, expiry_date, status
		FROM college_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []*models.CollegeID
	for rows.Next() {
		var card models.CollegeID
		if err := rows.Scan(
			&card.CollegeIDNumber,
			&card.IssueDate,
			&card.ExpiryDate,
			&card.Status,
		); err != nil {
			return nil, err
		}
		cards = append(cards, &card)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return cards, nil
}

// GetByNumber retrieves an identity card by number. Returns (nil, nil) when absent.
func (r *CollegeIDRepository) GetByNumber(ctx context.Context, number string) (*models.CollegeID, error) {
	query := `
		SELECT college_id_number, issue_date, expiry_date, status
		FROM college_id
		WHERE college_id_number = $1
	`

	var card models.CollegeID
	err := r.db.QueryRow(ctx, query, number).Scan(
		&card.CollegeIDNumber,
		&card.IssueDate,
		&card.ExpiryDate,
		&card.Status,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving college ID: %w", err)
	}

	return &card, nil
}

// Create creates a new identity card record
func (r *CollegeIDRepository) Create(ctx context.Context, card *models.CollegeID) error {
	query := `
		INSERT INTO college_id (college_id_number, issue_date, expiry_date, status)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query, card.CollegeIDNumber, card.IssueDate, card.ExpiryDate, card.Status)
	return err
}

// Delete deletes an identity card by number. Deleting a missing card is not an error.
func (r *CollegeIDRepository) Delete(ctx context.Context, number string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM college_id WHERE college_id_number = $1`, number)
	if err != nil {
		return fmt.Errorf("error deleting college ID: %w", err)
	}

	return nil
}
