package services

import (
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dkaya/collegedb/internal/pkg/apperrors"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{"valid date", "2003-05-14", time.Date(2003, 5, 14, 0, 0, 0, 0, time.UTC), false},
		{"wrong format", "14/05/2003", time.Time{}, true},
		{"empty value", "", time.Time{}, true},
		{"date with time suffix", "2003-05-14T10:00:00", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDate("dob", tt.value)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseDate(%q) did not fail", tt.value)
				}
				if !errors.Is(err, apperrors.ErrBadRequest) {
					t.Errorf("parseDate error = %v, want ErrBadRequest", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseDate(%q) returned error: %v", tt.value, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("parseDate(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestClassifyWriteError(t *testing.T) {
	plain := errors.New("connection refused")

	tests := []struct {
		name         string
		err          error
		wantSentinel error
	}{
		{
			name:         "unique violation becomes conflict",
			err:          &pgconn.PgError{Code: "23505", Detail: "Key (student_id)=(S001) already exists."},
			wantSentinel: apperrors.ErrConflict,
		},
		{
			name:         "foreign key violation becomes bad request",
			err:          &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"},
			wantSentinel: apperrors.ErrBadRequest,
		},
		{
			name:         "not null violation becomes bad request",
			err:          &pgconn.PgError{Code: "23502", Message: "null value in column"},
			wantSentinel: apperrors.ErrBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyWriteError(tt.err)
			if !errors.Is(got, tt.wantSentinel) {
				t.Errorf("classifyWriteError = %v, want wrapping %v", got, tt.wantSentinel)
			}
		})
	}

	t.Run("unique violation carries the store detail", func(t *testing.T) {
		got := classifyWriteError(&pgconn.PgError{Code: "23505", Detail: "Key (student_id)=(S001) already exists."})
		if got.Error() != "Key (student_id)=(S001) already exists." {
			t.Errorf("conflict message = %q, want the store detail", got.Error())
		}
	})

	t.Run("non-constraint errors pass through", func(t *testing.T) {
		if got := classifyWriteError(plain); got != plain {
			t.Errorf("classifyWriteError rewrote a non-constraint error: %v", got)
		}
	})

	t.Run("nil stays nil", func(t *testing.T) {
		if got := classifyWriteError(nil); got != nil {
			t.Errorf("classifyWriteError(nil) = %v", got)
		}
	})
}
