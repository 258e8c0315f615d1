package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestViolationChecks(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", Message: "duplicate key"}
	foreignKey := &pgconn.PgError{Code: "23503", Message: "fk violation"}
	notNull := &pgconn.PgError{Code: "23502", Message: "null value"}
	syntax := &pgconn.PgError{Code: "42601", Message: "syntax error"}

	tests := []struct {
		name           string
		err            error
		wantUnique     bool
		wantForeignKey bool
		wantConstraint bool
	}{
		{"unique violation", unique, true, false, true},
		{"foreign key violation", foreignKey, false, true, true},
		{"not null violation", notNull, false, false, true},
		{"syntax error", syntax, false, false, false},
		{"wrapped unique violation", fmt.Errorf("insert failed: %w", unique), true, false, true},
		{"plain error", errors.New("connection refused"), false, false, false},
		{"nil error", nil, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUniqueViolation(tt.err); got != tt.wantUnique {
				t.Errorf("IsUniqueViolation = %v, want %v", got, tt.wantUnique)
			}
			if got := IsForeignKeyViolation(tt.err); got != tt.wantForeignKey {
				t.Errorf("IsForeignKeyViolation = %v, want %v", got, tt.wantForeignKey)
			}
			if got := IsConstraintViolation(tt.err); got != tt.wantConstraint {
				t.Errorf("IsConstraintViolation = %v, want %v", got, tt.wantConstraint)
			}
		})
	}
}

func TestConstraintDetail(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "detail preferred over message",
			err:  &pgconn.PgError{Code: "23505", Message: "duplicate key", Detail: "Key (student_id)=(S001) already exists."},
			want: "Key (student_id)=(S001) already exists.",
		},
		{
			name: "message when detail absent",
			err:  &pgconn.PgError{Code: "23503", Message: "fk violation"},
			want: "fk violation",
		},
		{
			name: "non-pg error yields empty",
			err:  errors.New("connection refused"),
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConstraintDetail(tt.err); got != tt.want {
				t.Errorf("ConstraintDetail = %q, want %q", got, tt.want)
			}
		})
	}
}
