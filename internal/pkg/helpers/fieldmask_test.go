package helpers

import (
	"errors"
	"testing"

	"github.com/dkaya/collegedb/internal/pkg/apperrors"
)

func TestUpdateBuilderBuild(t *testing.T) {
	b := NewUpdateBuilder("student", "first_name", "last_name", "email", "phone")

	if err := b.Set("first_name", "Ada"); err != nil {
		t.Fatalf("Set(first_name) returned error: %v", err)
	}
	if err := b.Set("email", "ada@college.edu"); err != nil {
		t.Fatalf("Set(email) returned error: %v", err)
	}

	query, args, err := b.Build("student_id", "S001")
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	wantQuery := "UPDATE student SET first_name = $1, email = $2 WHERE student_id = $3"
	if query != wantQuery {
		t.Errorf("Build query = %q, want %q", query, wantQuery)
	}

	wantArgs := []interface{}{"Ada", "ada@college.edu", "S001"}
	if len(args) != len(wantArgs) {
		t.Fatalf("Build args length = %d, want %d", len(args), len(wantArgs))
	}
	for i := range wantArgs {
		if args[i] != wantArgs[i] {
			t.Errorf("Build args[%d] = %v, want %v", i, args[i], wantArgs[i])
		}
	}
}

func TestUpdateBuilderRejectsUnknownColumn(t *testing.T) {
	b := NewUpdateBuilder("student", "first_name")

	if err := b.Set("password", "x"); err == nil {
		t.Error("Set accepted a column outside the allow-list")
	}
	if !b.Empty() {
		t.Error("rejected column was still recorded")
	}
}

func TestUpdateBuilderEmptyBuild(t *testing.T) {
	b := NewUpdateBuilder("student", "first_name")

	_, _, err := b.Build("student_id", "S001")
	if !errors.Is(err, apperrors.ErrNoFieldsToUpdate) {
		t.Errorf("Build on empty builder returned %v, want ErrNoFieldsToUpdate", err)
	}
}

func TestUpdateBuilderSetIfPresent(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		wantEmpty bool
	}{
		{"empty value skipped", "", true},
		{"non-empty value recorded", "Lovelace", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewUpdateBuilder("student", "last_name")
			if err := b.SetIfPresent("last_name", tt.value); err != nil {
				t.Fatalf("SetIfPresent returned error: %v", err)
			}
			if b.Empty() != tt.wantEmpty {
				t.Errorf("Empty() = %v, want %v", b.Empty(), tt.wantEmpty)
			}
		})
	}
}
