package services

import (
	"fmt"
	"time"

	"github.com/dkaya/collegedb/internal/pkg/apperrors"
	"github.com/dkaya/collegedb/internal/pkg/dberrors"
)

// Services defined in this package:
// - AuthService: credential checks and profile lookup for login
// - StudentService: student CRUD, creation/deletion cascades, photo handling
// - DepartmentService, CourseService: plain CRUD
// - EnrollmentService, GradeService: per-student listings and writes
// - CollegeIDService: identity card CRUD
// - AddressService: addresses attached to identity cards

const dateLayout = "2006-01-02"

// parseDate parses a YYYY-MM-DD request field
func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewBadRequestError(
			fmt.Sprintf("invalid %s: expected YYYY-MM-DD", field))
	}
	return t, nil
}

// classifyWriteError translates store-level constraint violations into client
// errors carrying the store's message as detail. Unique violations map to
// conflicts, other integrity violations (foreign keys) to bad requests.
// Anything else passes through as a server-side failure.
func classifyWriteError(err error) error {
	if err == nil {
		return nil
	}

	detail := dberrors.ConstraintDetail(err)
	if detail == "" {
		detail = err.Error()
	}

	switch {
	case dberrors.IsUniqueViolation(err):
		return apperrors.NewConflictError(detail)
	case dberrors.IsConstraintViolation(err):
		return apperrors.NewBadRequestError(detail)
	default:
		return err
	}
}
