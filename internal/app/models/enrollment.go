package models

import "time"

// Enrollment links a student to a course for a term. The (student, course)
// pair is the primary key.
type Enrollment struct {
	StudentID      string    `json:"student_id"`
	CourseID       string    `json:"course_id"`
	SemesterNo     int       `json:"semester_no"`
	EnrollmentDate time.Time `json:"enrollment_date"`
	AcademicYear   string    `json:"academic_year"`

	// Populated by list queries from the joined course row; not stored.
	// Credits has no omitempty so a zero-credit course still serializes.
	CourseName string `json:"course_name,omitempty"`
	Credits    int    `json:"credits"`
}
