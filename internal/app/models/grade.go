package models

// Grade records a student's result for a course in a given semester. The
// (student, course, semester) triple is the primary key.
type Grade struct {
	StudentID   string  `json:"student_id"`
	CourseID    string  `json:"course_id"`
	SemesterNo  int     `json:"semester_no"`
	Marks       float64 `json:"marks"`
	GradeLetter string  `json:"grade_letter"`

	// Populated by list queries from the joined course row; not stored.
	// Credits has no omitempty so a zero-credit course still serializes.
	CourseName string `json:"course_name,omitempty"`
	Credits    int    `json:"credits"`
}
