package dto

// CreateGradeRequest records a grade for a student, course and semester.
// Marks is a pointer so that a legitimate mark of zero is distinguishable
// from an absent field.
type CreateGradeRequest struct {
	StudentID   string   `json:"student_id" binding:"required" example:"S1001"`
	CourseID    string   `json:"course_id" binding:"required" example:"C101"`
	SemesterNo  int      `json:"semester_no" binding:"required" example:"1"`
	Marks       *float64 `json:"marks" binding:"required" example:"87.5"`
	GradeLetter string   `json:"grade_letter" binding:"required" example:"A"`
}

// UpdateGradeRequest overwrites marks and letter for an existing grade row
type UpdateGradeRequest struct {
	Marks       *float64 `json:"marks" binding:"required" example:"91.0"`
	GradeLetter string   `json:"grade_letter" binding:"required" example:"A"`
}
