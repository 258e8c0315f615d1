package dto

// CreateEnrollmentRequest enrolls a student in a course
type CreateEnrollmentRequest struct {
	StudentID      string `json:"student_id" binding:"required" example:"S1001"`
	CourseID       string `json:"course_id" binding:"required" example:"C101"`
	SemesterNo     int    `json:"semester_no" binding:"required" example:"1"`
	EnrollmentDate string `json:"enrollment_date" binding:"required" example:"2025-09-01"`
	AcademicYear   string `json:"academic_year" binding:"required" example:"2025-2026"`
}
