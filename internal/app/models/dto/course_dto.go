package dto

// CreateCourseRequest creates a course. Credits is a pointer so that a
// zero-credit course is distinguishable from an absent field.
type CreateCourseRequest struct {
	CourseID   string `json:"course_id" binding:"required" example:"C101"`
	CourseName string `json:"course_name" binding:"required" example:"Data Structures"`
	Credits    *int   `json:"credits" binding:"required" example:"4"`
	DeptID     string `json:"dept_id" binding:"required" example:"D01"`
}
