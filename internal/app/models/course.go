package models

// Course represents a course offered by a department
type Course struct {
	CourseID   string `json:"course_id"`
	CourseName string `json:"course_name"`
	Credits    int    `json:"credits"`
	DeptID     string `json:"dept_id"`
}
