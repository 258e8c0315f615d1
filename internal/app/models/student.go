package models

import "time"

// Student represents a student row. Every student owns exactly one college ID
// card and one user_login row of type student.
type Student struct {
	StudentID       string    `json:"student_id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	DOB             time.Time `json:"dob"`
	Email           string    `json:"email"`
	Phone           *string   `json:"phone"`
	DeptID          string    `json:"dept_id"`
	CollegeIDNumber string    `json:"college_id_number"`
}
