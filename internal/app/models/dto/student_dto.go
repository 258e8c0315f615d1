package dto

// CreateStudentRequest creates a student together with its college ID card
// and login credentials.
type CreateStudentRequest struct {
	StudentID string  `json:"student_id" binding:"required" example:"S1001"`
	FirstName string  `json:"first_name" binding:"required" example:"Ada"`
	LastName  string  `json:"last_name" binding:"required" example:"Lovelace"`
	DOB       string  `json:"dob" binding:"required" example:"2003-05-14"`
	Email     string  `json:"email" binding:"required,email" example:"ada@college.edu"`
	Phone     *string `json:"phone" example:"555-0142"`
	DeptID    string  `json:"dept_id" binding:"required" example:"D01"`
	Password  string  `json:"password" binding:"required" example:"secret12"`
}

// UpdateStudentRequest carries a partial update. Only supplied non-empty
// fields are written; absent fields are left untouched.
type UpdateStudentRequest struct {
	FirstName string `json:"first_name" example:"Ada"`
	LastName  string `json:"last_name" example:"Lovelace"`
	Email     string `json:"email" example:"ada@college.edu"`
	Phone     string `json:"phone" example:"555-0142"`
}

// CreateStudentResponse reports the identity card number allocated during
// student creation.
type CreateStudentResponse struct {
	Message   string `json:"message"`
	CollegeID string `json:"college_id"`
}
