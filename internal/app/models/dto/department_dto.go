package dto

// CreateDepartmentRequest creates a department
type CreateDepartmentRequest struct {
	DeptID   string `json:"dept_id" binding:"required" example:"D01"`
	DeptName string `json:"dept_name" binding:"required" example:"Computer Science"`
	HODName  string `json:"hod_name" binding:"required" example:"Dr. Grace Hopper"`
}
