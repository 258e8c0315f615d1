package models

// Department represents an academic department
type Department struct {
	DeptID   string `json:"dept_id"`
	DeptName string `json:"dept_name"`
	HODName  string `json:"hod_name"`
}
