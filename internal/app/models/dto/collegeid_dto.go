package dto

// CreateCollegeIDRequest creates an identity card record directly, outside of
// student creation.
type CreateCollegeIDRequest struct {
	CollegeIDNumber string `json:"college_id_number" binding:"required" example:"CID9001"`
	IssueDate       string `json:"issue_date" binding:"required" example:"2025-09-01"`
	ExpiryDate      string `json:"expiry_date" binding:"required" example:"2029-09-01"`
	Status          string `json:"status" binding:"required" example:"Active"`
}
