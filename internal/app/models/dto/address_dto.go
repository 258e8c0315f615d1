package dto

// CreateAddressRequest attaches an address to a student's identity card. The
// card number is resolved from the student.
type CreateAddressRequest struct {
	StudentID string `json:"student_id" binding:"required" example:"S1001"`
	Street    string `json:"street" binding:"required" example:"42 College Ave"`
	City      string `json:"city" binding:"required" example:"Springfield"`
	State     string `json:"state" binding:"required" example:"IL"`
	ZipCode   string `json:"zip_code" binding:"required" example:"62701"`
}
