package dto

// LoginRequest is the login payload for both admin and student users
type LoginRequest struct {
	UserID   string `json:"userId" binding:"required" example:"admin001"`
	Password string `json:"password" binding:"required" example:"admin123"`
	UserType string `json:"userType" binding:"required,oneof=admin student" example:"admin"`
}

// LoginResponse is the flat profile returned on successful login. FirstName
// is null when the credential row matched but no profile row was found.
type LoginResponse struct {
	UserID    string  `json:"userId" example:"admin001"`
	UserType  string  `json:"userType" example:"admin"`
	FirstName *string `json:"first_name" example:"System"`
}
