package models

// User types stored in user_login.user_type
const (
	UserTypeAdmin   = "admin"
	UserTypeStudent = "student"
)

// UserLogin represents a credential row. Password holds the SHA-256 digest,
// never plaintext.
type UserLogin struct {
	UserID   string `json:"user_id"`
	UserType string `json:"user_type"`
	Password string `json:"-"`
}

// Admin represents an administrator profile
type Admin struct {
	AdminID   string `json:"admin_id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
