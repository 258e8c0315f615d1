package dto

// MessageResponse represents a standard success response for write endpoints
type MessageResponse struct {
	Message string `json:"message"`
}

// NewMessageResponse creates a success message response
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}

// BannerResponse is the service root banner
type BannerResponse struct {
	Message string `json:"message"`
	Docs    string `json:"docs"`
}
