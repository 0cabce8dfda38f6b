// Package dto provides Data Transfer Objects for API requests and responses.
package dto

// RegisterRequest represents the request body for POST /register.
type RegisterRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Login    string  `json:"login" validate:"required,min=3"`
	Password string  `json:"password" validate:"required,min=8,password"`
}

// LoginRequest represents the request body for POST /login.
type LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error  string `json:"error"`
	Issues any    `json:"issues,omitempty"`
}

// MessageResponse represents a generic acknowledgment.
type MessageResponse struct {
	Message string `json:"message"`
}
