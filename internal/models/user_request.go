package models

// CreateUserRequest represents the request body for creating a user
type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"` // Gin validation: required and RFC mailbox syntax
}

// UpdateUserRequest represents the request body for updating a user.
// Both fields are optional; an empty string is treated as "not supplied".
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty" binding:"omitempty,email"`
}
