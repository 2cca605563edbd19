package dto

import "time"

// CreateUserRequest payload for POST /users.
type CreateUserRequest struct {
	Name            string `json:"name" validate:"required,min=1,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6,max=32"`
	PasswordConfirm string `json:"passwordConfirm" validate:"required,min=6,max=32"`
}

// UpdateUserRequest payload for PUT/PATCH /users/:id.
type UpdateUserRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Email string `json:"email" validate:"required,email"`
}

// ChangePasswordRequest payload for POST/PATCH /users/:id/change-password.
type ChangePasswordRequest struct {
	OldPassword     string `json:"oldPassword" validate:"required,min=6,max=32"`
	NewPassword     string `json:"newPassword" validate:"required,min=6,max=32"`
	PasswordConfirm string `json:"passwordConfirm" validate:"required,min=6,max=32"`
}

// CreatedUserResponse echoes the created account. The new id is deliberately
// absent; clients follow up with a lookup.
type CreatedUserResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserIDResponse acknowledges a mutation on a single account.
type UserIDResponse struct {
	ID string `json:"id"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
