package dto

import (
	"time"
)

// Request bodies use snake_case keys, responses camelCase. The password is
// never part of any response type.

type SignUpRequest struct {
	FirstName string `json:"first_name" validate:"required,min=1,max=50"`
	LastName  string `json:"last_name" validate:"required,min=1,max=50"`
	Email     string `json:"email" validate:"required,email,max=100"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
	Role      string `json:"role" validate:"omitempty,max=20"`
}

type RoleResponse struct {
	Name string `json:"name"`
}

type UserResponse struct {
	ID        uint         `json:"id"`
	FirstName string       `json:"firstName"`
	LastName  string       `json:"lastName"`
	Email     string       `json:"email"`
	Role      RoleResponse `json:"role"`
	CreatedAt time.Time    `json:"createdAt"`
}

// UserRef is the short user shape nested inside task responses.
type UserRef struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}
