package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// UserRole distinguishes the two sides of the board.
type UserRole string

// User roles.
const (
	RoleCandidate UserRole = "candidate"
	RoleEmployer  UserRole = "employer"
)

// User represents an account that can authenticate against the API.
// Employer accounts carry the company they act for.
type User struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	Role         UserRole   `json:"role"`
	CompanyID    *uuid.UUID `json:"company_id,omitempty"`
	PasswordHash string     `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
}

// RegisterRequest represents a registration request.
type RegisterRequest struct {
	Name      string     `json:"name" validate:"required,min=1"`
	Email     string     `json:"email" validate:"required,email"`
	Password  string     `json:"password" validate:"required,min=8"`
	Role      UserRole   `json:"role" validate:"required,oneof=candidate employer"`
	CompanyID *uuid.UUID `json:"company_id,omitempty"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the authenticated user and a bearer token.
type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// Validate validates the RegisterRequest using the validator.
func (r *RegisterRequest) Validate() error {
	return validator.New().Struct(r)
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	return validator.New().Struct(r)
}
