package dto

import (
	"strings"

	"todolist-api/pkg/datetime"
)

type RegisterRequest struct {
	Name                 string `json:"name" validate:"required,max=255"`
	Email                string `json:"email" validate:"required,email,max=255"`
	Password             string `json:"password" validate:"required,min=6,max=255"`
	PasswordConfirmation string `json:"password_confirmation" validate:"eqfield=Password"`
}

func (r *RegisterRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// TokenResponse is returned by refresh
type TokenResponse struct {
	Token     string                 `json:"token"`
	TokenType string                 `json:"token_type"`
	ExpiresIn int64                  `json:"expires_in"`
	ExpiresAt datetime.FormattedDate `json:"expires_at"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	User UserResponse `json:"user"`
	TokenResponse
}
