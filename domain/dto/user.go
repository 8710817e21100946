package dto

import (
	"github.com/google/uuid"

	"todolist-api/pkg/datetime"
)

type UserResponse struct {
	ID              uuid.UUID               `json:"id"`
	Name            string                  `json:"name"`
	Email           string                  `json:"email"`
	EmailVerifiedAt *datetime.FormattedDate `json:"email_verified_at"`
	CreatedAt       datetime.FormattedDate  `json:"created_at"`
	UpdatedAt       datetime.FormattedDate  `json:"updated_at"`
}
