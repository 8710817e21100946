package services

import (
	"context"

	"github.com/google/uuid"

	"todolist-api/domain/dto"
	"todolist-api/domain/models"
	"todolist-api/pkg/utils"
)

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, *utils.IssuedToken, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*models.User, *utils.IssuedToken, error)
	Logout(ctx context.Context, caller *utils.UserContext) error
	Refresh(ctx context.Context, caller *utils.UserContext) (*utils.IssuedToken, error)
	Me(ctx context.Context, userID uuid.UUID) (*models.User, error)

	// Authenticate validates a bearer token and rejects revoked ones
	Authenticate(ctx context.Context, token string) (*utils.UserContext, error)
}
