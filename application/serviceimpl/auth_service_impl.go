package serviceimpl

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"todolist-api/domain/dto"
	"todolist-api/domain/models"
	"todolist-api/domain/ports"
	"todolist-api/domain/repositories"
	"todolist-api/domain/services"
	"todolist-api/pkg/logger"
	"todolist-api/pkg/utils"
)

type AuthServiceImpl struct {
	userRepo  repositories.UserRepository
	blacklist ports.TokenBlacklistPort
	events    ports.EventPublisherPort
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(
	userRepo repositories.UserRepository,
	blacklist ports.TokenBlacklistPort,
	events ports.EventPublisherPort,
	jwtSecret string,
	tokenTTL time.Duration,
) services.AuthService {
	return &AuthServiceImpl{
		userRepo:  userRepo,
		blacklist: blacklist,
		events:    events,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, *utils.IssuedToken, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, nil, err
	}
	if exists {
		logger.WarnContext(ctx, "Email already registered", "email", req.Email)
		return nil, nil, services.NewValidationError("email", "The email has already been taken.")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to hash password", "error", err)
		return nil, nil, err
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, nil, services.NewValidationError("email", "The email has already been taken.")
		}
		logger.ErrorContext(ctx, "Failed to create user", "error", err)
		return nil, nil, err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, nil, err
	}

	logger.InfoContext(ctx, "User registered", "user_id", user.ID, "email", user.Email)
	publish(ctx, s.events, ports.EventUserRegistered, user.ID, user.ID, map[string]any{"email": user.Email})

	return user, token, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, *utils.IssuedToken, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.WarnContext(ctx, "Login failed, unknown email", "email", req.Email)
			return nil, nil, services.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		logger.WarnContext(ctx, "Login failed, wrong password", "user_id", user.ID)
		return nil, nil, services.ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, nil, err
	}

	logger.InfoContext(ctx, "User logged in", "user_id", user.ID)
	return user, token, nil
}

func (s *AuthServiceImpl) Logout(ctx context.Context, caller *utils.UserContext) error {
	if err := s.blacklist.Revoke(ctx, caller.ID, caller.TokenID, caller.ExpiresAt); err != nil {
		logger.ErrorContext(ctx, "Failed to revoke token", "error", err)
		return err
	}
	logger.InfoContext(ctx, "User logged out", "user_id", caller.ID)
	return nil
}

// Refresh issues a new token and revokes the presented one
func (s *AuthServiceImpl) Refresh(ctx context.Context, caller *utils.UserContext) (*utils.IssuedToken, error) {
	user, err := s.Me(ctx, caller.ID)
	if err != nil {
		return nil, err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	if err := s.blacklist.Revoke(ctx, caller.ID, caller.TokenID, caller.ExpiresAt); err != nil {
		logger.ErrorContext(ctx, "Failed to revoke refreshed token", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Token refreshed", "user_id", user.ID)
	return token, nil
}

func (s *AuthServiceImpl) Me(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthServiceImpl) Authenticate(ctx context.Context, token string) (*utils.UserContext, error) {
	caller, err := utils.ValidateToken(token, s.jwtSecret)
	if err != nil {
		return nil, services.ErrInvalidToken
	}

	revoked, err := s.blacklist.IsRevoked(ctx, caller.TokenID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to check token revocation", "error", err)
		return nil, err
	}
	if revoked {
		return nil, services.ErrTokenRevoked
	}

	return caller, nil
}

// issueToken always uses the wall clock, token expiry is checked against it
func (s *AuthServiceImpl) issueToken(user *models.User) (*utils.IssuedToken, error) {
	return utils.GenerateToken(user.ID, user.Email, user.Name, s.jwtSecret, s.tokenTTL, time.Now())
}
