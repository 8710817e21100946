package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrMissingToken = errors.New("missing token")
)

const (
	TokenType      = "bearer"
	UserContextKey = "user"
)

type JWTClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// UserContext is the authenticated caller, stored in fiber locals
type UserContext struct {
	ID        uuid.UUID
	Email     string
	Name      string
	TokenID   string
	ExpiresAt time.Time
}

// IssuedToken is a signed token plus its lifetime
type IssuedToken struct {
	Token     string
	TokenID   string
	ExpiresAt time.Time
	ExpiresIn int64 // seconds
}

// GenerateToken signs an HS256 token with a fresh jti
func GenerateToken(userID uuid.UUID, email, name, secret string, ttl time.Duration, now time.Time) (*IssuedToken, error) {
	tokenID := uuid.New().String()
	expiresAt := now.Add(ttl)

	claims := JWTClaims{
		UserID: userID.String(),
		Email:  email,
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return nil, err
	}

	return &IssuedToken{
		Token:     signed,
		TokenID:   tokenID,
		ExpiresAt: expiresAt,
		ExpiresIn: int64(ttl.Seconds()),
	}, nil
}

// ValidateToken verifies signature and expiry and returns the caller
func ValidateToken(tokenString, jwtSecret string) (*UserContext, error) {
	tokenString = strings.TrimSpace(strings.TrimPrefix(tokenString, "Bearer "))
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid || claims.ID == "" || claims.ExpiresAt == nil {
		return nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &UserContext{
		ID:        userID,
		Email:     claims.Email,
		Name:      claims.Name,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// ExtractTokenFromHeader returns the token of a "Bearer <token>" header
func ExtractTokenFromHeader(authHeader string) string {
	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

func GetUserFromContext(c *fiber.Ctx) (*UserContext, error) {
	userCtx, ok := c.Locals(UserContextKey).(*UserContext)
	if !ok || userCtx == nil {
		return nil, errors.New("user not found in context")
	}
	return userCtx, nil
}
