package client

import (
	"context"
	"net/http"

	"todolist-api/domain/dto"
)

// Register creates an account and keeps the returned token
func (c *Client) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	if _, err := c.do(ctx, http.MethodPost, "/auth/register", nil, req, &out); err != nil {
		return nil, err
	}
	c.SetToken(out.Token)
	return &out, nil
}

// Login keeps the returned token for later calls
func (c *Client) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	if _, err := c.do(ctx, http.MethodPost, "/auth/login", nil, req, &out); err != nil {
		return nil, err
	}
	c.SetToken(out.Token)
	return &out, nil
}

// Logout revokes the current token. The local token is dropped even when
// the server call fails.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
	c.SetToken("")
	return err
}

func (c *Client) Refresh(ctx context.Context) (*dto.TokenResponse, error) {
	var out dto.TokenResponse
	if _, err := c.do(ctx, http.MethodPost, "/auth/refresh", nil, nil, &out); err != nil {
		return nil, err
	}
	c.SetToken(out.Token)
	return &out, nil
}

func (c *Client) Me(ctx context.Context) (*dto.UserResponse, error) {
	var out dto.UserResponse
	if _, err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
