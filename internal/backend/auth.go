package backend

import (
	"context"

	"github.com/fun2learn/fun2learn-web/internal/dto"
)

// AuthAPI covers authentication and identity lookups.
type AuthAPI interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	Signup(ctx context.Context, req dto.SignupRequest) (dto.SignupResponse, error)
	Me(ctx context.Context, token string) (dto.User, error)
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error) {
	var resp dto.LoginResponse
	err := c.postJSON(ctx, "auth.login", "/auth/login", "", req, &resp, "Login failed")
	return resp, err
}

// Signup registers a new user.
func (c *Client) Signup(ctx context.Context, req dto.SignupRequest) (dto.SignupResponse, error) {
	var resp dto.SignupResponse
	err := c.postJSON(ctx, "auth.signup", "/auth/signup", "", req, &resp, "Signup failed")
	return resp, err
}

// userResponse adapts GET /user/me, which returns the bare profile without
// the usual envelope.
type userResponse struct {
	dto.User
}

func (userResponse) IsSuccess() bool        { return true }
func (userResponse) FailureMessage() string { return "" }

// Me fetches the authenticated user's profile.
func (c *Client) Me(ctx context.Context, token string) (dto.User, error) {
	var resp userResponse
	err := c.get(ctx, "user.me", "/user/me", token, &resp, "Failed to load user profile")
	return resp.User, err
}
