package gateway

import (
	"context"
	"fmt"

	"eduport/models"
)

// AuthResult is the login/register response: a fresh bearer token plus the
// account it belongs to.
type AuthResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type UpdateUserRequest struct {
	FullName string `json:"full_name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

// Login authenticates against the gateway. Bounded by AuthTimeout so a hung
// auth service turns into a timeout toast instead of a stuck spinner.
func (c *Client) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	ctx, cancel := context.WithTimeout(ctx, AuthTimeout)
	defer cancel()

	body := map[string]string{"username": username, "password": password}
	var out AuthResult
	if err := c.do(ctx, "POST", "/api/auth/login", "", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	ctx, cancel := context.WithTimeout(ctx, AuthTimeout)
	defer cancel()

	var out AuthResult
	if err := c.do(ctx, "POST", "/api/auth/register", "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me validates a bearer token and returns the account behind it.
func (c *Client) Me(ctx context.Context, token string) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, "GET", "/api/users/me", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateUser(ctx context.Context, token string, id int, req UpdateUserRequest) (*models.User, error) {
	var out struct {
		User models.User `json:"user"`
	}
	if err := c.do(ctx, "PUT", fmt.Sprintf("/api/users/%d", id), token, req, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *Client) DeleteUser(ctx context.Context, token string, id int) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/api/users/%d", id), token, nil, nil)
}
