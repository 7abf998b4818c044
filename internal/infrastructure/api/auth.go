package api

import (
	"context"
	"net/http"

	"vidgram/internal/core/ports"
)

// Register creates a new account. No token is attached.
func (c *Client) Register(ctx context.Context, params ports.RegisterParams) error {
	_, err := c.do(ctx, "register", http.MethodPost, "/auth/register", params, "")
	return err
}

// Login exchanges credentials for a token and the user record.
func (c *Client) Login(ctx context.Context, creds ports.Credentials) (*ports.LoginResult, error) {
	raw, err := c.do(ctx, "login", http.MethodPost, "/auth/login", creds, "")
	if err != nil {
		return nil, err
	}

	var result ports.LoginResult
	if err := decode(raw, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Logout invalidates the token server-side. Callers treat this as
// best-effort; the session is cleared locally regardless.
func (c *Client) Logout(ctx context.Context, token string) error {
	_, err := c.do(ctx, "logout", http.MethodPost, "/auth/logout", nil, token)
	return err
}
