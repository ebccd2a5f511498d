package api

import (
	"context"

	"github.com/MAPO-UPTC/mapo-cli/pkg/models"
)

// Login exchanges credentials for a bearer token and user profile.
// The token is not attached to the client automatically; the caller persists
// it through the session package, which the token source then reads.
func (c *Client) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	req := models.LoginRequest{Email: email, Password: password}
	var resp models.LoginResponse
	if err := c.post(ctx, "/users/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
