package api

import (
	"context"
	"fmt"
)

// TokenPair is an access/refresh token pair from the token endpoint.
type TokenPair struct {
	Access  string
	Refresh string
}

// ObtainToken exchanges credentials for a token pair.
func (c *Client) ObtainToken(ctx context.Context, username, password string) (*TokenPair, error) {
	var resp tokenResponse
	if err := c.post(ctx, "/api/token/", tokenRequest{Username: username, Password: password}, &resp); err != nil {
		return nil, fmt.Errorf("obtain token: %w", err)
	}
	return &TokenPair{Access: resp.Access, Refresh: resp.Refresh}, nil
}

// RefreshToken exchanges a refresh token for a fresh access token.
func (c *Client) RefreshToken(ctx context.Context, refresh string) (string, error) {
	var resp refreshResponse
	if err := c.post(ctx, "/api/token/refresh/", refreshRequest{Refresh: refresh}, &resp); err != nil {
		return "", fmt.Errorf("refresh token: %w", err)
	}
	return resp.Access, nil
}
