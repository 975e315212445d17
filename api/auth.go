package api

import (
	"context"
)

// TokenPair is the access/refresh token pair issued by the backend.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Token endpoints. These are the only calls made without a bearer credential,
// alongside Signup.
const (
	tokenPath        = "/api/token/"
	tokenRefreshPath = "/api/token/refresh/"
	signupPath       = "/api/signup/"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

// ObtainToken exchanges a username and password for a fresh token pair.
func (c *Client) ObtainToken(ctx context.Context, username, password string) (*TokenPair, error) {
	var pair TokenPair
	if err := c.Post(ctx, "", tokenPath, credentialsRequest{Username: username, Password: password}, &pair); err != nil {
		return nil, err
	}
	return &pair, nil
}

// RefreshToken mints a new token pair from a refresh token.
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	var pair TokenPair
	if err := c.Post(ctx, "", tokenRefreshPath, refreshRequest{Refresh: refreshToken}, &pair); err != nil {
		return nil, err
	}
	return &pair, nil
}

// Signup registers a new user account. The caller still has to log in afterwards.
func (c *Client) Signup(ctx context.Context, username, password string) error {
	return c.Post(ctx, "", signupPath, credentialsRequest{Username: username, Password: password}, nil)
}
