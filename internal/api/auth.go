package api

import (
	"context"
	"errors"
)

// Credentials are exchanged for a token by Login
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
	TOTP     string `json:"totp_passcode,omitempty"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for an API token
func (c *Client) Login(ctx context.Context, creds Credentials) (string, error) {
	body, err := c.post(ctx, "/login", creds)
	if err != nil {
		return "", err
	}
	resp, err := decode[loginResponse]("/login", body)
	if err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", &DecodeError{Path: "/login", Err: errors.New("response has no token")}
	}
	return resp.Token, nil
}
