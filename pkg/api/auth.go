package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/rashidq/quranadmin/pkg/model"
)

// ErrLoginRejected is returned when the backend answers the login request with
// success=false but no message.
var ErrLoginRejected = errors.New("api: login rejected")

// loginResponse is the auth envelope: {success, data:{user, token}} on
// success, {success:false, message} otherwise.
type loginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		User  model.UserProfile `json:"user"`
		Token string            `json:"token"`
	} `json:"data"`
}

// Login authenticates with email and password and returns the profile and
// bearer token. The request itself goes out unauthenticated.
func (c *Client) Login(ctx context.Context, email, password string) (*model.UserProfile, string, error) {
	body := map[string]string{"email": email, "password": password}
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, body, &resp); err != nil {
		return nil, "", err
	}
	if !resp.Success || resp.Data.Token == "" {
		if resp.Message != "" {
			return nil, "", &Error{Status: http.StatusUnauthorized, Message: resp.Message}
		}
		return nil, "", ErrLoginRejected
	}
	user := resp.Data.User
	return &user, resp.Data.Token, nil
}
