package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/porthealth/porthealth-desktop/internal/model"
)

// SignupRequest is the body of POST /auth/signup
type SignupRequest struct {
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Password string     `json:"password"`
	Role     model.Role `json:"role"`
}

// ProfileUpdate is the body of PUT /auth/profile
type ProfileUpdate struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Theme string `json:"theme"`
}

// Login authenticates and stores the returned token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*model.Session, error) {
	body, err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     "/auth/login",
		body:     map[string]string{"email": strings.TrimSpace(email), "password": password},
		fallback: "Login failed.",
	})
	if err != nil {
		return nil, err
	}

	session, ok := decodeField[model.Session](body, "session")
	if !ok || !session.Valid() {
		return nil, &Error{Status: http.StatusOK, Message: "Login failed."}
	}

	c.SetToken(session.Token)

	if claims, err := TokenClaims(session.Token); err == nil && !claims.ExpiresAt.IsZero() {
		c.logger.Info("logged in", "user_id", session.User.ID, "role", string(session.User.Role),
			"expires_in", time.Until(claims.ExpiresAt).Round(time.Minute).String())
	} else {
		c.logger.Info("logged in", "user_id", session.User.ID, "role", string(session.User.Role))
	}

	return &session, nil
}

// Signup registers a new account. The caller logs in separately.
func (c *Client) Signup(ctx context.Context, req SignupRequest) error {
	_, err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     "/auth/signup",
		body:     req,
		fallback: "Registration failed.",
	})
	return err
}

// UpdateProfile saves name, email and theme and returns the updated user.
// A success body without a user yields the submitted values.
func (c *Client) UpdateProfile(ctx context.Context, req ProfileUpdate) (*model.User, error) {
	body, err := c.do(ctx, request{
		method:   http.MethodPut,
		path:     "/auth/profile",
		body:     req,
		fallback: "Failed to update profile.",
	})
	if err != nil {
		return nil, err
	}

	user, ok := decodeField[model.User](body, "user")
	if !ok {
		user = model.User{Name: req.Name, Email: req.Email, Theme: req.Theme}
	}
	return &user, nil
}
