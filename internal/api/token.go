package api

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/porthealth/porthealth-desktop/internal/model"
)

// ErrNoToken is returned when there is no token to inspect
var ErrNoToken = errors.New("api: empty token")

// Claims are the fields the backend puts in its session token
type Claims struct {
	UserID    int64
	Role      model.Role
	ExpiresAt time.Time
}

// TokenClaims reads the claims of a session token without verifying its
// signature. The signing secret stays on the server.
func TokenClaims(token string) (Claims, error) {
	if token == "" {
		return Claims{}, ErrNoToken
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return Claims{}, fmt.Errorf("api: parse token: %w", err)
	}

	var out Claims
	switch id := claims["id"].(type) {
	case float64:
		out.UserID = int64(id)
	case string:
		out.UserID, _ = strconv.ParseInt(id, 10, 64)
	}
	if role, ok := claims["role"].(string); ok {
		out.Role = model.Role(role)
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}

// TokenExpired reports whether token carries an expiry at or before now.
// Tokens that cannot be read are left to the server to reject.
func TokenExpired(token string, now time.Time) bool {
	claims, err := TokenClaims(token)
	if err != nil || claims.ExpiresAt.IsZero() {
		return false
	}
	return !now.Before(claims.ExpiresAt)
}
