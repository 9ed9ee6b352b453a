// Package auth turns the persisted session token into an explicit
// identity value. The core never reads ambient login state; callers pass
// the Identity into the catalog and review components at call time.
package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin marks users allowed to mutate the movie catalog itself.
const RoleAdmin = "admin"

// ErrInvalidToken is returned when the session token cannot be verified.
var ErrInvalidToken = errors.New("invalid token")

// Identity is the authenticated user as carried in the session token.
type Identity struct {
	UserID   string
	Username string
	Role     string
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool { return i.Role == RoleAdmin }

// ParseToken verifies an HMAC-signed session token and extracts the
// identity claims.
func ParseToken(tokenString string, secret []byte) (Identity, error) {
	token, err := jwt.Parse(
		tokenString,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return secret, nil
		},
	)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	var id Identity
	if v, ok := claims["userId"].(string); ok {
		id.UserID = v
	}
	if v, ok := claims["username"].(string); ok {
		id.Username = v
	}
	if v, ok := claims["role"].(string); ok {
		id.Role = v
	}
	if id.UserID == "" {
		return Identity{}, ErrInvalidToken
	}
	return id, nil
}
