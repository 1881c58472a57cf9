package models

import "github.com/golang-jwt/jwt/v5"

// UserClaims carries the authenticated identity through a request.
// The middleware resolves these once per request; everything below the
// handler layer receives the owner ID as an explicit parameter.
type UserClaims struct {
	jwt.RegisteredClaims
	UserID       uint   `json:"user_id"`
	Email        string `json:"email"`
	TokenVersion int    `json:"token_version"`
}
