package models

import "github.com/golang-jwt/jwt/v5"

// UserClaims is the demo session token payload minted at login.
type UserClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Phone  string `json:"phone"`
}
