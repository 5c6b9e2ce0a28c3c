package models

import "github.com/golang-jwt/jwt/v5"

// CustomClaims represents the custom claims in our JWT tokens
type CustomClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Email     string `json:"email,omitempty"`
	TokenType string `json:"token_type"`
}

// Identity is the authenticated caller resolved from a bearer token.
// Every data-access operation is scoped to it.
type Identity struct {
	UserID string
	Email  string
}
