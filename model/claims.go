package model

import "github.com/golang-jwt/jwt/v5"

// Role distinguishes registrant tokens from admin console tokens.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

type AppClaims struct {
	Role Role `json:"role"`
	jwt.RegisteredClaims
}
