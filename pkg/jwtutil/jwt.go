package jwtutil

import "github.com/golang-jwt/jwt/v5"

// Claims is the part of an auth-service access token this service reads:
// who the caller is and which role they signed in as.
type Claims struct {
	UserID string `json:"uid"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

type JWTConfig struct {
	PubPath  string
	Issuer   string
	Audience string
}
