package models

import "github.com/golang-jwt/jwt/v4"

// PortalClaims is the payload of the portal session token.
type PortalClaims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}
