package types

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenClaims represents the claims in a JWT session token
type TokenClaims struct {
	jwt.RegisteredClaims
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Image  string    `json:"image,omitempty"`
}

// Session identifies the authenticated caller of a service operation. It is
// built once by the auth middleware and passed explicitly into every service
// call; nothing reads auth state out of band.
type Session struct {
	UserID uuid.UUID
	Name   string
	Email  string
	Image  string
}

// NewSession builds a Session from validated token claims
func NewSession(claims *TokenClaims) *Session {
	return &Session{
		UserID: claims.UserID,
		Name:   claims.Name,
		Email:  claims.Email,
		Image:  claims.Image,
	}
}
