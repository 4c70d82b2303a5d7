package models

import "github.com/golang-jwt/jwt/v5"

// Claims is the JWT payload accepted by the API. Only the registered claims
// are checked; Scope and Email are passed through for logging.
type Claims struct {
	jwt.RegisteredClaims        // Standard JWT claims (sub, iss, aud, exp, iat, etc.)
	Scope                string `json:"scope,omitempty"`
	Email                string `json:"email,omitempty"`
}

// GetUserID returns the caller id from the subject claim.
func (c *Claims) GetUserID() string {
	return c.Subject
}
