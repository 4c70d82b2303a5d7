package auth

import "datavisor/internal/domain/models"

// JWTVerifier validates bearer tokens for the HTTP API.
type JWTVerifier interface {
	// VerifyToken validates a JWT token string and returns the parsed claims.
	// Returns domain.ErrUnauthorized if the token is invalid, expired, or has
	// an invalid signature.
	VerifyToken(tokenString string) (*models.Claims, error)

	// Close releases any resources held by the verifier.
	Close() error
}
