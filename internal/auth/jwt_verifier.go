package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"

	"datavisor/internal/domain"
	"datavisor/internal/domain/models"
)

// allowedAlgorithms prevents algorithm confusion: asymmetric signatures only.
var allowedAlgorithms = []string{"RS256", "ES256"}

// JWKSVerifier implements JWTVerifier with keys from a JWKS endpoint.
type JWKSVerifier struct {
	keyfunc jwt.Keyfunc
	cancel  context.CancelFunc
	logger  *slog.Logger
}

// NewJWTVerifier creates a verifier that fetches public keys from jwksURL.
// keyfunc caches the key set and refreshes it in the background until Close.
func NewJWTVerifier(jwksURL string, logger *slog.Logger) (JWTVerifier, error) {
	if jwksURL == "" {
		return nil, errors.New("JWKS URL cannot be empty")
	}

	ctx, cancel := context.WithCancel(context.Background())
	jwks, err := keyfunc.NewDefaultCtx(ctx, []string{jwksURL})
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to create JWKS client: %w", err)
	}

	logger.Info("JWT verifier initialized", "jwks_url", jwksURL)

	return &JWKSVerifier{
		keyfunc: jwks.Keyfunc,
		cancel:  cancel,
		logger:  logger,
	}, nil
}

// newVerifierWithKeyfunc builds a verifier around a fixed key lookup.
func newVerifierWithKeyfunc(kf jwt.Keyfunc, logger *slog.Logger) *JWKSVerifier {
	return &JWKSVerifier{keyfunc: kf, cancel: func() {}, logger: logger}
}

// VerifyToken validates a token and extracts its claims.
func (v *JWKSVerifier) VerifyToken(tokenString string) (*models.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Claims{}, v.keyfunc,
		jwt.WithValidMethods(allowedAlgorithms),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		v.logger.Debug("token rejected", "error", err.Error())
		return nil, &domain.UnauthorizedError{Message: "invalid token"}
	}
	if !token.Valid {
		return nil, &domain.UnauthorizedError{Message: "invalid token"}
	}

	claims, ok := token.Claims.(*models.Claims)
	if !ok {
		v.logger.Error("failed to extract claims from token")
		return nil, &domain.UnauthorizedError{Message: "invalid token"}
	}
	if claims.Subject == "" {
		v.logger.Debug("token missing subject claim")
		return nil, &domain.UnauthorizedError{Message: "token has no subject"}
	}

	return claims, nil
}

// Close stops the background key refresh.
func (v *JWKSVerifier) Close() error {
	v.cancel()
	v.logger.Info("JWT verifier closed")
	return nil
}
