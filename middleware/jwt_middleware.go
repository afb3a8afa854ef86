package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"

	"rss-reader/config"
	"rss-reader/domain"
	"rss-reader/utils/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const backendTokenHeader = "X-Alt-Backend-Token"

var (
	errMissingToken    = errors.New("missing backend token")
	errInvalidToken    = errors.New("invalid backend token")
	errInvalidClaims   = errors.New("invalid claims")
	errInvalidIssuer   = errors.New("invalid issuer")
	errInvalidAudience = errors.New("invalid audience")
	errSecretMissing   = errors.New("backend token secret not configured")
)

// BackendClaims are the claims of the token issued by the auth service.
// Subject carries the user id.
type BackendClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// JWTAuthMiddleware authenticates requests with an HMAC-signed backend token.
type JWTAuthMiddleware struct {
	logger   *slog.Logger
	secret   []byte
	issuer   string
	audience string
}

func NewJWTAuthMiddleware(logger *slog.Logger, cfg config.AuthConfig) *JWTAuthMiddleware {
	secret := []byte(cfg.BackendTokenSecret)
	if len(secret) == 0 && logger != nil {
		logger.Warn("BACKEND_TOKEN_SECRET not set, JWT auth will deny all requests")
	}

	return &JWTAuthMiddleware{
		logger:   logger,
		secret:   secret,
		issuer:   cfg.BackendTokenIssuer,
		audience: cfg.BackendTokenAudience,
	}
}

// RequireJWT rejects the request with 401 unless a valid token is present and
// stores the caller as a domain.UserContext.
func (m *JWTAuthMiddleware) RequireJWT() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := m.validateJWT(c)
			if err != nil {
				switch {
				case errors.Is(err, errMissingToken):
					return echo.NewHTTPError(http.StatusUnauthorized, "missing backend token")
				case errors.Is(err, errInvalidIssuer), errors.Is(err, errInvalidAudience):
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token issuer or audience")
				case errors.Is(err, errInvalidToken), errors.Is(err, errInvalidClaims):
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid backend token")
				default:
					if m.logger != nil {
						m.logger.ErrorContext(c.Request().Context(), "JWT validation error", "error", err)
					}
					return echo.NewHTTPError(http.StatusUnauthorized, "authentication failed")
				}
			}

			ctx := domain.SetUserContext(c.Request().Context(), user)
			ctx = context.WithValue(ctx, logger.UserIDKey, user.UserID.String())
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

func (m *JWTAuthMiddleware) validateJWT(c echo.Context) (*domain.UserContext, error) {
	tokenStr := c.Request().Header.Get(backendTokenHeader)
	if tokenStr == "" {
		return nil, errMissingToken
	}
	if len(m.secret) == 0 {
		return nil, errSecretMissing
	}

	parsed, err := jwt.ParseWithClaims(tokenStr, &BackendClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, errInvalidToken
	}

	claims, ok := parsed.Claims.(*BackendClaims)
	if !ok {
		return nil, errInvalidClaims
	}
	if claims.Issuer != m.issuer {
		return nil, errInvalidIssuer
	}
	if !slices.Contains([]string(claims.Audience), m.audience) {
		return nil, errInvalidAudience
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil || userID == uuid.Nil {
		return nil, fmt.Errorf("%w: subject is not a user id", errInvalidClaims)
	}

	return &domain.UserContext{
		UserID: userID,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}
