// Package middleware provides HTTP middleware for the fiber app, currently
// the demo session token check.
package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"paisa/internal/models"
	"paisa/internal/utils/response"
)

// ClaimsKey is the fiber locals key the validated claims are stored under.
const ClaimsKey = "claims"

// AuthMiddleware validates the Bearer session token and puts the claims into
// the request locals. The token is a demo credential minted at login, not a
// real authentication scheme.
type AuthMiddleware struct {
	secret []byte
	logger *zap.Logger
}

func NewAuthMiddleware(secret string, logger *zap.Logger) *AuthMiddleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthMiddleware{secret: []byte(secret), logger: logger}
}

func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return response.Unauthorized(c)
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		m.logger.Debug("malformed authorization header")
		return response.Unauthorized(c)
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	token, err := jwt.ParseWithClaims(tokenString, &models.UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		m.logger.Debug("token validation failed", zap.Error(err))
		return response.Unauthorized(c)
	}

	claims, ok := token.Claims.(*models.UserClaims)
	if !ok {
		return response.Unauthorized(c)
	}

	c.Locals(ClaimsKey, claims)
	return c.Next()
}

// IssueSessionToken mints the demo session token returned by login.
func IssueSessionToken(secret string, user *models.User, ttl time.Duration, now time.Time) (string, error) {
	claims := models.UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: user.ID,
		Phone:  user.Phone,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
