package jwt

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/artem13815/resume-analyzer/api/http/presenter"
)

// NewAuthMiddleware returns a Fiber middleware that validates Bearer JWT (HS256).
// On success sets the client (subject) into c.Locals("client") and the publish flag into c.Locals("canPublish").
func NewAuthMiddleware(secret, expectedIssuer string) fiber.Handler {
	secretBytes := []byte(secret)
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return presenter.Error(c, http.StatusUnauthorized, "missing Authorization header")
		}
		// Support both "Bearer <token>" and "<token>" (no prefix).
		tokenStr := strings.TrimSpace(authHeader)
		if scheme, rest, ok := strings.Cut(tokenStr, " "); ok && strings.EqualFold(scheme, "Bearer") {
			tokenStr = strings.TrimSpace(rest)
		}
		if tokenStr == "" {
			return presenter.Error(c, http.StatusUnauthorized, "empty token")
		}
		token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
			return secretBytes, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
		if err != nil || !token.Valid {
			return presenter.Error(c, http.StatusUnauthorized, "invalid or expired token")
		}
		claims, ok := token.Claims.(*Claims)
		if !ok {
			return presenter.Error(c, http.StatusUnauthorized, "invalid token claims")
		}
		if expectedIssuer != "" && claims.Issuer != expectedIssuer {
			return presenter.Error(c, http.StatusUnauthorized, "invalid token issuer")
		}
		c.Locals("client", claims.Subject)
		c.Locals("canPublish", claims.CanPublish)
		return c.Next()
	}
}

// RequirePublisher rejects requests whose token lacks the publish flag.
func RequirePublisher() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, _ := c.Locals("canPublish").(bool); !ok {
			return presenter.Error(c, http.StatusForbidden, "token is not allowed to publish vacancies")
		}
		return c.Next()
	}
}
