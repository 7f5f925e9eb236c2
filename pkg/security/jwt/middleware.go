package jwt

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by the middleware.
const (
	LocalSessionID = "sessionId"
	LocalEmail     = "email"
)

// NewAuthMiddleware returns a Fiber middleware that validates Bearer JWT (HS256).
// On success sets the session id (subject) into c.Locals("sessionId").
func NewAuthMiddleware(secret, expectedIssuer string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "missing Authorization header"})
		}
		tokenStr := bearer(authHeader)
		if tokenStr == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "empty token"})
		}
		claims, err := Parse(tokenStr, secret, expectedIssuer)
		if err != nil || claims == nil {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "invalid or expired token"})
		}
		c.Locals(LocalSessionID, claims.Subject)
		c.Locals(LocalEmail, claims.Email)
		return c.Next()
	}
}

// bearer supports both "Bearer <token>" and "<token>" (no prefix).
func bearer(header string) string {
	header = strings.TrimSpace(header)
	if scheme, rest, ok := strings.Cut(header, " "); ok && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(rest)
	}
	return header
}
