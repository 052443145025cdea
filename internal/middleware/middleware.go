package middleware

import (
	"frescoguard/domain"
	"frescoguard/internal/api/presenters"
	"frescoguard/pkg/jwt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(jwtService jwt.JWTService) fiber.Handler
		OptionalAuthMiddleware(jwtService jwt.JWTService) fiber.Handler
	}

	middleware struct {
		allowOrigins string
		cookieName   string
	}
)

func NewMiddleware(allowOrigins string, cookieName string) Middleware {
	return &middleware{
		allowOrigins: allowOrigins,
		cookieName:   cookieName,
	}
}

// CORSMiddleware sends credentials, so a "*" origin is answered by echoing the
// caller's Origin instead of the literal wildcard.
func (m *middleware) CORSMiddleware() fiber.Handler {
	config := cors.Config{
		AllowOrigins:     m.allowOrigins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}
	if strings.TrimSpace(m.allowOrigins) == "*" {
		config.AllowOrigins = ""
		config.AllowOriginsFunc = func(string) bool { return true }
	}
	return cors.New(config)
}

// sessionToken reads the session cookie, then falls back to a bearer token.
func (m *middleware) sessionToken(c *fiber.Ctx) string {
	if token := c.Cookies(m.cookieName); token != "" {
		return token
	}
	authHeader := c.Get(fiber.HeaderAuthorization)
	if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

func (m *middleware) authenticate(c *fiber.Ctx, jwtService jwt.JWTService) bool {
	token := m.sessionToken(c)
	if token == "" {
		return false
	}
	userID, role, err := jwtService.GetUserIDByToken(token)
	if err != nil {
		return false
	}
	c.Locals("user_id", userID)
	c.Locals("role", role)
	return true
}

func (m *middleware) AuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !m.authenticate(c, jwtService) {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageUnauthenticated, nil)
		}
		return c.Next()
	}
}

// OptionalAuthMiddleware sets the session locals when present and never rejects.
func (m *middleware) OptionalAuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		m.authenticate(c, jwtService)
		return c.Next()
	}
}
