package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"frescoguard/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cookieName = "frescoguard_session"

func newTestApp(t *testing.T) (*fiber.App, jwt.JWTService) {
	t.Helper()
	jwtService := jwt.NewJWTService("test-secret")
	m := NewMiddleware("http://localhost:3000", cookieName)

	app := fiber.New()
	app.Use(m.CORSMiddleware())
	whoami := func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		return c.JSON(fiber.Map{"user_id": userID})
	}
	app.Get("/private", m.AuthMiddleware(jwtService), whoami)
	app.Get("/public", m.OptionalAuthMiddleware(jwtService), whoami)
	return app, jwtService
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func TestAuthMiddleware(t *testing.T) {
	app, jwtService := newTestApp(t)
	token, err := jwtService.GenerateTokenUser("user-1", "user")
	require.NoError(t, err)

	tests := []struct {
		name   string
		setup  func(r *http.Request)
		status int
		userID string
	}{
		{name: "no credentials", setup: func(*http.Request) {}, status: fiber.StatusUnauthorized},
		{
			name:   "session cookie",
			setup:  func(r *http.Request) { r.AddCookie(&http.Cookie{Name: cookieName, Value: token}) },
			status: fiber.StatusOK,
			userID: "user-1",
		},
		{
			name:   "bearer token",
			setup:  func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) },
			status: fiber.StatusOK,
			userID: "user-1",
		},
		{
			name:   "tampered token",
			setup:  func(r *http.Request) { r.AddCookie(&http.Cookie{Name: cookieName, Value: token + "x"}) },
			status: fiber.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			tt.setup(req)
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			body := decode(t, resp)
			if tt.status == fiber.StatusUnauthorized {
				assert.Equal(t, "No autenticado. Por favor inicia sesión", body["error"])
				return
			}
			assert.Equal(t, tt.userID, body["user_id"])
		})
	}
}

func TestOptionalAuthMiddleware(t *testing.T) {
	app, jwtService := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/public", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "", decode(t, resp)["user_id"])

	token, err := jwtService.GenerateTokenUser("user-2", "user")
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/public", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: token})
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "user-2", decode(t, resp)["user_id"])
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	app, _ := newTestApp(t)
	req := httptest.NewRequest(http.MethodOptions, "/private", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "GET")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
}

func TestCORSWildcardOrigin(t *testing.T) {
	var handler fiber.Handler
	require.NotPanics(t, func() {
		handler = NewMiddleware("*", cookieName).CORSMiddleware()
	})

	app := fiber.New()
	app.Use(handler)
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://frescoguard.example")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "https://frescoguard.example", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
}
