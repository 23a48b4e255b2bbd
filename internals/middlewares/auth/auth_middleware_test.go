package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"

	"everify_backend/internals/configs"
)

func guardedApp(t *testing.T) *fiber.App {
	t.Helper()
	configs.JWTSecret = "test-secret"

	app := fiber.New()
	app.Get("/api/a/ping", AuthMiddleware(), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(AdminIDLocal).(string))
	})
	return app
}

func signToken(t *testing.T, secret string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"admin_id": "7f9c24e8-3b2a-4f10-9d6e-1c5b8a7d4e21",
		"username": "admin",
		"iat":      time.Now().Unix(),
		"exp":      exp.Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return tok
}

func ping(t *testing.T, app *fiber.App, mutate func(*http.Request)) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/a/ping", nil)
	if mutate != nil {
		mutate(req)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAuth_ValidBearer(t *testing.T) {
	app := guardedApp(t)
	tok := signToken(t, "test-secret", time.Now().Add(time.Hour))

	resp := ping(t, app, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+tok)
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuth_CookieFallback(t *testing.T) {
	app := guardedApp(t)
	tok := signToken(t, "test-secret", time.Now().Add(time.Hour))

	resp := ping(t, app, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: "access_token", Value: tok})
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuth_MissingToken(t *testing.T) {
	app := guardedApp(t)
	resp := ping(t, app, nil)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuth_WrongSecret(t *testing.T) {
	app := guardedApp(t)
	tok := signToken(t, "other-secret", time.Now().Add(time.Hour))

	resp := ping(t, app, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+tok)
	})
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuth_ExpiredBeyondLeeway(t *testing.T) {
	app := guardedApp(t)
	tok := signToken(t, "test-secret", time.Now().Add(-time.Minute))

	resp := ping(t, app, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+tok)
	})
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuth_WithinLeeway(t *testing.T) {
	app := guardedApp(t)
	// expired ten seconds ago, inside the 30s clock-skew allowance
	tok := signToken(t, "test-secret", time.Now().Add(-10*time.Second))

	resp := ping(t, app, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+tok)
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuth_MalformedHeader(t *testing.T) {
	app := guardedApp(t)
	resp := ping(t, app, func(r *http.Request) {
		r.Header.Set("Authorization", "Token abc")
	})
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
