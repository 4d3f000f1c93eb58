package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pantry-backend/domain"
	"pantry-backend/pkg/jwt"
)

func TestAuthAndRoles(t *testing.T) {
	tokens := jwt.NewJWTService("secret", "")
	m := NewMiddleware("*")

	app := fiber.New()
	app.Get("/me", m.AuthMiddleware(tokens), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("user_id").(string) + ":" + c.Locals("role").(string))
	})
	app.Get("/admin", m.AuthMiddleware(tokens), m.OnlyAllow(domain.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	call := func(path, auth string) (int, string) {
		t.Helper()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if auth != "" {
			req.Header.Set("Authorization", auth)
		}
		res, err := app.Test(req, -1)
		require.NoError(t, err)
		defer res.Body.Close()
		body, err := io.ReadAll(res.Body)
		require.NoError(t, err)
		return res.StatusCode, string(body)
	}

	userToken, err := tokens.GenerateTokenUser("u-1", domain.RoleUser)
	require.NoError(t, err)
	adminToken, err := tokens.GenerateTokenUser("u-2", domain.RoleAdmin)
	require.NoError(t, err)

	status, body := call("/me", "Bearer "+userToken)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "u-1:user", body)

	status, _ = call("/me", "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = call("/me", "Token "+userToken)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = call("/me", "Bearer broken")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = call("/admin", "Bearer "+userToken)
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = call("/admin", "Bearer "+adminToken)
	assert.Equal(t, http.StatusNoContent, status)
}
