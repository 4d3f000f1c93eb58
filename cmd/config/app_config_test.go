package config

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"pantry-backend/domain"
	"pantry-backend/entities"
	"pantry-backend/internal/api/presenters"
	"pantry-backend/internal/testutil"
	"pantry-backend/internal/utils"
	"pantry-backend/pkg/jwt"
)

func TestNewApp(t *testing.T) {
	db := testutil.NewDB(t)
	cfg := utils.Config{
		CORSAllowOrigins: "*",
		RateLimitMax:     1000,
		LogFile:          filepath.Join(t.TempDir(), "app.log"),
		JWTSecret:        "test-secret",
		TargetLang:       "es",
	}
	app, err := NewApp(db, cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Shutdown() })

	u := entities.User{Email: "cook@example.com", Role: domain.RoleUser}
	require.NoError(t, db.Create(&u).Error)
	ing := entities.Ingredient{CanonicalName: "egg", DisplayName: "Egg"}
	require.NoError(t, db.Create(&ing).Error)

	tokens := jwt.NewJWTService(cfg.JWTSecret, "")
	userToken, err := tokens.GenerateTokenUser(u.ID.String(), domain.RoleUser)
	require.NoError(t, err)
	adminToken, err := tokens.GenerateTokenUser(u.ID.String(), domain.RoleAdmin)
	require.NoError(t, err)

	do := func(method, path, token, body string) (int, presenters.Response) {
		t.Helper()
		var r io.Reader
		if body != "" {
			r = strings.NewReader(body)
		}
		req := httptest.NewRequest(method, path, r)
		if body != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		res, err := app.Test(req, -1)
		require.NoError(t, err)
		defer res.Body.Close()

		var out presenters.Response
		raw, err := io.ReadAll(res.Body)
		require.NoError(t, err)
		_ = json.Unmarshal(raw, &out)
		return res.StatusCode, out
	}

	t.Run("ping", func(t *testing.T) {
		status, _ := do(http.MethodGet, "/api/ping", "", "")
		assert.Equal(t, http.StatusOK, status)
	})

	t.Run("missing token", func(t *testing.T) {
		status, res := do(http.MethodGet, "/api/v1/pantry", "", "")
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.False(t, res.Status)
	})

	t.Run("pantry create and conflict", func(t *testing.T) {
		body := `{"ingredient_id":"` + ing.ID.String() + `","quantity":6,"unit":"pcs"}`
		status, res := do(http.MethodPost, "/api/v1/pantry", userToken, body)
		assert.Equal(t, http.StatusCreated, status)
		assert.True(t, res.Status)

		status, _ = do(http.MethodPost, "/api/v1/pantry", userToken, body)
		assert.Equal(t, http.StatusConflict, status)
	})

	t.Run("pantry validation", func(t *testing.T) {
		status, _ := do(http.MethodPost, "/api/v1/pantry", userToken, `{"quantity":1}`)
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("expiring route is not a recipe id", func(t *testing.T) {
		status, res := do(http.MethodGet, "/api/v1/recipes/recommendations/expiring?days=3", userToken, "")
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, []any{}, res.Data)
	})

	t.Run("bad recipe id", func(t *testing.T) {
		status, _ := do(http.MethodGet, "/api/v1/recipes/not-a-uuid", userToken, "")
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("unknown pantry item", func(t *testing.T) {
		status, _ := do(http.MethodDelete, "/api/v1/pantry/"+ing.ID.String(), userToken, "")
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("admin only", func(t *testing.T) {
		status, _ := do(http.MethodPost, "/api/v1/admin/translations/run", userToken, "")
		assert.Equal(t, http.StatusForbidden, status)

		status, res := do(http.MethodPost, "/api/v1/admin/translations/run", adminToken, "")
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, map[string]any{"processed": float64(0), "done": float64(0), "failed": float64(0)}, res.Data)
	})

	t.Run("reset rejects other language", func(t *testing.T) {
		status, _ := do(http.MethodPost, "/api/v1/admin/translations/reset", adminToken, `{"lang":"fr"}`)
		assert.Equal(t, http.StatusBadRequest, status)
	})
}
