package translation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestDeepLTranslator(t *testing.T) {
	t.Run("translates", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "key", r.PostForm.Get("auth_key"))
			assert.Equal(t, "ES", r.PostForm.Get("target_lang"))
			assert.Equal(t, "EN", r.PostForm.Get("source_lang"))
			assert.Equal(t, "html", r.PostForm.Get("tag_handling"))
			assert.Equal(t, "tomato", r.PostForm.Get("text"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"translations": [{"detected_source_language": "EN", "text": "tomate"}]}`))
		}))
		defer srv.Close()

		tr := NewDeepLTranslator(DeepLConfig{URL: srv.URL, APIKey: "key"}, zaptest.NewLogger(t))
		got, err := tr.Translate(context.Background(), "tomato", "es")
		require.NoError(t, err)
		assert.Equal(t, "tomate", got)
	})

	t.Run("provider error falls back to original", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer srv.Close()

		tr := NewDeepLTranslator(DeepLConfig{URL: srv.URL, APIKey: "bad"}, zaptest.NewLogger(t))
		got, err := tr.Translate(context.Background(), "tomato", "es")
		require.NoError(t, err)
		assert.Equal(t, "tomato", got)
	})

	t.Run("missing key skips the call", func(t *testing.T) {
		called := false
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer srv.Close()

		tr := NewDeepLTranslator(DeepLConfig{URL: srv.URL}, zaptest.NewLogger(t))
		got, err := tr.Translate(context.Background(), "tomato", "es")
		require.NoError(t, err)
		assert.Equal(t, "tomato", got)
		assert.False(t, called)
	})

	t.Run("empty text", func(t *testing.T) {
		tr := NewDeepLTranslator(DeepLConfig{APIKey: "key"}, zaptest.NewLogger(t))
		got, err := tr.Translate(context.Background(), "  ", "es")
		require.NoError(t, err)
		assert.Equal(t, "  ", got)
	})
}
