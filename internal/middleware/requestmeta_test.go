package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/shortloop/shortloop/internal/handlers"
	"github.com/shortloop/shortloop/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type metaOutput struct {
	Body struct {
		OK bool `json:"ok"`
	}
}

func setupMetaAPI(t *testing.T) (*chi.Mux, chan handlers.RequestMeta) {
	t.Helper()

	router := chi.NewMux()
	api := humachi.New(router, huma.DefaultConfig("Test", "1.0.0"))
	api.UseMiddleware(middleware.RequestMeta(api))

	metaChan := make(chan handlers.RequestMeta, 1)

	huma.Get(api, "/meta", func(ctx context.Context, _ *struct{}) (*metaOutput, error) {
		metaChan <- handlers.RequestMetaFromContext(ctx)

		out := &metaOutput{}
		out.Body.OK = true

		return out, nil
	})

	return router, metaChan
}

func TestRequestMeta(t *testing.T) {
	t.Run("captures user-agent and referrer", func(t *testing.T) {
		router, metaChan := setupMetaAPI(t)

		req := httptest.NewRequest(http.MethodGet, "/meta", nil)
		req.Header.Set("User-Agent", "TestAgent/1.0")
		req.Header.Set("Referer", "https://referrer.example")

		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		meta := <-metaChan
		assert.Equal(t, "TestAgent/1.0", meta.UserAgent)
		assert.Equal(t, "https://referrer.example", meta.Referrer)
		assert.NotEmpty(t, meta.ClientIP)
	})

	t.Run("prefers first X-Forwarded-For IP", func(t *testing.T) {
		router, metaChan := setupMetaAPI(t)

		req := httptest.NewRequest(http.MethodGet, "/meta", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.195, 70.41.3.18")

		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		meta := <-metaChan
		assert.Equal(t, "203.0.113.195", meta.ClientIP)
	})

	t.Run("uses X-Real-IP when X-Forwarded-For is absent", func(t *testing.T) {
		router, metaChan := setupMetaAPI(t)

		req := httptest.NewRequest(http.MethodGet, "/meta", nil)
		req.Header.Set("X-Real-IP", "203.0.113.100")

		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		meta := <-metaChan
		assert.Equal(t, "203.0.113.100", meta.ClientIP)
	})

	t.Run("defaults are empty without headers", func(t *testing.T) {
		router, metaChan := setupMetaAPI(t)

		req := httptest.NewRequest(http.MethodGet, "/meta", nil)

		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		meta := <-metaChan
		assert.Empty(t, meta.UserAgent)
		assert.Empty(t, meta.Referrer)
	})
}
