package health_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shortloop/shortloop/internal/health"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	err error
}

func (s *stubChecker) Ping(_ context.Context) error {
	return s.err
}

func TestHandler_Check(t *testing.T) {
	t.Run("ok with no dependencies", func(t *testing.T) {
		handler := health.NewHandler(nil)

		resp, err := handler.Check(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, "ok", resp.Body.Status)
		assert.Empty(t, resp.Body.Dependencies)
	})

	t.Run("ok when all dependencies are healthy", func(t *testing.T) {
		handler := health.NewHandler(map[string]health.Checker{
			"redis":    &stubChecker{},
			"postgres": &stubChecker{},
		})

		resp, err := handler.Check(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, "ok", resp.Body.Status)
		assert.Equal(t, "healthy", resp.Body.Dependencies["redis"])
		assert.Equal(t, "healthy", resp.Body.Dependencies["postgres"])
	})

	t.Run("degraded when a dependency fails", func(t *testing.T) {
		handler := health.NewHandler(map[string]health.Checker{
			"redis":    &stubChecker{},
			"postgres": &stubChecker{err: errors.New("connection refused")},
		})

		resp, err := handler.Check(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, "degraded", resp.Body.Status)
		assert.Equal(t, "healthy", resp.Body.Dependencies["redis"])
		assert.Equal(t, "unhealthy", resp.Body.Dependencies["postgres"])
	})

	t.Run("nil checkers are skipped", func(t *testing.T) {
		handler := health.NewHandler(map[string]health.Checker{
			"redis":    &stubChecker{},
			"postgres": nil,
		})

		resp, err := handler.Check(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, "ok", resp.Body.Status)
		assert.Equal(t, "healthy", resp.Body.Dependencies["redis"])
		assert.NotContains(t, resp.Body.Dependencies, "postgres")
	})
}
