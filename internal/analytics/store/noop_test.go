package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/shortloop/shortloop/internal/analytics"
	"github.com/shortloop/shortloop/internal/analytics/store"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNoop(t *testing.T) {
	var _ analytics.Store = (*store.Noop)(nil)

	noop := store.NewNoop(zap.NewNop())

	t.Run("accepts created events", func(t *testing.T) {
		err := noop.SaveLinkCreated(context.Background(), &analytics.LinkCreatedEvent{
			Code:        "abc123xY",
			OriginalURL: "https://example.com",
			Category:    "Technology",
			CreatedAt:   time.Now().UTC(),
		})

		require.NoError(t, err)
	})

	t.Run("accepts visited events", func(t *testing.T) {
		err := noop.SaveLinkVisited(context.Background(), &analytics.LinkVisitedEvent{
			Code:      "abc123xY",
			VisitedAt: time.Now().UTC(),
		})

		require.NoError(t, err)
	})
}
