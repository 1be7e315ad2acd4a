package shortener

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Sweeper periodically removes expired links from the repository. It is the
// passive counterpart to the active check-and-delete on the resolve path;
// both deletions are idempotent so either may fire first.
type Sweeper struct {
	repo     Repository
	interval time.Duration
	logger   *zap.Logger
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewSweeper creates a new expiry sweeper.
func NewSweeper(repo Repository, interval time.Duration, logger *zap.Logger) *Sweeper {
	return &Sweeper{
		repo:     repo,
		interval: interval,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// Start begins the sweep loop.
func (s *Sweeper) Start(ctx context.Context) error {
	ctx, s.cancel = context.WithCancel(ctx)

	go s.run(ctx)

	return nil
}

func (s *Sweeper) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	removed, err := s.repo.DeleteExpired(ctx, time.Now().UTC())
	if err != nil {
		s.logger.Error("expiry sweep failed", zap.Error(err))

		return
	}

	if removed > 0 {
		s.logger.Info("removed expired links", zap.Int64("count", removed))
	}
}

// Shutdown stops the sweep loop and waits for an in-flight sweep to finish.
func (s *Sweeper) Shutdown() error {
	if s.cancel != nil {
		s.cancel()
	}

	<-s.done

	return nil
}
