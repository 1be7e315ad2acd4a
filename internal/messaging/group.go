package messaging

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.uber.org/zap"
)

// Runnable is a background component with a start/shutdown lifecycle.
// Consumers and the expiry sweeper both satisfy it.
type Runnable interface {
	Start(ctx context.Context) error
	Shutdown() error
}

// Group manages multiple runnables plus the shared subscriber with a unified
// lifecycle.
type Group struct {
	runnables  []Runnable
	subscriber message.Subscriber
	logger     *zap.Logger
}

// NewGroup creates a new group around a shared subscriber.
func NewGroup(subscriber message.Subscriber, logger *zap.Logger) *Group {
	return &Group{
		subscriber: subscriber,
		logger:     logger,
	}
}

// Add registers a runnable with the group.
func (g *Group) Add(r Runnable) {
	g.runnables = append(g.runnables, r)
}

// Start starts every registered runnable. On failure, already started
// runnables are shut down in reverse order.
func (g *Group) Start(ctx context.Context) error {
	for i, r := range g.runnables {
		if err := r.Start(ctx); err != nil {
			for j := i - 1; j >= 0; j-- {
				_ = g.runnables[j].Shutdown()
			}

			return fmt.Errorf("failed to start runnable %d: %w", i, err)
		}
	}

	g.logger.Info("worker group started", zap.Int("count", len(g.runnables)))

	return nil
}

// Shutdown stops all runnables and closes the subscriber, returning the
// first error encountered.
func (g *Group) Shutdown() error {
	g.logger.Info("shutting down worker group")

	var firstErr error

	for _, r := range g.runnables {
		if err := r.Shutdown(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if err := g.subscriber.Close(); err != nil && firstErr == nil {
		firstErr = err
	}

	return firstErr
}
