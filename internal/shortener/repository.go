package shortener

import (
	"context"
	"time"
)

// Repository defines the interface for durable link storage.
type Repository interface {
	// Save inserts a new link. Returns ErrConflict if the code already exists.
	Save(ctx context.Context, link *Link) error

	// GetByCode retrieves a link by its code. Returns ErrNotFound if absent.
	GetByCode(ctx context.Context, code Code) (*Link, error)

	// IncrementClicks atomically increments the click counter by one.
	// Returns ErrNotFound if the code does not exist. Concurrent increments
	// on the same code must not lose updates.
	IncrementClicks(ctx context.Context, code Code) error

	// Delete removes a link. Deleting an absent code is not an error.
	Delete(ctx context.Context, code Code) error

	// DeleteExpired removes all links whose expiry is at or before now and
	// returns the number removed. Backends with native TTL removal may
	// report zero.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
