package shortener

import "errors"

var (
	// ErrNotFound indicates the short code does not exist. A deleted link and
	// one that never existed are indistinguishable.
	ErrNotFound = errors.New("link not found")

	// ErrConflict indicates the short code is already taken.
	ErrConflict = errors.New("short code already exists")

	// ErrGone indicates the link existed but its expiry has passed.
	ErrGone = errors.New("link expired")

	// ErrInvalidInput indicates a missing or empty original URL.
	ErrInvalidInput = errors.New("invalid or missing URL")
)
