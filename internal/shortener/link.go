package shortener

import "time"

// Code represents a short link code.
type Code string

// CategoryUncategorized is the fallback category assigned when the content
// classifier cannot produce a confident label.
const CategoryUncategorized = "Uncategorized"

// Link represents a shortened URL record.
type Link struct {
	Code        Code
	OriginalURL string
	Category    string
	Clicks      int64
	CreatedAt   time.Time
	ExpiresAt   *time.Time // nil means the link never expires
}

// Expired reports whether the link's expiry has passed at the given instant.
// Links without an expiry never expire.
func (l *Link) Expired(now time.Time) bool {
	return l.ExpiresAt != nil && now.After(*l.ExpiresAt)
}
