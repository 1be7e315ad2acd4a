package analytics

import "time"

const (
	// TopicLinkCreated carries events for newly shortened links.
	TopicLinkCreated = "link.created"
	// TopicLinkVisited carries events for successful resolutions.
	TopicLinkVisited = "link.visited"
)

// LinkCreatedEvent is emitted when a URL is shortened.
type LinkCreatedEvent struct {
	Code        string     `json:"code"`
	OriginalURL string     `json:"originalUrl"`
	Category    string     `json:"category"`
	CreatedAt   time.Time  `json:"createdAt"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
	ClientIP    string     `json:"clientIp"`
	UserAgent   string     `json:"userAgent"`
}

// LinkVisitedEvent is emitted when a short code resolves to a redirect.
type LinkVisitedEvent struct {
	Code      string    `json:"code"`
	VisitedAt time.Time `json:"visitedAt"`
	ClientIP  string    `json:"clientIp"`
	UserAgent string    `json:"userAgent"`
	Referrer  string    `json:"referrer"`
}
