package handlers

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

// noExpiration is rendered when a link has no expiry set.
const noExpiration = "No expiration set"

// ExpiresIn is an expiration length in days. It accepts a JSON number or a
// numeric string; non-numeric strings are ignored and leave the link
// permanent.
type ExpiresIn struct {
	days float64
}

// Days returns the number of days, zero when unset.
func (e ExpiresIn) Days() float64 {
	return e.days
}

func (e *ExpiresIn) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		e.days = n

		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if n, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			e.days = n
		}

		return nil
	}

	return nil
}

// Schema implements huma.SchemaProvider so the field validates as either a
// number or a string.
func (e ExpiresIn) Schema(_ huma.Registry) *huma.Schema {
	return &huma.Schema{
		OneOf: []*huma.Schema{
			{Type: huma.TypeNumber},
			{Type: huma.TypeString},
		},
		Description: "Expiration in days; accepts a number or numeric string",
	}
}

// ShortenRequest is the request body for creating a short link.
type ShortenRequest struct {
	Body struct {
		OriginalURL string    `doc:"The URL to shorten" example:"https://example.com/very/long/path" json:"originalUrl,omitempty"`
		ExpiresIn   ExpiresIn `doc:"Expiration in days"  json:"expiresIn,omitempty"`
	}
}

// ShortenResponse is the response for a successfully created short link.
type ShortenResponse struct {
	Headers struct {
		Location string `doc:"The short URL location" header:"Location"`
	}
	Body struct {
		Code        string `doc:"The short code"                           example:"abc123xY"                     json:"code"`
		ShortURL    string `doc:"The full short URL"                       example:"http://localhost:8888/abc123" json:"shortUrl"`
		OriginalURL string `doc:"The original URL"                         example:"https://example.com"          json:"originalUrl"`
		Category    string `doc:"Inferred content category"                example:"Technology"                   json:"category"`
		ExpiresAt   string `doc:"Expiry timestamp or 'No expiration set'"  json:"expiresAt"`
	}
}

// RedirectRequest is the request for resolving a short link.
type RedirectRequest struct {
	Code string `doc:"The short code" example:"abc123xY" path:"code"`
}

// RedirectResponse redirects to the original URL.
type RedirectResponse struct {
	Status  int
	Headers struct {
		Location string `doc:"The original URL" header:"Location"`
	}
}

// AnalyticsRequest is the request for retrieving link analytics.
type AnalyticsRequest struct {
	Code string `doc:"The short code" example:"abc123xY" path:"code"`
}

// AnalyticsResponse reports a link's stored state and click count.
type AnalyticsResponse struct {
	Body struct {
		OriginalURL string    `json:"originalUrl"`
		Code        string    `json:"code"`
		ShortURL    string    `json:"shortUrl"`
		Category    string    `json:"category"`
		Clicks      int64     `json:"clicks"`
		CreatedAt   time.Time `json:"createdAt"`
		ExpiresAt   string    `json:"expiresAt"`
	}
}

func formatExpiry(t *time.Time) string {
	if t == nil {
		return noExpiration
	}

	return t.UTC().Format(time.RFC3339)
}
