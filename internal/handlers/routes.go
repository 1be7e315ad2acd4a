package handlers

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shortloop/shortloop/internal/ratelimit"
)

// RegisterRoutes registers all link routes with per-endpoint rate limit
// configuration.
func RegisterRoutes(api huma.API, linkHandler *LinkHandler) {
	// Write path gets the strictest limits.
	huma.Register(api, huma.Operation{
		Method:        http.MethodPost,
		Path:          "/shorten",
		Summary:       "Create short link",
		Description:   "Shortens a URL, optionally with an expiry in days, and tags it with an inferred content category.",
		Tags:          []string{"Links"},
		DefaultStatus: http.StatusCreated,
		Metadata: map[string]any{
			ratelimit.MetadataKey: ratelimit.EndpointConfig{
				Limits: []ratelimit.LimitConfig{
					{Window: time.Minute, Max: 10},
					{Window: time.Hour, Max: 100},
					{Window: 24 * time.Hour, Max: 500},
				},
			},
		},
	}, linkHandler.CreateShortLink)

	// Redirects are high-traffic reads, so the limits are relaxed.
	huma.Register(api, huma.Operation{
		Method:      http.MethodGet,
		Path:        "/{code}",
		Summary:     "Redirect to original URL",
		Description: "Redirects to the original URL. Expired links report 410 Gone and are deleted.",
		Tags:        []string{"Links"},
		Metadata: map[string]any{
			ratelimit.MetadataKey: ratelimit.EndpointConfig{
				Limits: []ratelimit.LimitConfig{
					{Window: time.Minute, Max: 1000},
				},
			},
		},
	}, linkHandler.RedirectToURL)

	huma.Register(api, huma.Operation{
		Method:      http.MethodGet,
		Path:        "/analytics/{code}",
		Summary:     "Get link analytics",
		Description: "Returns the link's stored state including its click count. Does not count as a visit.",
		Tags:        []string{"Links"},
	}, linkHandler.GetAnalytics)
}
