package ratelimit

import "github.com/danielgtaylor/huma/v2"

// MetadataKey is the key used to attach rate limit config to huma operation
// metadata.
const MetadataKey = "rateLimit"

// EndpointConfig defines per-endpoint rate limit configuration, attached to
// huma operations via their Metadata field.
type EndpointConfig struct {
	// Limits defines custom rate limits for this endpoint. When empty, the
	// middleware's default limiter applies.
	Limits []LimitConfig

	// Disabled skips rate limiting entirely for this endpoint.
	Disabled bool
}

// GetEndpointConfig extracts the EndpointConfig from operation metadata, if
// present.
func GetEndpointConfig(ctx huma.Context) *EndpointConfig {
	op := ctx.Operation()
	if op == nil || op.Metadata == nil {
		return nil
	}

	cfg, ok := op.Metadata[MetadataKey].(EndpointConfig)
	if !ok {
		return nil
	}

	return &cfg
}
