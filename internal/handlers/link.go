package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shortloop/shortloop/internal/analytics"
	"github.com/shortloop/shortloop/internal/messaging"
	"github.com/shortloop/shortloop/internal/shortener"
	"go.uber.org/zap"
)

// LinkHandler handles link lifecycle operations.
type LinkHandler struct {
	service            *shortener.Service
	baseURL            string
	publishLinkCreated messaging.Publish[analytics.LinkCreatedEvent]
	publishLinkVisited messaging.Publish[analytics.LinkVisitedEvent]
	logger             *zap.Logger
}

// NewLinkHandler creates a new link handler.
func NewLinkHandler(
	service *shortener.Service,
	baseURL string,
	publishLinkCreated messaging.Publish[analytics.LinkCreatedEvent],
	publishLinkVisited messaging.Publish[analytics.LinkVisitedEvent],
	logger *zap.Logger,
) *LinkHandler {
	return &LinkHandler{
		service:            service,
		baseURL:            baseURL,
		publishLinkCreated: publishLinkCreated,
		publishLinkVisited: publishLinkVisited,
		logger:             logger,
	}
}

type requestMetaKey struct{}

// RequestMeta holds HTTP request metadata for analytics events.
type RequestMeta struct {
	ClientIP  string
	UserAgent string
	Referrer  string
}

// ContextWithRequestMeta adds request metadata to context.
func ContextWithRequestMeta(ctx context.Context, meta RequestMeta) context.Context {
	return context.WithValue(ctx, requestMetaKey{}, meta)
}

// RequestMetaFromContext extracts request metadata from context.
func RequestMetaFromContext(ctx context.Context) RequestMeta {
	if v, ok := ctx.Value(requestMetaKey{}).(RequestMeta); ok {
		return v
	}

	return RequestMeta{}
}

func (h *LinkHandler) CreateShortLink(ctx context.Context, req *ShortenRequest) (*ShortenResponse, error) {
	link, err := h.service.Shorten(ctx, req.Body.OriginalURL, req.Body.ExpiresIn.Days())
	if err != nil {
		switch {
		case errors.Is(err, shortener.ErrInvalidInput):
			return nil, huma.Error400BadRequest("invalid or missing URL")
		case errors.Is(err, shortener.ErrConflict):
			return nil, huma.Error500InternalServerError("failed to generate a unique short code")
		default:
			return nil, huma.Error500InternalServerError("internal server error")
		}
	}

	meta := RequestMetaFromContext(ctx)
	event := &analytics.LinkCreatedEvent{
		Code:        string(link.Code),
		OriginalURL: link.OriginalURL,
		Category:    link.Category,
		CreatedAt:   link.CreatedAt,
		ExpiresAt:   link.ExpiresAt,
		ClientIP:    meta.ClientIP,
		UserAgent:   meta.UserAgent,
	}

	if err := h.publishLinkCreated(event); err != nil {
		h.logger.Error("failed to publish link created event",
			zap.String("code", event.Code),
			zap.Error(err),
		)
	}

	shortURL := fmt.Sprintf("%s/%s", h.baseURL, link.Code)

	resp := &ShortenResponse{}
	resp.Headers.Location = shortURL
	resp.Body.Code = string(link.Code)
	resp.Body.ShortURL = shortURL
	resp.Body.OriginalURL = link.OriginalURL
	resp.Body.Category = link.Category
	resp.Body.ExpiresAt = formatExpiry(link.ExpiresAt)

	return resp, nil
}

func (h *LinkHandler) RedirectToURL(ctx context.Context, req *RedirectRequest) (*RedirectResponse, error) {
	link, err := h.service.Resolve(ctx, shortener.Code(req.Code))
	if err != nil {
		switch {
		case errors.Is(err, shortener.ErrNotFound):
			return nil, huma.Error404NotFound("short URL not found")
		case errors.Is(err, shortener.ErrGone):
			return nil, huma.NewError(http.StatusGone, "this short URL has expired and has been deleted")
		default:
			return nil, huma.Error500InternalServerError("failed to resolve short URL")
		}
	}

	meta := RequestMetaFromContext(ctx)
	event := &analytics.LinkVisitedEvent{
		Code:      req.Code,
		VisitedAt: time.Now().UTC(),
		ClientIP:  meta.ClientIP,
		UserAgent: meta.UserAgent,
		Referrer:  meta.Referrer,
	}

	if err := h.publishLinkVisited(event); err != nil {
		h.logger.Error("failed to publish link visited event",
			zap.String("code", event.Code),
			zap.Error(err),
		)
	}

	resp := &RedirectResponse{
		Status: http.StatusFound,
	}
	resp.Headers.Location = link.OriginalURL

	return resp, nil
}

func (h *LinkHandler) GetAnalytics(ctx context.Context, req *AnalyticsRequest) (*AnalyticsResponse, error) {
	link, err := h.service.Analytics(ctx, shortener.Code(req.Code))
	if err != nil {
		if errors.Is(err, shortener.ErrNotFound) {
			return nil, huma.Error404NotFound("short URL not found")
		}

		return nil, huma.Error500InternalServerError("failed to load analytics")
	}

	resp := &AnalyticsResponse{}
	resp.Body.OriginalURL = link.OriginalURL
	resp.Body.Code = string(link.Code)
	resp.Body.ShortURL = fmt.Sprintf("%s/%s", h.baseURL, link.Code)
	resp.Body.Category = link.Category
	resp.Body.Clicks = link.Clicks
	resp.Body.CreatedAt = link.CreatedAt
	resp.Body.ExpiresAt = formatExpiry(link.ExpiresAt)

	return resp, nil
}
