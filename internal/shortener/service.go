package shortener

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Classify maps a URL to a category label. Implementations are best-effort
// and must return a fallback label instead of failing.
type Classify func(ctx context.Context, url string) string

// maxGenerateAttempts bounds code regeneration on store-level collisions.
const maxGenerateAttempts = 5

// Service orchestrates the link lifecycle: creation, resolution, and
// analytics retrieval.
type Service struct {
	repo     Repository
	generate CodeGenerator
	classify Classify
	logger   *zap.Logger
}

// NewService creates a new link lifecycle service. A nil classify func
// assigns CategoryUncategorized to every link.
func NewService(repo Repository, generate CodeGenerator, classify Classify, logger *zap.Logger) *Service {
	if classify == nil {
		classify = func(context.Context, string) string { return CategoryUncategorized }
	}

	return &Service{
		repo:     repo,
		generate: generate,
		classify: classify,
		logger:   logger,
	}
}

// Shorten creates a new link for originalURL. Any non-zero expiresInDays is
// applied as an offset from now, so a negative value creates an
// already-expired link that reports Gone on its first resolution. Zero means
// no expiry. Categorization is best-effort and never fails the operation.
func (s *Service) Shorten(ctx context.Context, originalURL string, expiresInDays float64) (*Link, error) {
	if originalURL == "" {
		return nil, ErrInvalidInput
	}

	now := time.Now().UTC()

	var expiresAt *time.Time

	if expiresInDays != 0 {
		t := now.Add(time.Duration(expiresInDays * 24 * float64(time.Hour)))
		expiresAt = &t
	}

	category := s.classify(ctx, originalURL)

	link := &Link{
		OriginalURL: originalURL,
		Category:    category,
		CreatedAt:   now,
		ExpiresAt:   expiresAt,
	}

	for attempt := 1; attempt <= maxGenerateAttempts; attempt++ {
		link.Code = s.generate()

		err := s.repo.Save(ctx, link)
		if err == nil {
			return link, nil
		}

		if !errors.Is(err, ErrConflict) {
			return nil, err
		}

		s.logger.Warn("short code collision, regenerating",
			zap.String("code", string(link.Code)),
			zap.Int("attempt", attempt),
		)
	}

	return nil, fmt.Errorf("%w: exhausted %d generation attempts", ErrConflict, maxGenerateAttempts)
}

// Resolve looks up a code and returns its target. Expired links are deleted
// (best-effort, idempotent) and reported as ErrGone. A successful resolution
// increments the click counter exactly once.
func (s *Service) Resolve(ctx context.Context, code Code) (*Link, error) {
	link, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if link.Expired(time.Now().UTC()) {
		// The background sweep may have already removed it; both paths
		// converge on the same terminal state.
		if err := s.repo.Delete(ctx, code); err != nil {
			s.logger.Error("failed to delete expired link",
				zap.String("code", string(code)),
				zap.Error(err),
			)
		}

		return nil, ErrGone
	}

	if err := s.repo.IncrementClicks(ctx, code); err != nil {
		// The record was swept between lookup and increment.
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	link.Clicks++

	return link, nil
}

// Analytics returns a link's stored state without mutating it. Expired links
// that the sweep has not yet removed remain visible with their last known
// state.
func (s *Service) Analytics(ctx context.Context, code Code) (*Link, error) {
	return s.repo.GetByCode(ctx, code)
}
