// Package classifier assigns a coarse topic category to a URL based on the
// target page's title and meta description. Classification is strictly
// best-effort: every failure path degrades to the Uncategorized label and no
// error ever reaches the caller.
package classifier

import (
	"context"

	"github.com/shortloop/shortloop/internal/shortener"
	"go.uber.org/zap"
)

// Classifier combines a page fetcher with a trained model.
type Classifier struct {
	fetcher *PageFetcher
	model   *Model
	logger  *zap.Logger
}

// New creates a classifier from a fetcher and a trained model.
func New(fetcher *PageFetcher, model *Model, logger *zap.Logger) *Classifier {
	return &Classifier{
		fetcher: fetcher,
		model:   model,
		logger:  logger,
	}
}

// Classify fetches the URL and predicts its category. It returns
// Uncategorized on any failure: network error, timeout, non-text content,
// empty signal text, or an unconfident model.
func (c *Classifier) Classify(ctx context.Context, url string) string {
	text, err := c.fetcher.SignalText(ctx, url)
	if err != nil {
		c.logger.Debug("page fetch failed, using fallback category",
			zap.String("url", url),
			zap.Error(err),
		)

		return shortener.CategoryUncategorized
	}

	category, ok := c.model.Predict(text)
	if !ok {
		return shortener.CategoryUncategorized
	}

	return category
}
