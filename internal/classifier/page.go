package classifier

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"
)

const (
	defaultFetchTimeout = 5 * time.Second
	maxBodyBytes        = 512 * 1024
	userAgent           = "Mozilla/5.0 (compatible; shortloop/1.0)"
)

var errNotText = errors.New("response is not text content")

// PageFetcher fetches a page and extracts its title and meta description as
// classification signal text. Fetches are bounded by a short timeout with no
// retries; speed matters more than accuracy here.
type PageFetcher struct {
	client *http.Client
}

// NewPageFetcher creates a fetcher with the given timeout. A non-positive
// timeout falls back to the 5 second default.
func NewPageFetcher(timeout time.Duration) *PageFetcher {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}

	return &PageFetcher{
		client: &http.Client{Timeout: timeout},
	}
}

// SignalText returns the page title and meta description concatenated.
func (f *PageFetcher) SignalText(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType != "" && !strings.Contains(contentType, "html") && !strings.Contains(contentType, "text") {
		return "", errNotText
	}

	doc, err := html.Parse(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", err
	}

	title := extractTitle(doc)
	description := extractMetaDescription(doc)

	return strings.TrimSpace(title + " " + description), nil
}

func extractTitle(doc *html.Node) string {
	var title string

	var walk func(*html.Node) bool

	walk = func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "title" {
			if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
				title = n.FirstChild.Data
			}

			return true
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}

		return false
	}

	walk(doc)

	return title
}

func extractMetaDescription(doc *html.Node) string {
	var description string

	var walk func(*html.Node) bool

	walk = func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "meta" {
			var name, content string

			for _, attr := range n.Attr {
				switch attr.Key {
				case "name":
					name = strings.ToLower(attr.Val)
				case "content":
					content = attr.Val
				}
			}

			if name == "description" {
				description = content

				return true
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}

		return false
	}

	walk(doc)

	return description
}
