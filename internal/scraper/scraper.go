package scraper

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/williampepple1/post-inspector/internal/config"
)

// ErrNotFound is returned when the content host answers 404
var ErrNotFound = errors.New("content not found")

// StatusError is returned for any non-success status other than 404
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status: %d", e.StatusCode)
}

// Page is the raw markup returned by a fetch
type Page struct {
	URL        string
	StatusCode int
	HTML       string
}

// Fetcher retrieves the markup of a single page
type Fetcher interface {
	Fetch(ctx context.Context, url string) (Page, error)
}

// New creates a fetcher based on the configuration
func New(cfg *config.AppConfig, logger zerolog.Logger) Fetcher {
	if cfg.Fetcher.Mode == config.FetchModeBrowser {
		return NewBrowserFetcher(cfg, logger)
	}
	return NewHTTPFetcher(cfg, logger)
}

// checkStatus classifies a final response status. 2xx and 3xx are usable.
func checkStatus(status int) error {
	switch {
	case status == http.StatusNotFound:
		return ErrNotFound
	case status >= 200 && status < 400:
		return nil
	default:
		return &StatusError{StatusCode: status}
	}
}
