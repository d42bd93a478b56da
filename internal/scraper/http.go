package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/williampepple1/post-inspector/internal/config"
	"github.com/williampepple1/post-inspector/internal/logging"
	"github.com/williampepple1/post-inspector/internal/proxy"
)

// HTTPFetcher fetches pages with a plain HTTP client posing as a desktop browser
type HTTPFetcher struct {
	Config *config.FetcherConfig
	Client *resty.Client
	Logger zerolog.Logger
}

// NewHTTPFetcher creates a new HTTP fetcher
func NewHTTPFetcher(config *config.AppConfig, logger zerolog.Logger) *HTTPFetcher {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	proxy.NewManager(&config.Proxies).ApplyToTransport(transport)

	client := resty.New()
	client.SetTransport(transport)
	client.SetCookieJar(nil)
	client.SetTimeout(config.Fetcher.Timeout)
	client.SetHeader("User-Agent", config.Fetcher.UserAgent)
	client.SetHeader("Accept-Language", config.Fetcher.AcceptLanguage)
	client.SetLogger(logging.Resty(logger))

	return &HTTPFetcher{
		Config: &config.Fetcher,
		Client: client,
		Logger: logger,
	}
}

// Fetch issues one GET for url and returns its body.
// A 404 fails with ErrNotFound before the body is read.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (Page, error) {
	start := time.Now()

	resp, err := f.Client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(url)
	if err != nil {
		return Page{URL: url}, fmt.Errorf("get %s: %w", url, err)
	}
	body := resp.RawBody()
	defer body.Close()

	status := resp.StatusCode()
	f.Logger.Debug().
		Str("url", url).
		Int("status", status).
		Dur("elapsed", time.Since(start)).
		Msg("fetched page")

	if err := checkStatus(status); err != nil {
		return Page{URL: url, StatusCode: status}, err
	}

	b, err := io.ReadAll(io.LimitReader(body, f.Config.MaxBodyBytes))
	if err != nil {
		return Page{URL: url, StatusCode: status}, fmt.Errorf("read body: %w", err)
	}

	return Page{
		URL:        url,
		StatusCode: status,
		HTML:       string(b),
	}, nil
}
