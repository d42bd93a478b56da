package scraper

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog"

	"github.com/williampepple1/post-inspector/internal/config"
	"github.com/williampepple1/post-inspector/internal/proxy"
)

// BrowserFetcher renders pages in a headless browser before reading the markup
type BrowserFetcher struct {
	Config *config.AppConfig
	Proxy  *proxy.Manager
	Logger zerolog.Logger
}

// NewBrowserFetcher creates a new browser fetcher
func NewBrowserFetcher(config *config.AppConfig, logger zerolog.Logger) *BrowserFetcher {
	return &BrowserFetcher{
		Config: config,
		Proxy:  proxy.NewManager(&config.Proxies),
		Logger: logger,
	}
}

func (f *BrowserFetcher) allocatorOptions() ([]chromedp.ExecAllocatorOption, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", f.Config.Browser.Headless),
		chromedp.UserAgent(f.Config.Fetcher.UserAgent),
	)
	if f.Config.Browser.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(f.Config.Browser.ExecPath))
	}
	server, err := f.Proxy.ServerFlag()
	if err != nil {
		return nil, err
	}
	if server != "" {
		opts = append(opts, chromedp.ProxyServer(server))
	}
	return opts, nil
}

// Fetch navigates to url and returns the rendered document.
// The status of the first document response decides NotFound/failure.
func (f *BrowserFetcher) Fetch(ctx context.Context, url string) (Page, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, f.Config.Fetcher.Timeout)
	defer cancel()

	opts, err := f.allocatorOptions()
	if err != nil {
		return Page{URL: url}, err
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var status atomic.Int64
	chromedp.ListenTarget(browserCtx, func(ev interface{}) {
		if resp, ok := ev.(*network.EventResponseReceived); ok && resp.Type == network.ResourceTypeDocument {
			status.CompareAndSwap(0, resp.Response.Status)
		}
	})

	err = chromedp.Run(browserCtx,
		network.Enable(),
		network.SetExtraHTTPHeaders(network.Headers{
			"Accept-Language": f.Config.Fetcher.AcceptLanguage,
		}),
		chromedp.Navigate(url),
	)
	if err != nil {
		return Page{URL: url}, fmt.Errorf("navigate %s: %w", url, err)
	}

	code := int(status.Load())
	f.Logger.Debug().
		Str("url", url).
		Int("status", code).
		Dur("elapsed", time.Since(start)).
		Msg("browser navigated")

	// status stays 0 if the document came from the browser cache
	if code != 0 {
		if err := checkStatus(code); err != nil {
			return Page{URL: url, StatusCode: code}, err
		}
	}

	var html string
	err = chromedp.Run(browserCtx,
		chromedp.Sleep(f.Config.Browser.WaitTime),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return Page{URL: url, StatusCode: code}, fmt.Errorf("read rendered html: %w", err)
	}

	return Page{
		URL:        url,
		StatusCode: code,
		HTML:       html,
	}, nil
}
