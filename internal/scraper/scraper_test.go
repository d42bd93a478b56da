package scraper

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/williampepple1/post-inspector/internal/config"
)

func newTestFetcher(t *testing.T, mutate func(*config.AppConfig)) *HTTPFetcher {
	t.Helper()
	cfg := config.CreateDefault()
	if mutate != nil {
		mutate(cfg)
	}
	return NewHTTPFetcher(cfg, zerolog.Nop())
}

func TestFetch_SendsBrowserIdentity(t *testing.T) {
	got := make(chan *http.Request, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got <- r.Clone(context.Background())
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer srv.Close()

	page, err := newTestFetcher(t, nil).Fetch(context.Background(), srv.URL+"/p/abc/")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, page.StatusCode)
	assert.Equal(t, "<html><body>ok</body></html>", page.HTML)

	req := <-got
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, config.DefaultUserAgent, req.Header.Get("User-Agent"))
	assert.Equal(t, "en-US,en;q=0.9", req.Header.Get("Accept-Language"))
	assert.Empty(t, req.Header.Get("Cookie"))
}

func TestFetch_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("<html>gone</html>"))
	}))
	defer srv.Close()

	page, err := newTestFetcher(t, nil).Fetch(context.Background(), srv.URL)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, http.StatusNotFound, page.StatusCode)
	assert.Empty(t, page.HTML)
}

func TestFetch_ServerError(t *testing.T) {
	for _, status := range []int{http.StatusForbidden, http.StatusTooManyRequests, http.StatusInternalServerError} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		_, err := newTestFetcher(t, nil).Fetch(context.Background(), srv.URL)
		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, status, statusErr.StatusCode)
		assert.NotErrorIs(t, err, ErrNotFound)
		srv.Close()
	}
}

func TestFetch_FollowsRedirects(t *testing.T) {
	var hits atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/new", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/new", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("moved"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	page, err := newTestFetcher(t, nil).Fetch(context.Background(), srv.URL+"/old")
	require.NoError(t, err)
	assert.Equal(t, "moved", page.HTML)
	assert.EqualValues(t, 1, hits.Load())
}

func TestFetch_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	f := newTestFetcher(t, func(c *config.AppConfig) { c.Fetcher.Timeout = 50 * time.Millisecond })
	_, err := f.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestFetch_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("late"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newTestFetcher(t, nil).Fetch(ctx, srv.URL)
	require.Error(t, err)
}

func TestFetch_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestFetcher(t, nil).Fetch(context.Background(), url)
	require.Error(t, err)
	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr))
}

func TestFetch_CapsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 1024)))
	}))
	defer srv.Close()

	f := newTestFetcher(t, func(c *config.AppConfig) { c.Fetcher.MaxBodyBytes = 100 })
	page, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Len(t, page.HTML, 100)
}

func TestCheckStatus(t *testing.T) {
	assert.NoError(t, checkStatus(200))
	assert.NoError(t, checkStatus(204))
	assert.NoError(t, checkStatus(304))
	assert.ErrorIs(t, checkStatus(404), ErrNotFound)
	assert.Error(t, checkStatus(400))
	assert.Error(t, checkStatus(503))
	assert.Error(t, checkStatus(101))
}

func TestNew_SelectsMode(t *testing.T) {
	cfg := config.CreateDefault()
	assert.IsType(t, &HTTPFetcher{}, New(cfg, zerolog.Nop()))

	cfg.Fetcher.Mode = config.FetchModeBrowser
	assert.IsType(t, &BrowserFetcher{}, New(cfg, zerolog.Nop()))
}

func TestBrowserAllocatorOptions_BadProxy(t *testing.T) {
	cfg := config.CreateDefault()
	cfg.Proxies.Enabled = true
	cfg.Proxies.List = []string{"no-scheme"}

	_, err := NewBrowserFetcher(cfg, zerolog.Nop()).allocatorOptions()
	require.Error(t, err)
}
