package proxy

import (
	"fmt"
	"math/rand"
	"net/http"
	"net/url"

	"github.com/williampepple1/post-inspector/internal/config"
)

// Manager picks outbound proxies from the configured list
type Manager struct {
	Config *config.ProxyConfig
}

// NewManager creates a new proxy manager
func NewManager(config *config.ProxyConfig) *Manager {
	return &Manager{
		Config: config,
	}
}

// Enabled reports whether any proxy should be used
func (m *Manager) Enabled() bool {
	return m != nil && m.Config != nil && m.Config.Enabled && len(m.Config.List) > 0
}

// Pick returns a proxy URL, or nil when proxying is disabled
func (m *Manager) Pick() (*url.URL, error) {
	if !m.Enabled() {
		return nil, nil
	}

	proxyStr := m.Config.List[0]
	if m.Config.Rotate && len(m.Config.List) > 1 {
		proxyStr = m.Config.List[rand.Intn(len(m.Config.List))]
	}

	proxyURL, err := url.Parse(proxyStr)
	if err != nil {
		return nil, fmt.Errorf("parse proxy %q: %w", proxyStr, err)
	}
	if proxyURL.Scheme == "" || proxyURL.Host == "" {
		return nil, fmt.Errorf("proxy %q must be an absolute URL", proxyStr)
	}

	if m.Config.Auth.Username != "" && m.Config.Auth.Password != "" {
		proxyURL.User = url.UserPassword(m.Config.Auth.Username, m.Config.Auth.Password)
	}

	return proxyURL, nil
}

// ApplyToTransport installs a per-request proxy selector on transport
func (m *Manager) ApplyToTransport(transport *http.Transport) {
	if !m.Enabled() {
		return
	}
	transport.Proxy = func(*http.Request) (*url.URL, error) {
		return m.Pick()
	}
}

// ServerFlag returns a proxy address suitable for a browser --proxy-server flag.
// Browsers take credentials out of band, so user info is stripped.
func (m *Manager) ServerFlag() (string, error) {
	proxyURL, err := m.Pick()
	if err != nil || proxyURL == nil {
		return "", err
	}
	stripped := *proxyURL
	stripped.User = nil
	return stripped.String(), nil
}
