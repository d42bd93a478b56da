package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDefault_IsValid(t *testing.T) {
	cfg := CreateDefault()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 10*time.Second, cfg.Fetcher.Timeout)
	assert.Equal(t, FetchModeHTTP, cfg.Fetcher.Mode)
	assert.Equal(t, DefaultAcceptLanguage, cfg.Fetcher.AcceptLanguage)
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inspector.yaml")
	body := `
server:
  addr: ":9090"
fetcher:
  timeout: 3s
output:
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 3*time.Second, cfg.Fetcher.Timeout)
	assert.Equal(t, "json", cfg.Output.Format)
	// untouched sections keep their defaults
	assert.Equal(t, DefaultUserAgent, cfg.Fetcher.UserAgent)
	assert.True(t, cfg.Browser.Headless)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*AppConfig)
	}{
		{"unknown mode", func(c *AppConfig) { c.Fetcher.Mode = "carrier-pigeon" }},
		{"zero timeout", func(c *AppConfig) { c.Fetcher.Timeout = 0 }},
		{"zero body cap", func(c *AppConfig) { c.Fetcher.MaxBodyBytes = 0 }},
		{"proxy without list", func(c *AppConfig) { c.Proxies.Enabled = true }},
		{"csv output", func(c *AppConfig) { c.Output.Format = "csv" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := CreateDefault()
			tc.mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestValidateServe(t *testing.T) {
	cfg := CreateDefault()
	require.NoError(t, cfg.ValidateServe())

	cfg.Fetcher.Timeout = cfg.Server.WriteTimeout
	require.Error(t, cfg.ValidateServe())
	require.NoError(t, cfg.Validate(), "the CLI does not use the server timeouts")

	cfg = CreateDefault()
	cfg.Fetcher.Mode = FetchModeBrowser
	cfg.Fetcher.Timeout = 25 * time.Second
	cfg.Browser.WaitTime = 10 * time.Second
	assert.Equal(t, 35*time.Second, cfg.FetchBudget())
	require.Error(t, cfg.ValidateServe())

	cfg.Server.WriteTimeout = 0
	require.NoError(t, cfg.ValidateServe())
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("INSPECTOR_ADDR", ":7000")
	t.Setenv("INSPECTOR_FETCH_MODE", "BROWSER")
	t.Setenv("INSPECTOR_FETCH_TIMEOUT", "4s")
	t.Setenv("INSPECTOR_PROXY", "http://a:1,http://b:2")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := CreateDefault()
	require.NoError(t, cfg.ApplyEnv())
	assert.Equal(t, ":7000", cfg.Server.Addr)
	assert.Equal(t, FetchModeBrowser, cfg.Fetcher.Mode)
	assert.Equal(t, 4*time.Second, cfg.Fetcher.Timeout)
	assert.True(t, cfg.Proxies.Enabled)
	assert.Equal(t, []string{"http://a:1", "http://b:2"}, cfg.Proxies.List)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestApplyEnv_BadTimeout(t *testing.T) {
	t.Setenv("INSPECTOR_FETCH_TIMEOUT", "soon")
	require.Error(t, CreateDefault().ApplyEnv())
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("INSPECTOR_TEST_VALUE=from-file\n"), 0o644))
	t.Setenv("INSPECTOR_TEST_VALUE", "")

	loaded, err := LoadEnvFiles(envFile, filepath.Join(dir, ".env.missing"))
	require.NoError(t, err)
	assert.Equal(t, []string{envFile}, loaded)
	assert.Equal(t, "from-file", os.Getenv("INSPECTOR_TEST_VALUE"))
}
