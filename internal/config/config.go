package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Fetch modes
const (
	FetchModeHTTP    = "http"
	FetchModeBrowser = "browser"
)

// AppConfig holds the complete application configuration
type AppConfig struct {
	Server  ServerConfig  `yaml:"server"`
	Fetcher FetcherConfig `yaml:"fetcher"`
	Proxies ProxyConfig   `yaml:"proxies"`
	Browser BrowserConfig `yaml:"browser"`
	Log     LogConfig     `yaml:"log"`
	Output  OutputConfig  `yaml:"output"`
}

// ServerConfig holds the HTTP API configuration
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// FetcherConfig holds the outbound fetch configuration
type FetcherConfig struct {
	Mode           string        `yaml:"mode"`
	Timeout        time.Duration `yaml:"timeout"`
	UserAgent      string        `yaml:"user_agent"`
	AcceptLanguage string        `yaml:"accept_language"`
	MaxBodyBytes   int64         `yaml:"max_body_bytes"`
}

// ProxyConfig holds the proxy configuration
type ProxyConfig struct {
	Enabled bool     `yaml:"enabled"`
	Rotate  bool     `yaml:"rotate"`
	List    []string `yaml:"list"`
	Auth    struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	} `yaml:"auth"`
}

// BrowserConfig holds the headless browser configuration used in browser fetch mode
type BrowserConfig struct {
	Headless bool          `yaml:"headless"`
	WaitTime time.Duration `yaml:"wait_time"`
	ExecPath string        `yaml:"exec_path"`
}

// LogConfig holds the logger configuration
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// OutputConfig controls how the CLI prints results
type OutputConfig struct {
	File   string `yaml:"file"`
	Format string `yaml:"format"`
	Lang   string `yaml:"lang"`
}

// Load loads the configuration from a YAML file on top of the defaults
func Load(filename string) (*AppConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	config := CreateDefault()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	return config, nil
}

// CreateDefault creates a default configuration
func CreateDefault() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Addr:            DefaultAddr,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 15 * time.Second,
		},
		Fetcher: FetcherConfig{
			Mode:           FetchModeHTTP,
			Timeout:        DefaultFetchTimeout,
			UserAgent:      DefaultUserAgent,
			AcceptLanguage: DefaultAcceptLanguage,
			MaxBodyBytes:   DefaultMaxBodyBytes,
		},
		Proxies: ProxyConfig{
			Enabled: false,
			Rotate:  true,
			List:    []string{},
		},
		Browser: BrowserConfig{
			Headless: true,
			WaitTime: 2 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Output: OutputConfig{
			Format: "table",
			Lang:   "en",
		},
	}
}

// Validate reports the first invalid setting
func (c *AppConfig) Validate() error {
	switch c.Fetcher.Mode {
	case FetchModeHTTP, FetchModeBrowser:
	default:
		return fmt.Errorf("unsupported fetch mode: %q", c.Fetcher.Mode)
	}
	if c.Fetcher.Timeout <= 0 {
		return fmt.Errorf("fetcher timeout must be positive, got %s", c.Fetcher.Timeout)
	}
	if c.Fetcher.MaxBodyBytes <= 0 {
		return fmt.Errorf("fetcher max_body_bytes must be positive, got %d", c.Fetcher.MaxBodyBytes)
	}
	if c.Proxies.Enabled && len(c.Proxies.List) == 0 {
		return fmt.Errorf("proxies enabled but no proxy configured")
	}
	switch c.Output.Format {
	case "json", "yaml", "table":
	default:
		return fmt.Errorf("unsupported output format: %s", c.Output.Format)
	}
	return nil
}

// FetchBudget is the longest a single fetch may take
func (c *AppConfig) FetchBudget() time.Duration {
	if c.Fetcher.Mode == FetchModeBrowser {
		return c.Fetcher.Timeout + c.Browser.WaitTime
	}
	return c.Fetcher.Timeout
}

// ValidateServe runs Validate and checks that the server write timeout leaves
// room for a full fetch. A zero write timeout means no limit.
func (c *AppConfig) ValidateServe() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if wt := c.Server.WriteTimeout; wt > 0 && wt <= c.FetchBudget() {
		return fmt.Errorf("server write_timeout %s must exceed the fetch budget %s", wt, c.FetchBudget())
	}
	return nil
}
