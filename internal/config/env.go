package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// LoadEnvFiles loads .env style files that exist, later files overriding earlier ones.
// It returns the files that were loaded.
func LoadEnvFiles(files ...string) ([]string, error) {
	loaded := make([]string, 0, len(files))
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Overload(file); err != nil {
			return loaded, fmt.Errorf("load %s: %w", file, err)
		}
		loaded = append(loaded, file)
	}
	return loaded, nil
}

// ApplyEnv overrides configuration values from the process environment
func (c *AppConfig) ApplyEnv() error {
	if v := getEnv("INSPECTOR_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := getEnv("INSPECTOR_FETCH_MODE"); v != "" {
		c.Fetcher.Mode = strings.ToLower(v)
	}
	if v := getEnv("INSPECTOR_FETCH_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("INSPECTOR_FETCH_TIMEOUT: %w", err)
		}
		c.Fetcher.Timeout = d
	}
	if v := getEnv("INSPECTOR_USER_AGENT"); v != "" {
		c.Fetcher.UserAgent = v
	}
	if v := getEnv("INSPECTOR_PROXY"); v != "" {
		c.Proxies.Enabled = true
		c.Proxies.List = strings.Split(v, ",")
	}
	if v := getEnv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := getEnv("LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	return nil
}

func getEnv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
