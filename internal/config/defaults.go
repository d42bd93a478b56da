package config

import "time"

// DefaultUserAgent is a common desktop browser identity
const DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

// DefaultAcceptLanguage prefers English markup
const DefaultAcceptLanguage = "en-US,en;q=0.9"

const (
	DefaultAddr         = ":8080"
	DefaultFetchTimeout = 10 * time.Second
	DefaultMaxBodyBytes = 8 << 20
)
