// Package validate checks that user input is a supported public post URL.
package validate

import (
	"errors"
	"regexp"
	"strings"
)

// ErrInvalidURL is returned when the input is not a supported post URL
var ErrInvalidURL = errors.New("invalid or unsupported post URL")

// Category is the content category named by the URL path
type Category string

const (
	CategoryPost Category = "p"
	CategoryReel Category = "reel"
)

var postURLPattern = regexp.MustCompile(`^https://www\.instagram\.com/(p|reel)/([a-zA-Z0-9_-]+)/?(\?.*)?$`)

// Target is a validated post URL
type Target struct {
	URL      string
	Category Category
	ID       string
}

// IsReel reports whether the URL path names the video category
func (t Target) IsReel() bool {
	return t.Category == CategoryReel
}

// Validate trims raw and matches it against the supported URL shape.
// The trimmed URL is passed on unchanged.
func Validate(raw string) (Target, error) {
	url := strings.TrimSpace(raw)
	m := postURLPattern.FindStringSubmatch(url)
	if m == nil {
		return Target{}, ErrInvalidURL
	}
	return Target{
		URL:      url,
		Category: Category(m[1]),
		ID:       m[2],
	}, nil
}
