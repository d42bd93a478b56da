package io

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
)

// ErrNoURL is returned when the input holds no URL
var ErrNoURL = errors.New("no URL provided")

// ErrMultipleURLs is returned when the input holds more than one URL
var ErrMultipleURLs = errors.New("expected exactly one URL")

// URLReader reads the single URL to inspect
type URLReader struct {
	Stdin io.Reader
}

// NewURLReader creates a new URL reader
func NewURLReader(stdin io.Reader) *URLReader {
	return &URLReader{
		Stdin: stdin,
	}
}

// FromArgs returns the URL given as the only argument, or reads it from
// stdin when the argument is "-" or missing
func (r *URLReader) FromArgs(args []string) (string, error) {
	switch {
	case len(args) > 1:
		return "", ErrMultipleURLs
	case len(args) == 1 && args[0] != "-":
		return args[0], nil
	default:
		return r.Read(r.Stdin)
	}
}

// ReadFromFile reads the URL from a file
func (r *URLReader) ReadFromFile(filename string) (string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return "", err
	}
	defer file.Close()

	return r.Read(file)
}

// Read returns the only URL in in, skipping blank lines and # comments
func (r *URLReader) Read(in io.Reader) (string, error) {
	if in == nil {
		return "", ErrNoURL
	}

	var urls []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		url := strings.TrimSpace(scanner.Text())
		if url != "" && !strings.HasPrefix(url, "#") {
			urls = append(urls, url)
		}
	}

	if err := scanner.Err(); err != nil {
		return "", err
	}

	switch len(urls) {
	case 0:
		return "", ErrNoURL
	case 1:
		return urls[0], nil
	default:
		return "", ErrMultipleURLs
	}
}
