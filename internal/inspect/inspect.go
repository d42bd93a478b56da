// Package inspect runs the validate, fetch, extract and normalize stages for one post URL.
package inspect

import (
	"context"
	"errors"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"github.com/williampepple1/post-inspector/internal/extraction"
	"github.com/williampepple1/post-inspector/internal/normalize"
	"github.com/williampepple1/post-inspector/internal/scraper"
	"github.com/williampepple1/post-inspector/internal/validate"
	"github.com/williampepple1/post-inspector/pkg/models"
)

// Extractor reads raw fields from a parsed page
type Extractor interface {
	Extract(doc *goquery.Document, requestedURL string, reelURL bool) (extraction.Raw, error)
}

// Inspector runs the pipeline. It holds no per-call state and is safe for concurrent use.
type Inspector struct {
	Fetcher   scraper.Fetcher
	Extractor Extractor
	Logger    zerolog.Logger
}

// New creates an inspector using the default extractor
func New(fetcher scraper.Fetcher, logger zerolog.Logger) *Inspector {
	return &Inspector{
		Fetcher:   fetcher,
		Extractor: extraction.NewExtractor(),
		Logger:    logger,
	}
}

// Inspect validates rawURL, fetches the page and returns its normalized metadata.
// Every failure is an *Error carrying its code.
func (i *Inspector) Inspect(ctx context.Context, rawURL string) (models.ExtractionResult, error) {
	target, err := validate.Validate(rawURL)
	if err != nil {
		return models.ExtractionResult{}, newError(CodeInvalidURL, msgInvalidURL, err)
	}

	page, err := i.Fetcher.Fetch(ctx, target.URL)
	if err != nil {
		if errors.Is(err, scraper.ErrNotFound) {
			return models.ExtractionResult{}, newError(CodeNotFound, msgNotFound, err)
		}
		return models.ExtractionResult{}, newError(CodeFetchFailed, msgFetchFailed, err)
	}

	doc, err := extraction.Parse(page.HTML)
	if err != nil {
		return models.ExtractionResult{}, newError(CodeParsingFailed, msgNoMetadata, err)
	}

	raw, err := i.Extractor.Extract(doc, target.URL, target.IsReel())
	if err != nil {
		msg := msgNoMetadata
		if errors.Is(err, extraction.ErrNoTimestamp) {
			msg = msgNoUploadAt
		}
		return models.ExtractionResult{}, newError(CodeParsingFailed, msg, err)
	}

	i.Logger.Debug().
		Str("url", target.URL).
		Str("shortcode", target.ID).
		Str("record_type", raw.RecordType).
		Str("kind", string(raw.Kind)).
		Msg("extracted post metadata")

	return normalize.Build(raw), nil
}

// Envelope runs Inspect and wraps the outcome for callers
func (i *Inspector) Envelope(ctx context.Context, rawURL string) (models.Envelope, Code) {
	result, err := i.Inspect(ctx, rawURL)
	if err != nil {
		ie := asError(err)
		return models.Failure(string(ie.Code), ie.Message), ie.Code
	}
	return models.Success(result), ""
}
