package extraction

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/williampepple1/post-inspector/pkg/models"
)

var (
	// ErrNoRecord is returned when no video or image record is embedded in the page
	ErrNoRecord = errors.New("no usable structured-data record")

	// ErrNoTimestamp is returned when the selected record has no upload time
	ErrNoTimestamp = errors.New("structured-data record has no upload time")
)

// Raw holds the fields read from a page before normalization
type Raw struct {
	Kind         models.Kind
	RecordType   string
	CanonicalURL string
	UploadedAt   string
	Likes        *int64
	Comments     *int64
	Views        *int64
}

// Extractor reads post metadata from embedded structured data
type Extractor struct {
	Vocab Vocabulary
}

// NewExtractor creates a new extractor using the default vocabulary
func NewExtractor() *Extractor {
	return &Extractor{
		Vocab: DefaultVocabulary,
	}
}

// Parse builds a traversable document from raw markup
func Parse(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return doc, nil
}

// Extract reads the primary record of doc. requestedURL is the canonical URL
// fallback and reelURL tells whether the URL named the reel category.
func (e *Extractor) Extract(doc *goquery.Document, requestedURL string, reelURL bool) (Raw, error) {
	record, ok := SelectPrimary(Records(doc), e.Vocab)
	if !ok {
		return Raw{}, ErrNoRecord
	}

	uploadedAt, ok := record.String("uploadDate")
	if !ok {
		uploadedAt, ok = record.String("datePublished")
	}
	if !ok {
		return Raw{}, ErrNoTimestamp
	}

	video := record.HasType(e.Vocab.VideoType)
	recordType := e.Vocab.ImageType
	if video {
		recordType = e.Vocab.VideoType
	}

	stats := InteractionStats(record)
	return Raw{
		Kind:         Classify(reelURL, video),
		RecordType:   recordType,
		CanonicalURL: CanonicalURL(doc, requestedURL),
		UploadedAt:   uploadedAt,
		Likes:        count(stats, e.Vocab.LikeAction),
		Comments:     count(stats, e.Vocab.CommentAction),
		Views:        count(stats, e.Vocab.ViewAction),
	}, nil
}

// CanonicalURL returns the og:url of the page, or fallback when it is missing or blank
func CanonicalURL(doc *goquery.Document, fallback string) string {
	content, _ := doc.Find(`meta[property="og:url"]`).First().Attr("content")
	if content = strings.TrimSpace(content); content != "" {
		return content
	}
	return fallback
}

func count(stats []InteractionStat, target string) *int64 {
	n, ok := LookupCount(stats, target)
	if !ok {
		return nil
	}
	return &n
}
