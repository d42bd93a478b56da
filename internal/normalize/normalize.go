// Package normalize turns extracted fields into the published result schema.
package normalize

import (
	"strings"
	"time"

	"github.com/williampepple1/post-inspector/internal/extraction"
	"github.com/williampepple1/post-inspector/pkg/models"
)

// LocalOffset is the fixed shift applied to upload timestamps
const LocalOffset = 9 * time.Hour

// LocalLayout is the format of the local timestamp
const LocalLayout = "2006-01-02 15:04"

var localZone = time.FixedZone("UTC+9", int(LocalOffset/time.Second))

// Layouts accepted for source timestamps. Inputs without a zone are read as UTC.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTimestamp parses an ISO-8601 timestamp in any of the accepted layouts
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// LocalTime shifts utc to the fixed local offset, or returns "" when it cannot be parsed
func LocalTime(utc string) string {
	t, ok := ParseTimestamp(utc)
	if !ok {
		return ""
	}
	return t.In(localZone).Format(LocalLayout)
}

// Build assembles the result. The view count survives only for reels.
func Build(raw extraction.Raw) models.ExtractionResult {
	result := models.ExtractionResult{
		Kind:            raw.Kind,
		CanonicalURL:    raw.CanonicalURL,
		UploadedAtUTC:   raw.UploadedAt,
		UploadedAtLocal: LocalTime(raw.UploadedAt),
		LikeCount:       raw.Likes,
		CommentCount:    raw.Comments,
	}
	if raw.Kind == models.KindReel {
		result.ViewCount = raw.Views
	}
	return result
}
