package models

// Kind is the coarse content classification of an inspected post
type Kind string

const (
	// KindPost is an image post or carousel
	KindPost Kind = "post"
	// KindReel is a video post
	KindReel Kind = "reel"
)

// ExtractionResult holds the normalized metadata of a single post
type ExtractionResult struct {
	Kind            Kind   `json:"kind" yaml:"kind"`
	CanonicalURL    string `json:"canonicalUrl" yaml:"canonical_url"`
	UploadedAtUTC   string `json:"uploadedAtUtc" yaml:"uploaded_at_utc"`
	UploadedAtLocal string `json:"uploadedAtLocal" yaml:"uploaded_at_local"`
	LikeCount       *int64 `json:"likeCount" yaml:"like_count"`
	CommentCount    *int64 `json:"commentCount" yaml:"comment_count"`
	ViewCount       *int64 `json:"viewCount,omitempty" yaml:"view_count,omitempty"`
}

// ErrorBody is the code/message pair reported for a failed inspection
type ErrorBody struct {
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// Envelope is the tagged response returned for every inspection
type Envelope struct {
	OK    bool              `json:"ok" yaml:"ok"`
	Data  *ExtractionResult `json:"data,omitempty" yaml:"data,omitempty"`
	Error *ErrorBody        `json:"error,omitempty" yaml:"error,omitempty"`
}

// Success wraps a result in a successful envelope
func Success(result ExtractionResult) Envelope {
	return Envelope{OK: true, Data: &result}
}

// Failure wraps a code and message in a failed envelope
func Failure(code, message string) Envelope {
	return Envelope{OK: false, Error: &ErrorBody{Code: code, Message: message}}
}
