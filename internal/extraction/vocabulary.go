package extraction

// Structured-data vocabulary published by the content host. These values
// belong to the provider and can change without notice.
const (
	TypeVideoObject = "VideoObject"
	TypeImageObject = "ImageObject"

	ActionLike    = "https://schema.org/LikeAction"
	ActionComment = "https://schema.org/CommentAction"
	ActionView    = "https://schema.org/ViewAction"
)

// Vocabulary names the record types and interaction types the extractor looks for
type Vocabulary struct {
	VideoType     string
	ImageType     string
	LikeAction    string
	CommentAction string
	ViewAction    string
}

// DefaultVocabulary is the schema.org vocabulary currently served
var DefaultVocabulary = Vocabulary{
	VideoType:     TypeVideoObject,
	ImageType:     TypeImageObject,
	LikeAction:    ActionLike,
	CommentAction: ActionComment,
	ViewAction:    ActionView,
}
