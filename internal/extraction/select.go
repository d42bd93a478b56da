package extraction

import (
	"github.com/williampepple1/post-inspector/pkg/models"
)

// SelectPrimary picks the record describing the post: the first video-typed
// record, else the first image-typed record. It returns false when neither exists.
func SelectPrimary(records []Record, vocab Vocabulary) (Record, bool) {
	for _, typ := range []string{vocab.VideoType, vocab.ImageType} {
		for _, r := range records {
			if r.HasType(typ) {
				return r, true
			}
		}
	}
	return nil, false
}

// Classify returns KindReel when either the URL names the reel category or
// the selected record is video-typed. Metadata can only upgrade a post to a reel.
func Classify(reelURL bool, videoRecord bool) models.Kind {
	if reelURL || videoRecord {
		return models.KindReel
	}
	return models.KindPost
}
