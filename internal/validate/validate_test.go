package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Accepts(t *testing.T) {
	cases := []struct {
		in       string
		url      string
		category Category
		id       string
	}{
		{"https://www.instagram.com/p/CxYz_12-3/", "https://www.instagram.com/p/CxYz_12-3/", CategoryPost, "CxYz_12-3"},
		{"https://www.instagram.com/p/abc", "https://www.instagram.com/p/abc", CategoryPost, "abc"},
		{"https://www.instagram.com/reel/C9abc/", "https://www.instagram.com/reel/C9abc/", CategoryReel, "C9abc"},
		{"https://www.instagram.com/reel/C9abc?igsh=xyz", "https://www.instagram.com/reel/C9abc?igsh=xyz", CategoryReel, "C9abc"},
		{"https://www.instagram.com/p/abc/?utm_source=ig_web_copy_link", "https://www.instagram.com/p/abc/?utm_source=ig_web_copy_link", CategoryPost, "abc"},
		{"  https://www.instagram.com/p/abc/ \n", "https://www.instagram.com/p/abc/", CategoryPost, "abc"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			target, err := Validate(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.url, target.URL)
			assert.Equal(t, tc.category, target.Category)
			assert.Equal(t, tc.id, target.ID)
		})
	}
}

func TestValidate_Rejects(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"not a url",
		"http://www.instagram.com/p/abc/",
		"https://instagram.com/p/abc/",
		"https://www.instagram.com.evil.example/p/abc/",
		"https://www.instagram.com/tv/abc/",
		"https://www.instagram.com/reels/abc/",
		"https://www.instagram.com/p/",
		"https://www.instagram.com/p/abc/extra",
		"https://www.instagram.com/p/a.b/",
		"https://www.instagram.com/p/abc//",
		"https://www.instagram.com/username/",
		"https://www.instagram.com/p/abc#frag",
		"HTTPS://WWW.INSTAGRAM.COM/p/abc/",
	}
	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			_, err := Validate(in)
			assert.ErrorIs(t, err, ErrInvalidURL)
		})
	}
}

func TestTarget_IsReel(t *testing.T) {
	assert.True(t, Target{Category: CategoryReel}.IsReel())
	assert.False(t, Target{Category: CategoryPost}.IsReel())
}
