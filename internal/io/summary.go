package io

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/williampepple1/post-inspector/pkg/models"
)

var supportedLanguages = []language.Tag{language.English, language.Korean}

var languageMatcher = language.NewMatcher(supportedLanguages)

// Korean labels, keyed by their English text
var koreanLabels = map[string]string{
	"Post type":      "게시물 유형",
	"Post":           "게시물",
	"Reel":           "릴스",
	"Uploaded (UTC)": "업로드 시간 (UTC)",
	"Uploaded (KST)": "업로드 시간 (KST)",
	"Likes":          "좋아요",
	"Comments":       "댓글",
	"Views":          "조회수",
	"Link":           "링크",
	"not available":  "없음",
	"Error":          "오류",
	"unknown error":  "알 수 없는 오류",
}

func init() {
	for key, msg := range koreanLabels {
		if err := message.SetString(language.Korean, key, msg); err != nil {
			panic(fmt.Sprintf("register label %q: %v", key, err))
		}
	}
}

func printerFor(lang string) *message.Printer {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	_, idx, _ := languageMatcher.Match(tag)
	return message.NewPrinter(supportedLanguages[idx])
}

// RenderSummary formats env as a two-column table with labels in lang.
// Failed inspections render their message only.
func RenderSummary(env models.Envelope, lang string) (string, error) {
	p := printerFor(lang)

	if !env.OK || env.Data == nil {
		msg := p.Sprintf("unknown error")
		if env.Error != nil && env.Error.Message != "" {
			msg = env.Error.Message
		}
		return p.Sprintf("Error") + ": " + msg, nil
	}

	data := env.Data
	kind := p.Sprintf("Post")
	if data.Kind == models.KindReel {
		kind = p.Sprintf("Reel")
	}

	count := func(n *int64) string {
		if n == nil {
			return p.Sprintf("not available")
		}
		return p.Sprintf("%d", *n)
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendRow(table.Row{p.Sprintf("Post type"), kind})
	t.AppendRow(table.Row{p.Sprintf("Uploaded (UTC)"), data.UploadedAtUTC})
	t.AppendRow(table.Row{p.Sprintf("Uploaded (KST)"), data.UploadedAtLocal})
	t.AppendRow(table.Row{p.Sprintf("Likes"), count(data.LikeCount)})
	t.AppendRow(table.Row{p.Sprintf("Comments"), count(data.CommentCount)})
	if data.Kind == models.KindReel {
		t.AppendRow(table.Row{p.Sprintf("Views"), count(data.ViewCount)})
	}
	t.AppendRow(table.Row{p.Sprintf("Link"), data.CanonicalURL})

	return t.Render(), nil
}
