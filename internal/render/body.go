package render

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/moradabadnews/web/internal/content"
)

var (
	markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

	// bodyPolicy keeps the article markup crawlers should see and nothing
	// admin-entered content could abuse.
	bodyPolicy = func() *bluemonday.Policy {
		p := bluemonday.UGCPolicy()
		p.RequireNoFollowOnLinks(false)
		return p
	}()
)

// ArticleBody renders the stored article content to sanitized HTML for the
// crawler-facing shell. Markdown-formatted content is converted first;
// everything passes through the sanitizer, so the result is safe to embed
// as Raw.
func ArticleBody(a *content.Article) Raw {
	if a == nil || strings.TrimSpace(a.Content) == "" {
		return ""
	}

	source := a.Content
	if strings.EqualFold(a.Format, "markdown") {
		var buf bytes.Buffer
		if err := markdown.Convert([]byte(source), &buf); err == nil {
			source = buf.String()
		}
	}
	return Raw(bodyPolicy.Sanitize(source))
}
