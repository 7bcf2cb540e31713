package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moradabadnews/web/internal/assets"
	"github.com/moradabadnews/web/internal/content"
	"github.com/moradabadnews/web/internal/routing"
	"github.com/moradabadnews/web/internal/seo"
	"github.com/moradabadnews/web/internal/site"
)

func metadataFor(in seo.Input) seo.Metadata {
	return seo.Generate(site.Default(), in)
}

func TestAssembleMinimumContract(t *testing.T) {
	// The four non-negotiable elements must survive every input, including
	// an empty one.
	doc := Assemble(site.Default(), metadataFor(seo.Input{Page: routing.PageGeneric, Path: "/whatever"}), nil, Page{})

	assert.Contains(t, doc, "<title>")
	assert.Contains(t, doc, `<meta name="description"`)
	assert.Contains(t, doc, `<link rel="canonical"`)
	assert.Contains(t, doc, `"@type":"Organization"`)
	assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>"))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(doc), "</html>"))
}

func TestAssembleEscapesHostileTitle(t *testing.T) {
	hostile := `<script>alert(1)</script>`
	in := seo.Input{
		Page:    routing.PageArticle,
		Path:    "/news/crime/xss",
		Article: &content.Article{Title: hostile, Category: "crime"},
	}
	doc := Assemble(site.Default(), metadataFor(in), nil, Page{Headline: hostile})

	assert.NotContains(t, doc, "<script>alert(1)</script>")
	assert.Contains(t, doc, "&lt;script&gt;alert(1)&lt;/script&gt;")
}

func TestAssembleArticleExtensionsOnlyForArticles(t *testing.T) {
	in := seo.Input{
		Page: routing.PageArticle,
		Path: "/news/politics/cm-visit",
		Article: &content.Article{
			Title:       "CM Visit",
			Category:    "politics",
			Author:      "R. Gupta",
			PublishedAt: "2026-02-01T08:00:00Z",
			Tags:        []string{"up", "cm"},
		},
	}
	doc := Assemble(site.Default(), metadataFor(in), nil, Page{})
	assert.Contains(t, doc, `property="og:type" content="article"`)
	assert.Contains(t, doc, `property="article:published_time" content="2026-02-01T08:00:00Z"`)
	// modified degrades to published
	assert.Contains(t, doc, `property="article:modified_time" content="2026-02-01T08:00:00Z"`)
	assert.Contains(t, doc, `property="article:tag" content="up"`)

	home := Assemble(site.Default(), metadataFor(seo.Input{Page: routing.PageHome, Path: "/"}), nil, Page{})
	assert.Contains(t, home, `property="og:type" content="website"`)
	assert.NotContains(t, home, "article:published_time")
}

func TestAssembleHeadOrder(t *testing.T) {
	doc := Assemble(site.Default(), metadataFor(seo.Input{Page: routing.PageHome, Path: "/"}), []assets.Tag{{Markup: `<link rel="stylesheet" href="/assets/app.css">`}}, Page{})

	idxTitle := strings.Index(doc, "<title>")
	idxRobots := strings.Index(doc, `name="robots"`)
	idxGeo := strings.Index(doc, `name="geo.region"`)
	idxOG := strings.Index(doc, `property="og:type"`)
	idxTwitter := strings.Index(doc, `name="twitter:card"`)
	idxCanonical := strings.Index(doc, `rel="canonical"`)
	idxPreconnect := strings.Index(doc, `rel="preconnect"`)
	idxJSONLD := strings.Index(doc, "application/ld+json")
	idxAnalytics := strings.Index(doc, "googletagmanager.com/gtag/js")
	idxAsset := strings.Index(doc, "/assets/app.css")

	for i, pair := range [][2]int{
		{idxTitle, idxRobots}, {idxRobots, idxGeo}, {idxGeo, idxOG},
		{idxOG, idxTwitter}, {idxTwitter, idxCanonical},
		{idxCanonical, idxPreconnect}, {idxPreconnect, idxJSONLD},
		{idxJSONLD, idxAnalytics}, {idxAnalytics, idxAsset},
	} {
		require.Greater(t, pair[0], -1, "element %d missing", i)
		assert.Less(t, pair[0], pair[1], "element %d out of order", i)
	}
}

func TestAssembleSearchEngineDirectives(t *testing.T) {
	doc := Assemble(site.Default(), metadataFor(seo.Input{Page: routing.PageSearch, Path: "/search"}), nil, Page{})
	for _, crawler := range []string{"bingbot", "slurp", "baiduspider", "yandex"} {
		assert.Contains(t, doc, `name="`+crawler+`" content="noindex,follow"`)
	}
}

func TestArticleBodyMarkdownAndSanitization(t *testing.T) {
	a := &content.Article{
		Format:  "markdown",
		Content: "# Heading\n\nSome **bold** text.\n\n<script>alert(1)</script>",
	}
	body := ArticleBody(a)
	assert.Contains(t, string(body), "<strong>bold</strong>")
	assert.NotContains(t, string(body), "<script>")

	html := &content.Article{Content: `<p onclick="x()">para</p><iframe src="x"></iframe>`}
	rendered := string(ArticleBody(html))
	assert.Contains(t, rendered, "<p>para</p>")
	assert.NotContains(t, rendered, "iframe")
	assert.NotContains(t, rendered, "onclick")

	assert.Equal(t, Raw(""), ArticleBody(nil))
}
