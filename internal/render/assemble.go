package render

import (
	"github.com/moradabadnews/web/internal/assets"
	"github.com/moradabadnews/web/internal/seo"
	"github.com/moradabadnews/web/internal/site"
)

// preconnectOrigins are the fixed third-party origins hinted from every page.
var preconnectOrigins = []string{
	"https://fonts.googleapis.com",
	"https://fonts.gstatic.com",
	"https://www.googletagmanager.com",
	"https://pagead2.googlesyndication.com",
}

// analyticsBootstrap is the fixed third-party analytics/ads loader. It
// carries no request data.
const analyticsBootstrap = `<script async src="https://www.googletagmanager.com/gtag/js?id=G-MBDNEWS1"></script>
<script>window.dataLayer=window.dataLayer||[];function gtag(){dataLayer.push(arguments);}gtag('js',new Date());gtag('config','G-MBDNEWS1');</script>`

// Page is the crawler-visible body content. BodyHTML must already be
// sanitized; everything else is escaped on interpolation.
type Page struct {
	Headline string
	Author   string
	Date     string
	BodyHTML Raw
}

// Assemble combines resolved metadata, discovered asset tags and the page
// body into one complete HTML document. The head is emitted in a fixed
// order; a missing article or empty asset list still yields a valid
// document.
func Assemble(cfg site.Config, meta seo.Metadata, tags []assets.Tag, page Page) string {
	var b Builder

	b.Line(`<!DOCTYPE html>`)
	b.Raw(`<html lang="`)
	b.Text(cfg.Language)
	b.Line(`">`)
	b.Line(`<head>`)
	b.Line(`<meta charset="UTF-8">`)
	b.Line(`<meta name="viewport" content="width=device-width, initial-scale=1.0">`)
	b.Line(`<link rel="icon" type="image/x-icon" href="/favicon.ico">`)
	b.LinkRel("apple-touch-icon", cfg.LogoPath)

	// primary meta
	b.Element("title", meta.Title)
	b.Meta("description", meta.Description)
	b.Meta("keywords", meta.Keywords)
	author := page.Author
	if author == "" {
		author = cfg.Name
	}
	b.Meta("author", author)
	b.Meta("robots", meta.Robots)
	for _, crawler := range []string{"bingbot", "slurp", "baiduspider", "yandex"} {
		b.Meta(crawler, meta.Robots)
	}

	// geographic meta
	b.Meta("geo.region", cfg.Region)
	b.Meta("geo.placename", cfg.Placename)
	b.Meta("geo.position", cfg.Latitude+";"+cfg.Longitude)
	b.Meta("ICBM", cfg.Latitude+", "+cfg.Longitude)

	// Open Graph
	b.MetaProperty("og:type", meta.OG.Type)
	b.MetaProperty("og:title", meta.OG.Title)
	b.MetaProperty("og:description", meta.OG.Description)
	b.MetaProperty("og:image", meta.OG.Image)
	b.MetaProperty("og:url", meta.OG.URL)
	b.MetaProperty("og:site_name", meta.OG.SiteName)
	b.MetaProperty("og:locale", meta.OG.Locale)
	if art := meta.OG.Article; art != nil {
		b.MetaProperty("article:author", art.Author)
		b.MetaProperty("article:published_time", art.PublishedTime)
		b.MetaProperty("article:modified_time", art.ModifiedTime)
		b.MetaProperty("article:section", art.Section)
		for _, tag := range art.Tags {
			b.MetaProperty("article:tag", tag)
		}
	}

	// Twitter
	b.Meta("twitter:card", meta.Twitter.Card)
	b.Meta("twitter:site", meta.Twitter.Site)
	b.Meta("twitter:title", meta.Twitter.Title)
	b.Meta("twitter:description", meta.Twitter.Description)
	b.Meta("twitter:image", meta.Twitter.Image)

	b.LinkRel("canonical", meta.Canonical)

	for _, origin := range preconnectOrigins {
		b.LinkRel("preconnect", origin)
		b.LinkRel("dns-prefetch", origin)
	}

	for _, block := range meta.JSONLD {
		b.JSONLD(block)
	}

	b.Line(Raw(analyticsBootstrap))

	for _, tag := range tags {
		b.Line(Raw(tag.Markup))
	}

	b.Line(`</head>`)
	b.Line(`<body>`)
	b.Raw(`<header><a href="/">`)
	b.Text(cfg.Name)
	b.Line(`</a></header>`)

	if page.Headline != "" {
		b.Line(`<article>`)
		b.Element("h1", page.Headline)
		if page.Author != "" || page.Date != "" {
			b.Raw(`<p class="byline">`)
			b.Text(page.Author)
			if page.Author != "" && page.Date != "" {
				b.Raw(` · `)
			}
			b.Text(page.Date)
			b.Line(`</p>`)
		}
		if page.BodyHTML != "" {
			b.Line(page.BodyHTML)
		}
		b.Line(`</article>`)
	}

	b.Line(`<div id="root"></div>`)
	b.Line(`</body>`)
	b.Line(`</html>`)
	return b.String()
}
