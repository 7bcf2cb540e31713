// Package seo turns a classified route and its content record into the
// resolved metadata bundle: title, description, keywords, robots, canonical,
// Open Graph, Twitter card and JSON-LD blocks. Every generator is a pure
// function; nothing here performs I/O.
package seo

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/moradabadnews/web/internal/content"
	"github.com/moradabadnews/web/internal/routing"
	"github.com/moradabadnews/web/internal/site"
)

const (
	maxDescriptionRunes = 155
	descriptionCutAt    = 152
	excerptCutAt        = 150
	maxKeywords         = 20
)

// Metadata is the resolved output bundle, computed fresh per request.
type Metadata struct {
	Title       string
	Description string
	Keywords    string
	Canonical   string
	Robots      string
	OG          OpenGraph
	Twitter     Twitter
	JSONLD      []string
}

// Input is everything metadata generation may read. Article and Category are
// nil unless the route required a fetch and the fetch succeeded; generation
// must produce a complete bundle either way.
type Input struct {
	Page        routing.PageType
	Path        string
	Params      routing.Params
	Article     *content.Article
	Category    *content.Category
	NoIndex     bool
	Breadcrumbs []BreadcrumbItem
	FAQs        []FAQ
}

var (
	stripPolicy = bluemonday.StrictPolicy()
	spaceRun    = regexp.MustCompile(`\s+`)
)

// Generate resolves the full metadata bundle for one request.
func Generate(cfg site.Config, in Input) Metadata {
	m := Metadata{
		Title:       Title(cfg, in),
		Description: Description(cfg, in),
		Keywords:    Keywords(in),
		Canonical:   Canonical(cfg.Origin, in.Path),
		Robots:      Robots(in.Page, in.NoIndex),
	}
	m.OG = BuildOpenGraph(cfg, in, m.Title, m.Description)
	m.Twitter = BuildTwitter(cfg, m.Title, m.Description, m.OG.Image)
	m.JSONLD = StructuredData(cfg, in, m.Canonical, m.Description)
	return m
}

// Title resolves the document title. Articles are never algorithmically
// retitled: an explicit metaTitle or title is used verbatim. Every other
// page type synthesizes "{Subject} - {SiteName}" or a fixed phrase.
func Title(cfg site.Config, in Input) string {
	switch in.Page {
	case routing.PageArticle:
		if a := in.Article; a != nil {
			if a.MetaTitle != "" {
				return a.MetaTitle
			}
			if a.Title != "" {
				return a.Title
			}
		}
		return "Article - " + cfg.Name
	case routing.PageCategory:
		return categoryDisplayName(in) + " News - " + cfg.Name
	case routing.PageHome:
		return cfg.Name + " - " + cfg.Tagline
	case routing.PageSearch:
		return "Search News - " + cfg.Name
	case routing.PageAbout:
		return "About Us - " + cfg.Name
	case routing.PageContact:
		return "Contact Us - " + cfg.Name
	case routing.PageCareers:
		return "Careers - " + cfg.Name
	case routing.PageTrending:
		return "Trending News - " + cfg.Name
	case routing.PageCurrentAffairs:
		return "Current Affairs - " + cfg.Name
	default:
		return cfg.Name + " - " + cfg.Tagline
	}
}

// Description resolves the meta description. Articles prefer their explicit
// metaDescription, then excerpt/summary, then a tag-stripped truncation of
// the body, then a generic sentence. Every result is clamped to the 155-rune
// limit on a rune boundary.
func Description(cfg site.Config, in Input) string {
	switch in.Page {
	case routing.PageArticle:
		if a := in.Article; a != nil {
			if a.MetaDescription != "" {
				return clampDescription(a.MetaDescription)
			}
			if a.Excerpt != "" {
				return clampDescription(a.Excerpt)
			}
			if a.Summary != "" {
				return clampDescription(a.Summary)
			}
			if excerpt := excerptFromHTML(a.Content); excerpt != "" {
				return clampDescription(excerpt)
			}
		}
		return clampDescription("Read the latest news and updates from " + cfg.Name + ".")
	case routing.PageCategory:
		if c := in.Category; c != nil && c.Description != "" {
			return clampDescription(c.Description)
		}
		return clampDescription("Latest " + categoryDisplayName(in) + " news and updates from " + cfg.Name + ".")
	case routing.PageSearch:
		return clampDescription("Search news articles from " + cfg.Name + ".")
	case routing.PageTrending:
		return clampDescription("Trending news stories from Moradabad, Uttar Pradesh and across India.")
	case routing.PageCurrentAffairs:
		return clampDescription("Daily current affairs and general knowledge updates from " + cfg.Name + ".")
	default:
		return clampDescription(cfg.Description)
	}
}

// Robots resolves the robots directive. Search result pages are always
// noindex,follow no matter what the caller passed; everything else honours
// the caller's noindex flag.
func Robots(page routing.PageType, noindex bool) string {
	if noindex {
		return "noindex,nofollow"
	}
	if page == routing.PageSearch {
		return "noindex,follow"
	}
	return "index,follow"
}

// Canonical builds the absolute canonical URL for a request path. Query
// parameters never participate, so ?q= variants of a page share one
// canonical.
func Canonical(origin, path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		path = "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimSuffix(origin, "/") + path
}

// clampDescription cuts descriptions longer than 155 runes at 152 and
// appends an ellipsis, always on a rune boundary.
func clampDescription(s string) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= maxDescriptionRunes {
		return s
	}
	return strings.TrimSpace(string(runes[:descriptionCutAt])) + "..."
}

// excerptFromHTML strips markup from an article body and truncates to 150
// runes plus an ellipsis.
func excerptFromHTML(s string) string {
	if s == "" {
		return ""
	}
	text := html.UnescapeString(stripPolicy.Sanitize(s))
	text = strings.TrimSpace(spaceRun.ReplaceAllString(text, " "))
	runes := []rune(text)
	if len(runes) <= excerptCutAt {
		return text
	}
	return strings.TrimSpace(string(runes[:excerptCutAt])) + "..."
}

func categoryDisplayName(in Input) string {
	if c := in.Category; c != nil && c.Name != "" {
		return c.Name
	}
	slug := in.Params.Category
	if slug == "" {
		return "Latest"
	}
	// a Caser is not safe for concurrent use, so build one per call
	return cases.Title(language.English).String(strings.ReplaceAll(slug, "-", " "))
}
