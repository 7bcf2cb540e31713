// Package routing maps raw request paths to a page type and the route
// parameters the content fetch needs. Classification is pure so the same
// rules can drive the SSR handler, the sitemap and tests without a router.
package routing

import "strings"

// PageType tags the metadata-generation branch a request takes.
type PageType string

const (
	PageHome           PageType = "home"
	PageArticle        PageType = "article"
	PageCategory       PageType = "category"
	PageSearch         PageType = "search"
	PageAbout          PageType = "about"
	PageContact        PageType = "contact"
	PageCareers        PageType = "careers"
	PageTrending       PageType = "trending"
	PageCurrentAffairs PageType = "current-affairs"
	PageGeneric        PageType = "page"
)

// Params carries the values extracted positionally from the path.
type Params struct {
	Category string
	Slug     string
	ID       string
}

// staticPages maps known static paths to their page type. Lookup is tried
// against the full remaining path first, then against the first segment.
var staticPages = map[string]PageType{
	"about":            PageAbout,
	"contact":          PageContact,
	"careers":          PageCareers,
	"search":           PageSearch,
	"current-affairs":  PageCurrentAffairs,
	"services":         PageGeneric,
	"privacy-policy":   PageGeneric,
	"terms-of-service": PageGeneric,
	"sitemap.xml":      PageGeneric,
}

// Classify resolves a request path to exactly one page type and its
// parameters. Segments are compared case-sensitively; the only
// normalization performed is trimming slashes and dropping empty segments,
// so /News/Moradabad and /news/moradabad intentionally classify
// differently.
func Classify(path string) (PageType, Params) {
	segs := segments(path)
	if len(segs) == 0 {
		return PageHome, Params{}
	}

	if segs[0] == "news" {
		rest := segs[1:]
		switch len(rest) {
		case 2:
			// trending is special-cased ahead of the generic article rule
			if rest[0] == "trending" {
				return PageTrending, Params{}
			}
			return PageArticle, Params{Category: rest[0], Slug: rest[1], ID: rest[1]}
		case 1:
			if rest[0] == "trending" {
				return PageTrending, Params{}
			}
			return PageCategory, Params{Category: rest[0]}
		}
	}

	if pt, ok := staticPages[strings.Join(segs, "/")]; ok {
		return pt, Params{}
	}
	if pt, ok := staticPages[segs[0]]; ok {
		return pt, Params{}
	}
	return PageGeneric, Params{}
}

// NeedsContent reports whether the page type requires a content fetch
// before metadata can be generated.
func (p PageType) NeedsContent() bool {
	return p == PageArticle || p == PageCategory
}

func segments(path string) []string {
	var segs []string
	for _, s := range strings.Split(strings.Trim(path, "/"), "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}
