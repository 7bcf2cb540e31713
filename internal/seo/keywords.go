package seo

import (
	"strings"

	"github.com/moradabadnews/web/internal/routing"
	"github.com/moradabadnews/web/internal/site"
)

// Keywords builds the comma-joined keyword list: the primary site keywords,
// then topical keywords for a known category, then words longer than three
// characters drawn from the title, then explicit tags, then the local
// keywords. Duplicates are dropped preserving first-seen order and the list
// is capped at twenty entries.
func Keywords(in Input) string {
	var candidates []string
	candidates = append(candidates, site.PrimaryKeywords...)

	category := in.Params.Category
	if category == "" && in.Article != nil {
		category = in.Article.Category
	}
	if topical, ok := site.CategoryKeywords[strings.ToLower(category)]; ok {
		candidates = append(candidates, topical...)
	}

	if in.Article != nil {
		candidates = append(candidates, titleWords(in.Article.Title)...)
		candidates = append(candidates, in.Article.Tags...)
		if in.Article.MetaKeywords != "" {
			for _, kw := range strings.Split(in.Article.MetaKeywords, ",") {
				if kw = strings.TrimSpace(kw); kw != "" {
					candidates = append(candidates, kw)
				}
			}
		}
	}
	if in.Page == routing.PageCategory {
		candidates = append(candidates, strings.ToLower(categoryDisplayName(in))+" news")
	}

	candidates = append(candidates, site.LocalKeywords...)

	seen := make(map[string]struct{}, len(candidates))
	keywords := make([]string, 0, maxKeywords)
	for _, kw := range candidates {
		if kw == "" {
			continue
		}
		if _, dup := seen[kw]; dup {
			continue
		}
		seen[kw] = struct{}{}
		keywords = append(keywords, kw)
		if len(keywords) == maxKeywords {
			break
		}
	}
	return strings.Join(keywords, ", ")
}

// titleWords extracts lowercase words longer than three characters from a
// title.
func titleWords(title string) []string {
	var words []string
	for _, w := range strings.Fields(strings.ToLower(title)) {
		w = strings.Trim(w, `.,:;!?"'()[]{}`)
		if len([]rune(w)) > 3 {
			words = append(words, w)
		}
	}
	return words
}
