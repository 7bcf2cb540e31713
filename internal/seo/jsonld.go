package seo

import (
	"encoding/json"

	"github.com/moradabadnews/web/internal/content"
	"github.com/moradabadnews/web/internal/routing"
	"github.com/moradabadnews/web/internal/site"
)

// JSON marshals v to a compact JSON string. It returns an empty string on
// error. encoding/json escapes <, > and & by default, so the result is safe
// to embed inside a <script> element without further treatment.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// StructuredData returns the marshaled JSON-LD blocks for a request: the
// Organization block first, then the page-specific block, then optional
// breadcrumb and FAQ blocks supplied by the caller.
func StructuredData(cfg site.Config, in Input, canonical, description string) []string {
	blocks := []string{JSON(Organization(cfg))}

	switch in.Page {
	case routing.PageArticle:
		if in.Article != nil {
			blocks = append(blocks, JSON(NewsArticle(cfg, in.Article, canonical, description)))
		} else {
			blocks = append(blocks, JSON(WebPage(cfg, "Article", canonical, description)))
		}
	case routing.PageCategory:
		blocks = append(blocks, JSON(CollectionPage(cfg, categoryDisplayName(in)+" News", canonical, description)))
	case routing.PageSearch:
		blocks = append(blocks, JSON(SearchResultsPage(cfg, canonical, description)))
	case routing.PageHome:
		blocks = append(blocks, JSON(WebSite(cfg)))
	default:
		blocks = append(blocks, JSON(WebPage(cfg, Title(cfg, in), canonical, description)))
	}

	if len(in.Breadcrumbs) > 0 {
		blocks = append(blocks, JSON(BreadcrumbList(in.Breadcrumbs)))
	}
	if len(in.FAQs) > 0 {
		blocks = append(blocks, JSON(FAQPage(in.FAQs)))
	}
	return blocks
}

// Organization returns the publisher Organization schema.
func Organization(cfg site.Config) map[string]any {
	return map[string]any{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     cfg.Name,
		"url":      cfg.Origin,
		"logo": map[string]any{
			"@type": "ImageObject",
			"url":   cfg.LogoURL(),
		},
		"sameAs": []string{cfg.FacebookURL, "https://twitter.com/" + trimAt(cfg.TwitterSite)},
	}
}

// WebSite returns the WebSite schema with a SearchAction.
func WebSite(cfg site.Config) map[string]any {
	return map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     cfg.Name,
		"url":      cfg.Origin,
		"potentialAction": map[string]any{
			"@type":       "SearchAction",
			"target":      cfg.Origin + "/search?q={search_term_string}",
			"query-input": "required name=search_term_string",
		},
	}
}

// NewsArticle returns the NewsArticle schema for a resolved article.
func NewsArticle(cfg site.Config, a *content.Article, canonical, description string) map[string]any {
	m := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "NewsArticle",
		"headline":    a.Title,
		"description": description,
		"mainEntityOfPage": map[string]any{
			"@type": "WebPage",
			"@id":   canonical,
		},
		"publisher": map[string]any{
			"@type": "Organization",
			"name":  cfg.Name,
			"logo": map[string]any{
				"@type": "ImageObject",
				"url":   cfg.LogoURL(),
			},
		},
	}
	if a.Image != "" {
		m["image"] = cfg.AbsoluteURL(a.Image)
	} else {
		m["image"] = cfg.LogoURL()
	}
	if a.Author != "" {
		m["author"] = map[string]any{"@type": "Person", "name": a.Author}
	}
	if a.PublishedAt != "" {
		m["datePublished"] = a.PublishedAt
	}
	if modified := a.ModifiedAt; modified != "" {
		m["dateModified"] = modified
	} else if a.PublishedAt != "" {
		m["dateModified"] = a.PublishedAt
	}
	return m
}

// CollectionPage returns the schema for category listings.
func CollectionPage(cfg site.Config, name, canonical, description string) map[string]any {
	return map[string]any{
		"@context":    "https://schema.org",
		"@type":       "CollectionPage",
		"name":        name,
		"url":         canonical,
		"description": description,
		"isPartOf":    map[string]any{"@type": "WebSite", "name": cfg.Name, "url": cfg.Origin},
	}
}

// SearchResultsPage returns the schema for the search page.
func SearchResultsPage(cfg site.Config, canonical, description string) map[string]any {
	return map[string]any{
		"@context":    "https://schema.org",
		"@type":       "SearchResultsPage",
		"name":        "Search News - " + cfg.Name,
		"url":         canonical,
		"description": description,
	}
}

// WebPage returns the generic page schema.
func WebPage(cfg site.Config, name, canonical, description string) map[string]any {
	return map[string]any{
		"@context":    "https://schema.org",
		"@type":       "WebPage",
		"name":        name,
		"url":         canonical,
		"description": description,
	}
}

// BreadcrumbItem maps a name to its absolute item URL.
type BreadcrumbItem struct {
	Name string
	Item string
}

// BreadcrumbList builds the schema.org BreadcrumbList from caller-supplied
// crumbs; it is never inferred from route parameters.
func BreadcrumbList(items []BreadcrumbItem) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
			"item":     it.Item,
		})
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": el,
	}
}

// FAQ is one caller-supplied question/answer pair.
type FAQ struct {
	Question string
	Answer   string
}

// FAQPage builds the schema.org FAQPage from caller-supplied pairs.
func FAQPage(faqs []FAQ) map[string]any {
	el := make([]map[string]any, 0, len(faqs))
	for _, f := range faqs {
		el = append(el, map[string]any{
			"@type": "Question",
			"name":  f.Question,
			"acceptedAnswer": map[string]any{
				"@type": "Answer",
				"text":  f.Answer,
			},
		})
	}
	return map[string]any{
		"@context":   "https://schema.org",
		"@type":      "FAQPage",
		"mainEntity": el,
	}
}

func trimAt(handle string) string {
	if len(handle) > 0 && handle[0] == '@' {
		return handle[1:]
	}
	return handle
}
