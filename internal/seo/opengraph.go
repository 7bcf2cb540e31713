package seo

import (
	"github.com/moradabadnews/web/internal/routing"
	"github.com/moradabadnews/web/internal/site"
)

// OpenGraph is the og: block. Article is non-nil exactly when the page is a
// resolved article, so downstream code branches on presence instead of
// sniffing field combinations.
type OpenGraph struct {
	Type        string
	Title       string
	Description string
	Image       string
	URL         string
	SiteName    string
	Locale      string
	Article     *ArticleInfo
}

// ArticleInfo is the og:article extension block.
type ArticleInfo struct {
	Author        string
	PublishedTime string
	ModifiedTime  string
	Section       string
	Tags          []string
}

// Twitter is the twitter: card block.
type Twitter struct {
	Card        string
	Site        string
	Title       string
	Description string
	Image       string
}

// BuildOpenGraph populates the og: block from the resolved title and
// description. The image defaults to the site logo and is always absolute.
func BuildOpenGraph(cfg site.Config, in Input, title, description string) OpenGraph {
	og := OpenGraph{
		Type:        "website",
		Title:       title,
		Description: description,
		Image:       cfg.LogoURL(),
		URL:         Canonical(cfg.Origin, in.Path),
		SiteName:    cfg.Name,
		Locale:      cfg.Locale,
	}

	a := in.Article
	if in.Page != routing.PageArticle || a == nil {
		if in.Page == routing.PageCategory && in.Category != nil && in.Category.Image != "" {
			og.Image = cfg.AbsoluteURL(in.Category.Image)
		}
		return og
	}

	og.Type = "article"
	if a.OGImage != "" {
		og.Image = cfg.AbsoluteURL(a.OGImage)
	} else if a.Image != "" {
		og.Image = cfg.AbsoluteURL(a.Image)
	}

	modified := a.ModifiedAt
	if modified == "" {
		// modifiedTime is never empty on the wire, it degrades to the
		// publish time.
		modified = a.PublishedAt
	}
	og.Article = &ArticleInfo{
		Author:        a.Author,
		PublishedTime: a.PublishedAt,
		ModifiedTime:  modified,
		Section:       a.Category,
		Tags:          a.Tags,
	}
	return og
}

// BuildTwitter populates the twitter: card from the already-resolved fields.
func BuildTwitter(cfg site.Config, title, description, image string) Twitter {
	return Twitter{
		Card:        "summary_large_image",
		Site:        cfg.TwitterSite,
		Title:       title,
		Description: description,
		Image:       image,
	}
}
