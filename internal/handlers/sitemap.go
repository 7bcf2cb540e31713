package handlers

import (
	"context"
	"encoding/xml"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/moradabadnews/web/internal/content"
	"github.com/moradabadnews/web/internal/site"
)

// staticSitemapPaths are the always-present reader pages.
var staticSitemapPaths = []string{
	"/about", "/contact", "/careers", "/current-affairs", "/services",
	"/privacy-policy", "/terms-of-service",
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// Sitemap serves /sitemap.xml from the published article set plus the
// static pages.
type Sitemap struct {
	Site    site.Config
	Store   content.Store
	Timeout time.Duration
	Logger  *zap.Logger
}

func (h *Sitemap) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	urls := []sitemapURL{{Loc: h.Site.Origin + "/"}}
	for _, p := range staticSitemapPaths {
		urls = append(urls, sitemapURL{Loc: h.Site.AbsoluteURL(p)})
	}

	ctx := r.Context()
	if h.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.Timeout)
		defer cancel()
	}

	articles, err := h.Store.ListPublishedArticles(ctx)
	if err != nil {
		// A degraded sitemap with just the static pages beats a 500.
		h.logger().Warn("sitemap: listing articles failed", zap.Error(err))
	}
	for _, a := range articles {
		slug := a.Slug
		if slug == "" {
			slug = a.ID
		}
		lastMod := a.ModifiedAt
		if lastMod == "" {
			lastMod = a.PublishedAt
		}
		urls = append(urls, sitemapURL{
			Loc:     h.Site.AbsoluteURL("/news/" + a.Category + "/" + slug),
			LastMod: lastMod,
		})
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(xml.Header))
	_ = xml.NewEncoder(w).Encode(sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	})
}

func (h *Sitemap) logger() *zap.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return zap.NewNop()
}
