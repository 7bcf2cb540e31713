// Package handlers exposes the HTTP surface: the SSR catch-all, the
// sitemap, the search API and asset serving.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/moradabadnews/web/internal/assets"
	"github.com/moradabadnews/web/internal/content"
	"github.com/moradabadnews/web/internal/platform/observability"
	"github.com/moradabadnews/web/internal/render"
	"github.com/moradabadnews/web/internal/routing"
	"github.com/moradabadnews/web/internal/seo"
	"github.com/moradabadnews/web/internal/site"
)

const defaultFetchTimeout = 5 * time.Second

// SSR renders the full HTML shell for any reader-facing path. A missing
// article never breaks the page shell; only an unexpected panic inside the
// pipeline produces a 500.
type SSR struct {
	Site         site.Config
	Store        content.Store
	Assets       []assets.Tag
	FetchTimeout time.Duration
	Logger       *zap.Logger
}

// ServeHTTP implements the classify, fetch, generate, assemble chain.
func (h *SSR) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := h.logger(r.Context())

	pageType, params := routing.Classify(r.URL.Path)
	outcome := "ok"

	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("render panic",
				zap.String("path", r.URL.Path),
				zap.Any("panic", rec),
			)
			rendersTotal.WithLabelValues(string(pageType), "error").Inc()
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("Server Error"))
		}
	}()

	in := seo.Input{
		Page:   pageType,
		Path:   r.URL.Path,
		Params: params,
	}
	var page render.Page

	if pageType.NeedsContent() {
		in, page, outcome = h.fetchContent(r.Context(), in, logger)
	}

	meta := seo.Generate(h.Site, in)
	doc := render.Assemble(h.Site, meta, h.Assets, page)

	rendersTotal.WithLabelValues(string(pageType), outcome).Inc()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc))
}

// fetchContent runs the bounded content fetch. Not-found, timeouts and
// upstream read errors all land on the same fallback path: generic
// metadata, complete shell.
func (h *SSR) fetchContent(ctx context.Context, in seo.Input, logger *zap.Logger) (seo.Input, render.Page, string) {
	timeout := h.FetchTimeout
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	fetchCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var page render.Page

	switch in.Page {
	case routing.PageArticle:
		article, err := content.FetchArticle(fetchCtx, h.Store, in.Params.Category, in.Params.Slug)
		if err != nil {
			h.logFetchMiss(logger, "article", in.Params.Slug, err)
			return in, page, "fallback"
		}
		contentFetches.WithLabelValues("hit").Inc()
		in.Article = article
		in.Breadcrumbs = h.articleBreadcrumbs(article)
		page = render.Page{
			Headline: article.Title,
			Author:   article.Author,
			Date:     article.PublishedAt,
			BodyHTML: render.ArticleBody(article),
		}
	case routing.PageCategory:
		category, err := content.FetchCategory(fetchCtx, h.Store, in.Params.Category)
		if err != nil {
			h.logFetchMiss(logger, "category", in.Params.Category, err)
			return in, page, "fallback"
		}
		contentFetches.WithLabelValues("hit").Inc()
		in.Category = category
	}
	return in, page, "ok"
}

func (h *SSR) articleBreadcrumbs(a *content.Article) []seo.BreadcrumbItem {
	crumbs := []seo.BreadcrumbItem{{Name: "Home", Item: h.Site.Origin + "/"}}
	if a.Category != "" {
		crumbs = append(crumbs, seo.BreadcrumbItem{
			Name: a.Category,
			Item: h.Site.AbsoluteURL("/news/" + a.Category),
		})
	}
	slug := a.Slug
	if slug == "" {
		slug = a.ID
	}
	crumbs = append(crumbs, seo.BreadcrumbItem{
		Name: a.Title,
		Item: h.Site.AbsoluteURL("/news/" + a.Category + "/" + slug),
	})
	return crumbs
}

func (h *SSR) logFetchMiss(logger *zap.Logger, kind, key string, err error) {
	result := "miss"
	if !errors.Is(err, content.ErrNotFound) {
		result = "error"
	}
	contentFetches.WithLabelValues(result).Inc()
	logger.Warn("content fetch failed, rendering fallback shell",
		zap.String("kind", kind),
		zap.String("key", key),
		zap.Error(err),
	)
}

func (h *SSR) logger(ctx context.Context) *zap.Logger {
	if l, ok := observability.LoggerFrom(ctx); ok {
		return l
	}
	if h.Logger != nil {
		return h.Logger
	}
	return zap.NewNop()
}
