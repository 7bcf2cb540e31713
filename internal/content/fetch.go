package content

import (
	"context"
	"errors"
	"strings"
)

// FetchArticle resolves an article for news/{category}/{slug} requests.
//
// Slugs may or may not equal document IDs depending on how content was
// authored, so resolution runs two strategies: a primary-key lookup using
// the slug as the ID, verified against the requested category and
// publishability, then a scan of the published collection matching the slug
// field (or the ID when the slug field is absent). Category comparison is
// case-insensitive in both strategies.
func FetchArticle(ctx context.Context, store Store, category, slug string) (*Article, error) {
	a, err := store.GetArticleByID(ctx, slug)
	if err == nil && matchesCategory(a, category) && a.Publishable() {
		return a, nil
	}
	if err != nil && !errors.Is(err, ErrNotFound) {
		// Upstream trouble on the point lookup; the scan below may still
		// succeed, and if it errors too that error wins.
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
	}

	all, err := store.ListPublishedArticles(ctx)
	if err != nil {
		return nil, err
	}
	for _, candidate := range all {
		key := candidate.Slug
		if key == "" {
			key = candidate.ID
		}
		if key == slug && matchesCategory(candidate, category) && candidate.Publishable() {
			return candidate, nil
		}
	}
	return nil, ErrNotFound
}

// FetchCategory resolves a category record for news/{category} requests.
func FetchCategory(ctx context.Context, store Store, slug string) (*Category, error) {
	return store.GetCategory(ctx, slug)
}

func matchesCategory(a *Article, category string) bool {
	return strings.EqualFold(a.Category, category)
}
