// Package search maintains an in-memory index of published articles and
// answers reader queries with a linear scan and a scoring heuristic. The
// index is an explicitly constructed service with a Refresh lifecycle; it
// holds no module-level state.
package search

import (
	"context"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/moradabadnews/web/internal/content"
)

const (
	scoreTitle       = 10
	scoreTitlePrefix = 5
	scoreTag         = 4
	scoreCategory    = 3
	scoreSummary     = 2
	scoreBody        = 1
)

// Result is one scored hit.
type Result struct {
	Article *content.Article
	Score   int
}

// Index is a point-in-time snapshot of published articles, safe for
// concurrent reads. Refresh swaps the snapshot atomically under a write
// lock.
type Index struct {
	store  content.Store
	logger *zap.Logger

	mu       sync.RWMutex
	articles []*content.Article
}

// New constructs an empty index over the given store. Call Refresh before
// serving queries.
func New(store content.Store, logger *zap.Logger) *Index {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Index{store: store, logger: logger}
}

// Refresh reloads the snapshot from the store. On error the previous
// snapshot stays in place.
func (i *Index) Refresh(ctx context.Context) error {
	articles, err := i.store.ListPublishedArticles(ctx)
	if err != nil {
		return err
	}

	i.mu.Lock()
	i.articles = articles
	i.mu.Unlock()

	i.logger.Info("search index refreshed", zap.Int("articles", len(articles)))
	return nil
}

// Len reports the number of indexed articles.
func (i *Index) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.articles)
}

// Search scans the snapshot and returns up to limit results ordered by
// score, most recent first on ties. An empty query returns nothing.
func (i *Index) Search(query string, limit int) []Result {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || limit <= 0 {
		return nil
	}

	i.mu.RLock()
	snapshot := i.articles
	i.mu.RUnlock()

	var results []Result
	for _, a := range snapshot {
		if score := scoreArticle(a, query); score > 0 {
			results = append(results, Result{Article: a, Score: score})
		}
	}

	sort.SliceStable(results, func(x, y int) bool {
		if results[x].Score != results[y].Score {
			return results[x].Score > results[y].Score
		}
		return results[x].Article.PublishedAt > results[y].Article.PublishedAt
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

func scoreArticle(a *content.Article, query string) int {
	score := 0

	title := strings.ToLower(a.Title)
	if strings.Contains(title, query) {
		score += scoreTitle
		if strings.HasPrefix(title, query) {
			score += scoreTitlePrefix
		}
	}
	for _, tag := range a.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			score += scoreTag
			break
		}
	}
	if strings.Contains(strings.ToLower(a.Category), query) {
		score += scoreCategory
	}
	if strings.Contains(strings.ToLower(a.Summary), query) || strings.Contains(strings.ToLower(a.Excerpt), query) {
		score += scoreSummary
	}
	if strings.Contains(strings.ToLower(a.Content), query) {
		score += scoreBody
	}
	return score
}
