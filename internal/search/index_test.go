package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moradabadnews/web/internal/content"
)

type staticStore struct {
	articles []*content.Article
	err      error
}

func (s *staticStore) GetArticleByID(context.Context, string) (*content.Article, error) {
	return nil, content.ErrNotFound
}

func (s *staticStore) ListPublishedArticles(context.Context) ([]*content.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.articles, nil
}

func (s *staticStore) GetCategory(context.Context, string) (*content.Category, error) {
	return nil, content.ErrNotFound
}

func TestSearchScoringOrder(t *testing.T) {
	store := &staticStore{articles: []*content.Article{
		{ID: "body", Title: "Other", Content: "election coverage inside"},
		{ID: "title", Title: "Election results declared", PublishedAt: "2026-01-01T00:00:00Z"},
		{ID: "tag", Title: "Other", Tags: []string{"election"}},
	}}
	idx := New(store, nil)
	require.NoError(t, idx.Refresh(context.Background()))

	results := idx.Search("election", 10)
	require.Len(t, results, 3)
	assert.Equal(t, "title", results[0].Article.ID)
	assert.Equal(t, "tag", results[1].Article.ID)
	assert.Equal(t, "body", results[2].Article.ID)
	// title prefix bonus on top of the title score
	assert.Equal(t, scoreTitle+scoreTitlePrefix, results[0].Score)
}

func TestSearchTieBreaksOnRecency(t *testing.T) {
	store := &staticStore{articles: []*content.Article{
		{ID: "old", Title: "flood update", PublishedAt: "2025-01-01T00:00:00Z"},
		{ID: "new", Title: "flood warning", PublishedAt: "2026-01-01T00:00:00Z"},
	}}
	idx := New(store, nil)
	require.NoError(t, idx.Refresh(context.Background()))

	results := idx.Search("flood", 10)
	require.Len(t, results, 2)
	assert.Equal(t, "new", results[0].Article.ID)
}

func TestSearchLimitAndEmptyQuery(t *testing.T) {
	store := &staticStore{articles: []*content.Article{
		{ID: "a", Title: "news one"},
		{ID: "b", Title: "news two"},
		{ID: "c", Title: "news three"},
	}}
	idx := New(store, nil)
	require.NoError(t, idx.Refresh(context.Background()))

	assert.Len(t, idx.Search("news", 2), 2)
	assert.Empty(t, idx.Search("", 10))
	assert.Empty(t, idx.Search("   ", 10))
}

func TestRefreshErrorKeepsSnapshot(t *testing.T) {
	store := &staticStore{articles: []*content.Article{{ID: "a", Title: "kept"}}}
	idx := New(store, nil)
	require.NoError(t, idx.Refresh(context.Background()))

	store.err = errors.New("backend down")
	require.Error(t, idx.Refresh(context.Background()))
	assert.Equal(t, 1, idx.Len())
	assert.Len(t, idx.Search("kept", 10), 1)
}
