package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/moradabadnews/web/internal/search"
)

// SearchAPI answers /api/search?q= with scored article summaries as JSON.
type SearchAPI struct {
	Index      *search.Index
	MaxResults int
}

type searchHit struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug,omitempty"`
	Category    string `json:"category,omitempty"`
	Summary     string `json:"summary,omitempty"`
	PublishedAt string `json:"publishedAt,omitempty"`
	Score       int    `json:"score"`
}

type searchResponse struct {
	Query   string      `json:"query"`
	Results []searchHit `json:"results"`
}

func (h *SearchAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	limit := h.MaxResults
	if limit <= 0 {
		limit = 20
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n < limit {
			limit = n
		}
	}

	hits := make([]searchHit, 0)
	for _, result := range h.Index.Search(query, limit) {
		a := result.Article
		hits = append(hits, searchHit{
			ID:          a.ID,
			Title:       a.Title,
			Slug:        a.Slug,
			Category:    a.Category,
			Summary:     a.Summary,
			PublishedAt: a.PublishedAt,
			Score:       result.Score,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(searchResponse{Query: query, Results: hits})
}
