package seo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moradabadnews/web/internal/content"
	"github.com/moradabadnews/web/internal/routing"
)

func decodeBlock(t *testing.T, block string) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(block), &m))
	return m
}

func TestStructuredDataAlwaysLeadsWithOrganization(t *testing.T) {
	for _, page := range []routing.PageType{
		routing.PageHome, routing.PageArticle, routing.PageCategory,
		routing.PageSearch, routing.PageGeneric,
	} {
		blocks := StructuredData(testSite(), Input{Page: page, Path: "/"}, "https://moradabadnews.in/", "desc")
		require.GreaterOrEqual(t, len(blocks), 2, "page %s", page)
		org := decodeBlock(t, blocks[0])
		assert.Equal(t, "Organization", org["@type"])
		assert.Equal(t, "Moradabad News", org["name"])
	}
}

func TestNewsArticleBlock(t *testing.T) {
	a := &content.Article{
		Title:       "Brass exports rise",
		Author:      "S. Verma",
		Image:       "/images/brass.jpg",
		PublishedAt: "2026-01-02T03:04:05Z",
	}
	blocks := StructuredData(testSite(), Input{
		Page:    routing.PageArticle,
		Path:    "/news/business/brass-exports",
		Article: a,
	}, "https://moradabadnews.in/news/business/brass-exports", "desc")

	art := decodeBlock(t, blocks[1])
	assert.Equal(t, "NewsArticle", art["@type"])
	assert.Equal(t, "Brass exports rise", art["headline"])
	assert.Equal(t, "https://moradabadnews.in/images/brass.jpg", art["image"])
	// dateModified degrades to datePublished
	assert.Equal(t, "2026-01-02T03:04:05Z", art["dateModified"])

	author, ok := art["author"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Person", author["@type"])

	main, ok := art["mainEntityOfPage"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "https://moradabadnews.in/news/business/brass-exports", main["@id"])
}

func TestArticleNotFoundFallsBackToWebPage(t *testing.T) {
	blocks := StructuredData(testSite(), Input{Page: routing.PageArticle}, "https://moradabadnews.in/news/x/y", "desc")
	page := decodeBlock(t, blocks[1])
	assert.Equal(t, "WebPage", page["@type"])
}

func TestWebSiteSearchAction(t *testing.T) {
	blocks := StructuredData(testSite(), Input{Page: routing.PageHome, Path: "/"}, "https://moradabadnews.in/", "desc")
	ws := decodeBlock(t, blocks[1])
	assert.Equal(t, "WebSite", ws["@type"])
	action, ok := ws["potentialAction"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "SearchAction", action["@type"])
	assert.Contains(t, action["target"], "{search_term_string}")
}

func TestBreadcrumbAndFAQOnlyWhenSupplied(t *testing.T) {
	in := Input{Page: routing.PageGeneric, Path: "/about"}
	blocks := StructuredData(testSite(), in, "https://moradabadnews.in/about", "desc")
	assert.Len(t, blocks, 2)

	in.Breadcrumbs = []BreadcrumbItem{{Name: "Home", Item: "https://moradabadnews.in/"}}
	in.FAQs = []FAQ{{Question: "Q", Answer: "A"}}
	blocks = StructuredData(testSite(), in, "https://moradabadnews.in/about", "desc")
	require.Len(t, blocks, 4)
	assert.Equal(t, "BreadcrumbList", decodeBlock(t, blocks[2])["@type"])
	assert.Equal(t, "FAQPage", decodeBlock(t, blocks[3])["@type"])
}

func TestJSONEscapesScriptCloser(t *testing.T) {
	out := JSON(map[string]any{"name": "</script><script>alert(1)</script>"})
	assert.NotContains(t, out, "</script>")
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, "</script><script>alert(1)</script>", m["name"])
}
