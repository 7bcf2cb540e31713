package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyHome(t *testing.T) {
	for _, path := range []string{"", "/", "//", "///"} {
		pt, params := Classify(path)
		assert.Equal(t, PageHome, pt, "path %q", path)
		assert.Equal(t, Params{}, params, "path %q", path)
	}
}

func TestClassifyArticle(t *testing.T) {
	tests := []struct {
		path     string
		category string
		slug     string
	}{
		{"/news/moradabad/brass-exports-rise", "moradabad", "brass-exports-rise"},
		{"news/politics/cm-visit", "politics", "cm-visit"},
		{"/news/crime/case-42/", "crime", "case-42"},
		{"//news//sports//final-score", "sports", "final-score"},
	}
	for _, tt := range tests {
		pt, params := Classify(tt.path)
		assert.Equal(t, PageArticle, pt, "path %q", tt.path)
		assert.Equal(t, tt.category, params.Category)
		assert.Equal(t, tt.slug, params.Slug)
		assert.Equal(t, tt.slug, params.ID)
	}
}

func TestClassifyTrendingBeatsArticleRule(t *testing.T) {
	pt, params := Classify("/news/trending/whatever")
	assert.Equal(t, PageTrending, pt)
	assert.Equal(t, Params{}, params)

	pt, params = Classify("/news/trending")
	assert.Equal(t, PageTrending, pt)
	assert.Equal(t, Params{}, params)
}

func TestClassifyCategory(t *testing.T) {
	pt, params := Classify("/news/moradabad")
	assert.Equal(t, PageCategory, pt)
	assert.Equal(t, "moradabad", params.Category)
	assert.Empty(t, params.Slug)
}

func TestClassifyStaticPages(t *testing.T) {
	tests := map[string]PageType{
		"/about":            PageAbout,
		"/contact":          PageContact,
		"/careers":          PageCareers,
		"/search":           PageSearch,
		"/current-affairs":  PageCurrentAffairs,
		"/services":         PageGeneric,
		"/privacy-policy":   PageGeneric,
		"/terms-of-service": PageGeneric,
		"/sitemap.xml":      PageGeneric,
		// first-segment fallback
		"/about/team": PageAbout,
	}
	for path, want := range tests {
		pt, _ := Classify(path)
		assert.Equal(t, want, pt, "path %q", path)
	}
}

func TestClassifyUnknownDefaultsToPage(t *testing.T) {
	pt, params := Classify("/no/such/route/here")
	assert.Equal(t, PageGeneric, pt)
	assert.Equal(t, Params{}, params)
}

func TestClassifyCasePreserved(t *testing.T) {
	// Case-sensitive on purpose: /News is not the news section.
	pt, _ := Classify("/News/Moradabad")
	assert.Equal(t, PageGeneric, pt)

	pt, params := Classify("/news/Moradabad/Some-Slug")
	assert.Equal(t, PageArticle, pt)
	assert.Equal(t, "Moradabad", params.Category)
}

func TestNeedsContent(t *testing.T) {
	assert.True(t, PageArticle.NeedsContent())
	assert.True(t, PageCategory.NeedsContent())
	assert.False(t, PageHome.NeedsContent())
	assert.False(t, PageSearch.NeedsContent())
	assert.False(t, PageTrending.NeedsContent())
}
