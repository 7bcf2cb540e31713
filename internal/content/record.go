// Package content defines the article and category records the SEO pipeline
// reads, and the fetch semantics over the document store. The package never
// writes; authoring happens in the CMS.
package content

import (
	"errors"
	"strings"
	"time"
)

// ErrNotFound reports that the requested record is absent or not published.
var ErrNotFound = errors.New("content: not found")

// Article is the published news record as consumed by metadata generation.
// Timestamps are always RFC 3339 strings here regardless of how the store
// represents them.
type Article struct {
	ID              string
	Title           string
	Slug            string
	Summary         string
	Excerpt         string
	Content         string
	Format          string
	Image           string
	Author          string
	PublishedAt     string
	ModifiedAt      string
	Category        string
	Tags            []string
	MetaTitle       string
	MetaDescription string
	MetaKeywords    string
	OGImage         string
	Status          string
}

// Publishable reports whether the record may be served. An absent status is
// treated as published so legacy documents keep resolving.
func (a *Article) Publishable() bool {
	return a.Status == "" || a.Status == "published"
}

// Category is a section record backing category landing pages.
type Category struct {
	Slug        string
	Name        string
	Description string
	Image       string
}

// NormalizeTime renders a store timestamp as an RFC 3339 string. The store
// may hold a native timestamp, an RFC 3339 string, or nothing; anything
// unrecognizable passes through as its string form so a bad value degrades
// to harmless text instead of failing the render.
func NormalizeTime(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case time.Time:
		if t.IsZero() {
			return ""
		}
		return t.UTC().Format(time.RFC3339)
	case *time.Time:
		if t == nil {
			return ""
		}
		return NormalizeTime(*t)
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return ""
		}
		if parsed, err := time.Parse(time.RFC3339, s); err == nil {
			return parsed.UTC().Format(time.RFC3339)
		}
		return s
	default:
		return ""
	}
}
