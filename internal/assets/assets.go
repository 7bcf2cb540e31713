// Package assets discovers the <link> and <script> tags that load the built
// frontend. Discovery runs once at startup and tolerates every tier being
// absent: a versioned manifest is the primary mechanism, the built
// index.html and a directory scan remain as compatibility shims, and a
// hardcoded dev entry closes the chain so the assembler behaves identically
// against a production build, a partial build, or a dev server.
package assets

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

const (
	manifestName = "manifest.json"
	indexName    = "index.html"

	// devEntryTag is the final fallback pointing at the dev server entry.
	devEntryTag = `<script type="module" src="/src/main.jsx"></script>`
)

// Tag is one ordered asset tag, emitted verbatim into the document head.
type Tag struct {
	Markup string
}

// Discover resolves the asset tags for the build output at dir. It never
// fails; an empty or missing directory degrades tier by tier down to the
// dev entry tag.
func Discover(dir string, logger *zap.Logger) []Tag {
	if logger == nil {
		logger = zap.NewNop()
	}

	if tags, err := fromManifest(filepath.Join(dir, manifestName)); err == nil && len(tags) > 0 {
		logger.Info("assets: using build manifest", zap.Int("tags", len(tags)))
		return tags
	} else if err != nil && !os.IsNotExist(err) {
		logger.Warn("assets: manifest unreadable", zap.Error(err))
	}

	if tags, err := fromIndexHTML(filepath.Join(dir, indexName)); err == nil && len(tags) > 0 {
		logger.Info("assets: extracted tags from built index.html", zap.Int("tags", len(tags)))
		return tags
	} else if err != nil && !os.IsNotExist(err) {
		logger.Warn("assets: index.html unreadable", zap.Error(err))
	}

	if tags := fromDirectoryScan(dir); len(tags) > 0 {
		logger.Info("assets: inferred tags from directory scan", zap.Int("tags", len(tags)))
		return tags
	}

	logger.Info("assets: no build output, using dev entry")
	return []Tag{{Markup: devEntryTag}}
}

type manifestAsset struct {
	Role string `json:"role"`
	URL  string `json:"url"`
}

type manifest struct {
	Version int             `json:"version"`
	Assets  []manifestAsset `json:"assets"`
}

// fromManifest reads the versioned build manifest and emits its assets in
// listed order.
func fromManifest(path string) ([]Tag, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("assets: parse %s: %w", path, err)
	}
	if m.Version != 1 {
		return nil, fmt.Errorf("assets: unsupported manifest version %d", m.Version)
	}

	var tags []Tag
	for _, a := range m.Assets {
		if a.URL == "" {
			continue
		}
		switch a.Role {
		case "stylesheet":
			tags = append(tags, Tag{Markup: fmt.Sprintf(`<link rel="stylesheet" href=%q>`, a.URL)})
		case "modulepreload":
			tags = append(tags, Tag{Markup: fmt.Sprintf(`<link rel="modulepreload" href=%q>`, a.URL)})
		case "script":
			tags = append(tags, Tag{Markup: fmt.Sprintf(`<script type="module" src=%q></script>`, a.URL)})
		}
	}
	return tags, nil
}

// fromIndexHTML extracts stylesheet, modulepreload and module-script tags
// referencing local paths from a built index.html, preserving document
// order and each tag's original attributes.
func fromIndexHTML(path string) ([]Tag, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("assets: parse %s: %w", path, err)
	}

	var tags []Tag
	doc.Find(`link[rel="stylesheet"], link[rel="modulepreload"], script[type="module"]`).Each(func(_ int, s *goquery.Selection) {
		ref, _ := s.Attr("href")
		if ref == "" {
			ref, _ = s.Attr("src")
		}
		if ref == "" || strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") || strings.HasPrefix(ref, "//") {
			return
		}
		markup, err := goquery.OuterHtml(s)
		if err != nil {
			return
		}
		tags = append(tags, Tag{Markup: strings.TrimSpace(markup)})
	})
	return tags, nil
}

// fromDirectoryScan walks the build output for .js and .css files and
// orders them by inferred role: stylesheets first, then the vendor bundle,
// then UI bundles, then the entry bundle. Filename substrings are the only
// signal available at this tier.
func fromDirectoryScan(dir string) []Tag {
	var css, js []string
	_ = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		switch filepath.Ext(rel) {
		case ".css":
			css = append(css, "/"+rel)
		case ".js":
			js = append(js, "/"+rel)
		}
		return nil
	})
	if len(css) == 0 && len(js) == 0 {
		return nil
	}

	sort.Strings(css)
	sort.SliceStable(js, func(i, j int) bool {
		return scriptRank(js[i]) < scriptRank(js[j])
	})

	var tags []Tag
	for _, href := range css {
		tags = append(tags, Tag{Markup: fmt.Sprintf(`<link rel="stylesheet" href=%q>`, href)})
	}
	for _, src := range js {
		tags = append(tags, Tag{Markup: fmt.Sprintf(`<script type="module" src=%q></script>`, src)})
	}
	return tags
}

func scriptRank(path string) int {
	name := strings.ToLower(filepath.Base(path))
	switch {
	case strings.Contains(name, "vendor"):
		return 0
	case strings.Contains(name, "ui"):
		return 1
	case strings.Contains(name, "index") || strings.Contains(name, "main"):
		return 3
	default:
		return 2
	}
}
