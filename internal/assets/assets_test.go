package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestDiscoverPrefersManifest(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "manifest.json", `{
		"version": 1,
		"assets": [
			{"role": "stylesheet", "url": "/assets/index-abc.css"},
			{"role": "modulepreload", "url": "/assets/vendor-def.js"},
			{"role": "script", "url": "/assets/index-ghi.js"}
		]
	}`)
	// index.html also present; the manifest must win
	writeFile(t, dir, "index.html", `<html><head><link rel="stylesheet" href="/other.css"></head></html>`)

	tags := Discover(dir, zap.NewNop())
	require.Len(t, tags, 3)
	assert.Equal(t, `<link rel="stylesheet" href="/assets/index-abc.css">`, tags[0].Markup)
	assert.Equal(t, `<link rel="modulepreload" href="/assets/vendor-def.js">`, tags[1].Markup)
	assert.Equal(t, `<script type="module" src="/assets/index-ghi.js"></script>`, tags[2].Markup)
}

func TestDiscoverFallsBackToIndexHTML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "index.html", `<html><head>
		<link rel="modulepreload" href="/assets/vendor-x.js">
		<link rel="stylesheet" href="/assets/app.css" crossorigin>
		<script type="module" src="/assets/index.js"></script>
		<script type="module" src="https://cdn.example.com/remote.js"></script>
		<link rel="stylesheet" href="//cdn.example.com/remote.css">
	</head></html>`)

	tags := Discover(dir, zap.NewNop())
	require.Len(t, tags, 3)
	// document order preserved, remote references excluded
	assert.Contains(t, tags[0].Markup, "vendor-x.js")
	assert.Contains(t, tags[1].Markup, "app.css")
	assert.Contains(t, tags[1].Markup, "crossorigin")
	assert.Contains(t, tags[2].Markup, "index.js")
}

func TestDiscoverDirectoryScanOrdersByRole(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "assets/index-1a2b.js", "//")
	writeFile(t, dir, "assets/vendor-3c4d.js", "//")
	writeFile(t, dir, "assets/ui-5e6f.js", "//")
	writeFile(t, dir, "assets/style.css", "body{}")

	tags := Discover(dir, zap.NewNop())
	require.Len(t, tags, 4)
	assert.Contains(t, tags[0].Markup, "style.css")
	assert.Contains(t, tags[1].Markup, "vendor-3c4d.js")
	assert.Contains(t, tags[2].Markup, "ui-5e6f.js")
	assert.Contains(t, tags[3].Markup, "index-1a2b.js")
}

func TestDiscoverDevFallback(t *testing.T) {
	tags := Discover(filepath.Join(t.TempDir(), "missing"), zap.NewNop())
	require.Len(t, tags, 1)
	assert.Equal(t, devEntryTag, tags[0].Markup)
}

func TestMalformedManifestFallsThrough(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "manifest.json", `{not json`)
	writeFile(t, dir, "index.html", `<html><head><link rel="stylesheet" href="/a.css"></head></html>`)

	tags := Discover(dir, zap.NewNop())
	require.Len(t, tags, 1)
	assert.Contains(t, tags[0].Markup, "/a.css")
}
