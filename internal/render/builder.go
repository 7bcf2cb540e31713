// Package render assembles the complete HTML document served to readers and
// crawlers. All interpolation goes through a builder that escapes by
// default; markup only reaches the output verbatim when wrapped in Raw,
// which keeps admin-entered titles and tags from ever becoming executable
// markup.
package render

import (
	"html"
	"strings"
)

// Raw marks markup that is already safe to emit verbatim: sanitized article
// bodies, discovered asset tags and JSON-LD payloads. Plain strings can
// never reach the document unescaped.
type Raw string

// Builder accumulates an HTML document. Zero value is ready to use.
type Builder struct {
	sb strings.Builder
}

// Text appends s with &, <, >, " and ' escaped.
func (b *Builder) Text(s string) {
	b.sb.WriteString(html.EscapeString(s))
}

// Raw appends pre-approved markup verbatim.
func (b *Builder) Raw(r Raw) {
	b.sb.WriteString(string(r))
}

// Line appends pre-approved markup followed by a newline.
func (b *Builder) Line(r Raw) {
	b.sb.WriteString(string(r))
	b.sb.WriteByte('\n')
}

// Meta appends a <meta name=... content=...> element. The content value is
// escaped; the name is fixed by the caller.
func (b *Builder) Meta(name, content string) {
	if content == "" {
		return
	}
	b.sb.WriteString(`<meta name="`)
	b.sb.WriteString(html.EscapeString(name))
	b.sb.WriteString(`" content="`)
	b.sb.WriteString(html.EscapeString(content))
	b.sb.WriteString("\">\n")
}

// MetaProperty appends a <meta property=... content=...> element for the
// Open Graph vocabulary.
func (b *Builder) MetaProperty(property, content string) {
	if content == "" {
		return
	}
	b.sb.WriteString(`<meta property="`)
	b.sb.WriteString(html.EscapeString(property))
	b.sb.WriteString(`" content="`)
	b.sb.WriteString(html.EscapeString(content))
	b.sb.WriteString("\">\n")
}

// LinkRel appends a <link rel=... href=...> element.
func (b *Builder) LinkRel(rel, href string) {
	if href == "" {
		return
	}
	b.sb.WriteString(`<link rel="`)
	b.sb.WriteString(html.EscapeString(rel))
	b.sb.WriteString(`" href="`)
	b.sb.WriteString(html.EscapeString(href))
	b.sb.WriteString("\">\n")
}

// Element appends <tag>escaped text</tag>.
func (b *Builder) Element(tag, text string) {
	b.sb.WriteString("<")
	b.sb.WriteString(tag)
	b.sb.WriteString(">")
	b.sb.WriteString(html.EscapeString(text))
	b.sb.WriteString("</")
	b.sb.WriteString(tag)
	b.sb.WriteString(">\n")
}

// JSONLD appends a JSON-LD script block. The payload must come from
// seo.JSON, which escapes angle brackets during marshaling, so it cannot
// close the script element early.
func (b *Builder) JSONLD(payload string) {
	if payload == "" {
		return
	}
	b.sb.WriteString(`<script type="application/ld+json">`)
	b.sb.WriteString(payload)
	b.sb.WriteString("</script>\n")
}

// String returns the accumulated document.
func (b *Builder) String() string {
	return b.sb.String()
}
