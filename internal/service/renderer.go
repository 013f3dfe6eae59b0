package service

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// markdownRenderer is the production Renderer implementation backed by
// goldmark. Raw HTML in the source text stays escaped.
type markdownRenderer struct {
	md goldmark.Markdown
}

// NewMarkdownRenderer constructs the goldmark-backed Renderer used for the
// profile mdtext field.
func NewMarkdownRenderer() Renderer {
	return &markdownRenderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.Linkify, extension.Strikethrough),
		),
	}
}

// Render implements Renderer.
func (r *markdownRenderer) Render(text string) string {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(text), &buf); err != nil {
		// Convert fails only on writer errors; bytes.Buffer has none.
		return text
	}
	return strings.TrimSpace(buf.String())
}
