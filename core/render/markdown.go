// Package render provides the concrete engine adapters behind the narrow
// core.Renderer and core.Serializer interfaces, plus the note export
// renderers (PDF, structural JSON report). The normalization packages never
// import a Markdown engine; any commonmark-compliant pair is substitutable
// here.
//
// This file implements the Markdown → content-tree direction using goldmark.
package render

import (
	"bytes"
	"fmt"

	"github.com/anshul-mehra/notecanon/core"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	ghtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// GoldmarkRenderer converts canonical Markdown into an editable content
// tree. Configuration matches what the editor expects: a single newline
// becomes a hard break, bare URLs autolink, and raw HTML in the source is
// escaped rather than passed through.
type GoldmarkRenderer struct {
	md goldmark.Markdown
}

// NewGoldmarkRenderer creates a GoldmarkRenderer.
func NewGoldmarkRenderer() *GoldmarkRenderer {
	return &GoldmarkRenderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.Linkify),
			goldmark.WithRendererOptions(ghtml.WithHardWraps()),
		),
	}
}

// Render converts markdown into a content tree rooted at a synthetic <div>,
// the shape the editor mounts directly.
func (r *GoldmarkRenderer) Render(markdown string) (*html.Node, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}

	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(&buf, ctx)
	if err != nil {
		return nil, fmt.Errorf("parsing rendered fragment: %w", err)
	}

	root := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return root, nil
}

// Verify GoldmarkRenderer satisfies core.Renderer at compile time.
var _ core.Renderer = (*GoldmarkRenderer)(nil)
