// Package extract locates the editable content root inside an HTML document
// exported from (or pasted into) the editor by:
//  1. Removing elements that can never hold note content (scripts, styles)
//  2. Finding the best content container ([contenteditable], <main>,
//     <article>, or <body>)
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// noiseSelectors are elements removed before the content root is chosen.
var noiseSelectors = []string{
	"script", "style", "noscript", "template",
	"meta", "link", "base", "title",
}

// ContentExtractor finds the content root of an editor HTML export.
type ContentExtractor struct{}

// New creates a ContentExtractor.
func New() *ContentExtractor {
	return &ContentExtractor{}
}

// Root parses src and returns the node the normalizer should treat as the
// editor root. Fragments without any of the preferred containers fall back
// to the implicit <body> the parser creates.
func (e *ContentExtractor) Root(src string) (*html.Node, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	// The live editor surface is marked contenteditable; exports without it
	// degrade to the usual semantic containers.
	for _, sel := range []string{"[contenteditable]", "main", "article", "body"} {
		found := doc.Find(sel)
		if found.Length() > 0 {
			return found.Nodes[0], nil
		}
	}
	return nil, fmt.Errorf("no content root found in HTML")
}
