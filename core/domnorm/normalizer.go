// Package domnorm canonicalizes the editor's live content tree.
//
// The tree is the *html.Node structure the editor operates on. NormalizeTree
// repairs the shapes a contenteditable surface produces when users type,
// paste foreign HTML, or hit enter in odd places: stray inline runs at the
// root get wrapped into block containers, embedded newlines become explicit
// <br> markers (or collapse to spaces inside list items), and whitespace-only
// text nodes between block siblings are removed.
//
// Both entry points run the same transformation: NormalizeTree mutates the
// given tree, NormalizedHTML works on a clone and serializes it. A second
// pass over normalized output is a no-op.
package domnorm

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/dom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// blockNames are the elements laid out as their own block box. A root whose
// children mix these with inline content is considered malformed and gets
// the inline runs wrapped.
var blockNames = map[string]bool{
	"p": true, "h1": true, "h2": true, "h3": true, "h4": true, "h5": true,
	"h6": true, "ul": true, "ol": true, "li": true, "blockquote": true,
	"hr": true, "pre": true, "div": true,
}

// containerNames are the containers whose direct-child whitespace text nodes
// carry no meaning and are stripped.
var containerNames = map[string]bool{
	"ul": true, "ol": true, "blockquote": true,
}

var spaceRunRe = regexp.MustCompile(`[ \t]{2,}`)

// NormalizeTree canonicalizes root in place. It returns an error for a nil
// or non-element root before touching the tree.
func NormalizeTree(root *html.Node) error {
	if err := checkRoot(root); err != nil {
		return err
	}
	wrapInlineRuns(root)
	splitNewlines(root)
	stripContainerSpace(root)
	return nil
}

// NormalizedHTML runs the same transformation as NormalizeTree on a clone of
// root and returns the clone's inner HTML. The passed tree is not modified.
func NormalizedHTML(root *html.Node) (string, error) {
	if err := checkRoot(root); err != nil {
		return "", err
	}
	clone := cloneTree(root)
	if err := NormalizeTree(clone); err != nil {
		return "", err
	}
	var b strings.Builder
	for c := clone.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			return "", fmt.Errorf("rendering normalized tree: %w", err)
		}
	}
	return b.String(), nil
}

func checkRoot(root *html.Node) error {
	if root == nil {
		return errors.New("normalize: nil root node")
	}
	if root.Type != html.ElementNode && root.Type != html.DocumentNode {
		return fmt.Errorf("normalize: root must be an element or document node, got node type %d", root.Type)
	}
	return nil
}

func isBlock(n *html.Node) bool {
	return n.Type == html.ElementNode && blockNames[dom.NodeName(n)]
}

// wrapInlineRuns wraps every maximal run of non-block children of root into
// a synthetic <p>. Runs consisting only of whitespace text are discarded
// instead. When root has no block child at all the tree is a pure inline
// fragment and is left alone.
func wrapInlineRuns(root *html.Node) {
	children := dom.AllChildNodes(root)
	hasBlock := false
	for _, c := range children {
		if isBlock(c) {
			hasBlock = true
			break
		}
	}
	if !hasBlock {
		return
	}

	var run []*html.Node
	flush := func(before *html.Node) {
		if len(run) == 0 {
			return
		}
		if whitespaceRun(run) {
			for _, n := range run {
				root.RemoveChild(n)
			}
		} else {
			p := &html.Node{Type: html.ElementNode, Data: "p", DataAtom: atom.P}
			root.InsertBefore(p, before)
			for _, n := range run {
				root.RemoveChild(n)
				p.AppendChild(n)
			}
		}
		run = run[:0]
	}

	for _, c := range children {
		if isBlock(c) {
			flush(c)
		} else {
			run = append(run, c)
		}
	}
	flush(nil)
}

// whitespaceRun reports whether run holds only whitespace text nodes.
func whitespaceRun(run []*html.Node) bool {
	for _, n := range run {
		if n.Type != html.TextNode || strings.TrimSpace(n.Data) != "" {
			return false
		}
	}
	return true
}

// splitNewlines walks the tree depth-first and resolves embedded newlines in
// text nodes. Whitespace-only nodes containing a newline are deleted. Inside
// a list item newlines degrade to single spaces; everywhere else the node is
// split into fragments interleaved with <br> markers.
func splitNewlines(root *html.Node) {
	var texts []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.TextNode && strings.Contains(n.Data, "\n") {
			texts = append(texts, n)
		}
	}
	walk(root)

	for _, t := range texts {
		switch {
		case strings.TrimSpace(t.Data) == "":
			t.Parent.RemoveChild(t)
		case inListItem(t, root):
			t.Data = collapseSpace(t.Data)
		default:
			replaceWithBreaks(t)
		}
	}
}

func inListItem(n *html.Node, root *html.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && dom.NodeName(p) == "li" {
			return true
		}
		if p == root {
			break
		}
	}
	return false
}

func collapseSpace(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return spaceRunRe.ReplaceAllString(s, " ")
}

func replaceWithBreaks(t *html.Node) {
	parent := t.Parent
	for i, part := range strings.Split(t.Data, "\n") {
		if i > 0 {
			br := &html.Node{Type: html.ElementNode, Data: "br", DataAtom: atom.Br}
			parent.InsertBefore(br, t)
		}
		if part != "" {
			parent.InsertBefore(&html.Node{Type: html.TextNode, Data: part}, t)
		}
	}
	parent.RemoveChild(t)
}

// stripContainerSpace removes empty and whitespace-only text nodes that are
// direct children of root or of any list/blockquote container.
func stripContainerSpace(root *html.Node) {
	strip(root)
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && containerNames[dom.NodeName(c)] {
				strip(c)
			}
			walk(c)
		}
	}
	walk(root)
}

func strip(n *html.Node) {
	for _, c := range dom.AllChildNodes(n) {
		if c.Type == html.TextNode && strings.TrimSpace(c.Data) == "" {
			n.RemoveChild(c)
		}
	}
}

// cloneTree deep-copies a node and its subtree. x/net/html offers no Clone,
// and the sibling/parent links rule out a shallow copy.
func cloneTree(n *html.Node) *html.Node {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      append([]html.Attribute(nil), n.Attr...),
	}
	for k := n.FirstChild; k != nil; k = k.NextSibling {
		c.AppendChild(cloneTree(k))
	}
	return c
}
