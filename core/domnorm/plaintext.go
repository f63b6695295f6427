package domnorm

import (
	"strings"

	"github.com/JohannesKaufmann/dom"
	"golang.org/x/net/html"
)

// ExtractPlainText derives the line-oriented plain-text projection of the
// tree. Text nodes are emitted verbatim, a <br> becomes a line feed, and
// closing a block container appends one. The tree is not modified; running
// NormalizeTree first gives the cleanest output but is not required.
func ExtractPlainText(root *html.Node) (string, error) {
	if err := checkRoot(root); err != nil {
		return "", err
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			return
		}
		if n.Type == html.ElementNode && dom.NodeName(n) == "br" {
			b.WriteString("\n")
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n != root && isBlock(n) {
			b.WriteString("\n")
		}
	}
	walk(root)
	return b.String(), nil
}
