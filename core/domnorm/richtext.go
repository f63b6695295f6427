package domnorm

import (
	"github.com/JohannesKaufmann/dom"
	"golang.org/x/net/html"
)

// richNames are the elements that make a note "rich": if any of these is
// present the note must be persisted as Markdown, otherwise the save path
// may fall back to plain text.
var richNames = map[string]bool{
	"b": true, "strong": true, "i": true, "em": true,
	"u": true, "ins": true, "s": true, "strike": true, "del": true,
	"a": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"ul": true, "ol": true, "li": true,
	"blockquote": true, "pre": true, "code": true,
}

// HasRichFormatting reports whether the subtree contains at least one
// semantically rich formatting element. A nil root has no formatting.
func HasRichFormatting(root *html.Node) bool {
	if root == nil {
		return false
	}
	var found bool
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found {
			return
		}
		if n.Type == html.ElementNode && richNames[dom.NodeName(n)] {
			found = true
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return found
}
