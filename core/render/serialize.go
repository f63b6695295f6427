// Package render — content-tree → Markdown direction, using
// html-to-markdown. The output is provisional: the save path must run it
// through mdnorm before storing or comparing it.
package render

import (
	"errors"
	"fmt"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/anshul-mehra/notecanon/core"
	"golang.org/x/net/html"
)

// TreeSerializer converts a content tree back into Markdown.
type TreeSerializer struct{}

// NewTreeSerializer creates a TreeSerializer.
func NewTreeSerializer() *TreeSerializer {
	return &TreeSerializer{}
}

// Serialize converts the tree rooted at root into provisional Markdown.
func (s *TreeSerializer) Serialize(root *html.Node) (string, error) {
	if root == nil {
		return "", errors.New("serialize: nil root node")
	}
	out, err := htmltomarkdown.ConvertNode(root)
	if err != nil {
		return "", fmt.Errorf("converting tree to markdown: %w", err)
	}
	return string(out), nil
}

// Verify TreeSerializer satisfies core.Serializer at compile time.
var _ core.Serializer = (*TreeSerializer)(nil)
