// Package render — structural JSON report.
// Summarizes a canonical note without re-parsing it through an engine:
// headings, links, fence count, list items, and quote lines, straight off
// the canonical line forms mdnorm guarantees.
package render

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/anshul-mehra/notecanon/core"
)

// ReportRenderer produces the structural JSON summary of a note.
type ReportRenderer struct{}

// NewReportRenderer creates a ReportRenderer.
func NewReportRenderer() *ReportRenderer {
	return &ReportRenderer{}
}

var (
	headingRe  = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)
	linkRe     = regexp.MustCompile(`\[([^\]]*)\]\(([^)]+)\)`)
	listItemRe = regexp.MustCompile(`^\s*(?:- |\d+\. )`)
)

// Render builds a core.NoteReport for the given canonical Markdown and
// returns it as indented JSON.
func (r *ReportRenderer) Render(markdown, id string) ([]byte, error) {
	report := core.NoteReport{
		ID:       id,
		Markdown: markdown,
		Headings: findHeadings(markdown),
		Links:    findLinks(markdown),
	}

	inFence := false
	for _, line := range strings.Split(markdown, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			if inFence {
				report.FencedBlocks++
			}
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		if listItemRe.MatchString(line) {
			report.ListItems++
		}
		if strings.HasPrefix(line, ">") {
			report.QuoteLines++
		}
	}
	// An unterminated fence still counts as one block.
	if inFence {
		report.FencedBlocks++
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling report: %w", err)
	}
	return data, nil
}

func findHeadings(md string) []core.Heading {
	matches := headingRe.FindAllStringSubmatch(md, -1)
	headings := make([]core.Heading, 0, len(matches))
	for _, m := range matches {
		headings = append(headings, core.Heading{
			Level: len(m[1]),
			Text:  strings.TrimSpace(m[2]),
		})
	}
	return headings
}

func findLinks(md string) []core.Link {
	matches := linkRe.FindAllStringSubmatch(md, -1)
	links := make([]core.Link, 0, len(matches))
	for _, m := range matches {
		links = append(links, core.Link{Text: m[1], Href: m[2]})
	}
	return links
}
