package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/anshul-mehra/notecanon/core"
	"github.com/anshul-mehra/notecanon/core/domnorm"
	"github.com/anshul-mehra/notecanon/core/mdnorm"
	"golang.org/x/net/html"
)

func findElement(root *html.Node, name string) *html.Node {
	var found *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.ElementNode && n.Data == name {
			found = n
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return found
}

func TestGoldmarkRenderer_SingleNewlineBecomesBreak(t *testing.T) {
	root, err := NewGoldmarkRenderer().Render("line1\nline2")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if findElement(root, "br") == nil {
		t.Error("expected a <br> for the single newline")
	}
	if findElement(root, "p") == nil {
		t.Error("expected a paragraph container")
	}
}

func TestGoldmarkRenderer_AutolinksBareURLs(t *testing.T) {
	root, err := NewGoldmarkRenderer().Render("visit https://example.com today")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	a := findElement(root, "a")
	if a == nil {
		t.Fatal("expected an autolinked <a>")
	}
	var href string
	for _, attr := range a.Attr {
		if attr.Key == "href" {
			href = attr.Val
		}
	}
	if href != "https://example.com" {
		t.Errorf("href = %q, want %q", href, "https://example.com")
	}
}

func TestGoldmarkRenderer_RawHTMLNotPassedThrough(t *testing.T) {
	root, err := NewGoldmarkRenderer().Render("before <script>alert(1)</script> after")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if findElement(root, "script") != nil {
		t.Error("raw HTML passed through into the tree")
	}
}

func TestTreeSerializer_NilRoot(t *testing.T) {
	if _, err := NewTreeSerializer().Serialize(nil); err == nil {
		t.Error("expected error for nil root")
	}
}

func TestRoundTrip_CanonicalMarkdownIsStable(t *testing.T) {
	// markdown → tree → normalize → serialize → normalize must reproduce the
	// canonical text.
	inputs := []string{
		"# Day notes\n- first\n- second",
		"plain paragraph",
		"1. one\n2. two",
		"> a quote",
		"some **bold** text",
	}
	renderer := NewGoldmarkRenderer()
	serializer := NewTreeSerializer()

	for _, in := range inputs {
		canonical := mdnorm.Normalize(in)

		root, err := renderer.Render(canonical)
		if err != nil {
			t.Fatalf("Render(%q): %v", in, err)
		}
		if err := domnorm.NormalizeTree(root); err != nil {
			t.Fatalf("NormalizeTree(%q): %v", in, err)
		}
		provisional, err := serializer.Serialize(root)
		if err != nil {
			t.Fatalf("Serialize(%q): %v", in, err)
		}

		if got := mdnorm.Normalize(provisional); got != canonical {
			t.Errorf("round trip of %q:\ngot  %q\nwant %q", in, got, canonical)
		}
	}
}

func TestPDFExporter_ProducesPDF(t *testing.T) {
	md := "# Title\nsome text\n- item one\n- item two\n> quoted\n```\ncode here\n```"
	data, err := NewPDFExporter().Export(mdnorm.Normalize(md), "2026-08-31")
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("output does not start with PDF header: %q", data[:min(len(data), 8)])
	}
}

func TestReportRenderer_Counts(t *testing.T) {
	md := strings.Join([]string{
		"# Title",
		"## Sub",
		"a [link](https://example.com) here",
		"- one",
		"- two",
		"1. three",
		"> quoted",
		"```",
		"- not a list, code",
		"```",
	}, "\n")

	data, err := NewReportRenderer().Render(md, "2026-08-31")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	var report core.NoteReport
	if err := json.Unmarshal(data, &report); err != nil {
		t.Fatalf("unmarshaling report: %v", err)
	}

	if report.ID != "2026-08-31" {
		t.Errorf("ID = %q", report.ID)
	}
	if len(report.Headings) != 2 || report.Headings[0].Level != 1 || report.Headings[1].Text != "Sub" {
		t.Errorf("headings = %+v", report.Headings)
	}
	if len(report.Links) != 1 || report.Links[0].Href != "https://example.com" {
		t.Errorf("links = %+v", report.Links)
	}
	if report.FencedBlocks != 1 {
		t.Errorf("fenced blocks = %d, want 1", report.FencedBlocks)
	}
	if report.ListItems != 3 {
		t.Errorf("list items = %d, want 3", report.ListItems)
	}
	if report.QuoteLines != 1 {
		t.Errorf("quote lines = %d, want 1", report.QuoteLines)
	}
}

func TestReportRenderer_UnterminatedFenceCountsOnce(t *testing.T) {
	data, err := NewReportRenderer().Render("```\nstill open", "x")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	var report core.NoteReport
	if err := json.Unmarshal(data, &report); err != nil {
		t.Fatalf("unmarshaling report: %v", err)
	}
	if report.FencedBlocks != 1 {
		t.Errorf("fenced blocks = %d, want 1", report.FencedBlocks)
	}
}
