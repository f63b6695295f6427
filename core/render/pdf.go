// Package render — PDF export.
// Converts a canonical note into a styled PDF using gofpdf. Headings get
// variable font sizes, fenced code keeps a monospace face on a shaded
// background, list items and blockquotes are indented. Images are not
// rendered; the diary never stores them inline.
package render

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// PDFExporter renders a canonical note as a PDF document.
type PDFExporter struct{}

// NewPDFExporter creates a PDFExporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

var orderedItemPDFRe = regexp.MustCompile(`^\d+\.\s`)

// Export converts the note's canonical Markdown into PDF bytes. The id is
// the diary day key and becomes the document header.
func (e *PDFExporter) Export(markdown, id string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	if id != "" {
		pdf.SetFont("Helvetica", "B", 16)
		pdf.MultiCell(0, 8, id, "", "L", false)
		pdf.Ln(4)
	}

	lines := strings.Split(markdown, "\n")
	inFence := false

	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inFence = !inFence
			pdf.Ln(2)
			continue
		}

		if inFence {
			pdf.SetFont("Courier", "", 9)
			pdf.SetFillColor(245, 245, 245)
			pdf.MultiCell(0, 4.5, line, "", "L", true)
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			pdf.Ln(3)
			continue
		}

		if strings.HasPrefix(trimmed, "#") {
			level := 0
			for _, ch := range trimmed {
				if ch != '#' {
					break
				}
				level++
			}
			writeHeading(pdf, strings.TrimSpace(strings.TrimLeft(trimmed, "# ")), level)
			continue
		}

		if strings.HasPrefix(trimmed, "> ") || trimmed == ">" {
			pdf.SetFont("Helvetica", "I", 10)
			pdf.SetTextColor(90, 90, 90)
			pdf.SetX(pdf.GetX() + 6)
			pdf.MultiCell(0, 5, stripInline(strings.TrimPrefix(trimmed, "> ")), "", "L", false)
			pdf.SetTextColor(0, 0, 0)
			continue
		}

		// Canonical bullets are "- "; nested items carry leading spaces.
		if strings.HasPrefix(trimmed, "- ") {
			depth := (len(line) - len(strings.TrimLeft(line, " "))) / 2
			pdf.SetFont("Helvetica", "", 10)
			pdf.SetX(pdf.GetX() + float64(4*depth))
			pdf.MultiCell(0, 5, "• "+stripInline(trimmed[2:]), "", "L", false)
			continue
		}

		if orderedItemPDFRe.MatchString(trimmed) {
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, stripInline(trimmed), "", "L", false)
			continue
		}

		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, stripInline(trimmed), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeHeading sets the font size based on heading level and writes text.
func writeHeading(pdf *gofpdf.Fpdf, text string, level int) {
	sizes := map[int]float64{1: 18, 2: 15, 3: 13, 4: 12, 5: 11, 6: 10}
	size, ok := sizes[level]
	if !ok {
		size = 10
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", size)
	pdf.MultiCell(0, size*0.6, stripInline(text), "", "L", false)
	pdf.Ln(2)
}

var (
	italicRe     = regexp.MustCompile(`(?:^|\s)\*([^*]+)\*(?:\s|$)`)
	inlineCodeRe = regexp.MustCompile("`([^`]+)`")
	mdLinkRe     = regexp.MustCompile(`\[([^\]]*)\]\([^)]+\)`)
)

// stripInline removes inline Markdown formatting for PDF body text.
func stripInline(text string) string {
	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "__", "")
	text = italicRe.ReplaceAllString(text, " $1 ")
	text = inlineCodeRe.ReplaceAllString(text, "$1")
	text = mdLinkRe.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}
