// Package mdnorm canonicalizes raw Markdown text.
//
// The same transform runs on both sides of the editor: stored Markdown is
// normalized before it reaches the renderer, and serializer output is
// normalized again before it goes back to storage. Semantically equivalent
// inputs therefore converge on one representative form, and the transform is
// idempotent: Normalize(Normalize(m)) == Normalize(m).
//
// Fenced code blocks are preserved verbatim apart from trailing-whitespace
// trimming. The fence-open flag is the only state threaded across lines, as
// an accumulator inside each linear pass.
package mdnorm

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// Zero-width characters and BOMs that editors and clipboards smuggle in.
	invisibleRe = regexp.MustCompile("[\u200B\u200C\u200D\uFEFF]")

	bulletRe  = regexp.MustCompile(`^(\s*)([-*+])(?:\s+(.*))?$`)
	orderedRe = regexp.MustCompile(`^(\s*)(\d+)\.(?:\s(.*))?$`)
	quoteRe   = regexp.MustCompile(`^\s*>\s?(.*)$`)

	trailingSpaceRe = regexp.MustCompile(`[ \t]+\n`)
	blankRunRe      = regexp.MustCompile(`\n{4,}`)
)

// Normalizer canonicalizes Markdown text. The zero value keeps single blank
// lines between blocks; New returns the default configuration used on the
// editor round trip, which drops them.
type Normalizer struct {
	// RemoveEmptyLines drops blank lines outside fences entirely. When
	// false, consecutive blank lines outside fences collapse to one.
	RemoveEmptyLines bool
}

// New creates a Normalizer with the default configuration.
func New() *Normalizer {
	return &Normalizer{RemoveEmptyLines: true}
}

// Normalize returns the canonical form of text.
func Normalize(text string) string {
	return New().Normalize(text)
}

// Normalize canonicalizes text. Pure: no side effects, always terminates,
// empty input yields empty output.
func (n *Normalizer) Normalize(text string) string {
	if text == "" {
		return ""
	}
	lines := strings.Split(scrub(text), "\n")
	lines = collapseListGaps(lines)
	lines = renumberOrdered(lines)
	lines = rewriteLines(lines)
	lines = assemble(lines, n.RemoveEmptyLines)
	return cleanup(strings.Join(lines, "\n"))
}

// scrub removes invisible characters, maps non-breaking spaces to regular
// spaces, and normalizes line endings to LF.
func scrub(text string) string {
	text = invisibleRe.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "\u00a0", " ")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// isFenceDelim reports whether line opens or closes a fenced code block.
func isFenceDelim(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "```")
}

func isBulletItem(line string) bool {
	return bulletRe.MatchString(line)
}

func isOrderedItem(line string) bool {
	return orderedRe.MatchString(line)
}

// sameListFamily reports whether both lines are list items of the same
// marker family (bullet or ordered). Mixed-family pairs never match: the
// upstream behavior collapses blanks only within one family, and that
// asymmetry is kept.
func sameListFamily(a, b string) bool {
	return (isBulletItem(a) && isBulletItem(b)) ||
		(isOrderedItem(a) && isOrderedItem(b))
}

// collapseListGaps drops a lone blank line sitting between two list items of
// the same marker family, outside fences. Runs of two or more blanks are
// left for later passes.
func collapseListGaps(lines []string) []string {
	out := make([]string, 0, len(lines))
	inFence := false
	for i, line := range lines {
		if isFenceDelim(line) {
			inFence = !inFence
			out = append(out, line)
			continue
		}
		if !inFence && strings.TrimSpace(line) == "" && i > 0 && i+1 < len(lines) {
			if sameListFamily(lines[i-1], lines[i+1]) {
				continue
			}
		}
		out = append(out, line)
	}
	return out
}

// renumberOrdered rewrites ordered-list numbering from 1 within each
// contiguous run of `<indent><digits>. <content>` lines. A run ends when the
// indentation changes or a non-matching line interrupts it; the original
// numbers are ignored entirely.
func renumberOrdered(lines []string) []string {
	out := make([]string, len(lines))
	inFence := false
	counter := 0
	indent := ""
	for i, line := range lines {
		if isFenceDelim(line) {
			inFence = !inFence
			counter = 0
			out[i] = line
			continue
		}
		m := orderedRe.FindStringSubmatch(line)
		if inFence || m == nil || m[3] == "" {
			counter = 0
			out[i] = line
			continue
		}
		if counter == 0 || m[1] != indent {
			counter = 1
			indent = m[1]
		} else {
			counter++
		}
		out[i] = m[1] + strconv.Itoa(counter) + ". " + m[3]
	}
	return out
}

// rewriteLines applies the per-line canonical form while threading the
// fence-open accumulator. Inside a fence only trailing whitespace is
// trimmed; the delimiter lines themselves are trimmed fully.
func rewriteLines(lines []string) []string {
	out := make([]string, len(lines))
	inFence := false
	for i, line := range lines {
		if isFenceDelim(line) {
			inFence = !inFence
			out[i] = strings.TrimSpace(line)
			continue
		}
		if inFence {
			out[i] = strings.TrimRight(line, " \t")
			continue
		}
		out[i] = rewriteLine(line)
	}
	return out
}

func rewriteLine(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ""
	}
	if m := quoteRe.FindStringSubmatch(line); m != nil {
		content := strings.TrimSpace(m[1])
		if content == "" {
			return ">"
		}
		return "> " + content
	}
	if m := bulletRe.FindStringSubmatch(line); m != nil {
		return listLine(m[1], m[2], m[3])
	}
	if m := orderedRe.FindStringSubmatch(line); m != nil {
		return listLine(m[1], m[2]+".", m[3])
	}
	// Nested continuation: anything indented two or more spaces is
	// re-indented to exactly two.
	if strings.HasPrefix(line, "  ") {
		return "  " + trimmed
	}
	return trimmed
}

func listLine(indent, marker, content string) string {
	content = strings.TrimSpace(content)
	if content == "" {
		return indent + marker
	}
	return indent + marker + " " + content
}

// assemble handles blank lines outside fences: dropped when removeEmpty is
// set, otherwise consecutive runs collapse to one. Blank lines inside fences
// pass through verbatim.
func assemble(lines []string, removeEmpty bool) []string {
	out := make([]string, 0, len(lines))
	inFence := false
	prevBlank := false
	for _, line := range lines {
		if isFenceDelim(line) {
			inFence = !inFence
			prevBlank = false
			out = append(out, line)
			continue
		}
		if !inFence && line == "" {
			if removeEmpty || prevBlank {
				continue
			}
			prevBlank = true
			out = append(out, line)
			continue
		}
		prevBlank = false
		out = append(out, line)
	}
	return out
}

// cleanup trims trailing whitespace before line breaks, collapses three or
// more consecutive blank lines to one, and trims the document edges.
func cleanup(text string) string {
	text = trailingSpaceRe.ReplaceAllString(text, "\n")
	text = blankRunRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
