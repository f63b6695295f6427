package mdnorm

import (
	"strings"
	"testing"
)

func TestNormalize_RemovesBlankLinesBetweenListItems(t *testing.T) {
	got := Normalize("- a\n\n- b\n\n- c")
	want := "- a\n- b\n- c"
	if got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}

func TestNormalize_RenumbersOrderedLists(t *testing.T) {
	// The lone blank sits between two ordered items, so it collapses first
	// and the whole run renumbers as one block.
	got := Normalize("2. two\n4. four\n\n3. three\n5. five")
	want := "1. two\n2. four\n3. three\n4. five"
	if got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}

func TestRenumberOrdered_RestartsPerBlock(t *testing.T) {
	in := []string{"2. two", "4. four", "", "3. three", "5. five"}
	want := []string{"1. two", "2. four", "", "1. three", "2. five"}
	got := renumberOrdered(in)
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("renumberOrdered = %q, want %q", got, want)
	}
}

func TestRenumberOrdered_RestartsOnIndentChange(t *testing.T) {
	in := []string{"3. a", "7. b", "  9. nested", "4. c"}
	want := []string{"1. a", "2. b", "  1. nested", "1. c"}
	got := renumberOrdered(in)
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("renumberOrdered = %q, want %q", got, want)
	}
}

func TestRenumberOrdered_SkipsFences(t *testing.T) {
	in := []string{"```", "5. not a list", "```", "5. real item"}
	got := renumberOrdered(in)
	if got[1] != "5. not a list" {
		t.Errorf("fenced line renumbered: %q", got[1])
	}
	if got[3] != "1. real item" {
		t.Errorf("item after fence = %q, want %q", got[3], "1. real item")
	}
}

func TestNormalize_StripsEmptyLines(t *testing.T) {
	got := Normalize("line1\n\n\nline2\n\n")
	want := "line1\nline2"
	if got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}

func TestNormalize_KeepEmptyLinesCollapsesRuns(t *testing.T) {
	n := &Normalizer{RemoveEmptyLines: false}
	got := n.Normalize("line1\n\n\n\nline2")
	want := "line1\n\nline2"
	if got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}

func TestNormalize_MixedListFamiliesKeepGap(t *testing.T) {
	// Blank-line collapse is defined within one marker family only; a
	// bullet→ordered transition keeps its separator.
	n := &Normalizer{RemoveEmptyLines: false}
	got := n.Normalize("- a\n\n1. b")
	want := "- a\n\n1. b"
	if got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}

func TestNormalize_SameFamilyGapCollapsesEvenWhenKeepingBlanks(t *testing.T) {
	n := &Normalizer{RemoveEmptyLines: false}
	got := n.Normalize("- a\n\n- b")
	want := "- a\n- b"
	if got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}

func TestNormalize_BlockquoteSpacing(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{">quote", "> quote"},
		{">  spaced  ", "> spaced"},
		{">", ">"},
		{"> ", ">"},
		{"> > nested", "> > nested"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalize_PreservesFenceBlankLines(t *testing.T) {
	in := "```\nline1\n\nline2\n```"
	if got := Normalize(in); got != in {
		t.Errorf("Normalize = %q, want input unchanged", got)
	}
}

func TestNormalize_FenceTrimsOnlyTrailingWhitespace(t *testing.T) {
	got := Normalize("  ```go  \n    indented   \n\tcode\t\n```")
	want := "```go\n    indented\n\tcode\n```"
	if got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}

func TestNormalize_UnpairedFenceExtendsToEnd(t *testing.T) {
	got := Normalize("```\nline1\n\nline2")
	want := "```\nline1\n\nline2"
	if got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}

func TestNormalize_ScrubsInvisibleCharacters(t *testing.T) {
	got := Normalize("a\u200bb\u00a0c\r\nd\rE\ufeff")
	want := "ab c\nd\nE"
	if got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}

func TestNormalize_ListMarkerSpacing(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"-   item  ", "- item"},
		{"*  star", "* star"},
		{"1.    thing", "1. thing"},
		{"-", "-"},
		{"- a\n  -  nested", "- a\n  - nested"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalize_NestedContinuationIndent(t *testing.T) {
	got := Normalize("- item\n      continued far too deep")
	want := "- item\n  continued far too deep"
	if got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}

func TestNormalize_Empty(t *testing.T) {
	if got := Normalize(""); got != "" {
		t.Errorf("Normalize(\"\") = %q, want \"\"", got)
	}
	if got := Normalize("  \n \n"); got != "" {
		t.Errorf("Normalize(blank) = %q, want \"\"", got)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"- a\n\n- b\n\n- c",
		"2. two\n4. four\n\n3. three\n5. five",
		">quote\n>more",
		"```\nline1\n\nline2\n```",
		"# Title\n\nbody text   \n\n\n- one\n-  two\n1. first\n9. second",
		"plain\u00a0text\r\nwith\u200bnoise",
		"```\nunclosed fence\n\nstays",
		"  deep indent\n    deeper",
	}
	for _, n := range []*Normalizer{New(), {RemoveEmptyLines: false}} {
		for _, in := range inputs {
			once := n.Normalize(in)
			twice := n.Normalize(once)
			if once != twice {
				t.Errorf("not idempotent (remove=%v) for %q:\nonce:  %q\ntwice: %q",
					n.RemoveEmptyLines, in, once, twice)
			}
		}
	}
}
