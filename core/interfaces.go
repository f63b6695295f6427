// Package core defines the shared types and stage interfaces for notecanon.
// Each stage of the canonicalization round trip is a narrow, testable
// interface so the normalization core never depends on a concrete
// Markdown engine.
package core

import (
	"context"
	"errors"
	"time"

	"golang.org/x/net/html"
)

// ErrNoteNotFound is returned by Store.Load for an unknown note id.
var ErrNoteNotFound = errors.New("note not found")

// Note is one stored diary note. ID is the diary's day key
// (e.g. "2026-08-31").
type Note struct {
	ID        string    `json:"id"`
	Markdown  string    `json:"markdown"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Heading represents a single heading found in a note.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Link represents a hyperlink found in a note.
type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// NoteReport is the structural summary produced by the inspect command.
type NoteReport struct {
	ID           string    `json:"id"`
	Markdown     string    `json:"markdown"`
	Headings     []Heading `json:"headings"`
	Links        []Link    `json:"links"`
	FencedBlocks int       `json:"fenced_blocks"`
	ListItems    int       `json:"list_items"`
	QuoteLines   int       `json:"quote_lines"`
}

// Renderer converts canonical Markdown into an editable content tree.
// Implementations must be commonmark-compliant and configured for tight
// lists, hard line breaks, and autolinking, with raw HTML passthrough off.
type Renderer interface {
	Render(markdown string) (*html.Node, error)
}

// Serializer converts a content tree back into Markdown. Its output is
// provisional: callers must pass it through the Markdown normalizer before
// persisting or comparing it.
type Serializer interface {
	Serialize(root *html.Node) (string, error)
}

// Store persists canonical Markdown keyed by note id.
type Store interface {
	Load(ctx context.Context, id string) (string, error)
	Save(ctx context.Context, id, markdown string) error
	List(ctx context.Context) ([]Note, error)
	Close() error
}
