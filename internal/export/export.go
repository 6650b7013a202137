// Package export provides structured output formatters for palettes.
package export

import (
	"fmt"
	"io"

	"github.com/trigger-segfault/vscode-find-colors/internal/palette"
)

// Formatter writes a palette document to a writer.
type Formatter interface {
	Format(w io.Writer, doc *Document) error
}

// FormatType represents an export format type.
type FormatType string

const (
	FormatJSON  FormatType = "json"
	FormatYAML  FormatType = "yaml"
	FormatPlain FormatType = "plain"
)

// ParseFormatType validates a format name.
func ParseFormatType(s string) (FormatType, error) {
	switch FormatType(s) {
	case FormatJSON, FormatYAML, FormatPlain:
		return FormatType(s), nil
	default:
		return FormatJSON, fmt.Errorf("invalid format: %s (valid: json, yaml, plain)", s)
	}
}

// NewFormatter creates a formatter for the specified format type.
func NewFormatter(format FormatType) Formatter {
	switch format {
	case FormatYAML:
		return &YAMLFormatter{}
	case FormatPlain:
		return &PlainFormatter{}
	case FormatJSON:
		fallthrough
	default:
		return &JSONFormatter{}
	}
}

// Document is the export schema of a computed palette.
type Document struct {
	Theme  ThemeMeta    `json:"theme" yaml:"theme"`
	Colors []ColorEntry `json:"colors" yaml:"colors"`
	Styles []StyleEntry `json:"styles,omitempty" yaml:"styles,omitempty"`
	Plain  []string     `json:"plainScopes,omitempty" yaml:"plainScopes,omitempty"`
}

// ThemeMeta describes the source theme of a document.
type ThemeMeta struct {
	Name  string   `json:"name" yaml:"name"`
	Type  string   `json:"type,omitempty" yaml:"type,omitempty"`
	Path  string   `json:"path" yaml:"path"`
	Files []string `json:"files" yaml:"files"`
}

// ColorEntry is one palette color. Index is the same 1-based position the
// terminal report numbers colors with.
type ColorEntry struct {
	Index  int      `json:"index" yaml:"index"`
	Color  string   `json:"color" yaml:"color"`
	Count  int      `json:"count" yaml:"count"`
	Scopes []string `json:"scopes" yaml:"scopes"`
}

// StyleEntry is one font-style group, one foreground at a time.
type StyleEntry struct {
	Style  string   `json:"style" yaml:"style"`
	Color  string   `json:"color,omitempty" yaml:"color,omitempty"`
	Scopes []string `json:"scopes" yaml:"scopes"`
}

// NewDocument flattens a palette into its export schema.
func NewDocument(p *palette.Palette) *Document {
	doc := &Document{
		Theme: ThemeMeta{
			Name:  p.Theme.Name,
			Type:  p.Theme.Type,
			Path:  p.Theme.Path,
			Files: p.Theme.Chain,
		},
		Plain: p.Plain,
	}

	doc.Colors = make([]ColorEntry, 0, len(p.Entries))
	for i, e := range p.Entries {
		doc.Colors = append(doc.Colors, ColorEntry{
			Index:  i + 1,
			Color:  e.Hex,
			Count:  len(e.Scopes),
			Scopes: e.Scopes,
		})
	}

	for _, g := range p.Styles {
		for _, e := range g.Entries {
			doc.Styles = append(doc.Styles, StyleEntry{
				Style:  g.Style,
				Color:  e.Hex,
				Scopes: e.Scopes,
			})
		}
	}
	return doc
}
