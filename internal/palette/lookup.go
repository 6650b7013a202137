package palette

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/sahilm/fuzzy"

	"github.com/trigger-segfault/vscode-find-colors/internal/color"
)

// ErrNotFound is returned for selectors that match nothing in the palette.
var ErrNotFound = errors.New("not found")

// Lookup resolves a selector: either a color in any accepted hex notation
// or a 1-based position in display order.
func (p *Palette) Lookup(selector string) (*Entry, error) {
	if n, err := strconv.Atoi(selector); err == nil {
		return p.LookupIndex(n)
	}
	return p.LookupColor(selector)
}

// LookupIndex returns the entry at a 1-based display position.
// Out-of-range positions are an error, never a panic.
func (p *Palette) LookupIndex(n int) (*Entry, error) {
	idx := n - 1
	if idx < 0 || idx >= len(p.Entries) {
		return nil, fmt.Errorf("%w: index %d of %d colors", ErrNotFound, n, len(p.Entries))
	}
	return &p.Entries[idx], nil
}

// LookupColor returns the entry for a color literal. The literal is
// normalized first, so any accepted notation of the same color matches.
func (p *Palette) LookupColor(s string) (*Entry, error) {
	hex, err := color.Normalize(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a color or index", ErrNotFound, s)
	}
	i, ok := p.index[hex]
	if !ok {
		return nil, fmt.Errorf("%w: color %s", ErrNotFound, hex)
	}
	return &p.Entries[i], nil
}

// Match is one fuzzy search hit over the theme's scope names.
type Match struct {
	Scope   string
	Indexes []int // matched character positions, for highlighting

	// Where the scope lives. Hex is set for colored scopes and for styled
	// scopes that carry a foreground; Style is set for styled scopes;
	// Plain marks scopes with neither.
	Hex   string
	Style string
	Plain bool
}

type scopeRef struct {
	name  string
	hex   string
	style string
	plain bool
}

// Search fuzzy-matches query against every scope name in the palette and
// returns the hits best-first. An empty query matches nothing.
func (p *Palette) Search(query string) []Match {
	if query == "" {
		return nil
	}

	refs := p.allScopes()
	names := make([]string, len(refs))
	for i, r := range refs {
		names[i] = r.name
	}

	var matches []Match
	for _, m := range fuzzy.Find(query, names) {
		ref := refs[m.Index]
		matches = append(matches, Match{
			Scope:   m.Str,
			Indexes: m.MatchedIndexes,
			Hex:     ref.hex,
			Style:   ref.style,
			Plain:   ref.plain,
		})
	}
	return matches
}

// allScopes flattens every bucket in display order, which keeps equal-score
// search results deterministic.
func (p *Palette) allScopes() []scopeRef {
	var refs []scopeRef
	for _, e := range p.Entries {
		for _, scope := range e.Scopes {
			refs = append(refs, scopeRef{name: scope, hex: e.Hex})
		}
	}
	for _, g := range p.Styles {
		for _, e := range g.Entries {
			for _, scope := range e.Scopes {
				refs = append(refs, scopeRef{name: scope, hex: e.Hex, style: g.Style})
			}
		}
	}
	for _, scope := range p.Plain {
		refs = append(refs, scopeRef{name: scope, plain: true})
	}
	return refs
}
