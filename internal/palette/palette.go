// Package palette inverts a theme's scope table into a display-ordered
// color index and answers lookups against it.
package palette

import (
	"sort"

	"github.com/trigger-segfault/vscode-find-colors/internal/color"
	"github.com/trigger-segfault/vscode-find-colors/internal/theme"
)

// Entry is one palette color together with the scopes that use it.
type Entry struct {
	Color  color.Color
	Hex    string
	Scopes []string // sorted alphabetically
}

// StyleGroup collects the scopes of one font style, grouped by foreground.
type StyleGroup struct {
	Style   string
	Entries []StyleEntry
}

// StyleEntry is one foreground (possibly absent) within a style group.
type StyleEntry struct {
	Color  color.Color // zero value when Hex is empty
	Hex    string      // empty when the entries carry no foreground
	Scopes []string
}

// Palette is the inverted, display-ordered view of a theme.
type Palette struct {
	Theme   *theme.Theme
	Entries []Entry      // colors in display order
	Styles  []StyleGroup // font styles, alphabetical
	Plain   []string     // scopes with neither color nor style, sorted

	index map[string]int // hex -> position in Entries
}

// Build inverts the theme's buckets. Display order is a pure function of
// the color set: insertion order never shows through.
func Build(t *theme.Theme) *Palette {
	p := &Palette{Theme: t}

	byColor := make(map[string][]string)
	for scope, hex := range t.ColorScopes {
		byColor[hex] = append(byColor[hex], scope)
	}
	p.Entries = make([]Entry, 0, len(byColor))
	for hex, scopes := range byColor {
		sort.Strings(scopes)
		c, _ := color.Parse(hex)
		p.Entries = append(p.Entries, Entry{Color: c, Hex: hex, Scopes: scopes})
	}
	sortEntries(p.Entries)

	p.index = make(map[string]int, len(p.Entries))
	for i, e := range p.Entries {
		p.index[e.Hex] = i
	}

	byStyle := make(map[string]map[string][]string)
	for scope, sv := range t.StyleScopes {
		colors := byStyle[sv.FontStyle]
		if colors == nil {
			colors = make(map[string][]string)
			byStyle[sv.FontStyle] = colors
		}
		colors[sv.Foreground] = append(colors[sv.Foreground], scope)
	}
	p.Styles = make([]StyleGroup, 0, len(byStyle))
	for style, colors := range byStyle {
		group := StyleGroup{Style: style}
		for hex, scopes := range colors {
			sort.Strings(scopes)
			entry := StyleEntry{Hex: hex, Scopes: scopes}
			if hex != "" {
				entry.Color, _ = color.Parse(hex)
			}
			group.Entries = append(group.Entries, entry)
		}
		sortStyleEntries(group.Entries)
		p.Styles = append(p.Styles, group)
	}
	sort.Slice(p.Styles, func(i, j int) bool {
		return p.Styles[i].Style < p.Styles[j].Style
	})

	p.Plain = make([]string, 0, len(t.PlainScopes))
	for scope := range t.PlainScopes {
		p.Plain = append(p.Plain, scope)
	}
	sort.Strings(p.Plain)

	return p
}

func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return color.Less(entries[i].Color, entries[j].Color)
	})
}

func sortStyleEntries(entries []StyleEntry) {
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		// entries without a foreground sort last
		if (a.Hex == "") != (b.Hex == "") {
			return b.Hex == ""
		}
		return color.Less(a.Color, b.Color)
	})
}

// ScopeCount returns the number of scopes carrying this color.
func (e *Entry) ScopeCount() int { return len(e.Scopes) }

// Position returns the 1-based display position of a color, or 0 when the
// palette does not contain it.
func (p *Palette) Position(hex string) int {
	i, ok := p.index[hex]
	if !ok {
		return 0
	}
	return i + 1
}

