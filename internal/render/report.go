package render

import (
	"fmt"
	"strings"

	"github.com/trigger-segfault/vscode-find-colors/internal/color"
	"github.com/trigger-segfault/vscode-find-colors/internal/palette"
)

// Colors prints the numbered palette list with one swatch per color.
func (r *Renderer) Colors(p *palette.Palette, withHeader bool) {
	r.sectionHeader("COLORS", withHeader)
	for i, e := range p.Entries {
		fmt.Fprintf(r.w, "%2d) %s:  [%2d]\n", i+1, r.Swatch(e.Color), len(e.Scopes))
	}
	fmt.Fprintln(r.w)
}

// Selection is a resolved scope selector, or the error explaining why it
// did not resolve.
type Selection struct {
	Entry *palette.Entry
	Err   error
}

// Scopes prints a swatch header and scope list for each selection. Failed
// selections report inline and the rest still print.
func (r *Renderer) Scopes(p *palette.Palette, selections []Selection, withHeader bool) {
	r.sectionHeader("SCOPES", withHeader)
	for _, sel := range selections {
		if sel.Err != nil {
			fmt.Fprintln(r.w, sel.Err)
			fmt.Fprintln(r.w)
			continue
		}
		e := sel.Entry
		fmt.Fprintf(r.w, "[%2d) %s]\n", p.Position(e.Hex), r.Swatch(e.Color))
		for _, scope := range e.Scopes {
			fmt.Fprintln(r.w, r.ScopeText(e.Color, scope))
		}
		fmt.Fprintln(r.w)
	}
}

// Styles prints the font-style groups, each foreground with its scopes.
// Nothing is printed for themes without styled scopes.
func (r *Renderer) Styles(p *palette.Palette, withHeader bool) {
	if len(p.Styles) == 0 {
		return
	}
	r.sectionHeader("STYLES", withHeader)
	for _, g := range p.Styles {
		for _, e := range g.Entries {
			if e.Hex != "" {
				fmt.Fprintf(r.w, "[%s  %s]\n", g.Style, r.Swatch(e.Color))
				for _, scope := range e.Scopes {
					fmt.Fprintln(r.w, r.ScopeText(e.Color, scope))
				}
			} else {
				fmt.Fprintf(r.w, "[%s]\n", g.Style)
				for _, scope := range e.Scopes {
					fmt.Fprintln(r.w, scope)
				}
			}
			fmt.Fprintln(r.w)
		}
	}
}

// Compare prints both palettes side by side, row-aligned, then the
// difference summary.
func (r *Renderer) Compare(a, b *palette.Palette, diff *palette.Diff, withHeader bool) {
	r.sectionHeader("COMPARE", withHeader)

	hexWidth := 0
	for _, e := range a.Entries {
		hexWidth = max(hexWidth, len(e.Hex))
	}
	for _, e := range b.Entries {
		hexWidth = max(hexWidth, len(e.Hex))
	}
	empty := strings.Repeat(" ", 6+hexWidth)

	rows := max(len(a.Entries), len(b.Entries))
	for i := 0; i < rows; i++ {
		left, right := empty, empty
		if i < len(a.Entries) {
			e := a.Entries[i]
			pad := strings.Repeat(" ", hexWidth-len(e.Hex))
			left = fmt.Sprintf("[%2d]  %s%s", len(e.Scopes), r.Swatch(e.Color), pad)
		}
		if i < len(b.Entries) {
			e := b.Entries[i]
			right = fmt.Sprintf("%s  [%2d]", r.Swatch(e.Color), len(e.Scopes))
		}
		fmt.Fprintf(r.w, "%2d) %s  :  %s\n", i+1, left, right)
	}
	fmt.Fprintln(r.w)

	r.diffSummary(diff)
}

func (r *Renderer) diffSummary(diff *palette.Diff) {
	for _, e := range diff.Removed {
		fmt.Fprintf(r.w, "- %s  [%2d]\n", r.Swatch(e.Color), len(e.Scopes))
	}
	for _, e := range diff.Added {
		fmt.Fprintf(r.w, "+ %s  [%2d]\n", r.Swatch(e.Color), len(e.Scopes))
	}
	for _, ch := range diff.Changed {
		c, _ := color.Parse(ch.Hex)
		fmt.Fprintf(r.w, "~ %s  [%2d -> %2d]\n", r.Swatch(c), len(ch.Before), len(ch.After))
	}

	switch n := diff.Count(); n {
	case 0:
		fmt.Fprintln(r.w, "0 differences")
	case 1:
		fmt.Fprintln(r.w, "1 difference")
	default:
		fmt.Fprintf(r.w, "%d differences\n", n)
	}
}
