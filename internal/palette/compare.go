package palette

import "slices"

// Diff is the color-set difference between two palettes.
type Diff struct {
	Added   []Entry  // colors only in the second palette
	Removed []Entry  // colors only in the first
	Changed []Change // colors in both whose scope lists differ
}

// Change pairs the scope lists of a color present in both palettes.
type Change struct {
	Hex    string
	Before []string
	After  []string
}

// Count returns the total number of differences.
func (d *Diff) Count() int {
	return len(d.Added) + len(d.Removed) + len(d.Changed)
}

// Compare reports the color-set difference from a to b. Comparing a
// palette against itself yields an empty diff.
func Compare(a, b *Palette) *Diff {
	d := &Diff{}

	for _, e := range a.Entries {
		j, ok := b.index[e.Hex]
		if !ok {
			d.Removed = append(d.Removed, e)
			continue
		}
		be := b.Entries[j]
		if !slices.Equal(e.Scopes, be.Scopes) {
			d.Changed = append(d.Changed, Change{
				Hex:    e.Hex,
				Before: e.Scopes,
				After:  be.Scopes,
			})
		}
	}
	for _, e := range b.Entries {
		if _, ok := a.index[e.Hex]; !ok {
			d.Added = append(d.Added, e)
		}
	}
	return d
}
