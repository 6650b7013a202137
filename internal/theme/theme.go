// Package theme loads VS Code color theme files and resolves their include
// chains into a merged scope table.
package theme

// Theme is the merged scope table of a theme file and its includes.
type Theme struct {
	Name string // from the "name" field, else the file basename
	Type string // "dark", "light" or "" when unspecified
	Path string // absolute path of the top file

	// Chain lists every file that was loaded, includes first, in load
	// order. The top file is always last.
	Chain []string

	ColorScopes map[string]string     // scope -> canonical foreground hex
	StyleScopes map[string]StyleValue // scope -> font style (+ optional foreground)
	PlainScopes map[string]struct{}   // scopes with neither

	buckets map[string]bucket
}

// StyleValue holds the settings of a scope that carries a font style.
type StyleValue struct {
	Foreground string // canonical hex, empty when the entry has none
	FontStyle  string
}

type bucket int

const (
	bucketNone bucket = iota
	bucketColor
	bucketStyle
	bucketPlain
)

// New returns an empty theme.
func New() *Theme {
	return &Theme{
		ColorScopes: make(map[string]string),
		StyleScopes: make(map[string]StyleValue),
		PlainScopes: make(map[string]struct{}),
		buckets:     make(map[string]bucket),
	}
}

// SetScope places scope in the bucket matching its settings, removing it
// from whichever bucket a previous assignment used. Last write wins: a font
// style outweighs a foreground for placement.
func (t *Theme) SetScope(scope, foreground, fontStyle string) {
	switch t.buckets[scope] {
	case bucketColor:
		delete(t.ColorScopes, scope)
	case bucketStyle:
		delete(t.StyleScopes, scope)
	case bucketPlain:
		delete(t.PlainScopes, scope)
	}

	switch {
	case fontStyle != "":
		t.StyleScopes[scope] = StyleValue{Foreground: foreground, FontStyle: fontStyle}
		t.buckets[scope] = bucketStyle
	case foreground != "":
		t.ColorScopes[scope] = foreground
		t.buckets[scope] = bucketColor
	default:
		t.PlainScopes[scope] = struct{}{}
		t.buckets[scope] = bucketPlain
	}
}

// ScopeCount returns the number of scopes across all buckets.
func (t *Theme) ScopeCount() int {
	return len(t.ColorScopes) + len(t.StyleScopes) + len(t.PlainScopes)
}
