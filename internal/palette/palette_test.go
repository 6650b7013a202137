package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trigger-segfault/vscode-find-colors/internal/theme"
)

// testTheme builds a theme from (scope, foreground, fontStyle) triples.
func testTheme(entries ...[3]string) *theme.Theme {
	th := theme.New()
	for _, e := range entries {
		th.SetScope(e[0], e[1], e[2])
	}
	return th
}

func hexes(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Hex
	}
	return out
}

func TestBuild_DisplayOrder(t *testing.T) {
	// deliberately inserted out of display order
	th := testTheme(
		[3]string{"gray.dark", "#000000", ""},
		[3]string{"blue", "#0000ff", ""},
		[3]string{"gray.light", "#ffffff", ""},
		[3]string{"green", "#00ff00", ""},
		[3]string{"red", "#ff0000", ""},
	)

	p := Build(th)

	assert.Equal(t, []string{
		"#ff0000", "#00ff00", "#0000ff", "#ffffff", "#000000",
	}, hexes(p.Entries))
}

func TestBuild_GroupsAndSortsScopes(t *testing.T) {
	th := testTheme(
		[3]string{"string.quoted", "#ce9178", ""},
		[3]string{"constant.character", "#ce9178", ""},
		[3]string{"string.template", "#ce9178", ""},
	)

	p := Build(th)

	require.Len(t, p.Entries, 1)
	assert.Equal(t, []string{
		"constant.character", "string.quoted", "string.template",
	}, p.Entries[0].Scopes)
	assert.Equal(t, 3, p.Entries[0].ScopeCount())
}

func TestBuild_StyleGroups(t *testing.T) {
	th := testTheme(
		[3]string{"markup.italic", "", "italic"},
		[3]string{"comment.doc", "#6a9955", "italic"},
		[3]string{"markup.bold", "#569cd6", "bold"},
	)

	p := Build(th)

	require.Len(t, p.Styles, 2)
	assert.Equal(t, "bold", p.Styles[0].Style, "styles sort alphabetically")
	assert.Equal(t, "italic", p.Styles[1].Style)

	italic := p.Styles[1]
	require.Len(t, italic.Entries, 2)
	assert.Equal(t, "#6a9955", italic.Entries[0].Hex)
	assert.Equal(t, "", italic.Entries[1].Hex, "colorless entries sort last")
	assert.Equal(t, []string{"markup.italic"}, italic.Entries[1].Scopes)
}

func TestBuild_PlainScopesSorted(t *testing.T) {
	th := testTheme(
		[3]string{"zeta", "", ""},
		[3]string{"alpha", "", ""},
	)

	p := Build(th)
	assert.Equal(t, []string{"alpha", "zeta"}, p.Plain)
}

func TestBuild_OrderIndependentOfInsertion(t *testing.T) {
	a := Build(testTheme(
		[3]string{"one", "#ff0000", ""},
		[3]string{"two", "#808080", ""},
		[3]string{"three", "#ffe34d", ""},
	))
	b := Build(testTheme(
		[3]string{"three", "#ffe34d", ""},
		[3]string{"two", "#808080", ""},
		[3]string{"one", "#ff0000", ""},
	))

	assert.Equal(t, hexes(a.Entries), hexes(b.Entries))
}

func TestLookupIndex(t *testing.T) {
	p := Build(testTheme(
		[3]string{"red", "#ff0000", ""},
		[3]string{"green", "#00ff00", ""},
	))

	tests := []struct {
		name    string
		index   int
		wantHex string
		wantErr bool
	}{
		{"first", 1, "#ff0000", false},
		{"second", 2, "#00ff00", false},
		{"zero", 0, "", true},
		{"past_end", 3, "", true},
		{"negative", -1, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := p.LookupIndex(tt.index)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHex, entry.Hex)
		})
	}
}

func TestLookupColor(t *testing.T) {
	p := Build(testTheme(
		[3]string{"comment", "#6a9955", ""},
		[3]string{"white", "#ffffff", ""},
	))

	t.Run("canonical_form", func(t *testing.T) {
		entry, err := p.LookupColor("#6a9955")
		require.NoError(t, err)
		assert.Equal(t, []string{"comment"}, entry.Scopes)
	})

	t.Run("any_notation_matches", func(t *testing.T) {
		for _, form := range []string{"#FFF", "#ffffff", "#FFFFFFFF", "#fff"} {
			entry, err := p.LookupColor(form)
			require.NoError(t, err, "form %q", form)
			assert.Equal(t, "#ffffff", entry.Hex)
		}
	})

	t.Run("unknown_color", func(t *testing.T) {
		_, err := p.LookupColor("#123456")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("not_a_color", func(t *testing.T) {
		_, err := p.LookupColor("banana")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestLookup_SelectorDispatch(t *testing.T) {
	p := Build(testTheme([3]string{"red", "#ff0000", ""}))

	byIndex, err := p.Lookup("1")
	require.NoError(t, err)
	byColor, err := p.Lookup("#ff0000")
	require.NoError(t, err)
	assert.Equal(t, byIndex, byColor)

	_, err = p.Lookup("99")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCompare_SelfIsEmpty(t *testing.T) {
	p := Build(testTheme(
		[3]string{"comment", "#6a9955", ""},
		[3]string{"string", "#ce9178", ""},
	))

	d := Compare(p, p)
	assert.Zero(t, d.Count())
	assert.Empty(t, d.Added)
	assert.Empty(t, d.Removed)
	assert.Empty(t, d.Changed)
}

func TestCompare_AddedRemovedChanged(t *testing.T) {
	before := Build(testTheme(
		[3]string{"comment", "#6a9955", ""},
		[3]string{"string", "#ce9178", ""},
		[3]string{"keyword", "#569cd6", ""},
	))
	after := Build(testTheme(
		[3]string{"comment", "#6a9955", ""},
		[3]string{"string.quoted", "#ce9178", ""}, // same color, new scope
		[3]string{"number", "#b5cea8", ""},        // new color
	))

	d := Compare(before, after)

	require.Len(t, d.Added, 1)
	assert.Equal(t, "#b5cea8", d.Added[0].Hex)

	require.Len(t, d.Removed, 1)
	assert.Equal(t, "#569cd6", d.Removed[0].Hex)

	require.Len(t, d.Changed, 1)
	assert.Equal(t, "#ce9178", d.Changed[0].Hex)
	assert.Equal(t, []string{"string"}, d.Changed[0].Before)
	assert.Equal(t, []string{"string.quoted"}, d.Changed[0].After)

	assert.Equal(t, 3, d.Count())
}

func TestSearch(t *testing.T) {
	p := Build(testTheme(
		[3]string{"comment.line", "#6a9955", ""},
		[3]string{"constant.numeric", "#b5cea8", ""},
		[3]string{"markup.italic", "", "italic"},
		[3]string{"meta.embedded", "", ""},
	))

	t.Run("empty_query_matches_nothing", func(t *testing.T) {
		assert.Nil(t, p.Search(""))
	})

	t.Run("finds_and_annotates_buckets", func(t *testing.T) {
		matches := p.Search("comment")
		require.NotEmpty(t, matches)
		assert.Equal(t, "comment.line", matches[0].Scope)
		assert.Equal(t, "#6a9955", matches[0].Hex)
		assert.False(t, matches[0].Plain)
	})

	t.Run("styled_scope_carries_style", func(t *testing.T) {
		matches := p.Search("italic")
		require.NotEmpty(t, matches)
		assert.Equal(t, "markup.italic", matches[0].Scope)
		assert.Equal(t, "italic", matches[0].Style)
	})

	t.Run("plain_scope_flagged", func(t *testing.T) {
		matches := p.Search("embedded")
		require.NotEmpty(t, matches)
		assert.Equal(t, "meta.embedded", matches[0].Scope)
		assert.True(t, matches[0].Plain)
	})

	t.Run("no_match", func(t *testing.T) {
		assert.Empty(t, p.Search("zzzqqq"))
	})

	t.Run("contiguous_match_ranks_first", func(t *testing.T) {
		p := Build(testTheme(
			[3]string{"storage.type", "#569cd6", ""},
			[3]string{"string", "#ce9178", ""},
		))
		matches := p.Search("str")
		require.Len(t, matches, 2)
		assert.Equal(t, "string", matches[0].Scope)
	})
}
