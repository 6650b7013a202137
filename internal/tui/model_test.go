package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trigger-segfault/vscode-find-colors/internal/config"
	"github.com/trigger-segfault/vscode-find-colors/internal/palette"
	"github.com/trigger-segfault/vscode-find-colors/internal/theme"
)

func testPalette(t *testing.T) *palette.Palette {
	t.Helper()
	th := theme.New()
	th.Name = "Test Theme"
	th.Type = "dark"
	th.SetScope("string", "#ce9178", "")
	th.SetScope("string.quoted", "#ce9178", "")
	th.SetScope("comment", "#6a9955", "")
	th.SetScope("markup.bold", "#569cd6", "bold")
	th.SetScope("markup.italic", "", "italic")
	th.SetScope("meta.embedded", "", "")
	return palette.Build(th)
}

func TestListTitle(t *testing.T) {
	assert.Equal(t, "Theme Colors", listTitle(nil))

	th := theme.New()
	th.Name = "Deep Ocean"
	assert.Equal(t, "Deep Ocean", listTitle(th))

	th.Type = "dark"
	assert.Equal(t, "Deep Ocean (dark)", listTitle(th))
}

func TestPaletteItem_Title(t *testing.T) {
	tests := []struct {
		name     string
		item     paletteItem
		expected string
	}{
		{"color", paletteItem{hex: "#ce9178", scopes: []string{"string", "string.quoted"}}, "#ce9178  [ 2]"},
		{"styled_with_color", paletteItem{hex: "#569cd6", style: "bold", scopes: []string{"markup.bold"}}, "bold  #569cd6  [ 1]"},
		{"styled_colorless", paletteItem{style: "italic", scopes: []string{"markup.italic"}}, "italic  [ 1]"},
		{"plain", paletteItem{scopes: []string{"meta.embedded"}}, "unstyled  [ 1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.item.Title())
		})
	}
}

func TestPaletteRows_ColorsOnly(t *testing.T) {
	p := testPalette(t)

	rows := paletteRows(p, false)
	require.Len(t, rows, 2)

	// Display order: orange (hue ~17) before green (hue ~101)
	assert.Equal(t, "#ce9178", rows[0].hex)
	assert.Equal(t, 1, rows[0].pos)
	assert.Equal(t, []string{"string", "string.quoted"}, rows[0].scopes)
	assert.Equal(t, "#6a9955", rows[1].hex)
	assert.Equal(t, 2, rows[1].pos)
}

func TestPaletteRows_WithStyles(t *testing.T) {
	p := testPalette(t)

	rows := paletteRows(p, true)
	require.Len(t, rows, 5)

	// Colors first, then styles alphabetically, then the unstyled scopes
	assert.Equal(t, "#ce9178", rows[0].hex)
	assert.Equal(t, "#6a9955", rows[1].hex)
	assert.Equal(t, "bold", rows[2].style)
	assert.Equal(t, "#569cd6", rows[2].hex)
	assert.Equal(t, "italic", rows[3].style)
	assert.Empty(t, rows[3].hex)
	assert.Equal(t, []string{"meta.embedded"}, rows[4].scopes)
	assert.Zero(t, rows[4].pos)
}

func TestBuildListItems_SearchFiltersToOwningRow(t *testing.T) {
	m := New(config.DefaultConfig(), testPalette(t), nil)
	m.showStyles = true

	m.searchQuery = "comment"
	items := m.buildListItems()
	require.Len(t, items, 1)
	assert.Equal(t, "#6a9955", items[0].(paletteItem).hex)

	m.searchQuery = "italic"
	items = m.buildListItems()
	require.Len(t, items, 1)
	assert.Equal(t, "italic", items[0].(paletteItem).style)

	m.searchQuery = ""
	items = m.buildListItems()
	assert.Len(t, items, 5)
}

func TestBuildListItems_StylesHiddenFromSearch(t *testing.T) {
	m := New(config.DefaultConfig(), testPalette(t), nil)

	// Style rows are not listed while the toggle is off, even when a styled
	// scope matches the query
	m.searchQuery = "italic"
	items := m.buildListItems()
	assert.Empty(t, items)
}

func TestStripANSI(t *testing.T) {
	assert.Equal(t, "key desc", stripANSI("\x1b[38;5;10mkey\x1b[0m desc"))
	assert.Equal(t, "plain", stripANSI("plain"))
	assert.Equal(t, "", stripANSI("\x1b[1m\x1b[0m"))
}
