package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTheme_SetScope_Buckets(t *testing.T) {
	th := New()

	th.SetScope("comment", "#6a9955", "")
	th.SetScope("emphasis", "", "italic")
	th.SetScope("keyword.bold", "#569cd6", "bold")
	th.SetScope("meta.embedded", "", "")

	assert.Equal(t, map[string]string{"comment": "#6a9955"}, th.ColorScopes)
	assert.Equal(t, map[string]StyleValue{
		"emphasis":     {Foreground: "", FontStyle: "italic"},
		"keyword.bold": {Foreground: "#569cd6", FontStyle: "bold"},
	}, th.StyleScopes)
	assert.Contains(t, th.PlainScopes, "meta.embedded")
	assert.Equal(t, 4, th.ScopeCount())
}

func TestTheme_SetScope_LastWriteWins(t *testing.T) {
	th := New()

	th.SetScope("string", "#ce9178", "")
	th.SetScope("string", "#d69d85", "")

	assert.Equal(t, "#d69d85", th.ColorScopes["string"])
	assert.Equal(t, 1, th.ScopeCount())
}

func TestTheme_SetScope_MovesBuckets(t *testing.T) {
	th := New()

	// colored, then restyled without a foreground
	th.SetScope("comment", "#6a9955", "")
	th.SetScope("comment", "", "italic")

	assert.NotContains(t, th.ColorScopes, "comment")
	assert.Equal(t, StyleValue{FontStyle: "italic"}, th.StyleScopes["comment"])

	// and back to a plain scope
	th.SetScope("comment", "", "")

	assert.NotContains(t, th.StyleScopes, "comment")
	assert.Contains(t, th.PlainScopes, "comment")
	assert.Equal(t, 1, th.ScopeCount())
}
