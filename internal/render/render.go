// Package render writes the terminal reports: the numbered palette list,
// per-color scope listings and the side-by-side compare view.
package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/trigger-segfault/vscode-find-colors/internal/color"
)

// ColorMode controls when ANSI escapes are emitted.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates a color mode string.
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(s) {
	case ColorAuto, ColorAlways, ColorNever:
		return ColorMode(s), nil
	default:
		return ColorAuto, fmt.Errorf("invalid color mode: %s (valid: auto, always, never)", s)
	}
}

// darkTextThreshold is the luminance below which scope text gets a white
// backing so it stays legible on dark terminals.
const darkTextThreshold = 0.1

// Renderer writes ANSI-colorized report sections to a single writer.
type Renderer struct {
	w      io.Writer
	re     *lipgloss.Renderer
	quiet  bool
	header lipgloss.Style
}

// New creates a Renderer for w. Mode overrides the detected terminal
// profile; quiet drops headers, progress lines and blank separators.
func New(w io.Writer, mode ColorMode, quiet bool) *Renderer {
	re := lipgloss.NewRenderer(w)
	switch mode {
	case ColorAlways:
		re.SetColorProfile(termenv.TrueColor)
	case ColorNever:
		re.SetColorProfile(termenv.Ascii)
	}

	return &Renderer{
		w:      w,
		re:     re,
		quiet:  quiet,
		header: re.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
	}
}

// Quiet reports whether the renderer suppresses non-essential output.
func (r *Renderer) Quiet() bool { return r.quiet }

// Progress prints one load progress line unless quiet.
func (r *Renderer) Progress(stage, name string) {
	if r.quiet {
		return
	}
	fmt.Fprintf(r.w, "%-12s%s\n", stage+":", name)
}

// Swatch renders the color's value on its own background with a
// contrasting foreground.
func (r *Renderer) Swatch(c color.Color) string {
	style := r.re.NewStyle().Background(lipgloss.Color(c.RGBHex()))
	if fg := c.ContrastFG(); fg.R == 0 {
		style = style.Foreground(lipgloss.Color("#000000"))
	} else {
		style = style.Foreground(lipgloss.Color("#ffffff")).Bold(true)
	}
	return style.Render(c.Hex())
}

// ScopeText renders a scope name in its own color, backed white when the
// color would vanish against a dark terminal.
func (r *Renderer) ScopeText(c color.Color, scope string) string {
	style := r.re.NewStyle().Foreground(lipgloss.Color(c.RGBHex()))
	if c.Luminance() < darkTextThreshold {
		style = style.Background(lipgloss.Color("#ffffff")).Bold(true)
	}
	return style.Render(scope)
}

func (r *Renderer) sectionHeader(title string, withHeader bool) {
	if withHeader {
		fmt.Fprintln(r.w, r.header.Render("---- "+title+" ----"))
	}
	if !r.quiet {
		fmt.Fprintln(r.w)
	}
}
