package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trigger-segfault/vscode-find-colors/internal/color"
	"github.com/trigger-segfault/vscode-find-colors/internal/palette"
	"github.com/trigger-segfault/vscode-find-colors/internal/render"
)

var searchOpts struct {
	limit      int
	quiet      bool
	noIncludes bool
	workbench  bool
}

// searchCmd represents the search command.
var searchCmd = &cobra.Command{
	Use:   "search QUERY THEMEFILE",
	Short: "Fuzzy-search scope names across the palette",
	Long: `Search all scope names in a theme with fuzzy matching and show where
each match lives: its palette color, its font style, or neither.

Examples:
  # Find everything markup-related
  vscolors search markup dark_plus.json

  # Only the top five matches
  vscolors search -n 5 comment dark_plus.json`,
	Args: cobra.ExactArgs(2),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().IntVarP(&searchOpts.limit, "limit", "n", 0,
		"Limit the number of matches (0 = all)")
	searchCmd.Flags().BoolVarP(&searchOpts.quiet, "quiet", "q", false,
		"Reduce console output to only requested info")
	searchCmd.Flags().BoolVarP(&searchOpts.noIncludes, "no-includes", "I", false,
		"Don't follow include directives")
	searchCmd.Flags().BoolVar(&searchOpts.workbench, "workbench", false,
		"Fold workbench UI colors into the palette")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query, path := args[0], args[1]
	quiet := searchOpts.quiet || cfg.Output.Quiet

	r := render.New(os.Stdout, colorMode(), quiet)
	pal, err := loadPalette(path, r, searchOpts.noIncludes, searchOpts.workbench)
	if err != nil {
		return err
	}

	matches := pal.Search(query)
	if len(matches) == 0 {
		return fmt.Errorf("no scopes match %q", query)
	}
	if searchOpts.limit > 0 && len(matches) > searchOpts.limit {
		matches = matches[:searchOpts.limit]
	}
	logger.Debug("search finished", "query", query, "matches", len(matches))

	for _, m := range matches {
		fmt.Printf("%s  %s\n", matchText(r, m), ownerTag(r, pal, m))
	}
	return nil
}

// matchText renders the matched scope name in its own color when it has one.
func matchText(r *render.Renderer, m palette.Match) string {
	if m.Hex == "" {
		return m.Scope
	}
	c, err := color.Parse(m.Hex)
	if err != nil {
		return m.Scope
	}
	return r.ScopeText(c, m.Scope)
}

// ownerTag names the bucket a match lives in: its position and swatch for
// palette colors, the font style for styled scopes, "unstyled" otherwise.
func ownerTag(r *render.Renderer, p *palette.Palette, m palette.Match) string {
	switch {
	case m.Plain:
		return "[unstyled]"
	case m.Style != "" && m.Hex != "":
		c, err := color.Parse(m.Hex)
		if err != nil {
			return fmt.Sprintf("[%s  %s]", m.Style, m.Hex)
		}
		return fmt.Sprintf("[%s  %s]", m.Style, r.Swatch(c))
	case m.Style != "":
		return fmt.Sprintf("[%s]", m.Style)
	default:
		c, err := color.Parse(m.Hex)
		if err != nil {
			return fmt.Sprintf("[%2d) %s]", p.Position(m.Hex), m.Hex)
		}
		return fmt.Sprintf("[%2d) %s]", p.Position(m.Hex), r.Swatch(c))
	}
}
