package main

import (
	"github.com/spf13/cobra"

	"github.com/trigger-segfault/vscode-find-colors/internal/palette"
	"github.com/trigger-segfault/vscode-find-colors/internal/theme"
	"github.com/trigger-segfault/vscode-find-colors/internal/tui"
)

var browseOpts struct {
	noIncludes bool
	workbench  bool
	noWatch    bool
}

// browseCmd represents the browse command.
var browseCmd = &cobra.Command{
	Use:   "browse THEMEFILE",
	Short: "Browse a theme's palette interactively",
	Long: `Open an interactive terminal browser for a theme's color palette.

The browser shows one row per palette color with a live swatch, and a
detail view with the scopes painted by each color. The theme file is
watched for changes and reloaded automatically.

Keybindings:
  ↑/↓, j/k    Navigate colors
  enter       Open color detail
  /           Search scopes
  a           Toggle font-style rows
  c           Copy color to clipboard
  s           Copy scope list to clipboard
  C           Copy all colors as JSON
  r           Reload the theme
  ?           Help
  q           Quit`,
	Args: cobra.ExactArgs(1),
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)

	browseCmd.Flags().BoolVarP(&browseOpts.noIncludes, "no-includes", "I", false,
		"Don't follow include directives")
	browseCmd.Flags().BoolVar(&browseOpts.workbench, "workbench", false,
		"Fold workbench UI colors into the palette")
	browseCmd.Flags().BoolVar(&browseOpts.noWatch, "no-watch", false,
		"Don't watch the theme files for changes")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	path := args[0]

	// No progress callback: the TUI owns the terminal.
	load := func() (*palette.Palette, error) {
		t, err := theme.Load(path, theme.LoadOptions{
			NoIncludes: browseOpts.noIncludes,
			Workbench:  browseOpts.workbench,
		})
		if err != nil {
			return nil, err
		}
		return palette.Build(t), nil
	}

	pal, err := load()
	if err != nil {
		return err
	}
	logger.Debug("starting browser", "path", path, "colors", len(pal.Entries))

	return tui.Run(tui.RunOptions{
		Config:  cfg,
		Palette: pal,
		Reload:  load,
		Watch:   !browseOpts.noWatch,
	})
}
