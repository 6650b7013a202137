// Package main provides the CLI entrypoint for vscolors.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/trigger-segfault/vscode-find-colors/internal/config"
	"github.com/trigger-segfault/vscode-find-colors/internal/palette"
	"github.com/trigger-segfault/vscode-find-colors/internal/render"
	"github.com/trigger-segfault/vscode-find-colors/internal/theme"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose    bool
		configPath string
		noColor    bool
	}
	logger *slog.Logger
)

var rootOpts struct {
	compare    string
	scopes     []string
	allScopes  bool
	list       bool
	quiet      bool
	noIncludes bool
	workbench  bool
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "vscolors [flags] THEMEFILE",
	Short: "Inspect the color palette of VS Code theme files",
	Long: `vscolors reads VS Code color theme files and lists their palette in
the terminal, one numbered swatch per distinct foreground color.

Include chains ("include" entries) are resolved the way VS Code resolves
them: included files load first, so the including file's entries win.

Examples:
  # List the palette of a theme
  vscolors dark_plus.json

  # Show the scopes painted with palette color 3
  vscolors -s 3 dark_plus.json

  # Show the scopes of a specific color, by value
  vscolors -s '#ce9178' dark_plus.json

  # Compare two themes side by side
  vscolors -c light_plus.json dark_plus.json

  # Script-friendly: no headers, no progress lines
  vscolors -q -s 1 dark_plus.json`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	Args:    cobra.ExactArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Setup logging
		setupLogger()

		// Load configuration
		var err error
		cfg, err = config.LoadConfig(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
	RunE: runRoot,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/vscolors/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&globalOpts.noColor, "no-color", false,
		"Disable ANSI color output")

	// Root flags
	rootCmd.Flags().StringVarP(&rootOpts.compare, "compare", "c", "",
		"Compare colors with a second theme file")
	rootCmd.Flags().StringSliceVarP(&rootOpts.scopes, "scopes", "s", nil,
		"List the scopes using a color (hex value or 1-based palette index)")
	rootCmd.Flags().BoolVarP(&rootOpts.allScopes, "all-scopes", "S", false,
		"List all scopes for every color")
	rootCmd.Flags().BoolVarP(&rootOpts.list, "list", "l", false,
		"List all colors (default behavior)")
	rootCmd.Flags().BoolVarP(&rootOpts.quiet, "quiet", "q", false,
		"Reduce console output to only requested info")
	rootCmd.Flags().BoolVarP(&rootOpts.noIncludes, "no-includes", "I", false,
		"Don't follow include directives")
	rootCmd.Flags().BoolVar(&rootOpts.workbench, "workbench", false,
		"Fold workbench UI colors into the palette")
}

func runRoot(cmd *cobra.Command, args []string) error {
	quiet := rootOpts.quiet || cfg.Output.Quiet
	workbench := rootOpts.workbench || cfg.Output.Workbench
	noIncludes := rootOpts.noIncludes || !cfg.Include.Follow

	numCommands := 0
	if rootOpts.list {
		numCommands++
	}
	if rootOpts.compare != "" {
		numCommands++
	}
	if len(rootOpts.scopes) > 0 || rootOpts.allScopes {
		numCommands++
	}
	headers := numCommands > 2 || !quiet

	r := render.New(os.Stdout, colorMode(), quiet)

	pal, err := loadPalette(args[0], r, noIncludes, workbench)
	if err != nil {
		return err
	}

	// The compare view takes the place of the color list; scope listings
	// stack after either.
	if rootOpts.compare != "" {
		other, err := loadPalette(rootOpts.compare, r, noIncludes, workbench)
		if err != nil {
			return err
		}
		r.Compare(pal, other, palette.Compare(pal, other), headers)
	} else if !quiet || rootOpts.list || numCommands == 0 {
		r.Colors(pal, headers)
	}

	if rootOpts.allScopes {
		selections := make([]render.Selection, len(pal.Entries))
		for i := range pal.Entries {
			selections[i] = render.Selection{Entry: &pal.Entries[i]}
		}
		r.Scopes(pal, selections, headers)
		r.Styles(pal, headers)
	} else if len(rootOpts.scopes) > 0 {
		r.Scopes(pal, resolveSelections(pal, rootOpts.scopes), headers)
	}

	return nil
}

// loadPalette loads one theme file and builds its palette.
func loadPalette(path string, r *render.Renderer, noIncludes, workbench bool) (*palette.Palette, error) {
	t, err := theme.Load(path, theme.LoadOptions{
		NoIncludes: noIncludes,
		Workbench:  workbench,
		Progress:   r.Progress,
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("theme loaded", "path", t.Path, "files", len(t.Chain), "scopes", t.ScopeCount())
	return palette.Build(t), nil
}

// resolveSelections looks up each selector, keeping failures inline so one
// bad selector does not hide the rest.
func resolveSelections(p *palette.Palette, selectors []string) []render.Selection {
	selections := make([]render.Selection, 0, len(selectors))
	for _, s := range selectors {
		e, err := p.Lookup(s)
		if err != nil {
			logger.Debug("selector did not resolve", "selector", s, "error", err)
		}
		selections = append(selections, render.Selection{Entry: e, Err: err})
	}
	return selections
}

// colorMode resolves the effective color mode. NO_COLOR and --no-color
// always win over the configured mode.
func colorMode() render.ColorMode {
	if globalOpts.noColor || termenv.EnvNoColor() {
		return render.ColorNever
	}
	mode, _ := render.ParseColorMode(cfg.Output.Color)
	return mode
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(os.Stderr, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}
