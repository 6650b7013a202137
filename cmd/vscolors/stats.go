package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/trigger-segfault/vscode-find-colors/internal/render"
)

var statsOpts struct {
	noIncludes bool
	workbench  bool
}

// statsCmd represents the stats command.
var statsCmd = &cobra.Command{
	Use:   "stats THEMEFILE",
	Short: "Summarize a theme file",
	Long: `Show a summary of a theme file: its name and type, file size and
modification time, the resolved include chain, and how the scopes break
down into colored, styled and plain buckets.`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().BoolVarP(&statsOpts.noIncludes, "no-includes", "I", false,
		"Don't follow include directives")
	statsCmd.Flags().BoolVar(&statsOpts.workbench, "workbench", false,
		"Fold workbench UI colors into the palette")
}

func runStats(cmd *cobra.Command, args []string) error {
	// Quiet renderer: stats is its own summary, no progress lines.
	r := render.New(os.Stdout, colorMode(), true)
	pal, err := loadPalette(args[0], r, statsOpts.noIncludes, statsOpts.workbench)
	if err != nil {
		return err
	}
	t := pal.Theme

	info, err := os.Stat(t.Path)
	if err != nil {
		return fmt.Errorf("failed to stat theme file: %w", err)
	}

	name := t.Name
	if name == "" {
		name = filepath.Base(t.Path)
	}
	fmt.Printf("Theme:     %s\n", name)
	if t.Type != "" {
		fmt.Printf("Type:      %s\n", t.Type)
	}
	fmt.Printf("Path:      %s\n", t.Path)
	fmt.Printf("Size:      %s\n", humanize.Bytes(uint64(info.Size())))
	fmt.Printf("Modified:  %s\n", humanize.Time(info.ModTime()))
	fmt.Println()

	fmt.Printf("Files:     %d\n", len(t.Chain))
	base := filepath.Dir(t.Path)
	for _, f := range t.Chain {
		rel, err := filepath.Rel(base, f)
		if err != nil {
			rel = f
		}
		fmt.Printf("  %s\n", rel)
	}
	fmt.Println()

	colored := 0
	for i := range pal.Entries {
		colored += len(pal.Entries[i].Scopes)
	}
	styled := 0
	for _, g := range pal.Styles {
		for _, e := range g.Entries {
			styled += len(e.Scopes)
		}
	}
	plain := len(pal.Plain)

	fmt.Printf("Colors:    %d\n", len(pal.Entries))
	fmt.Printf("Styles:    %d\n", len(pal.Styles))
	fmt.Printf("Scopes:    %d (%d colored, %d styled, %d plain)\n",
		colored+styled+plain, colored, styled, plain)
	return nil
}
