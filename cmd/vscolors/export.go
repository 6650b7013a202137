package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trigger-segfault/vscode-find-colors/internal/export"
	"github.com/trigger-segfault/vscode-find-colors/internal/render"
)

var exportOpts struct {
	format     string
	output     string
	noIncludes bool
	workbench  bool
}

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:   "export THEMEFILE",
	Short: "Export the palette in a machine-readable format",
	Long: `Export a theme's resolved palette as a structured document.

Formats:
  json   Palette with colors, styles and scopes (default)
  yaml   Same document as YAML
  plain  One hex value per line

Examples:
  # Print the palette as JSON
  vscolors export dark_plus.json

  # Write YAML to a file
  vscolors export -f yaml -o palette.yaml dark_plus.json`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOpts.format, "format", "f", "",
		"Output format: json, yaml or plain (default from config)")
	exportCmd.Flags().StringVarP(&exportOpts.output, "output", "o", "",
		"Write to a file instead of stdout")
	exportCmd.Flags().BoolVarP(&exportOpts.noIncludes, "no-includes", "I", false,
		"Don't follow include directives")
	exportCmd.Flags().BoolVar(&exportOpts.workbench, "workbench", false,
		"Fold workbench UI colors into the palette")
}

func runExport(cmd *cobra.Command, args []string) error {
	name := exportOpts.format
	if name == "" {
		name = cfg.Export.Format
	}
	format, err := export.ParseFormatType(strings.ToLower(name))
	if err != nil {
		return err
	}

	// Quiet renderer: stdout carries the document.
	r := render.New(os.Stdout, colorMode(), true)
	pal, err := loadPalette(args[0], r, exportOpts.noIncludes, exportOpts.workbench)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if exportOpts.output != "" {
		f, err := os.Create(exportOpts.output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	return export.NewFormatter(format).Format(out, export.NewDocument(pal))
}
