package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/trigger-segfault/vscode-find-colors/internal/render"
	"github.com/trigger-segfault/vscode-find-colors/internal/theme"
)

var watchOpts struct {
	quiet      bool
	noIncludes bool
	workbench  bool
}

// watchCmd represents the watch command.
var watchCmd = &cobra.Command{
	Use:   "watch THEMEFILE",
	Short: "Re-render the palette when the theme changes",
	Long: `Print the color list, then keep watching the theme file and its
include chain and print a fresh list whenever any of them change on disk.

Press Ctrl+C to stop.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().BoolVarP(&watchOpts.quiet, "quiet", "q", false,
		"Reduce console output to only requested info")
	watchCmd.Flags().BoolVarP(&watchOpts.noIncludes, "no-includes", "I", false,
		"Don't follow include directives")
	watchCmd.Flags().BoolVar(&watchOpts.workbench, "workbench", false,
		"Fold workbench UI colors into the palette")
}

func runWatch(cmd *cobra.Command, args []string) error {
	quiet := watchOpts.quiet || cfg.Output.Quiet
	r := render.New(os.Stdout, colorMode(), quiet)

	show := func() ([]string, error) {
		pal, err := loadPalette(args[0], r, watchOpts.noIncludes, watchOpts.workbench)
		if err != nil {
			return nil, err
		}
		r.Colors(pal, !quiet)
		return pal.Theme.Chain, nil
	}

	chain, err := show()
	if err != nil {
		return err
	}

	// The watcher covers the chain from the first load; includes added
	// later need a restart.
	watcher, err := theme.NewWatcher(chain, func() {
		if _, err := show(); err != nil {
			logger.Warn("reload failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Start(); err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	logger.Debug("watching theme", "files", len(chain))

	// Wait for interrupt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	return watcher.Stop()
}
