package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/jask/snapdeck/internal/config"
	"github.com/jask/snapdeck/internal/deck"
	"github.com/jask/snapdeck/internal/logging"
	"github.com/jask/snapdeck/internal/tui"
)

type rootOpts struct {
	cfgFile string
	verbose bool
	logDir  string
	start   int
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "snapdeck: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts rootOpts
	cmd := &cobra.Command{
		Use:           "snapdeck [deck.toml]",
		Short:         "Full-screen section deck that snaps one section at a time.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildApp(opts, args)
			if err != nil {
				return err
			}
			p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
			if _, err := p.Run(); err != nil {
				return errors.Wrap(err, "run")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.cfgFile, "config", "", "config file (default $SNAPDECK_CONFIG or ~/.config/snapdeck/config.toml)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug records")
	cmd.Flags().StringVar(&opts.logDir, "log-dir", "", "directory for snapdeck.log (overrides log.dir)")
	cmd.Flags().IntVar(&opts.start, "start", 1, "section number to open on")
	return cmd
}

func buildApp(opts rootOpts, args []string) (*tui.App, error) {
	cfg, err := config.Load(opts.cfgFile)
	if err != nil {
		return nil, err
	}
	if opts.logDir != "" {
		cfg.Log.Dir = opts.logDir
	}
	log, err := logging.New(logging.Options{Dir: cfg.Log.Dir, Verbose: cfg.Log.Verbose || opts.verbose})
	if err != nil {
		return nil, err
	}
	path := cfg.Deck.Path
	if len(args) == 1 {
		path = args[0]
	}
	d, err := deck.Load(path)
	if err != nil {
		return nil, err
	}
	if opts.start < 1 || (len(d.Sections) > 0 && opts.start > len(d.Sections)) {
		return nil, errors.Errorf("--start must be between 1 and %d, got %d", max(1, len(d.Sections)), opts.start)
	}
	log.WithField("sections", len(d.Sections)).WithField("deck", path).Info("deck loaded")
	return tui.New(cfg, d, tui.Options{Logger: log, Start: opts.start - 1}), nil
}
