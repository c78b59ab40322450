package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/headless/internal/tui/playground"
	"github.com/alexisbeaulieu97/headless/internal/widget"
)

type demoOptions struct {
	ConfigPath string
	LogFile    string
}

var (
	demoCmdRunner    = runDemo
	stdoutIsTerminal = func() bool {
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
)

func newDemoCmd(root *rootFlags) *cobra.Command {
	opts := demoOptions{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Launch the interactive widget playground",
		Long: `Demo opens a full-screen playground with an accordion, a tab list and a
listbox. Tab cycles between widgets, the mouse selects items and F1 lists
every key the focused widget understands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ConfigPath = root.configPath
			return demoCmdRunner(root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.LogFile, "log-file", "", "Write logs to this file while the playground owns the screen")

	return cmd
}

func runDemo(root *rootFlags, opts demoOptions) error {
	if !stdoutIsTerminal() {
		return fmt.Errorf("demo needs an interactive terminal")
	}

	var logOut io.Writer = io.Discard
	if opts.LogFile != "" {
		f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}

	log, err := newLogger(root, logOut)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		log.Error(err, "failed to load widget document")
		return err
	}

	scope := widget.NewScope()
	widgets, err := widget.Build(cfg, widget.Options{Scope: scope, Logger: log})
	if err != nil {
		log.Error(err, "failed to build widgets")
		return err
	}
	log.WithFields(map[string]any{"widgets": len(widgets), "name": cfg.Name}).Info("launching playground")

	p := tea.NewProgram(playground.NewModel(widgets, scope, log), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Error(err, "playground execution failed")
		return fmt.Errorf("failed to run playground: %w", err)
	}

	log.Info("playground closed")
	return nil
}
