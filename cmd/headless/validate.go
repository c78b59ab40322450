package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/headless/internal/config"
	"github.com/alexisbeaulieu97/headless/internal/widget"
)

type validateOptions struct {
	ConfigPath string
	JSON       bool
}

func newValidateCmd(root *rootFlags) *cobra.Command {
	opts := validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate [config-file]",
		Short: "Check a widget document without launching the playground",
		Long: `Validate parses a widget document, checks its schema and builds every
widget so configuration errors such as unknown selected values are reported
before the playground starts. Without an argument the --config file, or the
built-in document, is checked.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ConfigPath = root.configPath
			if len(args) == 1 {
				opts.ConfigPath = args[0]
			}
			return runValidate(cmd.OutOrStdout(), cmd.ErrOrStderr(), root, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output the widget summary in JSON format")

	return cmd
}

type widgetSummary struct {
	ID       string   `json:"id"`
	Kind     string   `json:"kind"`
	Items    int      `json:"items"`
	Selected []string `json:"selected,omitempty"`
	Expanded []string `json:"expanded,omitempty"`
}

func runValidate(out, errOut io.Writer, root *rootFlags, opts validateOptions) error {
	log, err := newLogger(root, errOut)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		log.Error(err, "widget document is invalid")
		return err
	}

	widgets, err := widget.Build(cfg, widget.Options{Logger: log})
	if err != nil {
		log.Error(err, "widget configuration is invalid")
		return err
	}

	summaries := make([]widgetSummary, 0, len(widgets))
	for _, wc := range cfg.Widgets {
		summaries = append(summaries, widgetSummary{
			ID:       wc.ID,
			Kind:     wc.Kind,
			Items:    len(wc.Items),
			Selected: wc.Selected,
			Expanded: wc.Expanded,
		})
	}

	if opts.JSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(summaries)
	}

	printSummary(out, cfg, summaries)
	return nil
}

func printSummary(out io.Writer, cfg *config.Config, summaries []widgetSummary) {
	name := cfg.Name
	if name == "" {
		name = "widget document"
	}
	fmt.Fprintf(out, "%s (version %s)\n", name, cfg.Version)
	fmt.Fprintln(out, strings.Repeat("=", 40))
	for _, s := range summaries {
		line := fmt.Sprintf("  %-12s %-10s %d items", s.ID, s.Kind, s.Items)
		if len(s.Selected) > 0 {
			line += fmt.Sprintf(", selected: %s", strings.Join(s.Selected, ", "))
		}
		if len(s.Expanded) > 0 {
			line += fmt.Sprintf(", expanded: %s", strings.Join(s.Expanded, ", "))
		}
		fmt.Fprintln(out, line)
	}
	fmt.Fprintf(out, "\n✅ %d widgets valid\n", len(summaries))
}
