// Package main provides the CLI entrypoint for wordstat.
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/wordstat/internal/config"
	"github.com/verte-zerg/wordstat/internal/logging"
	"github.com/verte-zerg/wordstat/internal/model"
	"github.com/verte-zerg/wordstat/internal/stats"
	"github.com/verte-zerg/wordstat/internal/statsui"
)

const defaultInputPath = "word.txt"

const terminalWidthBackup = 80

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	rootCmd := &cobra.Command{
		Use:           "wordstat",
		Short:         "Lexical statistics for " + defaultInputPath,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReportCmd(cmd, verbose)
		},
	}
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "log debug details to stderr")

	rootCmd.AddCommand(newViewCmd(&verbose))
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runReportCmd(cmd *cobra.Command, verbose bool) error {
	cfg, err := resolveConfig(verbose)
	if err != nil {
		return err
	}
	logger := logging.New(logging.Options{Verbose: cfg.Verbose, Output: cmd.ErrOrStderr()})

	dict, err := accumulate(logger, cfg.InputPath)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(cmd.OutOrStdout())
	if err := stats.RenderReport(out, dict); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func newViewCmd(verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Browse the statistics interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runViewCmd(cmd, *verbose)
		},
	}
}

func runViewCmd(cmd *cobra.Command, verbose bool) error {
	cfg, err := resolveConfig(verbose)
	if err != nil {
		return err
	}
	startTab, err := statsui.ParseTab(cfg.StartTab)
	if err != nil {
		return fmt.Errorf("invalid view.tab: %w", err)
	}
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("view requires an interactive terminal on stdout")
	}
	logger := logging.New(logging.Options{Verbose: cfg.Verbose, Output: cmd.ErrOrStderr()})

	dict, err := accumulate(logger, cfg.InputPath)
	if err != nil {
		return err
	}

	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		width = terminalWidthBackup
	}
	ui := statsui.NewModel(dict, cfg.InputPath, startTab, width)
	program := tea.NewProgram(ui, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run stats TUI: %w", err)
	}
	return nil
}

func accumulate(logger *slog.Logger, path string) (model.Dictionary, error) {
	logger.Debug("reading input", "path", path)
	dict, err := stats.AccumulateFile(path)
	if err != nil {
		return model.Dictionary{}, err
	}
	logger.Debug("scan complete",
		"chars", dict.Counters.Chars,
		"words", dict.Counters.Words,
		"lines", dict.Counters.Lines,
		"vocabulary", len(dict.Vocabulary),
	)
	return dict, nil
}

func resolveConfig(verbose bool) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	cfg := model.Config{
		InputPath: defaultInputPath,
		Verbose:   verbose,
	}
	applyStringConfig(&cfg.InputPath, fileCfg.Input.Path)
	applyStringConfig(&cfg.StartTab, fileCfg.View.Tab)
	return cfg, nil
}

func applyStringConfig(target, value *string) {
	if value == nil {
		return
	}
	*target = *value
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	created, err := ensureConfigFile(path)
	if err != nil {
		return err
	}
	if created {
		logErrf("Created %s\n", path)
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func ensureConfigFile(path string) (bool, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to stat config: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		return false, fmt.Errorf("failed to write config: %w", err)
	}
	return true, nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# wordstat configuration
# Uncomment a value to enable it.

[input]
# path = %q           # Text file to analyze, relative to the working directory

[view]
# tab = "overview"          # Starting tab: overview, letters, words, histogram
`,
		defaultInputPath,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
