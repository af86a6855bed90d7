package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ruminaider/reselect/cmd/reselect/tui"
	"github.com/ruminaider/reselect/internal/config"
	"github.com/ruminaider/reselect/internal/editor"
	"github.com/ruminaider/reselect/internal/paths"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

var (
	listFile string
	logFile  string
)

var rootCmd = &cobra.Command{
	Use:   "reselect",
	Short: "Browse and edit a sectioned list without losing the selection",
	Long: "reselect opens a sectioned list in the terminal. Rows can be deleted, moved and inserted, " +
		"in or out of edit mode, and the selection stays on the same row or falls back to its neighbour.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(listFile)
		if err != nil {
			return err
		}

		logger, closeLog, err := openLogger(logFile)
		if err != nil {
			return err
		}
		defer closeLog()

		model := tui.NewModel(editor.ListFromConfig(cfg), logger)
		if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
			return fmt.Errorf("running list: %w", err)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("reselect %s\n", version)
	},
}

// openLogger returns a debug logger writing to path, or nil when path is
// empty. The terminal belongs to the TUI, so logs never go to stderr.
func openLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { f.Close() }, nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&listFile, "file", "f", paths.ListFile(), "list file")
	rootCmd.Flags().StringVar(&logFile, "log", "", "write debug logs to this file (e.g. "+paths.LogFile()+")")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(replayCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
