package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/ruminaider/reselect/internal/config"
	"github.com/spf13/cobra"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a list file interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(listFile); err == nil && !initForce {
			overwrite := false
			err := huh.NewForm(huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("%s exists. Overwrite?", listFile)).
					Value(&overwrite),
			)).Run()
			if err != nil {
				return fmt.Errorf("prompt cancelled: %w", err)
			}
			if !overwrite {
				fmt.Println("Left existing list untouched.")
				return nil
			}
		}

		var cfg config.Config
		for {
			section, more, err := promptSection(len(cfg.Sections) + 1)
			if err != nil {
				return err
			}
			cfg.Sections = append(cfg.Sections, section)
			if !more {
				break
			}
		}

		if err := config.Save(listFile, cfg); err != nil {
			return err
		}
		fmt.Printf("Wrote %s (%d sections).\n", listFile, len(cfg.Sections))
		fmt.Println("Run 'reselect' to open it.")
		return nil
	},
}

// promptSection asks for one section's title and rows.
func promptSection(n int) (config.Section, bool, error) {
	var (
		title string
		rows  string
		more  bool
	)
	err := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title(fmt.Sprintf("Title for section %d", n)).
			Placeholder("e.g. Produce").
			Value(&title),
		huh.NewText().
			Title("Rows, one per line").
			Value(&rows).
			Validate(func(s string) error {
				if len(splitRows(s)) == 0 {
					return errors.New("at least one row is required")
				}
				return nil
			}),
		huh.NewConfirm().
			Title("Add another section?").
			Value(&more),
	)).Run()
	if err != nil {
		return config.Section{}, false, fmt.Errorf("prompt cancelled: %w", err)
	}
	return config.Section{Title: strings.TrimSpace(title), Items: splitRows(rows)}, more, nil
}

// splitRows returns the non-blank, trimmed lines of s.
func splitRows(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing list without asking")
}
