package main

import (
	"fmt"

	"github.com/ruminaider/reselect/internal/script"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay <script.yaml>",
	Short: "Replay scripted edits and print how the selection moves",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := script.Load(args[0])
		if err != nil {
			return err
		}
		res, err := script.Run(s, cmd.OutOrStdout())
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout())
		if res.Found {
			fmt.Fprintf(cmd.OutOrStdout(), "Final selection: %s %s (%d selects over %d steps)\n",
				res.Position, res.Selected, res.Selects, res.Steps)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "No selection after %d steps.\n", res.Steps)
		}
		return nil
	},
}
