package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/klondike/internal/session"
)

var tapCmd = &cobra.Command{
	Use:   "tap [card]",
	Short: "Move a face-up card to the best legal spot",
	Long: `Tap moves a face-up card, and every card stacked on it, to its foundation
if it fits there, otherwise to the first tableau column that takes it.

Examples:
  klondike tap Ah
  klondike tap 10d`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return step(cmd, func(s *session.Session) error {
			moved, err := s.TapCode(args[0])
			if err != nil {
				return err
			}
			if !moved {
				fmt.Fprintf(cmd.OutOrStdout(), "No move for %s.\n", args[0])
			}
			return nil
		})
	},
}

func init() {
	RootCmd.AddCommand(tapCmd)
}
