package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/klondike/internal/session"
	"github.com/arcanaland/klondike/internal/solitaire"
)

var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Draw a card from the stock, or turn the talon over when the stock is empty",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return step(cmd, func(s *session.Session) error {
			if s.DrawOrRecycle() == solitaire.Nothing {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing left to draw.")
			}
			return nil
		})
	},
}

func init() {
	RootCmd.AddCommand(drawCmd)
}
