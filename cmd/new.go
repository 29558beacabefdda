package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arcanaland/klondike/internal/session"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Deal a new game, replacing the saved one",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return step(cmd, func(s *session.Session) error {
			s.NewGame()
			return nil
		})
	},
}

func init() {
	RootCmd.AddCommand(newCmd)
}
