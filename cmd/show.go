package cmd

import (
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the saved game",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, st, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()
		return showBoard(cmd, s)
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}
