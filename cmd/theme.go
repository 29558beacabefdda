package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/klondike/internal/config"
)

// themeCmd represents the theme command
var themeCmd = &cobra.Command{
	Use:       "theme [system|light|dark]",
	Short:     "Show or set the board color theme",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"system", "light", "dark"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			for _, t := range config.Themes {
				if t == cfg.Theme {
					fmt.Printf("* %s\n", t)
				} else {
					fmt.Printf("  %s\n", t)
				}
			}
			return nil
		}

		theme, err := config.ParseTheme(args[0])
		if err != nil {
			return err
		}
		if err := config.SetTheme(theme); err != nil {
			return fmt.Errorf("error setting theme: %v", err)
		}

		fmt.Printf("Theme set to: %s\n", theme)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(themeCmd)
}
