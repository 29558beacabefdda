package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcanaland/klondike/internal/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file and data directory",
	Run: func(cmd *cobra.Command, args []string) {
		dataDir := config.GetDataDir()

		// Create the data directory if it doesn't exist
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			fmt.Printf("Error creating data directory: %v\n", err)
			return
		}
		fmt.Println("Data directory initialized at:", dataDir)

		// The root command has already loaded, and if needed written, the config.
		fmt.Println("Config file initialized at:", config.GetConfigFilePath())
	},
}

func init() {
	RootCmd.AddCommand(initCmd)
}
