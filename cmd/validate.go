package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/klondike/internal/solitaire"
	"github.com/arcanaland/klondike/internal/store"
	"github.com/arcanaland/klondike/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the saved game for damage",
	Long: `Validate loads the saved game and checks that it holds all 52 cards once
each and that every foundation builds up by suit from the Ace.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := openStore(ctx)
		if err != nil {
			return fmt.Errorf("error opening store: %v", err)
		}
		defer st.Close()

		data, err := st.Get(ctx, store.KeyGame)
		if errors.Is(err, store.ErrNotFound) {
			fmt.Println("No saved game. Run 'klondike new' to start one.")
			return nil
		}
		if err != nil {
			return err
		}

		g, err := solitaire.Unmarshal(data)
		if err != nil {
			return fmt.Errorf("saved game is unreadable: %v", err)
		}

		v := validator.NewValidator(g)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %v", err)
		}

		// Display validation results
		fmt.Println("Validation Results:")
		fmt.Println("-------------------")

		if len(results.Errors) == 0 {
			fmt.Println("✅ Saved game is valid.")
		} else {
			fmt.Printf("❌ Saved game has %d validation errors:\n", len(results.Errors))
			for i, err := range results.Errors {
				fmt.Printf("%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Println("\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Printf("%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)
}
