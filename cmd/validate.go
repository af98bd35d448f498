package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idolplan/idolplan/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check an account against the card catalog",
	Long: `Validate checks that every card in the account exists in the catalog and
that every accessory is a legal kind/rarity/attribute combination with
fields in range.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.close()

		results, err := validator.NewValidator(s.catalog, s.account).Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}
		return printResults(s.name, results)
	},
}

// printResults displays validation results and fails when there are errors
func printResults(name string, results validator.ValidationResults) error {
	fmt.Println("Validation Results:")
	fmt.Println("-------------------")

	if results.Valid() {
		fmt.Printf("✅ Account '%s' is valid.\n", name)
	} else {
		fmt.Printf("❌ Account '%s' has %d validation errors:\n", name, len(results.Errors))
		for i, err := range results.Errors {
			fmt.Printf("%d. %s\n", i+1, err)
		}
	}

	if len(results.Warnings) > 0 {
		fmt.Println("\nWarnings:")
		for i, warn := range results.Warnings {
			fmt.Printf("%d. %s\n", i+1, warn)
		}
	}

	if !results.Valid() {
		return fmt.Errorf("validation failed")
	}
	return nil
}

func init() {
	RootCmd.AddCommand(validateCmd)
}
