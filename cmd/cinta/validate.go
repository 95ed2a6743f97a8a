package main

import (
	"fmt"
	"os"

	"github.com/aretw0/cinta/internal/validator"
	"github.com/aretw0/cinta/pkg/adapters/machinefile"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <machine-file>",
	Short: "Check a machine document for consistency",
	Long:  `Builds the machine definition, reporting fatal definition errors, then lints the transition table for undeclared or unreachable states.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(args[0]); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(path string) error {
	doc, err := machinefile.Load(path)
	if err != nil {
		return err
	}
	def, err := doc.Definition()
	if err != nil {
		return err
	}

	findings := validator.Lint(def)
	for _, f := range findings {
		fmt.Printf("warning: %s\n", f)
	}
	if len(findings) > 0 {
		fmt.Printf("Machine is valid with %d warning(s).\n", len(findings))
		return nil
	}
	fmt.Println("Machine is valid! ✅")
	return nil
}
