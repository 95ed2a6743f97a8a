package main

import (
	"fmt"
	"os"

	"github.com/aretw0/cinta"
	"github.com/aretw0/cinta/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <machine-file>",
	Short: "Simulate the machine on its configured inputs",
	Long:  `Loads a machine document, executes every configured input (or the --input overrides) and prints the instantaneous-description trace, verdict, final state and final tape of each run.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		maxSteps, _ := cmd.Flags().GetInt("max-steps")
		inputs, _ := cmd.Flags().GetStringArray("input")
		jsonMode, _ := cmd.Flags().GetBool("json")
		quiet, _ := cmd.Flags().GetBool("quiet")
		report, _ := cmd.Flags().GetBool("report")
		redisURL, _ := cmd.Flags().GetString("redis-url")
		debug, _ := cmd.Flags().GetBool("debug")

		if jsonMode && report {
			return fmt.Errorf("--json and --report cannot be used together")
		}

		return cli.Execute(cli.RunOptions{
			MachinePath: args[0],
			Inputs:      inputs,
			MaxSteps:    maxSteps,
			JSON:        jsonMode,
			Quiet:       quiet,
			Report:      report,
			Debug:       debug,
			RedisURL:    redisURL,
			Output:      os.Stdout,
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Int("max-steps", cinta.NoStepLimit, "Halt each run after this many transitions (-1 = unbounded)")
	runCmd.Flags().StringArray("input", nil, "Input string to simulate instead of the document's inputs (repeatable)")
	runCmd.Flags().Bool("json", false, "Emit one JSON result per line instead of traces")
	runCmd.Flags().Bool("quiet", false, "Print verdicts only, no traces")
	runCmd.Flags().Bool("report", false, "Print a markdown summary after the runs")
	runCmd.Flags().String("redis-url", "", "Persist run results to this Redis instance")
}
