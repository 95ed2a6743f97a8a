package main

import (
	"fmt"
	"os"

	"github.com/aretw0/cinta/internal/cli"
	"github.com/spf13/cobra"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve <machine-file>",
	Short: "Expose the machine over HTTP",
	Long:  `Starts a JSON API for the machine: POST /runs executes inputs, GET /runs lists persisted results, GET /definition and /graph introspect the machine, /metrics exposes Prometheus counters.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		addr, _ := cmd.Flags().GetString("addr")
		maxSteps, _ := cmd.Flags().GetInt("max-steps")
		redisURL, _ := cmd.Flags().GetString("redis-url")
		debug, _ := cmd.Flags().GetBool("debug")

		err := cli.Serve(cli.ServeOptions{
			MachinePath: args[0],
			Addr:        addr,
			MaxSteps:    maxSteps,
			Debug:       debug,
			RedisURL:    redisURL,
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", ":8080", "Listen address")
	serveCmd.Flags().Int("max-steps", 10000, "Step limit per run (-1 = unbounded, not recommended for a server)")
	serveCmd.Flags().String("redis-url", "", "Persist run results to this Redis instance (default: in-memory)")
}
