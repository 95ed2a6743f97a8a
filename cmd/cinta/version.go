package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/cinta"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of cinta",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cinta version %s\n", strings.TrimSpace(cinta.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
