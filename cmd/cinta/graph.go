package main

import (
	"fmt"
	"os"

	"github.com/aretw0/cinta/internal/presentation/graph"
	"github.com/aretw0/cinta/pkg/adapters/machinefile"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <machine-file>",
	Short: "Export the transition diagram",
	Long:  `Inspects the machine definition and outputs a Mermaid diagram (graph LR) of its transition table.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		doc, err := machinefile.Load(args[0])
		if err != nil {
			fmt.Printf("Error loading machine: %v\n", err)
			os.Exit(1)
		}
		def, err := doc.Definition()
		if err != nil {
			fmt.Printf("Error building definition: %v\n", err)
			os.Exit(1)
		}

		fmt.Print(graph.GenerateMermaid(def))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
