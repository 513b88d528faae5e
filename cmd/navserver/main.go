// Package main is the entry point for the nav route server and its grid
// file tooling.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "navserver",
	Short: "Movement grid route server",
	Long:  `navserver answers shortest-route queries over a baked movement grid and ships small tools for inspecting grid files.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(reachableCmd)
}
