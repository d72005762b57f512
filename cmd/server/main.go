// Package main is the entry point for the saga API server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "saga-api",
	Short: "Saga API Server",
	Long:  `Saga API serves configuration-driven character rules for narrative campaigns: engine schemas, guided creation, sheets, and sharing.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
