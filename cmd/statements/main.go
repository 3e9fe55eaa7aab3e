// Command statements extracts normalized withdrawal transactions from a
// bank statement export (XLSX, CSV or PDF) and prints them as JSON or CSV.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "statements",
		Short: "Extract withdrawal transactions from bank statement exports",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newParseCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
