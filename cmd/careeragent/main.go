// Package main provides the careeragent CLI for CV parsing, job and
// contact discovery, and personalized outreach drafting.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "careeragent",
	Short: "CareerAgent job outreach CLI",
	Long:  "CareerAgent parses a CV, discovers matching job postings and hiring contacts, and drafts personalized email and WhatsApp outreach validated against quality rules.",
}

var (
	rootDebug    bool
	rootJSONLogs bool
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&rootDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&rootJSONLogs, "json-logs", false, "Emit logs as JSON instead of console format")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
