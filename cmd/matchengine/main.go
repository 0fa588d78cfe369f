// Package main provides the entry point for the eligibility and ranking
// engine HTTP server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "matchengine",
	Short: "Candidate-opportunity eligibility and ranking engine",
	Long:  "matchengine ranks retrieved candidates against a target opportunity by fusing vector similarity with pairwise relevance, and serves the eligible and audit views over a JSON API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
