// Package main provides the entry point for the Career Copilot CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "career_agent",
	Short: "Career Copilot CLI and HTTP API Server",
	Long:  "Career Copilot finds live job postings, analyzes skill gaps against job descriptions, audits resumes and postings for bias, runs interview practice, and plans career transitions.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
