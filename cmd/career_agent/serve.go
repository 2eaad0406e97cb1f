package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-copilot/internal/server"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes REST endpoints for job search, skill
analysis, bias audits, interview practice, career planning, and sessions.

Sessions, auth, and memory require DATABASE_URL; without it those endpoints
return 503 and the analysis endpoints still work. Without GEMINI_API_KEY the
agents serve their offline fallbacks.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (defaults to PORT env var or 8080)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadMergedConfig(serveConfigPath)
	if err != nil {
		return err
	}

	port := servePort
	if !cmd.Flags().Changed("port") {
		port = 8080
		if cfg.Port != "" {
			port, err = strconv.Atoi(cfg.Port)
			if err != nil {
				return fmt.Errorf("invalid port %q: %w", cfg.Port, err)
			}
		}
	}

	srv, err := server.New(context.Background(), server.Config{
		Port:         port,
		DatabaseURL:  cfg.DatabaseURL,
		APIKey:       cfg.APIKey,
		SearchAPIKey: cfg.SearchAPIKey,
		UseBrowser:   cfg.UseBrowser,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
