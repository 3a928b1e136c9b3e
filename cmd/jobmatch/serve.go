package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rafael/jobmatch/internal/config"
	"github.com/rafael/jobmatch/internal/server"
)

var (
	servePort       int
	serveConfigPath string
	serveWindow     int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the catalog, application, and dashboard endpoints. Without DATABASE_URL the server runs on the in-memory store.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().IntVar(&serveWindow, "window-days", 0, "Trailing window for new-application counts (default 7)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to a JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	srv, err := server.New(*cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// buildConfig layers flags over env vars over an optional config file.
func buildConfig() (*config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}

	if serveConfigPath != "" {
		fileCfg, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return nil, err
		}
		merged := cfg.MergeWithDefaults(*fileCfg)
		cfg = &merged
	} else {
		merged := cfg.MergeWithDefaults(config.Config{})
		cfg = &merged
	}

	if servePort != 0 {
		cfg.Port = servePort
	}
	if serveWindow != 0 {
		cfg.WindowDays = serveWindow
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
