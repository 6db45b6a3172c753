// Package main is the entry point for the taskboard server.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/rpggio/taskboard/internal/app"
	"github.com/rpggio/taskboard/internal/config"
	"github.com/rpggio/taskboard/internal/logging"
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "dev"

var configPath string

func main() {
	app.Version = Version

	rootCmd := &cobra.Command{
		Use:   "taskboard",
		Short: "Personal task board with list, matrix, timetable and calendar views",
		Long: `taskboard serves a todo list over a REST API and MCP.

Configuration comes from built-in defaults, an optional YAML file
(--config or TASKBOARD_CONFIG_PATH) and TASKBOARD_* environment variables.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")

	rootCmd.AddCommand(
		newServeCmd(),
		newStdioCmd(),
		newMigrateCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (config.Config, error) {
	if configPath != "" {
		if err := os.Setenv(config.EnvPrefix+"CONFIG_PATH", configPath); err != nil {
			return config.Config{}, err
		}
	}
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, fmt.Errorf("config error: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg config.LogConfig, out io.Writer) (*slog.Logger, io.Closer, error) {
	return logging.New(logging.Options{
		Level:      cfg.Level,
		Format:     cfg.Format,
		File:       cfg.File,
		MaxSizeMB:  cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAgeDays: cfg.MaxAgeDays,
		Stderr:     out,
	})
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "taskboard %s\n", Version)
		},
	}
}
