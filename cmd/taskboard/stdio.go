package main

import (
	"os"
	"os/signal"
	"syscall"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/taskboard/internal/app"
	"github.com/rpggio/taskboard/internal/config"
	"github.com/spf13/cobra"
)

func newStdioCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stdio",
		Short: "Serve MCP over stdin/stdout as the local user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Stdio never authenticates, so no JWT secret is required.
			if err := os.Setenv(config.EnvPrefix+"AUTH_ENABLED", "false"); err != nil {
				return err
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			// Stdout carries the protocol.
			logger, closer, err := newLogger(cfg.Log, os.Stderr)
			if err != nil {
				return err
			}
			defer closer.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := app.New(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer a.Close()

			logger.Info("starting stdio transport", "user_id", cfg.Auth.LocalUserID)
			return a.MCPServer("stdio").Run(ctx, &sdkmcp.StdioTransport{})
		},
	}
}
