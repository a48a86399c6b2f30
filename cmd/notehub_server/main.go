package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/notehubapp/notehub-mcp/pkg/client"
	"github.com/notehubapp/notehub-mcp/pkg/config"
	"github.com/notehubapp/notehub-mcp/pkg/logging"
	"github.com/notehubapp/notehub-mcp/pkg/notehub"
	"github.com/notehubapp/notehub-mcp/pkg/notehubmcp"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "notehub-mcp",
		Short: "NoteHub MCP server",
		Long:  `Exposes the NoteHub note-taking service as MCP tools over stdio for AI agent integration.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}

	setupFlags(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupFlags(cmd *cobra.Command) {
	// A .env next to the binary is convenient for MCP client configs;
	// absence is fine.
	_ = godotenv.Load()

	config.ApplyDefaults(viper.GetViper())
	defaults := config.NewViper()

	cmd.PersistentFlags().String("base-url", defaults.GetString("base_url"), "NoteHub API base URL")
	cmd.PersistentFlags().String("api-token", "", "NoteHub API token (overrides env)")
	cmd.PersistentFlags().String("workspace-id", defaults.GetString("workspace_id"), "Default workspace id")
	cmd.PersistentFlags().Bool("debug", defaults.GetBool("debug"), "Log request/response diagnostics")
	cmd.PersistentFlags().String("log-level", defaults.GetString("log.level"), "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log-file", defaults.GetString("log.file"), "Log file path")

	bindFlag(cmd, "base_url", "base-url")
	bindFlag(cmd, "api_token", "api-token")
	bindFlag(cmd, "workspace_id", "workspace-id")
	bindFlag(cmd, "debug", "debug")
	bindFlag(cmd, "log.level", "log-level")
	bindFlag(cmd, "log.file", "log-file")
}

func bindFlag(cmd *cobra.Command, key, flag string) {
	if err := viper.BindPFlag(key, cmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}

func runServer() error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	apiClient := client.New(cfg.BaseURL, cfg.APIToken,
		client.WithLogger(logger),
		client.WithDebug(cfg.Debug),
	)
	services := notehub.NewServices(apiClient, cfg.DefaultWorkspaceID)

	ns := notehubmcp.NewNoteHubServer(services, logger)

	logger.Info("starting MCP server",
		zap.String("baseURL", cfg.BaseURL),
		zap.String("defaultWorkspace", cfg.DefaultWorkspaceID))

	if err := server.ServeStdio(ns.McpServer); err != nil {
		logger.Error("server stopped", zap.Error(err))
		return err
	}

	return nil
}
