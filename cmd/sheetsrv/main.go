// Package main provides the CLI entry point for sheetsrv.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"sheetsrv/internal/config"
	"sheetsrv/pkg/mcp"
	"sheetsrv/pkg/sheets"
)

// version is set via -ldflags at build time.
var version = "1.1.0"

var (
	cfgFile         string
	spreadsheetsDir string
	importsDir      string
	logLevel        string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sheetsrv",
		Short: "Spreadsheet MCP server",
		Long: `sheetsrv is a Model Context Protocol server speaking JSON-RPC over stdio.
It exposes tools for creating, reading, writing, formatting, and charting
xlsx and csv spreadsheets held in a sandboxed directory.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	rootCmd.Flags().StringVar(&cfgFile, "config", "", "Config file path (default: ./sheetsrv.yaml)")
	rootCmd.Flags().StringVar(&spreadsheetsDir, "spreadsheets-dir", "", "Directory holding spreadsheet files")
	rootCmd.Flags().StringVar(&importsDir, "imports-dir", "", "Staging directory for imports")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	// Flags win over config file and environment.
	if spreadsheetsDir != "" {
		cfg.SpreadsheetsDir = spreadsheetsDir
	}
	if importsDir != "" {
		cfg.ImportsDir = importsDir
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %s", cfg.LogLevel)
	}

	// stdout belongs to the protocol; all logging goes to stderr.
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "sheetsrv",
		Level:  level,
	})

	store, err := sheets.Open(cfg.SpreadsheetsDir, cfg.ImportsDir, logger)
	if err != nil {
		return err
	}

	server := mcp.NewServer(mcp.ServerInfo{Name: "sheetsrv", Version: version}, os.Stdout, logger)
	server.RegisterAll(sheets.Tools(store))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("spreadsheet MCP server starting", "version", version)
	return server.Run(ctx, os.Stdin)
}
