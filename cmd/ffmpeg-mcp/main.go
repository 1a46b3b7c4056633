// Package main provides the entry point for the ffmpeg MCP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/mfleurival/ffmpeg-mcp/internal/bootstrap"
	"github.com/mfleurival/ffmpeg-mcp/internal/config"
)

const version = "1.0.0"

func main() {
	_ = godotenv.Load() // best-effort: load .env if present

	root := &cobra.Command{
		Use:          "ffmpeg-mcp",
		Short:        "MCP server exposing ffmpeg trim, frame extraction and audio segmentation tools over stdio",
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}

	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	root.SilenceErrors = true

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Create structured logger (stderr; stdout is the protocol stream)
	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting ffmpeg MCP server",
		slog.String("version", version),
		slog.String("ffmpeg_path", cfg.FFmpegPath),
		slog.String("ffprobe_path", cfg.FFprobePath),
		slog.String("log_format", cfg.LogFormat),
		slog.String("log_level", cfg.LogLevel),
		slog.Bool("s3_archiving", cfg.S3Enabled()),
	)

	// Initialize dependencies using bootstrap
	deps, err := bootstrap.NewDependencies(cfg, logger)
	if err != nil {
		return fmt.Errorf("initialize dependencies: %w", err)
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "ffmpeg-mcp",
		Version: version,
	}, nil)
	deps.Handlers.Register(server)

	// Stop on termination signal; the stdio transport ends on client disconnect.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("server failed: %w", err)
	}

	logger.Info("server stopped gracefully")
	return nil
}
