// Package bootstrap provides dependency initialization for the MCP server.
package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/mfleurival/ffmpeg-mcp/internal/config"
	"github.com/mfleurival/ffmpeg-mcp/internal/media"
	"github.com/mfleurival/ffmpeg-mcp/internal/storage"
	"github.com/mfleurival/ffmpeg-mcp/internal/tools"
)

// Dependencies holds all initialized dependencies for the MCP server.
type Dependencies struct {
	Engine   media.Engine
	Archiver storage.Archiver
	Handlers *tools.Handlers
}

// NewDependencies creates and initializes all dependencies for the application.
func NewDependencies(cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	archiver, err := initArchiver(cfg, logger)
	if err != nil {
		return nil, err
	}

	engine := media.NewFFmpegEngine(cfg.FFmpegPath, cfg.FFprobePath)
	handlers := tools.NewHandlers(engine, archiver, logger)

	return &Dependencies{
		Engine:   engine,
		Archiver: archiver,
		Handlers: handlers,
	}, nil
}

// initArchiver creates the archiving backend based on configuration.
func initArchiver(cfg *config.Config, logger *slog.Logger) (storage.Archiver, error) {
	if !cfg.S3Enabled() {
		return storage.NewNoopArchiver(), nil
	}

	s3Cfg := storage.S3Config{
		Bucket:          cfg.S3Bucket,
		Region:          cfg.S3Region,
		Endpoint:        cfg.S3Endpoint,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
	}
	archiver, err := storage.NewS3Archiver(s3Cfg)
	if err != nil {
		return nil, fmt.Errorf("create S3 archiver: %w", err)
	}
	logger.Info("S3 archiving configured",
		slog.String("bucket", cfg.S3Bucket),
		slog.String("region", cfg.S3Region),
	)
	return archiver, nil
}
