// Package media provides the boundary to the external media engine.
// The engine performs all decode, encode and probe work; this package only
// drives it and never inspects codec internals.
package media

import (
	"context"
	"errors"
)

// Static errors for media operations.
var (
	// ErrInvalidDuration is returned when a duration is not positive.
	ErrInvalidDuration = errors.New("invalid duration: must be positive")
	// ErrFFprobeExecution is returned when the ffprobe command fails.
	ErrFFprobeExecution = errors.New("ffprobe execution failed")
)

// Engine defines the operations delegated to the external media engine.
// Each call is a single unit of work: it either completes in full or returns
// an error, with no partial-completion state exposed.
type Engine interface {
	// Duration probes the media file at path and returns its duration
	// in seconds.
	Duration(ctx context.Context, path string) (float64, error)

	// Trim writes the portion of inputPath beginning at start seconds and
	// lasting duration seconds to outputPath. The container format is
	// derived from the output path's extension.
	Trim(ctx context.Context, inputPath, outputPath string, start, duration float64) error

	// ExtractFrame writes the still frame at timestamp seconds of inputPath
	// to outputPath.
	ExtractFrame(ctx context.Context, inputPath, outputPath string, timestamp float64) error

	// ExtractSegment transcodes the portion of inputPath beginning at start
	// seconds and lasting duration seconds to outputPath.
	ExtractSegment(ctx context.Context, inputPath, outputPath string, start, duration float64) error
}
