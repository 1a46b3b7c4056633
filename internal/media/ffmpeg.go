package media

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// FFmpegEngine implements Engine using the ffmpeg and ffprobe CLIs.
type FFmpegEngine struct {
	ffmpegPath  string
	ffprobePath string
}

// NewFFmpegEngine creates a new FFmpegEngine.
// Empty paths default to "ffmpeg" and "ffprobe" (found via PATH).
func NewFFmpegEngine(ffmpegPath, ffprobePath string) *FFmpegEngine {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}
	return &FFmpegEngine{ffmpegPath: ffmpegPath, ffprobePath: ffprobePath}
}

// Compile-time check: FFmpegEngine must implement Engine.
var _ Engine = (*FFmpegEngine)(nil)

// Duration returns the duration in seconds of a media file.
// It uses ffprobe to extract the duration metadata.
func (e *FFmpegEngine) Duration(ctx context.Context, path string) (float64, error) {
	// #nosec G204 - ffprobePath is set by the application, not user input
	cmd := exec.CommandContext(ctx, e.ffprobePath,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return 0, fmt.Errorf("ffprobe cancelled: %w", ctx.Err())
		}
		return 0, fmt.Errorf("%w: %w, stderr: %s", ErrFFprobeExecution, err, stderr.String())
	}

	var duration float64
	if _, err := fmt.Sscanf(strings.TrimSpace(stdout.String()), "%f", &duration); err != nil {
		return 0, fmt.Errorf("parse duration: %w", err)
	}

	return duration, nil
}

// Trim extracts a portion of the input using stream copy, avoiding a
// re-encode when the target container supports the source codecs.
func (e *FFmpegEngine) Trim(ctx context.Context, inputPath, outputPath string, start, duration float64) error {
	if duration <= 0 {
		return fmt.Errorf("%w: got %.3f", ErrInvalidDuration, duration)
	}

	args := []string{
		"-y",
		"-ss", fmt.Sprintf("%.3f", start),
		"-t", fmt.Sprintf("%.3f", duration),
		"-i", inputPath,
		"-c", "copy",
		outputPath,
	}

	return e.runFFmpeg(ctx, args)
}

// ExtractFrame writes the single frame at timestamp seconds to outputPath.
func (e *FFmpegEngine) ExtractFrame(ctx context.Context, inputPath, outputPath string, timestamp float64) error {
	args := []string{
		"-y",
		"-ss", fmt.Sprintf("%.3f", timestamp),
		"-i", inputPath,
		"-frames:v", "1",
		outputPath,
	}

	return e.runFFmpeg(ctx, args)
}

// ExtractSegment transcodes a portion of the input to outputPath. Unlike
// Trim this re-encodes, because segment outputs routinely change container
// and codec (e.g. any source to wav).
func (e *FFmpegEngine) ExtractSegment(ctx context.Context, inputPath, outputPath string, start, duration float64) error {
	if duration <= 0 {
		return fmt.Errorf("%w: got %.3f", ErrInvalidDuration, duration)
	}

	args := []string{
		"-y",
		"-ss", fmt.Sprintf("%.3f", start),
		"-t", fmt.Sprintf("%.3f", duration),
		"-i", inputPath,
		outputPath,
	}

	return e.runFFmpeg(ctx, args)
}

// runFFmpeg executes ffmpeg with the given arguments and returns an error
// containing stderr output if the command fails.
func (e *FFmpegEngine) runFFmpeg(ctx context.Context, args []string) error {
	// #nosec G204 - ffmpegPath is set by the application, not user input
	cmd := exec.CommandContext(ctx, e.ffmpegPath, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("ffmpeg cancelled: %w", ctx.Err())
		}
		return &FFmpegError{
			Args:   args,
			Stderr: stderr.String(),
			Err:    err,
		}
	}

	return nil
}

// FFmpegError represents an error from running ffmpeg, including the stderr output.
type FFmpegError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *FFmpegError) Error() string {
	return fmt.Sprintf("ffmpeg error: %v\nargs: %v\nstderr: %s", e.Err, e.Args, e.Stderr)
}

func (e *FFmpegError) Unwrap() error {
	return e.Err
}
