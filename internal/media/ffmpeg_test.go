package media

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"
)

// checkFFmpeg skips test if ffmpeg is not available.
func checkFFmpeg(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		t.Skip("ffmpeg not found in PATH, skipping test")
	}
	if _, err := exec.LookPath("ffprobe"); err != nil {
		t.Skip("ffprobe not found in PATH, skipping test")
	}
}

// createTestWAV creates a sine-wave WAV file with the given duration.
func createTestWAV(t *testing.T, outputPath string, durationSec float64) {
	t.Helper()

	filter := fmt.Sprintf("sine=frequency=440:duration=%.3f", durationSec)
	cmd := exec.Command("ffmpeg", "-y",
		"-f", "lavfi", "-i", filter,
		"-ar", "16000", "-ac", "1",
		outputPath,
	)
	stderr, _ := cmd.CombinedOutput()
	if _, err := os.Stat(outputPath); os.IsNotExist(err) {
		t.Fatalf("failed to create test WAV: %s", string(stderr))
	}
}

func TestNewFFmpegEngine_Defaults(t *testing.T) {
	e := NewFFmpegEngine("", "")
	if e.ffmpegPath != "ffmpeg" {
		t.Errorf("expected default ffmpeg path, got %q", e.ffmpegPath)
	}
	if e.ffprobePath != "ffprobe" {
		t.Errorf("expected default ffprobe path, got %q", e.ffprobePath)
	}

	custom := NewFFmpegEngine("/opt/bin/ffmpeg", "/opt/bin/ffprobe")
	if custom.ffmpegPath != "/opt/bin/ffmpeg" || custom.ffprobePath != "/opt/bin/ffprobe" {
		t.Errorf("custom paths not preserved: %q, %q", custom.ffmpegPath, custom.ffprobePath)
	}
}

func TestFFmpegEngine_Duration(t *testing.T) {
	checkFFmpeg(t)

	tmpDir := t.TempDir()
	inputPath := filepath.Join(tmpDir, "input.wav")
	createTestWAV(t, inputPath, 10)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	e := NewFFmpegEngine("", "")
	duration, err := e.Duration(ctx, inputPath)
	if err != nil {
		t.Fatalf("Duration failed: %v", err)
	}

	// Allow slack for container rounding.
	if duration < 9.5 || duration > 10.5 {
		t.Errorf("expected ~10s duration, got %.3f", duration)
	}
}

func TestFFmpegEngine_Duration_MissingFile(t *testing.T) {
	checkFFmpeg(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	e := NewFFmpegEngine("", "")
	_, err := e.Duration(ctx, filepath.Join(t.TempDir(), "missing.wav"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, ErrFFprobeExecution) {
		t.Errorf("expected ErrFFprobeExecution, got %v", err)
	}
}

func TestFFmpegEngine_ExtractSegment(t *testing.T) {
	checkFFmpeg(t)

	tmpDir := t.TempDir()
	inputPath := filepath.Join(tmpDir, "input.wav")
	outputPath := filepath.Join(tmpDir, "segment_001.wav")
	createTestWAV(t, inputPath, 10)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	e := NewFFmpegEngine("", "")
	if err := e.ExtractSegment(ctx, inputPath, outputPath, 2, 4); err != nil {
		t.Fatalf("ExtractSegment failed: %v", err)
	}

	duration, err := e.Duration(ctx, outputPath)
	if err != nil {
		t.Fatalf("Duration of segment failed: %v", err)
	}
	if duration < 3.5 || duration > 4.5 {
		t.Errorf("expected ~4s segment, got %.3f", duration)
	}
}

func TestFFmpegEngine_ExtractSegment_InvalidDuration(t *testing.T) {
	e := NewFFmpegEngine("", "")
	err := e.ExtractSegment(context.Background(), "in.wav", "out.wav", 0, 0)
	if !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("expected ErrInvalidDuration, got %v", err)
	}
}

func TestFFmpegEngine_Trim_InvalidDuration(t *testing.T) {
	e := NewFFmpegEngine("", "")
	err := e.Trim(context.Background(), "in.mp4", "out.mp4", 0, -5)
	if !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("expected ErrInvalidDuration, got %v", err)
	}
}

func TestFFmpegEngine_RunFailure(t *testing.T) {
	checkFFmpeg(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	e := NewFFmpegEngine("", "")
	err := e.ExtractSegment(ctx, filepath.Join(t.TempDir(), "missing.wav"), "out.wav", 0, 5)
	if err == nil {
		t.Fatal("expected error for missing input")
	}

	var ffErr *FFmpegError
	if !errors.As(err, &ffErr) {
		t.Fatalf("expected *FFmpegError, got %T: %v", err, err)
	}
	if ffErr.Stderr == "" {
		t.Error("expected stderr output in FFmpegError")
	}
	if ffErr.Unwrap() == nil {
		t.Error("expected wrapped error")
	}
}
