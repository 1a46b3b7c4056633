package tools

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mfleurival/ffmpeg-mcp/internal/media"
	"github.com/mfleurival/ffmpeg-mcp/internal/segment"
	"github.com/mfleurival/ffmpeg-mcp/internal/storage"
	"github.com/mfleurival/ffmpeg-mcp/internal/timeutil"
)

// Handlers contains the MCP tool handlers. One call is handled at a time:
// the stdio transport serializes requests, so no locking is needed around
// the output directory or metadata file.
type Handlers struct {
	engine   media.Engine
	archiver storage.Archiver
	validate *validator.Validate
	logger   *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(engine media.Engine, archiver storage.Archiver, logger *slog.Logger) *Handlers {
	if archiver == nil {
		archiver = storage.NewNoopArchiver()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{
		engine:   engine,
		archiver: archiver,
		validate: validator.New(),
		logger:   logger,
	}
}

// ToolNames returns the names of the tools this server registers, in
// registration order.
func ToolNames() []string {
	return []string{"trim_video", "extract_frame", "segment_audio"}
}

// Register adds all tool handlers to the MCP server. Input schemas are
// inferred from the request struct tags; calls with unknown tool names are
// rejected by the SDK with a method-not-found protocol error.
func (h *Handlers) Register(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "trim_video",
		Description: "Trim a video to the portion between two timestamps. The output is written next to the input file.",
	}, h.TrimVideo)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "extract_frame",
		Description: "Extract a single still frame from a video at the given timestamp.",
	}, h.ExtractFrame)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "segment_audio",
		Description: "Split an audio file into sequential segments with configurable overlap, writing a metadata record next to the segments.",
	}, h.SegmentAudio)
}

// TrimVideo handles the trim_video tool.
func (h *Handlers) TrimVideo(ctx context.Context, req *mcp.CallToolRequest, in TrimVideoRequest) (*mcp.CallToolResult, any, error) {
	in.applyDefaults()
	if err := h.validate.Struct(in); err != nil {
		return nil, nil, invalidArgumentf("invalid arguments: %v", err)
	}
	if err := requireFile(in.VideoPath); err != nil {
		return nil, nil, err
	}

	start, err := timeutil.ParseTimestamp(in.StartTime)
	if err != nil {
		return nil, nil, invalidArgumentf("start_time: %v", err)
	}
	duration, err := timeutil.Difference(in.StartTime, in.EndTime)
	if err != nil {
		return nil, nil, invalidArgumentf("%v", err)
	}
	if duration <= 0 {
		return nil, nil, invalidArgumentf("end_time %q is not after start_time %q", in.EndTime, in.StartTime)
	}

	outputPath := derivedPath(in.VideoPath, "_trimmed", in.OutputFormat)
	if err := h.engine.Trim(ctx, in.VideoPath, outputPath, start, duration); err != nil {
		return nil, nil, processingFailedf("trim video: %v", err)
	}

	h.logger.Info("video trimmed",
		slog.String("input", in.VideoPath),
		slog.String("output", outputPath),
		slog.Float64("duration_sec", duration),
	)

	return textResult(fmt.Sprintf("Video trimmed successfully: %s", outputPath)), nil, nil
}

// ExtractFrame handles the extract_frame tool.
func (h *Handlers) ExtractFrame(ctx context.Context, req *mcp.CallToolRequest, in ExtractFrameRequest) (*mcp.CallToolResult, any, error) {
	in.applyDefaults()
	if err := h.validate.Struct(in); err != nil {
		return nil, nil, invalidArgumentf("invalid arguments: %v", err)
	}
	if err := requireFile(in.VideoPath); err != nil {
		return nil, nil, err
	}

	timestamp, err := timeutil.ParseTimestamp(in.Timestamp)
	if err != nil {
		return nil, nil, invalidArgumentf("timestamp: %v", err)
	}

	outputPath := derivedPath(in.VideoPath, "_frame", in.OutputFormat)
	if err := h.engine.ExtractFrame(ctx, in.VideoPath, outputPath, timestamp); err != nil {
		return nil, nil, processingFailedf("extract frame: %v", err)
	}

	h.logger.Info("frame extracted",
		slog.String("input", in.VideoPath),
		slog.String("output", outputPath),
		slog.Float64("timestamp_sec", timestamp),
	)

	return textResult(fmt.Sprintf("Frame extracted successfully: %s", outputPath)), nil, nil
}

// SegmentAudio handles the segment_audio tool. Segments are extracted
// strictly sequentially; a failure on segment k aborts the job, leaving
// earlier segment files on disk and writing no metadata file.
func (h *Handlers) SegmentAudio(ctx context.Context, req *mcp.CallToolRequest, in SegmentAudioRequest) (*mcp.CallToolResult, any, error) {
	in.applyDefaults()
	if err := h.validate.Struct(in); err != nil {
		return nil, nil, invalidArgumentf("invalid arguments: %v", err)
	}
	if err := requireFile(in.AudioPath); err != nil {
		return nil, nil, err
	}

	overlap := *in.OverlapDuration
	if overlap >= in.SegmentDuration {
		h.logger.Warn("overlap duration is at least the segment duration, windows will overlap heavily",
			slog.Float64("segment_duration", in.SegmentDuration),
			slog.Float64("overlap_duration", overlap),
		)
	}

	if err := os.MkdirAll(in.OutputDirectory, 0750); err != nil {
		return nil, nil, processingFailedf("create output directory: %v", err)
	}

	totalDuration, err := h.engine.Duration(ctx, in.AudioPath)
	if err != nil {
		return nil, nil, processingFailedf("probe audio duration: %v", err)
	}
	if totalDuration <= 0 {
		return nil, nil, processingFailedf("audio reports non-positive duration %.3f, nothing to segment", totalDuration)
	}

	plan := segment.Plan(totalDuration, in.SegmentDuration, overlap)

	paths := make([]string, 0, len(plan))
	for i := range plan {
		index := fmt.Sprintf("%03d", i+1)
		name := strings.ReplaceAll(in.NamingPattern, numberPlaceholder, index) + "." + in.OutputFormat
		outputPath := filepath.Join(in.OutputDirectory, name)

		seg := &plan[i]
		window := seg.OverlapEnd - seg.OverlapStart
		if err := h.engine.ExtractSegment(ctx, in.AudioPath, outputPath, seg.OverlapStart, window); err != nil {
			return nil, nil, processingFailedf("extract segment %d of %d: %v", i+1, len(plan), err)
		}
		seg.Filename = name
		paths = append(paths, outputPath)
	}

	meta := &segment.Metadata{
		OriginalFile:    in.AudioPath,
		SegmentDuration: in.SegmentDuration,
		OverlapDuration: overlap,
		TotalDuration:   totalDuration,
		SegmentCount:    len(plan),
		Segments:        plan,
	}
	metadataPath, err := meta.WriteFile(in.OutputDirectory)
	if err != nil {
		return nil, nil, processingFailedf("write metadata: %v", err)
	}

	summary := fmt.Sprintf("Audio segmented into %d segments in %s (metadata: %s)",
		len(plan), in.OutputDirectory, metadataPath)

	if h.archiver.Enabled() {
		urls, err := h.archiver.Archive(ctx, filepath.Base(in.OutputDirectory), append(paths, metadataPath))
		if err != nil {
			return nil, nil, processingFailedf("archive segments: %v", err)
		}
		summary += fmt.Sprintf("; %d files archived to S3", len(urls))
	}

	h.logger.Info("audio segmented",
		slog.String("input", in.AudioPath),
		slog.String("output_directory", in.OutputDirectory),
		slog.Int("segment_count", len(plan)),
		slog.Float64("total_duration_sec", totalDuration),
	)

	return textResult(summary), nil, nil
}

// requireFile classifies a missing input file as a not-found tool error.
func requireFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return notFoundf("file does not exist: %s", path)
		}
		return processingFailedf("stat %s: %v", path, err)
	}
	return nil
}

// derivedPath builds an output path alongside the input file: the input's
// stem plus a suffix, with the requested format as extension.
func derivedPath(inputPath, suffix, format string) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(inputPath), stem+suffix+"."+format)
}

func textResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
	}
}
