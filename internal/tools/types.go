// Package tools declares the callable MCP tools, validates incoming calls
// against their schemas and routes them to the media engine.
package tools

// Defaults applied to optional tool arguments. These values are part of the
// tool catalog contract and must not change between releases.
const (
	DefaultTrimFormat      = "mp4"
	DefaultFrameFormat     = "png"
	DefaultSegmentFormat   = "wav"
	DefaultOverlapDuration = 2.0
	DefaultNamingPattern   = "segment_{number}"

	// numberPlaceholder is substituted with the zero-padded segment index.
	numberPlaceholder = "{number}"
)

// TrimVideoRequest is the argument set for the trim_video tool.
type TrimVideoRequest struct {
	VideoPath    string `json:"video_path" jsonschema:"absolute path to the video file to trim" validate:"required"`
	StartTime    string `json:"start_time" jsonschema:"trim start as HH:MM:SS" validate:"required"`
	EndTime      string `json:"end_time" jsonschema:"trim end as HH:MM:SS, must be after start_time" validate:"required"`
	OutputFormat string `json:"output_format,omitempty" jsonschema:"container format of the output file, defaults to mp4" validate:"omitempty,alphanum"`
}

func (r *TrimVideoRequest) applyDefaults() {
	if r.OutputFormat == "" {
		r.OutputFormat = DefaultTrimFormat
	}
}

// ExtractFrameRequest is the argument set for the extract_frame tool.
type ExtractFrameRequest struct {
	VideoPath    string `json:"video_path" jsonschema:"absolute path to the video file" validate:"required"`
	Timestamp    string `json:"timestamp" jsonschema:"frame position as HH:MM:SS" validate:"required"`
	OutputFormat string `json:"output_format,omitempty" jsonschema:"image format of the output file, defaults to png" validate:"omitempty,alphanum"`
}

func (r *ExtractFrameRequest) applyDefaults() {
	if r.OutputFormat == "" {
		r.OutputFormat = DefaultFrameFormat
	}
}

// SegmentAudioRequest is the argument set for the segment_audio tool.
type SegmentAudioRequest struct {
	AudioPath       string   `json:"audio_path" jsonschema:"absolute path to the audio file to segment" validate:"required"`
	SegmentDuration float64  `json:"segment_duration" jsonschema:"core segment length in seconds" validate:"required,gt=0"`
	OverlapDuration *float64 `json:"overlap_duration,omitempty" jsonschema:"seconds of context appended to both ends of each segment, defaults to 2" validate:"omitempty,gte=0"`
	OutputFormat    string   `json:"output_format,omitempty" jsonschema:"audio format of the segment files, defaults to wav" validate:"omitempty,alphanum"`
	OutputDirectory string   `json:"output_directory" jsonschema:"directory for segment files, created if absent" validate:"required"`
	NamingPattern   string   `json:"naming_pattern,omitempty" jsonschema:"segment filename pattern with a {number} placeholder, defaults to segment_{number}" validate:"omitempty,contains={number}"`
}

func (r *SegmentAudioRequest) applyDefaults() {
	if r.OverlapDuration == nil {
		overlap := DefaultOverlapDuration
		r.OverlapDuration = &overlap
	}
	if r.OutputFormat == "" {
		r.OutputFormat = DefaultSegmentFormat
	}
	if r.NamingPattern == "" {
		r.NamingPattern = DefaultNamingPattern
	}
}
