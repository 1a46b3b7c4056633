package segment

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadata_WriteFile(t *testing.T) {
	dir := t.TempDir()

	segments := Plan(65, 30, 5)
	for i := range segments {
		segments[i].Filename = "segment_00" + string(rune('1'+i)) + ".wav"
	}

	meta := &Metadata{
		OriginalFile:    "/audio/input.wav",
		SegmentDuration: 30,
		OverlapDuration: 5,
		TotalDuration:   65,
		SegmentCount:    len(segments),
		Segments:        segments,
	}

	path, err := meta.WriteFile(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, MetadataFilename), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "/audio/input.wav", decoded["original_file"])
	assert.Equal(t, float64(30), decoded["segment_duration"])
	assert.Equal(t, float64(5), decoded["overlap_duration"])
	assert.Equal(t, float64(65), decoded["total_duration"])
	assert.Equal(t, float64(3), decoded["segment_count"])

	rawSegments, ok := decoded["segments"].([]any)
	require.True(t, ok, "segments must be a list")
	require.Len(t, rawSegments, 3)

	first, ok := rawSegments[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "segment_001.wav", first["filename"])
	assert.Equal(t, float64(0), first["start"])
	assert.Equal(t, float64(30), first["end"])
	assert.Equal(t, float64(0), first["overlap_start"])
	assert.Equal(t, float64(35), first["overlap_end"])
}

func TestMetadata_WriteFile_MissingDirectory(t *testing.T) {
	meta := &Metadata{OriginalFile: "x.wav"}
	_, err := meta.WriteFile(filepath.Join(t.TempDir(), "does", "not", "exist"))
	require.Error(t, err)
}
