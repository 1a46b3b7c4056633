package segment

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// MetadataFilename is the fixed name of the sidecar record written to the
// output directory after a successful segmentation job.
const MetadataFilename = "segments_metadata.json"

// Metadata is the sidecar record describing a completed segmentation job.
type Metadata struct {
	OriginalFile    string    `json:"original_file"`
	SegmentDuration float64   `json:"segment_duration"`
	OverlapDuration float64   `json:"overlap_duration"`
	TotalDuration   float64   `json:"total_duration"`
	SegmentCount    int       `json:"segment_count"`
	Segments        []Segment `json:"segments"`
}

// WriteFile serializes the metadata to MetadataFilename inside dir and
// returns the path of the written file.
func (m *Metadata) WriteFile(dir string) (string, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal metadata: %w", err)
	}

	path := filepath.Join(dir, MetadataFilename)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("write metadata file: %w", err)
	}

	return path, nil
}
