// Package segment plans how an audio duration is partitioned into
// overlapping extraction windows and records the result as job metadata.
package segment

// Segment describes one planned slice of the input duration.
//
// Start and End bound the core slice. OverlapStart and OverlapEnd bound the
// window actually extracted: the core slice extended by the overlap duration
// on both sides, clamped to the input duration. Filename is assigned by the
// caller when the segment is materialized.
type Segment struct {
	Filename     string  `json:"filename"`
	Start        float64 `json:"start"`
	End          float64 `json:"end"`
	OverlapStart float64 `json:"overlap_start"`
	OverlapEnd   float64 `json:"overlap_end"`
}

// Plan partitions totalDuration into contiguous segments of at most
// segmentDuration seconds, each carrying overlap bounds extended by
// overlapDuration and clamped to [0, totalDuration].
//
// Core segments are contiguous and non-overlapping: segment i+1 starts where
// segment i ends, the first starts at 0 and the last ends at totalDuration.
// The count is ceil(totalDuration / segmentDuration); the final segment may
// be shorter than segmentDuration.
//
// A non-positive totalDuration or segmentDuration yields an empty plan;
// callers validate both before planning. overlapDuration at or above
// segmentDuration is permitted and produces heavily overlapping windows.
func Plan(totalDuration, segmentDuration, overlapDuration float64) []Segment {
	if totalDuration <= 0 || segmentDuration <= 0 {
		return nil
	}

	var segments []Segment
	for cursor := 0.0; cursor < totalDuration; {
		end := cursor + segmentDuration
		if end > totalDuration {
			end = totalDuration
		}

		overlapStart := cursor - overlapDuration
		if overlapStart < 0 {
			overlapStart = 0
		}
		overlapEnd := end + overlapDuration
		if overlapEnd > totalDuration {
			overlapEnd = totalDuration
		}

		segments = append(segments, Segment{
			Start:        cursor,
			End:          end,
			OverlapStart: overlapStart,
			OverlapEnd:   overlapEnd,
		})
		cursor = end
	}

	return segments
}
