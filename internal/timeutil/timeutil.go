// Package timeutil converts between colon-delimited timestamps and second offsets.
package timeutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedTimestamp is returned when a timestamp is not in HH:MM:SS form.
var ErrMalformedTimestamp = errors.New("malformed timestamp, expected HH:MM:SS")

// ParseTimestamp converts a colon-delimited "HH:MM:SS" timestamp into seconds.
// Fractional seconds are accepted ("00:01:23.500"), matching ffmpeg's notation.
// Malformed input (wrong number of parts, non-numeric or negative components)
// is rejected.
func ParseTimestamp(ts string) (float64, error) {
	parts := strings.Split(ts, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTimestamp, ts)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTimestamp, ts)
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTimestamp, ts)
	}

	seconds, err := strconv.ParseFloat(parts[2], 64)
	if err != nil || seconds < 0 || seconds >= 60 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTimestamp, ts)
	}

	return float64(hours)*3600 + float64(minutes)*60 + seconds, nil
}

// Difference returns the elapsed seconds between two timestamps.
// The result is negative when end is chronologically before start; callers
// that need a positive duration must reject non-positive results.
func Difference(start, end string) (float64, error) {
	startSec, err := ParseTimestamp(start)
	if err != nil {
		return 0, fmt.Errorf("start time: %w", err)
	}
	endSec, err := ParseTimestamp(end)
	if err != nil {
		return 0, fmt.Errorf("end time: %w", err)
	}
	return endSec - startSec, nil
}
