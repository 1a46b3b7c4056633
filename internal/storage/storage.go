// Package storage provides optional archiving of finished segmentation jobs.
// It defines the Archiver interface (port) and implementations for a disabled
// local mode and S3 upload.
package storage

import (
	"context"
	"errors"
)

// ErrS3NotConfigured is returned when archive operations are attempted
// without S3 configuration.
var ErrS3NotConfigured = errors.New("S3 storage is not configured")

// Archiver uploads the output files of a completed job to durable storage.
// Segment jobs write locally first; archiving happens only after the whole
// job has succeeded.
type Archiver interface {
	// Enabled reports whether archiving is configured. When false, Archive
	// must not be called.
	Enabled() bool

	// Archive uploads the named files under the given key prefix and
	// returns the destination URLs in input order.
	Archive(ctx context.Context, prefix string, paths []string) ([]string, error)
}
