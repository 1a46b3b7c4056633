package storage

import "context"

// NoopArchiver is the Archiver used when no S3 configuration is provided.
// Segment outputs stay on local disk only.
type NoopArchiver struct{}

// NewNoopArchiver creates a new NoopArchiver.
func NewNoopArchiver() *NoopArchiver {
	return &NoopArchiver{}
}

// Enabled always returns false.
func (*NoopArchiver) Enabled() bool {
	return false
}

// Archive is not supported by NoopArchiver and returns ErrS3NotConfigured.
func (*NoopArchiver) Archive(_ context.Context, _ string, _ []string) ([]string, error) {
	return nil, ErrS3NotConfigured
}

// Compile-time check: NoopArchiver must implement Archiver.
var _ Archiver = (*NoopArchiver)(nil)
