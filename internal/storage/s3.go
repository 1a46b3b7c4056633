package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config holds the configuration for S3 archiving.
type S3Config struct {
	Bucket          string
	Region          string
	Endpoint        string // Optional: for custom S3-compatible endpoints
	AccessKeyID     string // Optional: AWS access key ID
	SecretAccessKey string // Optional: AWS secret access key
}

// S3Archiver implements Archiver by uploading job outputs to an S3 bucket.
type S3Archiver struct {
	client *s3.Client
	bucket string
	region string
}

// NewS3Archiver creates a new S3Archiver from the given configuration.
func NewS3Archiver(cfg S3Config) (*S3Archiver, error) {
	var configOpts []func(*config.LoadOptions) error
	configOpts = append(configOpts, config.WithRegion(cfg.Region))

	// Use static credentials if provided
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		configOpts = append(configOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(context.Background(), configOpts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	var clientOpts []func(*s3.Options)
	if cfg.Endpoint != "" {
		clientOpts = append(clientOpts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		})
	}

	return &S3Archiver{
		client: s3.NewFromConfig(awsCfg, clientOpts...),
		bucket: cfg.Bucket,
		region: cfg.Region,
	}, nil
}

// Enabled always returns true.
func (*S3Archiver) Enabled() bool {
	return true
}

// Archive uploads each file to the bucket under prefix/<basename> and
// returns the destination URLs in input order. The first failed upload
// aborts the remainder.
func (a *S3Archiver) Archive(ctx context.Context, prefix string, paths []string) ([]string, error) {
	urls := make([]string, 0, len(paths))

	for _, p := range paths {
		key := path.Join(prefix, filepath.Base(p))

		f, err := os.Open(p) // #nosec G304 - path is provided by trusted caller
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", p, err)
		}

		_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket: aws.String(a.bucket),
			Key:    aws.String(key),
			Body:   f,
		})
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("upload %s to S3: %w", key, err)
		}

		urls = append(urls, fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", a.bucket, a.region, key))
	}

	return urls, nil
}

// Compile-time check: S3Archiver must implement Archiver.
var _ Archiver = (*S3Archiver)(nil)
