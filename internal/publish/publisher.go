/*
Copyright © 2025 Jetstream Contributors
SPDX-License-Identifier: Apache-2.0
*/
package publish

import (
	"context"
	"fmt"

	"github.com/rackerlabs/jetstream/internal/aws"
)

// Publisher pushes template artifacts into a durable store
type Publisher interface {
	// EnsureBucket creates the backing store container for this run
	EnsureBucket(ctx context.Context) error

	// PublishFile stores body under key
	PublishFile(ctx context.Context, key string, body []byte) error
}

// S3Publisher implements Publisher against an S3 bucket owned by the run
type S3Publisher struct {
	s3     aws.S3Operations
	bucket string
}

// NewS3Publisher creates a publisher writing into the named bucket
func NewS3Publisher(s3ops aws.S3Operations, bucket string) *S3Publisher {
	return &S3Publisher{
		s3:     s3ops,
		bucket: bucket,
	}
}

// EnsureBucket creates the run's bucket
func (p *S3Publisher) EnsureBucket(ctx context.Context) error {
	if err := p.s3.CreateBucket(ctx, p.bucket); err != nil {
		return fmt.Errorf("failed to ensure bucket: %w", err)
	}
	return nil
}

// PublishFile uploads body to the run's bucket under key
func (p *S3Publisher) PublishFile(ctx context.Context, key string, body []byte) error {
	if err := p.s3.PutObject(ctx, p.bucket, key, body); err != nil {
		return fmt.Errorf("failed to publish %s: %w", key, err)
	}
	return nil
}

// Bucket returns the bucket this publisher writes into
func (p *S3Publisher) Bucket() string {
	return p.bucket
}
