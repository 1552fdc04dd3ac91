/*
Copyright © 2025 Jetstream Contributors
SPDX-License-Identifier: Apache-2.0
*/
package aws

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// DefaultS3Operations provides S3-specific operations
type DefaultS3Operations struct {
	client S3Client
}

// NewS3OperationsWithClient creates operations with a custom client (for testing)
func NewS3OperationsWithClient(client S3Client) *DefaultS3Operations {
	return &DefaultS3Operations{
		client: client,
	}
}

// CreateBucket creates an S3 bucket
func (ops *DefaultS3Operations) CreateBucket(ctx context.Context, bucket string) error {
	_, err := ops.client.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(bucket),
	})

	if err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
	}

	return nil
}

// PutObject uploads an object body under the given key
func (ops *DefaultS3Operations) PutObject(ctx context.Context, bucket, key string, body []byte) error {
	_, err := ops.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(body),
	})

	if err != nil {
		return fmt.Errorf("failed to put object %s/%s: %w", bucket, key, err)
	}

	return nil
}

// ListObjectKeys returns the keys of every object in the bucket
func (ops *DefaultS3Operations) ListObjectKeys(ctx context.Context, bucket string) ([]string, error) {
	var keys []string
	paginator := s3.NewListObjectsV2Paginator(ops.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list objects in bucket %s: %w", bucket, err)
		}
		for _, object := range page.Contents {
			keys = append(keys, aws.ToString(object.Key))
		}
	}

	return keys, nil
}

// DeleteObjects removes the given keys in a single batch call. An empty key
// list still issues the call with an empty object list.
func (ops *DefaultS3Operations) DeleteObjects(ctx context.Context, bucket string, keys []string) error {
	objects := make([]types.ObjectIdentifier, len(keys))
	for i, key := range keys {
		objects[i] = types.ObjectIdentifier{Key: aws.String(key)}
	}

	_, err := ops.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: aws.String(bucket),
		Delete: &types.Delete{
			Objects: objects,
			Quiet:   aws.Bool(true),
		},
	})

	if err != nil {
		return fmt.Errorf("failed to delete objects from bucket %s: %w", bucket, err)
	}

	return nil
}

// DeleteBucket removes an empty bucket
func (ops *DefaultS3Operations) DeleteBucket(ctx context.Context, bucket string) error {
	_, err := ops.client.DeleteBucket(ctx, &s3.DeleteBucketInput{
		Bucket: aws.String(bucket),
	})

	if err != nil {
		return fmt.Errorf("failed to delete bucket %s: %w", bucket, err)
	}

	return nil
}
