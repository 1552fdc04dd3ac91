/*
Copyright © 2025 Jetstream Contributors
SPDX-License-Identifier: Apache-2.0
*/
package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// CloudFormationClient defines the subset of the CloudFormation service client
// the test harness uses. Narrow on purpose, so tests can substitute mocks.
type CloudFormationClient interface {
	CreateStack(ctx context.Context, params *cloudformation.CreateStackInput, optFns ...func(*cloudformation.Options)) (*cloudformation.CreateStackOutput, error)
	DeleteStack(ctx context.Context, params *cloudformation.DeleteStackInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DeleteStackOutput, error)
	DescribeStacks(ctx context.Context, params *cloudformation.DescribeStacksInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStacksOutput, error)
	DescribeStackEvents(ctx context.Context, params *cloudformation.DescribeStackEventsInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStackEventsOutput, error)
	ValidateTemplate(ctx context.Context, params *cloudformation.ValidateTemplateInput, optFns ...func(*cloudformation.Options)) (*cloudformation.ValidateTemplateOutput, error)
}

// S3Client defines the subset of the S3 service client used for artifact
// storage during a test run.
type S3Client interface {
	CreateBucket(ctx context.Context, params *s3.CreateBucketInput, optFns ...func(*s3.Options)) (*s3.CreateBucketOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	DeleteObjects(ctx context.Context, params *s3.DeleteObjectsInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error)
	DeleteBucket(ctx context.Context, params *s3.DeleteBucketInput, optFns ...func(*s3.Options)) (*s3.DeleteBucketOutput, error)
}

// Ensure the real service clients satisfy our interfaces
var (
	_ CloudFormationClient = (*cloudformation.Client)(nil)
	_ S3Client             = (*s3.Client)(nil)

	_ CloudFormationOperations = (*DefaultCloudFormationOperations)(nil)
	_ S3Operations             = (*DefaultS3Operations)(nil)
)

// CloudFormationOperations defines the stack-level operations the harness
// performs against CloudFormation.
type CloudFormationOperations interface {
	CreateStack(ctx context.Context, input CreateStackInput) error
	DeleteStack(ctx context.Context, stackName string) error
	DescribeStack(ctx context.Context, stackName string) (*StackDescription, error)
	DescribeStackEvents(ctx context.Context, stackName string) ([]StackEvent, error)
	ValidateTemplate(ctx context.Context, templateBody string) error
}

// S3Operations defines the bucket-level operations the harness performs
// against S3.
type S3Operations interface {
	CreateBucket(ctx context.Context, bucket string) error
	PutObject(ctx context.Context, bucket, key string, body []byte) error
	ListObjectKeys(ctx context.Context, bucket string) ([]string, error)
	DeleteObjects(ctx context.Context, bucket string, keys []string) error
	DeleteBucket(ctx context.Context, bucket string) error
}
