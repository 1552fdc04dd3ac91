/*
Copyright © 2025 Jetstream Contributors
SPDX-License-Identifier: Apache-2.0
*/
package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Client provides access to the AWS operations a test run needs
type Client interface {
	NewCloudFormationOperations() CloudFormationOperations
	NewS3Operations() S3Operations
}

// DefaultClient provides a high-level interface for AWS operations
type DefaultClient struct {
	config aws.Config
	cfn    *cloudformation.Client
	s3     *s3.Client
}

// Config holds configuration for creating an AWS client
type Config struct {
	Region  string
	Profile string
}

// NewDefaultClient creates a new AWS client with the specified configuration
func NewDefaultClient(ctx context.Context, cfg Config) (*DefaultClient, error) {
	var opts []func(*config.LoadOptions) error

	if cfg.Region != "" {
		opts = append(opts, config.WithRegion(cfg.Region))
	}

	if cfg.Profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(cfg.Profile))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return &DefaultClient{
		config: awsCfg,
		cfn:    cloudformation.NewFromConfig(awsCfg),
		s3:     s3.NewFromConfig(awsCfg),
	}, nil
}

// NewCloudFormationOperations creates a CloudFormation operations wrapper
func (c *DefaultClient) NewCloudFormationOperations() CloudFormationOperations {
	return NewCloudFormationOperationsWithClient(c.cfn)
}

// NewS3Operations creates an S3 operations wrapper
func (c *DefaultClient) NewS3Operations() S3Operations {
	return NewS3OperationsWithClient(c.s3)
}

// Region returns the configured AWS region
func (c *DefaultClient) Region() string {
	return c.config.Region
}
