/*
Copyright © 2025 Jetstream Contributors
SPDX-License-Identifier: Apache-2.0
*/

// Package run drives a single ephemeral test of a CloudFormation template
// set: flatten the dependency graph, publish every body plus a generated
// master template to a fresh bucket, create the master stack, poll it to a
// terminal status, and tear everything down.
package run

import (
	"context"
	"fmt"
	"time"

	"github.com/rackerlabs/jetstream/internal/aws"
	"github.com/rackerlabs/jetstream/internal/flatten"
	"github.com/rackerlabs/jetstream/internal/manifest"
	"github.com/rackerlabs/jetstream/internal/model"
	"github.com/rackerlabs/jetstream/internal/publish"
	"go.uber.org/zap"
)

// DefaultPollInterval is the delay between stack status polls
const DefaultPollInterval = 10 * time.Second

// Runner defines the interface for executing one test run
type Runner interface {
	// Run executes the test and blocks until the stack reaches a terminal
	// status. It returns true when the stack completed without entering
	// rollback. Collaborator failures abort the run with an error.
	Run(ctx context.Context) (bool, error)

	// Cleanup deletes every remote resource the run created: bucket
	// contents, the bucket itself, and the stack. Best-effort, no retry.
	Cleanup(ctx context.Context) error

	// Summary reports the run's identifiers and outcome
	Summary() Summary
}

// Summary describes a run's identifiers and, after Run returns, its outcome
type Summary struct {
	Bucket      string
	StackName   string
	Passed      bool
	FinalStatus aws.StackStatus
	Duration    time.Duration
}

// StackTestRunner implements Runner against CloudFormation and S3
type StackTestRunner struct {
	templates []model.Template

	flattener flatten.Flattener
	builder   *manifest.Builder
	publisher publish.Publisher
	cfn       aws.CloudFormationOperations
	s3        aws.S3Operations
	logger    *zap.Logger

	ids          Identifiers
	pollInterval time.Duration
	summary      Summary
}

// NewStackTestRunner creates a runner for one test of the given root
// templates. Run identifiers are generated here and never change.
func NewStackTestRunner(cfn aws.CloudFormationOperations, s3ops aws.S3Operations, templates []model.Template, logger *zap.Logger) *StackTestRunner {
	ids := NewIdentifiers(time.Now())
	return &StackTestRunner{
		templates:    templates,
		flattener:    flatten.NewDependencyFlattener(),
		builder:      manifest.NewBuilder(),
		publisher:    publish.NewS3Publisher(s3ops, ids.Bucket),
		cfn:          cfn,
		s3:           s3ops,
		logger:       logger,
		ids:          ids,
		pollInterval: DefaultPollInterval,
		summary:      Summary{Bucket: ids.Bucket, StackName: ids.StackName},
	}
}

// SetFlattener allows injection of a custom flattener (for testing)
func (r *StackTestRunner) SetFlattener(f flatten.Flattener) {
	r.flattener = f
}

// SetPublisher allows injection of a custom publisher (for testing)
func (r *StackTestRunner) SetPublisher(p publish.Publisher) {
	r.publisher = p
}

// SetPollInterval overrides the delay between status polls (for testing)
func (r *StackTestRunner) SetPollInterval(interval time.Duration) {
	r.pollInterval = interval
}

// SetIdentifiers overrides the generated run identifiers (for testing)
func (r *StackTestRunner) SetIdentifiers(ids Identifiers) {
	r.ids = ids
	r.summary.Bucket = ids.Bucket
	r.summary.StackName = ids.StackName
}

// Summary reports the run's identifiers and outcome
func (r *StackTestRunner) Summary() Summary {
	return r.summary
}

// Run executes the test: flatten, publish, create, wait
func (r *StackTestRunner) Run(ctx context.Context) (bool, error) {
	started := time.Now()

	flattened, err := r.flattener.Flatten(ctx, r.templates)
	if err != nil {
		return false, fmt.Errorf("failed to flatten templates: %w", err)
	}

	r.logger.Info("creating bucket", zap.String("bucket", r.ids.Bucket))
	if err := r.publisher.EnsureBucket(ctx); err != nil {
		return false, err
	}

	if err := r.publishTemplates(ctx, flattened); err != nil {
		return false, err
	}

	r.logger.Info("creating stack", zap.String("stack", r.ids.StackName))
	err = r.cfn.CreateStack(ctx, aws.CreateStackInput{
		StackName:    r.ids.StackName,
		TemplateURL:  fmt.Sprintf("%s/%s", r.ids.BucketURL, manifest.MasterKey),
		Capabilities: []string{"CAPABILITY_IAM"},
	})
	if err != nil {
		return false, err
	}

	passed, err := r.wait(ctx, r.ids.StackName)
	r.summary.Passed = passed
	r.summary.Duration = time.Since(started)
	return passed, err
}

// publishTemplates uploads the master manifest and every flattened template
// body, generated in test mode
func (r *StackTestRunner) publishTemplates(ctx context.Context, flattened []model.Template) error {
	master, err := r.builder.Build(flattened, r.ids.BucketURL)
	if err != nil {
		return err
	}

	r.logger.Info("uploading files", zap.Int("count", len(flattened)+1))
	if err := r.publisher.PublishFile(ctx, manifest.MasterKey, master); err != nil {
		return err
	}

	for _, templ := range flattened {
		r.logger.Info("uploading file", zap.String("template", templ.Name()))
		body, err := templ.Generate(ctx, true)
		if err != nil {
			return fmt.Errorf("failed to generate template %s: %w", templ.Name(), err)
		}
		if err := r.publisher.PublishFile(ctx, templ.Name(), body); err != nil {
			return err
		}
	}
	return nil
}
