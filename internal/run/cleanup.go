/*
Copyright © 2025 Jetstream Contributors
SPDX-License-Identifier: Apache-2.0
*/
package run

import (
	"context"

	"go.uber.org/zap"
)

// Cleanup deletes the run's remote resources: every object in the bucket in
// one batch call, the bucket itself, then the stack. Deletion is not awaited
// and nothing is retried; the first collaborator error propagates.
func (r *StackTestRunner) Cleanup(ctx context.Context) error {
	r.logger.Info("cleaning up test resources",
		zap.String("bucket", r.ids.Bucket),
		zap.String("stack", r.ids.StackName))

	keys, err := r.s3.ListObjectKeys(ctx, r.ids.Bucket)
	if err != nil {
		return err
	}

	if err := r.s3.DeleteObjects(ctx, r.ids.Bucket, keys); err != nil {
		return err
	}

	if err := r.s3.DeleteBucket(ctx, r.ids.Bucket); err != nil {
		return err
	}

	return r.cfn.DeleteStack(ctx, r.ids.StackName)
}
