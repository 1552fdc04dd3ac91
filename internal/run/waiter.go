/*
Copyright © 2025 Jetstream Contributors
SPDX-License-Identifier: Apache-2.0
*/
package run

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// noReasonFound is logged when CloudFormation gives no status reason
const noReasonFound = "No reason found"

// wait polls the stack until it reaches a terminal status. It returns true
// when the stack completed without ever entering rollback. The failure report
// is captured exactly once, at the first rollback observation, while the
// event data is still fresh; polling then continues to a true terminal state
// so the final status lands in the summary.
func (r *StackTestRunner) wait(ctx context.Context, stackName string) (bool, error) {
	failed := false
	for {
		description, err := r.cfn.DescribeStack(ctx, stackName)
		if err != nil {
			return false, err
		}
		status := description.Status
		r.summary.FinalStatus = status
		r.logger.Info("stack status", zap.String("stack", stackName), zap.String("status", string(status)))

		if status.IsComplete() {
			break
		}

		if status.IsRollback() && !failed {
			failed = true
			r.reportFailure(ctx, stackName)
		}

		// a failed rollback never reaches COMPLETE
		if status.IsRollbackFailed() {
			r.logger.Error("stack rollback failed, fix manually", zap.String("stack", stackName))
			break
		}

		r.logger.Info("stack is not complete", zap.String("stack", stackName))
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-time.After(r.pollInterval):
		}
	}
	return !failed, nil
}

// reportFailure captures a diagnostic report for a stack that entered
// rollback. The capture is best-effort: its own failures are logged and
// swallowed so the poll loop keeps running.
func (r *StackTestRunner) reportFailure(ctx context.Context, stackName string) {
	description, err := r.cfn.DescribeStack(ctx, stackName)
	if err != nil {
		r.logger.Error("failed to capture stack failure report", zap.String("stack", stackName), zap.Error(err))
		return
	}

	reason := description.StatusReason
	if reason == "" {
		reason = noReasonFound
	}
	r.logger.Error("stack failure occurred",
		zap.String("stack", description.Name),
		zap.String("status", string(description.Status)),
		zap.String("reason", reason))
	r.logger.Debug("full stack description", zap.String("description", description.Raw))

	events, err := r.cfn.DescribeStackEvents(ctx, stackName)
	if err != nil {
		r.logger.Error("failed to fetch stack events", zap.String("stack", stackName), zap.Error(err))
		return
	}

	for _, event := range events {
		if event.FailedResource() {
			r.logger.Error("resource failure",
				zap.String("event_id", event.EventID),
				zap.String("resource", event.LogicalResourceID),
				zap.String("status", event.ResourceStatus),
				zap.String("reason", event.ResourceStatusReason))
		}
	}
}
