/*
Copyright © 2025 Jetstream Contributors
SPDX-License-Identifier: Apache-2.0
*/
package aws

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
)

// StackStatus represents the status of a CloudFormation stack
type StackStatus string

const (
	StackStatusCreateInProgress   StackStatus = "CREATE_IN_PROGRESS"
	StackStatusCreateComplete     StackStatus = "CREATE_COMPLETE"
	StackStatusCreateFailed       StackStatus = "CREATE_FAILED"
	StackStatusDeleteInProgress   StackStatus = "DELETE_IN_PROGRESS"
	StackStatusDeleteComplete     StackStatus = "DELETE_COMPLETE"
	StackStatusDeleteFailed       StackStatus = "DELETE_FAILED"
	StackStatusRollbackInProgress StackStatus = "ROLLBACK_IN_PROGRESS"
	StackStatusRollbackComplete   StackStatus = "ROLLBACK_COMPLETE"
	StackStatusRollbackFailed     StackStatus = "ROLLBACK_FAILED"
)

// IsComplete reports whether the status string marks a terminal state. Note
// that ROLLBACK_COMPLETE is terminal too; completeness says nothing about
// success.
func (s StackStatus) IsComplete() bool {
	return strings.Contains(string(s), "COMPLETE")
}

// IsRollback reports whether the stack has entered any rollback state.
func (s StackStatus) IsRollback() bool {
	return strings.Contains(string(s), "ROLLBACK")
}

// IsRollbackFailed reports whether the rollback itself failed. The stack is
// stuck and will never reach a COMPLETE status without manual intervention.
func (s StackStatus) IsRollbackFailed() bool {
	return strings.Contains(string(s), "ROLLBACK_FAILED")
}

// StackDescription is the harness view of a described stack
type StackDescription struct {
	Name         string
	Status       StackStatus
	StatusReason string

	// Raw carries the full SDK stack record rendered as text, for
	// debug-level dumps during failure reporting.
	Raw string
}

// StackEvent represents a single CloudFormation stack event
type StackEvent struct {
	EventID              string
	LogicalResourceID    string
	ResourceStatus       string
	ResourceStatusReason string
	Timestamp            time.Time
}

// FailedResource reports whether the event records a failed resource
// transition.
func (e StackEvent) FailedResource() bool {
	return strings.Contains(e.ResourceStatus, "FAILED")
}

// CreateStackInput contains parameters for creating a stack from a published
// template
type CreateStackInput struct {
	StackName    string
	TemplateURL  string
	Capabilities []string
}

// DefaultCloudFormationOperations provides CloudFormation-specific operations
type DefaultCloudFormationOperations struct {
	client CloudFormationClient
}

// NewCloudFormationOperationsWithClient creates operations with a custom client (for testing)
func NewCloudFormationOperationsWithClient(client CloudFormationClient) *DefaultCloudFormationOperations {
	return &DefaultCloudFormationOperations{
		client: client,
	}
}

// CreateStack creates a new CloudFormation stack from a template URL
func (cf *DefaultCloudFormationOperations) CreateStack(ctx context.Context, input CreateStackInput) error {
	capabilities := make([]types.Capability, len(input.Capabilities))
	for i, capability := range input.Capabilities {
		capabilities[i] = types.Capability(capability)
	}

	_, err := cf.client.CreateStack(ctx, &cloudformation.CreateStackInput{
		StackName:    aws.String(input.StackName),
		TemplateURL:  aws.String(input.TemplateURL),
		Capabilities: capabilities,
	})

	if err != nil {
		return fmt.Errorf("failed to create stack %s: %w", input.StackName, err)
	}

	return nil
}

// DeleteStack deletes a CloudFormation stack by name
func (cf *DefaultCloudFormationOperations) DeleteStack(ctx context.Context, stackName string) error {
	_, err := cf.client.DeleteStack(ctx, &cloudformation.DeleteStackInput{
		StackName: aws.String(stackName),
	})

	if err != nil {
		return fmt.Errorf("failed to delete stack %s: %w", stackName, err)
	}

	return nil
}

// DescribeStack retrieves the current status of a stack
func (cf *DefaultCloudFormationOperations) DescribeStack(ctx context.Context, stackName string) (*StackDescription, error) {
	result, err := cf.client.DescribeStacks(ctx, &cloudformation.DescribeStacksInput{
		StackName: aws.String(stackName),
	})

	if err != nil {
		return nil, fmt.Errorf("failed to describe stack %s: %w", stackName, err)
	}

	if len(result.Stacks) == 0 {
		return nil, fmt.Errorf("stack %s not found", stackName)
	}

	cfnStack := result.Stacks[0]
	return &StackDescription{
		Name:         aws.ToString(cfnStack.StackName),
		Status:       StackStatus(cfnStack.StackStatus),
		StatusReason: aws.ToString(cfnStack.StackStatusReason),
		Raw:          fmt.Sprintf("%+v", cfnStack),
	}, nil
}

// DescribeStackEvents retrieves the event history for a stack, most recent
// first, as CloudFormation returns it
func (cf *DefaultCloudFormationOperations) DescribeStackEvents(ctx context.Context, stackName string) ([]StackEvent, error) {
	result, err := cf.client.DescribeStackEvents(ctx, &cloudformation.DescribeStackEventsInput{
		StackName: aws.String(stackName),
	})

	if err != nil {
		return nil, fmt.Errorf("failed to describe events for stack %s: %w", stackName, err)
	}

	events := make([]StackEvent, 0, len(result.StackEvents))
	for _, event := range result.StackEvents {
		converted := StackEvent{
			EventID:              aws.ToString(event.EventId),
			LogicalResourceID:    aws.ToString(event.LogicalResourceId),
			ResourceStatus:       string(event.ResourceStatus),
			ResourceStatusReason: aws.ToString(event.ResourceStatusReason),
		}
		if event.Timestamp != nil {
			converted.Timestamp = *event.Timestamp
		}
		events = append(events, converted)
	}

	return events, nil
}

// ValidateTemplate validates a CloudFormation template body
func (cf *DefaultCloudFormationOperations) ValidateTemplate(ctx context.Context, templateBody string) error {
	_, err := cf.client.ValidateTemplate(ctx, &cloudformation.ValidateTemplateInput{
		TemplateBody: aws.String(templateBody),
	})

	if err != nil {
		return fmt.Errorf("template validation failed: %w", err)
	}

	return nil
}
