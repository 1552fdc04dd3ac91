/*
Copyright © 2025 Jetstream Contributors
SPDX-License-Identifier: Apache-2.0
*/
package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rackerlabs/jetstream/internal/aws"
	"github.com/rackerlabs/jetstream/internal/run"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func findCommand(parent *cobra.Command, name string) *cobra.Command {
	for _, cmd := range parent.Commands() {
		if cmd.Name() == name {
			return cmd
		}
	}
	return nil
}

// writeTestConfig writes a config file into a temp directory and returns its path
func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "jetstream.yaml")
	err := os.WriteFile(path, []byte(content), 0o644)
	require.NoError(t, err)
	return path
}

const testConfigContent = `
project: test-project
region: us-east-1

templates:
  vpc:
    path: templates/vpc.template
  app:
    path: templates/app.template
    depends_on:
      - vpc
`

// executeTest runs the test command against an injected runner and returns
// the command's combined output and error
func executeTest(t *testing.T, runner run.Runner, args ...string) (string, error) {
	t.Helper()

	oldRunner := testRunner
	SetTestRunner(runner)
	defer SetTestRunner(oldRunner)

	configPath := writeTestConfig(t, testConfigContent)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	defer rootCmd.SetOut(nil)
	defer rootCmd.SetErr(nil)

	cmdArgs := append([]string{"test", "-c", configPath}, args...)
	rootCmd.SetArgs(cmdArgs)
	err := rootCmd.Execute()
	return out.String(), err
}

// resetTestFlags restores the test command's local flags to their defaults
func resetTestFlags(t *testing.T) {
	t.Helper()
	require.NoError(t, testCmd.Flags().Set("yes", "false"))
	require.NoError(t, testCmd.Flags().Set("keep-on-failure", "false"))
}

func TestTestCommand_Exists(t *testing.T) {
	testCommand := findCommand(rootCmd, "test")

	assert.NotNil(t, testCommand, "test command should be registered")
	assert.Equal(t, "test [template-name...]", testCommand.Use)
}

func TestTestCommand_HasFlags(t *testing.T) {
	testCommand := findCommand(rootCmd, "test")
	require.NotNil(t, testCommand)

	assert.NotNil(t, testCommand.Flags().Lookup("yes"))
	assert.NotNil(t, testCommand.Flags().Lookup("keep-on-failure"))
}

func TestTestCommand_PassingRunCleansUp(t *testing.T) {
	defer resetTestFlags(t)

	mockRunner := &run.MockRunner{}
	mockRunner.On("Run", mock.Anything).Return(true, nil)
	mockRunner.On("Summary").Return(run.Summary{
		Bucket:      "jetstream-test-123-abcd1234",
		StackName:   "JetstreamTest123abcd1234",
		Passed:      true,
		FinalStatus: aws.StackStatusCreateComplete,
		Duration:    42 * time.Second,
	})
	mockRunner.On("Cleanup", mock.Anything).Return(nil)

	out, err := executeTest(t, mockRunner)

	require.NoError(t, err)
	assert.Contains(t, out, "PASS")
	assert.Contains(t, out, "JetstreamTest123abcd1234")
	mockRunner.AssertExpectations(t)
}

func TestTestCommand_FailedRunReturnsError(t *testing.T) {
	defer resetTestFlags(t)

	mockRunner := &run.MockRunner{}
	mockRunner.On("Run", mock.Anything).Return(false, nil)
	mockRunner.On("Summary").Return(run.Summary{
		Bucket:      "jetstream-test-123-abcd1234",
		StackName:   "JetstreamTest123abcd1234",
		FinalStatus: aws.StackStatusRollbackComplete,
	})
	mockRunner.On("Cleanup", mock.Anything).Return(nil)

	out, err := executeTest(t, mockRunner, "--yes")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "did not complete")
	assert.Contains(t, out, "FAIL")
	mockRunner.AssertExpectations(t)
}

func TestTestCommand_KeepOnFailureSkipsCleanup(t *testing.T) {
	defer resetTestFlags(t)

	mockRunner := &run.MockRunner{}
	mockRunner.On("Run", mock.Anything).Return(false, nil)
	mockRunner.On("Summary").Return(run.Summary{
		Bucket:      "jetstream-test-123-abcd1234",
		StackName:   "JetstreamTest123abcd1234",
		FinalStatus: aws.StackStatusRollbackComplete,
	})

	out, err := executeTest(t, mockRunner, "--keep-on-failure")

	require.Error(t, err)
	assert.Contains(t, out, "Keeping stack")
	mockRunner.AssertExpectations(t)
	mockRunner.AssertNotCalled(t, "Cleanup", mock.Anything)
}

func TestTestCommand_PromptDeclinedSkipsCleanup(t *testing.T) {
	defer resetTestFlags(t)

	mockRunner := &run.MockRunner{}
	mockRunner.On("Run", mock.Anything).Return(false, nil)
	mockRunner.On("Summary").Return(run.Summary{
		Bucket:      "jetstream-test-123-abcd1234",
		StackName:   "JetstreamTest123abcd1234",
		FinalStatus: aws.StackStatusRollbackComplete,
	})

	mockPrompter := &mockPrompter{confirm: false}
	oldPrompter := testPrompter
	SetTestPrompter(mockPrompter)
	defer SetTestPrompter(oldPrompter)

	out, err := executeTest(t, mockRunner)

	require.Error(t, err)
	assert.True(t, mockPrompter.called, "prompter should be consulted on failure")
	assert.Contains(t, out, "Keeping stack")
	mockRunner.AssertNotCalled(t, "Cleanup", mock.Anything)
}

func TestTestCommand_PromptAcceptedCleansUp(t *testing.T) {
	defer resetTestFlags(t)

	mockRunner := &run.MockRunner{}
	mockRunner.On("Run", mock.Anything).Return(false, nil)
	mockRunner.On("Summary").Return(run.Summary{
		Bucket:      "jetstream-test-123-abcd1234",
		StackName:   "JetstreamTest123abcd1234",
		FinalStatus: aws.StackStatusRollbackComplete,
	})
	mockRunner.On("Cleanup", mock.Anything).Return(nil)

	mockPrompter := &mockPrompter{confirm: true}
	oldPrompter := testPrompter
	SetTestPrompter(mockPrompter)
	defer SetTestPrompter(oldPrompter)

	_, err := executeTest(t, mockRunner)

	require.Error(t, err)
	mockRunner.AssertExpectations(t)
}

func TestTestCommand_RunErrorStillCleansUp(t *testing.T) {
	defer resetTestFlags(t)

	mockRunner := &run.MockRunner{}
	mockRunner.On("Run", mock.Anything).Return(false, errors.New("CreateBucket failed"))
	mockRunner.On("Summary").Return(run.Summary{
		Bucket:    "jetstream-test-123-abcd1234",
		StackName: "JetstreamTest123abcd1234",
	})
	mockRunner.On("Cleanup", mock.Anything).Return(nil)

	_, err := executeTest(t, mockRunner, "--yes")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "CreateBucket failed")
	mockRunner.AssertExpectations(t)
}

func TestTestCommand_UnknownTemplateName(t *testing.T) {
	defer resetTestFlags(t)

	mockRunner := &run.MockRunner{}

	_, err := executeTest(t, mockRunner, "missing")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "template missing not found in configuration")
	mockRunner.AssertNotCalled(t, "Run", mock.Anything)
}

// mockPrompter records whether it was consulted and returns a fixed answer
type mockPrompter struct {
	confirm bool
	called  bool
}

func (m *mockPrompter) ConfirmCleanup(stackName string) (bool, error) {
	m.called = true
	return m.confirm, nil
}
