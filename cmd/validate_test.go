/*
Copyright © 2025 Jetstream Contributors
SPDX-License-Identifier: Apache-2.0
*/
package cmd

import (
	"errors"
	"testing"

	"github.com/rackerlabs/jetstream/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestValidateCommand_Exists(t *testing.T) {
	validateCommand := findCommand(rootCmd, "validate")

	assert.NotNil(t, validateCommand, "validate command should be registered")
	assert.Equal(t, "validate [template-name]", validateCommand.Use)
}

func TestValidateCommand_RejectsExtraArgs(t *testing.T) {
	validateCommand := findCommand(rootCmd, "validate")
	require.NotNil(t, validateCommand)

	err := validateCommand.Args(validateCommand, []string{"vpc", "app"})
	assert.Error(t, err, "validate command should accept at most one argument")
}

func TestValidateCommand_ValidateSingleTemplate(t *testing.T) {
	mockValidator := &validate.MockValidator{}
	mockValidator.On("ValidateTemplate", mock.Anything, "vpc").Return(nil)

	oldValidator := validator
	SetValidator(mockValidator)
	defer SetValidator(oldValidator)

	rootCmd.SetArgs([]string{"validate", "vpc"})
	err := rootCmd.Execute()

	require.NoError(t, err)
	mockValidator.AssertExpectations(t)
}

func TestValidateCommand_ValidateAllTemplates(t *testing.T) {
	mockValidator := &validate.MockValidator{}
	mockValidator.On("ValidateAll", mock.Anything).Return(nil)

	oldValidator := validator
	SetValidator(mockValidator)
	defer SetValidator(oldValidator)

	rootCmd.SetArgs([]string{"validate"})
	err := rootCmd.Execute()

	require.NoError(t, err)
	mockValidator.AssertExpectations(t)
}

func TestValidateCommand_ValidationFails(t *testing.T) {
	mockValidator := &validate.MockValidator{}
	mockValidator.On("ValidateTemplate", mock.Anything, "vpc").Return(errors.New("1 of 1 templates failed validation"))

	oldValidator := validator
	SetValidator(mockValidator)
	defer SetValidator(oldValidator)

	rootCmd.SetArgs([]string{"validate", "vpc"})
	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed validation")
	mockValidator.AssertExpectations(t)
}
