/*
Copyright © 2025 Jetstream Contributors
SPDX-License-Identifier: Apache-2.0
*/
package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Structure(t *testing.T) {
	// Test basic command properties
	assert.Equal(t, "jetstream", rootCmd.Use)
	assert.Equal(t, "Test CloudFormation template sets against a real AWS account", rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)

	// Test that the long description contains expected content
	assert.Contains(t, rootCmd.Long, "ephemeral test")
	assert.Contains(t, rootCmd.Long, "Flattens the configured templates")
	assert.Contains(t, rootCmd.Long, "master template of nested stacks")
	assert.Contains(t, rootCmd.Long, "Tears down the stack")
}

func TestRootCmd_GlobalFlags(t *testing.T) {
	// Test that all expected global flags are present
	flags := rootCmd.PersistentFlags()

	configFlag := flags.Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "jetstream.yaml", configFlag.DefValue)
	assert.Equal(t, "c", configFlag.Shorthand)

	regionFlag := flags.Lookup("region")
	require.NotNil(t, regionFlag)
	assert.Equal(t, "r", regionFlag.Shorthand)

	profileFlag := flags.Lookup("profile")
	require.NotNil(t, profileFlag)
	assert.Equal(t, "p", profileFlag.Shorthand)

	logLevelFlag := flags.Lookup("log-level")
	require.NotNil(t, logLevelFlag)
	assert.Equal(t, "info", logLevelFlag.DefValue)
}

func TestRootCmd_Help(t *testing.T) {
	// Test that help output contains expected content
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	defer rootCmd.SetOut(nil)
	rootCmd.SetArgs([]string{"--help"})

	err := rootCmd.Execute()

	assert.NoError(t, err)

	helpOutput := buf.String()

	assert.Contains(t, helpOutput, "jetstream")
	assert.Contains(t, helpOutput, "Flags:")
	assert.Contains(t, helpOutput, "--config")
	assert.Contains(t, helpOutput, "--log-level")

	// Check for subcommands
	assert.Contains(t, helpOutput, "Available Commands:")
	assert.Contains(t, helpOutput, "test")
	assert.Contains(t, helpOutput, "validate")
	assert.Contains(t, helpOutput, "version")
}

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		level   string
		wantErr bool
	}{
		{level: "debug"},
		{level: "info"},
		{level: "warn"},
		{level: "warning"},
		{level: "error"},
		{level: "DEBUG"},
		{level: "trace", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			require.NoError(t, rootCmd.PersistentFlags().Set("log-level", tt.level))
			defer func() {
				require.NoError(t, rootCmd.PersistentFlags().Set("log-level", "info"))
			}()

			logger, err := newLogger(rootCmd)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown log level")
				return
			}
			require.NoError(t, err)
			require.NotNil(t, logger)
		})
	}
}
