/*
Copyright © 2025 Jetstream Contributors
SPDX-License-Identifier: Apache-2.0
*/
package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/rackerlabs/jetstream/internal/aws"
	"github.com/rackerlabs/jetstream/internal/config"
	"github.com/rackerlabs/jetstream/internal/config/file"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// createProvider creates a configuration provider for the given config file
func createProvider(configFile string) config.ConfigProvider {
	return file.NewProvider(configFile)
}

// createAWSClient creates an AWS client from the command's global flags,
// falling back to the config file's region when the flag is unset
func createAWSClient(ctx context.Context, cmd *cobra.Command, cfg *config.Config) (aws.Client, error) {
	region, _ := cmd.Flags().GetString("region")
	if region == "" && cfg != nil {
		region = cfg.Region
	}
	profile, _ := cmd.Flags().GetString("profile")

	client, err := aws.NewDefaultClient(ctx, aws.Config{Region: region, Profile: profile})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS client: %w", err)
	}
	return client, nil
}

// newLogger builds a production logger at the level named by the
// command's --log-level flag
func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	level, _ := cmd.Flags().GetString("log-level")

	var zapLevel zapcore.Level
	switch strings.ToLower(level) {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info", "":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("unknown log level %q (expected debug, info, warn, or error)", level)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	return cfg.Build()
}
