/*
Copyright © 2025 Jetstream Contributors
SPDX-License-Identifier: Apache-2.0
*/
package cmd

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jetstream",
	Short: "Test CloudFormation template sets against a real AWS account",
	Long: `Jetstream deploys a set of CloudFormation templates as one ephemeral test
stack and reports whether it came up cleanly.

For each run, jetstream:

• Flattens the configured templates and their declared dependencies
• Publishes every template body to a fresh, uniquely named S3 bucket
• Generates a master template of nested stacks and creates it
• Polls the stack to a terminal status, reporting rollback diagnostics
• Tears down the stack, the bucket, and everything in it

Templates, their parameters, and their dependencies are declared in a YAML
configuration file (jetstream.yaml by default).`,
}

// RootCommand returns the root command for execution and doc generation
func RootCommand() *cobra.Command {
	return rootCmd
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "jetstream.yaml", "config file (default is jetstream.yaml)")
	rootCmd.PersistentFlags().StringP("region", "r", "", "AWS region (overrides config)")
	rootCmd.PersistentFlags().StringP("profile", "p", "", "AWS profile (overrides environment)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
}
