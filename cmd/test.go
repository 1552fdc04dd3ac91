/*
Copyright © 2025 Jetstream Contributors
SPDX-License-Identifier: Apache-2.0
*/
package cmd

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rackerlabs/jetstream/internal/config"
	"github.com/rackerlabs/jetstream/internal/model"
	"github.com/rackerlabs/jetstream/internal/prompt"
	"github.com/rackerlabs/jetstream/internal/run"
	"github.com/rackerlabs/jetstream/internal/template"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// testRunner allows injection of a Runner for testing. When nil a real
// StackTestRunner is constructed against live AWS clients.
var testRunner run.Runner

// testPrompter handles the keep-stack confirmation on failed runs
var testPrompter prompt.Prompter = prompt.NewStdinPrompter()

// SetTestRunner allows injection of a Runner for testing
func SetTestRunner(r run.Runner) {
	testRunner = r
}

// SetTestPrompter allows injection of a Prompter for testing
func SetTestPrompter(p prompt.Prompter) {
	testPrompter = p
}

var testCmd = &cobra.Command{
	Use:   "test [template-name...]",
	Short: "Run an ephemeral stack test of the configured templates",
	Long: `Run an ephemeral stack test of the configured templates.

The named templates (or every template in the configuration when none are
named) are flattened together with their dependencies, uploaded to a fresh
S3 bucket alongside a generated master template, and created as a single
CloudFormation stack of nested stacks. The command waits for the stack to
reach a terminal status, reports the result, and deletes everything it
created.

Examples:
  jetstream test                  # test every configured template
  jetstream test vpc app          # test vpc and app plus their dependencies`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTest(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(testCmd)
	testCmd.Flags().Bool("yes", false, "Clean up without prompting when the test fails")
	testCmd.Flags().Bool("keep-on-failure", false, "Keep the stack and bucket when the test fails")
}

func runTest(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	configFile, _ := cmd.Flags().GetString("config")
	provider := createProvider(configFile)
	cfg, err := provider.LoadConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	roots, err := selectRoots(cfg, args)
	if err != nil {
		return err
	}

	runner := testRunner
	if runner == nil {
		client, err := createAWSClient(ctx, cmd, cfg)
		if err != nil {
			return err
		}
		runner = run.NewStackTestRunner(client.NewCloudFormationOperations(), client.NewS3Operations(), roots, logger)
	}

	passed, runErr := runner.Run(ctx)
	summary := runner.Summary()
	printSummary(cmd, summary, runErr)

	if shouldCleanup(cmd, passed && runErr == nil, summary) {
		logger.Info("cleaning up",
			zap.String("bucket", summary.Bucket),
			zap.String("stack", summary.StackName))
		if err := runner.Cleanup(ctx); err != nil {
			logger.Error("cleanup failed", zap.Error(err))
			if runErr == nil {
				runErr = err
			}
		}
	}

	if runErr != nil {
		return fmt.Errorf("test run failed: %w", runErr)
	}
	if !passed {
		return fmt.Errorf("stack %s did not complete: %s", summary.StackName, summary.FinalStatus)
	}
	return nil
}

// selectRoots resolves the named templates against the configuration,
// defaulting to every configured template when none are named. Dependencies
// do not need to be named; the runner discovers them.
func selectRoots(cfg *config.Config, names []string) ([]model.Template, error) {
	templates, err := template.FromConfig(cfg)
	if err != nil {
		return nil, err
	}

	if len(names) == 0 {
		all := make([]model.Template, 0, len(templates))
		for _, templ := range templates {
			all = append(all, templ)
		}
		sort.Slice(all, func(i, j int) bool { return all[i].Name() < all[j].Name() })
		return all, nil
	}

	roots := make([]model.Template, 0, len(names))
	for _, name := range names {
		templ, ok := templates[name]
		if !ok {
			return nil, fmt.Errorf("template %s not found in configuration", name)
		}
		roots = append(roots, templ)
	}
	return roots, nil
}

// shouldCleanup decides whether the run's resources are deleted. Passing
// runs always clean up; failed runs honour --keep-on-failure, then --yes,
// then ask.
func shouldCleanup(cmd *cobra.Command, passed bool, summary run.Summary) bool {
	if passed {
		return true
	}

	keep, _ := cmd.Flags().GetBool("keep-on-failure")
	if keep {
		cmd.Printf("Keeping stack %s and bucket %s for inspection\n", summary.StackName, summary.Bucket)
		return false
	}

	yes, _ := cmd.Flags().GetBool("yes")
	if yes {
		return true
	}

	confirmed, err := testPrompter.ConfirmCleanup(summary.StackName)
	if err != nil {
		cmd.PrintErrf("Failed to read confirmation, keeping stack %s\n", summary.StackName)
		return false
	}
	if !confirmed {
		cmd.Printf("Keeping stack %s and bucket %s for inspection\n", summary.StackName, summary.Bucket)
	}
	return confirmed
}

func printSummary(cmd *cobra.Command, summary run.Summary, runErr error) {
	styles := NewStyles(true)

	verdict := styles.Pass.Render("PASS")
	if runErr != nil || !summary.Passed {
		verdict = styles.Fail.Render("FAIL")
	}

	cmd.Printf("\n%s  %s\n", verdict, styles.Value.Render(summary.StackName))
	if summary.FinalStatus != "" {
		cmd.Printf("%s %s\n", styles.Label.Render("Status:"), summary.FinalStatus)
	}
	cmd.Printf("%s %s\n", styles.Label.Render("Bucket:"), summary.Bucket)
	if summary.Duration > 0 {
		cmd.Printf("%s %s\n", styles.Subtle.Render("Elapsed:"), summary.Duration.Round(time.Second))
	}
}
