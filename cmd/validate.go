/*
Copyright © 2025 Jetstream Contributors
SPDX-License-Identifier: Apache-2.0
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/rackerlabs/jetstream/internal/validate"
	"github.com/spf13/cobra"
)

// validator allows injection of a Validator for testing. When nil a real
// TemplateValidator is constructed against a live CloudFormation client.
var validator validate.Validator

// SetValidator allows injection of a Validator for testing
func SetValidator(v validate.Validator) {
	validator = v
}

var validateCmd = &cobra.Command{
	Use:   "validate [template-name]",
	Short: "Validate template syntax against CloudFormation",
	Long: `Validate template syntax against CloudFormation.

Each template is rendered in test mode and submitted to the CloudFormation
ValidateTemplate API. With no arguments every template in the configuration
is validated.

Examples:
  jetstream validate            # validate all templates
  jetstream validate vpc        # validate a single template`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		v, err := getValidator(ctx, cmd)
		if err != nil {
			return err
		}

		if len(args) == 1 {
			return v.ValidateTemplate(ctx, args[0])
		}
		return v.ValidateAll(ctx)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func getValidator(ctx context.Context, cmd *cobra.Command) (validate.Validator, error) {
	if validator != nil {
		return validator, nil
	}

	configFile, _ := cmd.Flags().GetString("config")
	provider := createProvider(configFile)
	cfg, err := provider.LoadConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	client, err := createAWSClient(ctx, cmd, cfg)
	if err != nil {
		return nil, err
	}

	return validate.NewTemplateValidator(client.NewCloudFormationOperations(), provider), nil
}
