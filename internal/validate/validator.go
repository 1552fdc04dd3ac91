/*
Copyright © 2025 Jetstream Contributors
SPDX-License-Identifier: Apache-2.0
*/
package validate

import (
	"context"
	"fmt"

	"github.com/rackerlabs/jetstream/internal/aws"
	"github.com/rackerlabs/jetstream/internal/config"
	"github.com/rackerlabs/jetstream/internal/model"
	"github.com/rackerlabs/jetstream/internal/template"
)

// Validator orchestrates template validation
type Validator interface {
	ValidateTemplate(ctx context.Context, name string) error
	ValidateAll(ctx context.Context) error
}

// TemplateValidator implements Validator using the CloudFormation
// ValidateTemplate API against test-mode template bodies
type TemplateValidator struct {
	cfn            aws.CloudFormationOperations
	configProvider config.ConfigProvider
}

// NewTemplateValidator creates a new validator
func NewTemplateValidator(cfn aws.CloudFormationOperations, configProvider config.ConfigProvider) *TemplateValidator {
	return &TemplateValidator{
		cfn:            cfn,
		configProvider: configProvider,
	}
}

// ValidateTemplate validates a single configured template
func (v *TemplateValidator) ValidateTemplate(ctx context.Context, name string) error {
	templates, err := v.loadTemplates(ctx)
	if err != nil {
		return err
	}

	templ, exists := templates[name]
	if !exists {
		return fmt.Errorf("template '%s' not found in configuration", name)
	}

	if err := v.validate(ctx, templ); err != nil {
		fmt.Printf("✗ template '%s' is invalid\n  %v\n", name, err)
		return err
	}

	fmt.Printf("✓ template '%s' is valid\n", name)
	return nil
}

// ValidateAll validates every configured template
func (v *TemplateValidator) ValidateAll(ctx context.Context) error {
	names, err := v.configProvider.ListTemplates()
	if err != nil {
		return fmt.Errorf("failed to list templates: %w", err)
	}

	if len(names) == 0 {
		fmt.Println("No templates configured")
		return nil
	}

	templates, err := v.loadTemplates(ctx)
	if err != nil {
		return err
	}

	failures := 0
	for _, name := range names {
		if err := v.validate(ctx, templates[name]); err != nil {
			fmt.Printf("✗ %s: %v\n", name, err)
			failures++
			continue
		}
		fmt.Printf("✓ %s\n", name)
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d templates failed validation", failures, len(names))
	}
	return nil
}

func (v *TemplateValidator) loadTemplates(ctx context.Context) (map[string]model.Template, error) {
	cfg, err := v.configProvider.LoadConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return template.FromConfig(cfg)
}

func (v *TemplateValidator) validate(ctx context.Context, templ model.Template) error {
	body, err := templ.Generate(ctx, true)
	if err != nil {
		return err
	}
	return v.cfn.ValidateTemplate(ctx, string(body))
}
