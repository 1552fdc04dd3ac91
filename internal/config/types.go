/*
Copyright © 2025 Jetstream Contributors
SPDX-License-Identifier: Apache-2.0
*/
package config

import (
	"context"
)

// ConfigProvider defines the interface for loading test configuration
type ConfigProvider interface {
	// LoadConfig loads and resolves the full configuration
	LoadConfig(ctx context.Context) (*Config, error)

	// GetTemplate returns the configuration for a single template
	GetTemplate(name string) (*TemplateConfig, error)

	// ListTemplates returns all configured template names
	ListTemplates() ([]string, error)

	// Validate checks the configuration for consistency and errors
	Validate() error
}

// Config represents the resolved test configuration
type Config struct {
	Project   string
	Region    string
	Templates []*TemplateConfig
}

// TemplateConfig describes one template under test: where its body lives,
// the parameters it is deployed with, the variables its body is processed
// with, and the names of the templates it depends on.
type TemplateConfig struct {
	Name         string
	Path         string
	Parameters   map[string]string
	Variables    map[string]interface{}
	Dependencies []string
}
