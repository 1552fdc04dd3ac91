/*
Copyright © 2025 Jetstream Contributors
SPDX-License-Identifier: Apache-2.0
*/
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/rackerlabs/jetstream/internal/config"
	"gopkg.in/yaml.v3"
)

// Provider implements config.ConfigProvider by reading from a YAML file
type Provider struct {
	filename  string
	rawConfig *Config
}

// NewProvider creates a new file-based ConfigProvider for the given filename
func NewProvider(filename string) *Provider {
	return &Provider{
		filename: filename,
	}
}

// LoadConfig loads and resolves the full configuration
func (fp *Provider) LoadConfig(ctx context.Context) (*config.Config, error) {
	if err := fp.ensureLoaded(); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(fp.rawConfig.Templates))
	for name := range fp.rawConfig.Templates {
		names = append(names, name)
	}
	sort.Strings(names)

	templates := make([]*config.TemplateConfig, 0, len(names))
	for _, name := range names {
		resolved, err := fp.resolveTemplate(name, fp.rawConfig.Templates[name])
		if err != nil {
			return nil, err
		}
		templates = append(templates, resolved)
	}

	return &config.Config{
		Project:   fp.rawConfig.Project,
		Region:    fp.rawConfig.Region,
		Templates: templates,
	}, nil
}

// GetTemplate returns the configuration for a single template
func (fp *Provider) GetTemplate(name string) (*config.TemplateConfig, error) {
	if err := fp.ensureLoaded(); err != nil {
		return nil, err
	}

	rawTemplate, exists := fp.rawConfig.Templates[name]
	if !exists {
		return nil, fmt.Errorf("template '%s' not found in configuration", name)
	}

	return fp.resolveTemplate(name, rawTemplate)
}

// ListTemplates returns all configured template names, sorted
func (fp *Provider) ListTemplates() ([]string, error) {
	if err := fp.ensureLoaded(); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(fp.rawConfig.Templates))
	for name := range fp.rawConfig.Templates {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}

// Validate checks the configuration for consistency and errors
func (fp *Provider) Validate() error {
	if err := fp.ensureLoaded(); err != nil {
		return err
	}

	for name, rawTemplate := range fp.rawConfig.Templates {
		if rawTemplate == nil || rawTemplate.Path == "" {
			return fmt.Errorf("template '%s' has no path", name)
		}
		for _, dependency := range rawTemplate.Dependencies {
			if _, exists := fp.rawConfig.Templates[dependency]; !exists {
				return fmt.Errorf("template '%s' depends on undefined template '%s'", name, dependency)
			}
		}
	}

	return nil
}

// ensureLoaded parses the YAML file once
func (fp *Provider) ensureLoaded() error {
	if fp.rawConfig != nil {
		return nil
	}

	data, err := os.ReadFile(fp.filename)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", fp.filename, err)
	}

	var raw Config
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", fp.filename, err)
	}

	fp.rawConfig = &raw
	return nil
}

// resolveTemplate converts a raw YAML template entry, anchoring relative
// template paths at the configured directory (or the config file's directory
// when none is set)
func (fp *Provider) resolveTemplate(name string, raw *Template) (*config.TemplateConfig, error) {
	if raw == nil || raw.Path == "" {
		return nil, fmt.Errorf("template '%s' has no path", name)
	}

	path := raw.Path
	if !filepath.IsAbs(path) {
		base := fp.rawConfig.Directory
		if base == "" {
			base = filepath.Dir(fp.filename)
		}
		path = filepath.Join(base, path)
	}

	return &config.TemplateConfig{
		Name:         name,
		Path:         path,
		Parameters:   raw.Parameters,
		Variables:    raw.Variables,
		Dependencies: raw.Dependencies,
	}, nil
}
