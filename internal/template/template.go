/*
Copyright © 2025 Jetstream Contributors
SPDX-License-Identifier: Apache-2.0
*/

// Package template provides the file-backed implementation of
// model.Template: bodies live on disk and are rendered through the processor
// before publication.
package template

import (
	"context"
	"fmt"
	"os"

	"github.com/rackerlabs/jetstream/internal/config"
	"github.com/rackerlabs/jetstream/internal/model"
)

// FileTemplate implements model.Template for a template body stored on disk
type FileTemplate struct {
	name         string
	path         string
	parameters   map[string]string
	variables    map[string]interface{}
	dependencies []model.Template
	processor    *Processor
}

// NewFileTemplate creates a template whose body is read from path
func NewFileTemplate(name, path string, parameters map[string]string, variables map[string]interface{}) *FileTemplate {
	return &FileTemplate{
		name:       name,
		path:       path,
		parameters: parameters,
		variables:  variables,
		processor:  NewProcessor(),
	}
}

// AddDependency declares another template this one depends on
func (t *FileTemplate) AddDependency(dependency model.Template) {
	t.dependencies = append(t.dependencies, dependency)
}

// Name returns the template's unique identifier
func (t *FileTemplate) Name() string {
	return t.name
}

// TestParams returns the deploy-time parameters and declared dependencies
func (t *FileTemplate) TestParams() model.TestParams {
	return model.TestParams{
		Parameters:   t.parameters,
		Dependencies: t.dependencies,
	}
}

// Generate reads the body from disk and renders it. The testing flag is
// exposed to the body as the Testing variable alongside the configured ones.
func (t *FileTemplate) Generate(ctx context.Context, testing bool) ([]byte, error) {
	content, err := os.ReadFile(t.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template file %s: %w", t.path, err)
	}

	variables := make(map[string]interface{}, len(t.variables)+1)
	for key, value := range t.variables {
		variables[key] = value
	}
	variables["Testing"] = testing

	rendered, err := t.processor.Process(string(content), variables)
	if err != nil {
		return nil, fmt.Errorf("failed to render template %s: %w", t.name, err)
	}

	return []byte(rendered), nil
}

// PrepareTest is the pre-flight hook. File templates have nothing to set up
// and introduce no extra dependencies.
func (t *FileTemplate) PrepareTest(ctx context.Context) ([]model.Template, error) {
	return nil, nil
}

// ResourceName returns the manifest logical id for this template
func (t *FileTemplate) ResourceName() string {
	return model.LogicalResourceName(t.name)
}

// FromConfig constructs the configured templates and wires their declared
// dependencies by name. The returned map holds every template keyed by name.
func FromConfig(cfg *config.Config) (map[string]model.Template, error) {
	templates := make(map[string]*FileTemplate, len(cfg.Templates))
	for _, templateConfig := range cfg.Templates {
		templates[templateConfig.Name] = NewFileTemplate(
			templateConfig.Name,
			templateConfig.Path,
			templateConfig.Parameters,
			templateConfig.Variables,
		)
	}

	for _, templateConfig := range cfg.Templates {
		for _, dependency := range templateConfig.Dependencies {
			target, exists := templates[dependency]
			if !exists {
				return nil, fmt.Errorf("template %s depends on undefined template %s", templateConfig.Name, dependency)
			}
			templates[templateConfig.Name].AddDependency(target)
		}
	}

	result := make(map[string]model.Template, len(templates))
	for name, templ := range templates {
		result[name] = templ
	}
	return result, nil
}
