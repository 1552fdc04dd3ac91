/*
Copyright © 2025 Jetstream Contributors
SPDX-License-Identifier: Apache-2.0
*/

// Package manifest generates the master template a test run deploys: a
// CloudFormation template whose only resources are nested stacks, one per
// flattened template, each pointing at that template's published URL.
package manifest

import (
	"encoding/json"
	"fmt"

	"github.com/rackerlabs/jetstream/internal/model"
)

// MasterKey is the object key the master manifest is published under
const MasterKey = "master.template"

// document is the wire form of the master template
type document struct {
	FormatVersion string                   `json:"AWSTemplateFormatVersion"`
	Description   string                   `json:"Description,omitempty"`
	Resources     map[string]stackResource `json:"Resources"`
}

type stackResource struct {
	Type       string          `json:"Type"`
	Properties stackProperties `json:"Properties"`
}

type stackProperties struct {
	TemplateURL string            `json:"TemplateURL"`
	Parameters  map[string]string `json:"Parameters,omitempty"`
}

// Builder assembles master manifests
type Builder struct{}

// NewBuilder creates a new Builder
func NewBuilder() *Builder {
	return &Builder{}
}

// Build renders the master manifest for the flattened template set. Each
// template becomes one AWS::CloudFormation::Stack resource keyed by its
// resource name, with TemplateURL pointing under bucketURL and Parameters
// omitted when the template has none.
func (b *Builder) Build(templates []model.Template, bucketURL string) ([]byte, error) {
	resources := make(map[string]stackResource, len(templates))
	for _, templ := range templates {
		name := templ.ResourceName()
		if _, exists := resources[name]; exists {
			return nil, fmt.Errorf("duplicate resource name %s in flattened templates", name)
		}
		resources[name] = stackResource{
			Type: "AWS::CloudFormation::Stack",
			Properties: stackProperties{
				TemplateURL: fmt.Sprintf("%s/%s", bucketURL, templ.Name()),
				Parameters:  templ.TestParams().Dict(),
			},
		}
	}

	doc := document{
		FormatVersion: "2010-09-09",
		Description:   "Jetstream test master template",
		Resources:     resources,
	}

	body, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize master manifest: %w", err)
	}
	return body, nil
}
