/*
Copyright © 2025 Jetstream Contributors
SPDX-License-Identifier: Apache-2.0
*/
package template

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// Processor renders a template body with Go's text/template plus the Sprig
// function map.
type Processor struct{}

// NewProcessor creates a new Processor
func NewProcessor() *Processor {
	return &Processor{}
}

// Process renders content with the provided variables
func (p *Processor) Process(content string, variables map[string]interface{}) (string, error) {
	tmpl, err := template.New("cloudformation").
		Funcs(sprig.TxtFuncMap()).
		Parse(content)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, variables); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}
