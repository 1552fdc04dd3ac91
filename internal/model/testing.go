/*
Copyright © 2025 Jetstream Contributors
SPDX-License-Identifier: Apache-2.0
*/
package model

import (
	"context"
	"fmt"
)

// FakeTemplate is a deterministic in-memory Template for tests. Dependencies
// and prepare-hook additions are plain fields; PrepareCalls counts hook
// invocations so tests can assert the hook ran exactly once.
type FakeTemplate struct {
	TemplateName string
	Params       map[string]string
	Deps         []Template
	PrepareDeps  []Template
	Body         []byte

	PrepareCalls int
	PrepareErr   error
	GenerateErr  error
}

// NewFakeTemplate creates a FakeTemplate with a canned body.
func NewFakeTemplate(name string, deps ...Template) *FakeTemplate {
	return &FakeTemplate{
		TemplateName: name,
		Deps:         deps,
		Body:         []byte(fmt.Sprintf(`{"Description": %q}`, name)),
	}
}

func (f *FakeTemplate) Name() string { return f.TemplateName }

func (f *FakeTemplate) TestParams() TestParams {
	return TestParams{Parameters: f.Params, Dependencies: f.Deps}
}

func (f *FakeTemplate) Generate(ctx context.Context, testing bool) ([]byte, error) {
	if f.GenerateErr != nil {
		return nil, f.GenerateErr
	}
	return f.Body, nil
}

func (f *FakeTemplate) PrepareTest(ctx context.Context) ([]Template, error) {
	f.PrepareCalls++
	if f.PrepareErr != nil {
		return nil, f.PrepareErr
	}
	return f.PrepareDeps, nil
}

func (f *FakeTemplate) ResourceName() string {
	return LogicalResourceName(f.TemplateName)
}
