/*
Copyright © 2025 Jetstream Contributors
SPDX-License-Identifier: Apache-2.0
*/
package config

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockConfigProvider implements ConfigProvider for testing
type MockConfigProvider struct {
	mock.Mock
}

func (m *MockConfigProvider) LoadConfig(ctx context.Context) (*Config, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Config), args.Error(1)
}

func (m *MockConfigProvider) GetTemplate(name string) (*TemplateConfig, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*TemplateConfig), args.Error(1)
}

func (m *MockConfigProvider) ListTemplates() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockConfigProvider) Validate() error {
	args := m.Called()
	return args.Error(0)
}
