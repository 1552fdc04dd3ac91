/*
Copyright © 2025 Jetstream Contributors
SPDX-License-Identifier: Apache-2.0
*/
package run

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockRunner implements Runner for testing
type MockRunner struct {
	mock.Mock
}

func (m *MockRunner) Run(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockRunner) Cleanup(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRunner) Summary() Summary {
	args := m.Called()
	return args.Get(0).(Summary)
}
