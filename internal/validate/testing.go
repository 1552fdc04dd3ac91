/*
Copyright © 2025 Jetstream Contributors
SPDX-License-Identifier: Apache-2.0
*/
package validate

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockValidator implements Validator for testing
type MockValidator struct {
	mock.Mock
}

func (m *MockValidator) ValidateTemplate(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockValidator) ValidateAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
