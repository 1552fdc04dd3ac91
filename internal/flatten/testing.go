/*
Copyright © 2025 Jetstream Contributors
SPDX-License-Identifier: Apache-2.0
*/
package flatten

import (
	"context"

	"github.com/rackerlabs/jetstream/internal/model"
	"github.com/stretchr/testify/mock"
)

// MockFlattener implements Flattener for testing
type MockFlattener struct {
	mock.Mock
}

func (m *MockFlattener) Flatten(ctx context.Context, roots []model.Template) ([]model.Template, error) {
	args := m.Called(ctx, roots)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Template), args.Error(1)
}
