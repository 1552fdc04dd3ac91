/*
Copyright © 2025 Jetstream Contributors
SPDX-License-Identifier: Apache-2.0
*/
package publish

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockPublisher implements Publisher for testing
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) EnsureBucket(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPublisher) PublishFile(ctx context.Context, key string, body []byte) error {
	args := m.Called(ctx, key, body)
	return args.Error(0)
}
