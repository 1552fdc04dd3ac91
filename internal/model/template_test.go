/*
Copyright © 2025 Jetstream Contributors
SPDX-License-Identifier: Apache-2.0
*/
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogicalResourceName_StripsSeparators(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain word", input: "network", expected: "Network"},
		{name: "hyphenated", input: "base-network.template", expected: "BaseNetworkTemplate"},
		{name: "underscores", input: "load_balancer", expected: "LoadBalancer"},
		{name: "digits kept", input: "vpc2-subnets", expected: "Vpc2Subnets"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LogicalResourceName(tt.input))
		})
	}
}

func TestTestParams_DictEmptyIsNil(t *testing.T) {
	assert.Nil(t, TestParams{}.Dict())
	assert.Nil(t, TestParams{Parameters: map[string]string{}}.Dict())

	params := TestParams{Parameters: map[string]string{"KeyName": "jetstream"}}
	assert.Equal(t, map[string]string{"KeyName": "jetstream"}, params.Dict())
}
