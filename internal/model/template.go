/*
Copyright © 2025 Jetstream Contributors
SPDX-License-Identifier: Apache-2.0
*/
package model

import (
	"context"
	"strings"
	"unicode"
)

// Template is a named, generatable unit of infrastructure definition. A test
// run holds only transient references to templates; they are owned by the
// caller that constructed them.
type Template interface {
	// Name returns the unique identifier for this template. It doubles as
	// the object key the template body is published under.
	Name() string

	// TestParams returns the parameter bundle used when this template is
	// deployed as part of a test stack.
	TestParams() TestParams

	// Generate produces the serialized template body. When testing is true
	// the template selects its test-mode behaviour (smaller instance sizes,
	// relaxed deletion policies, and so on).
	Generate(ctx context.Context, testing bool) ([]byte, error)

	// PrepareTest is the pre-flight hook invoked once per template before
	// its dependencies are read. It returns any additional dependencies the
	// test setup introduces; it must not mutate TestParams.
	PrepareTest(ctx context.Context) ([]Template, error)

	// ResourceName returns the logical resource identifier this template is
	// keyed by in the master manifest. Must be alphanumeric.
	ResourceName() string
}

// TestParams bundles the deploy-time parameters and declared dependencies of
// a template under test.
type TestParams struct {
	// Parameters are passed through to the nested stack. A nil or empty map
	// means the manifest entry carries no Parameters field at all.
	Parameters map[string]string

	// Dependencies are other templates that must be published alongside
	// this one.
	Dependencies []Template
}

// Dict returns the parameter map, or nil when there are no parameters.
func (tp TestParams) Dict() map[string]string {
	if len(tp.Parameters) == 0 {
		return nil
	}
	return tp.Parameters
}

// LogicalResourceName derives a CloudFormation logical resource identifier
// from a template name by capitalizing word boundaries and dropping
// non-alphanumeric characters.
func LogicalResourceName(name string) string {
	var b strings.Builder
	upper := true
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			b.WriteRune(unicode.ToUpper(r))
			upper = false
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
