/*
Copyright © 2025 Jetstream Contributors
SPDX-License-Identifier: Apache-2.0
*/
package flatten

import (
	"context"
	"fmt"
	"sort"

	"github.com/rackerlabs/jetstream/internal/model"
)

// Flattener collects a set of root templates and every transitive dependency
// into one deduplicated collection.
type Flattener interface {
	Flatten(ctx context.Context, roots []model.Template) ([]model.Template, error)
}

// DependencyFlattener implements Flattener with a depth-first traversal.
// Deduplication is by template name: the first instance seen for a given name
// is kept, and a visited set is consulted before recursing so that reference
// cycles terminate.
type DependencyFlattener struct{}

// NewDependencyFlattener creates a new DependencyFlattener
func NewDependencyFlattener() *DependencyFlattener {
	return &DependencyFlattener{}
}

// Flatten returns every template reachable from roots, exactly once per name,
// ordered lexicographically by name so downstream manifest generation is
// reproducible. Each template's pre-flight hook runs before its dependency
// list is read; dependencies the hook returns are merged with the declared
// ones.
func (f *DependencyFlattener) Flatten(ctx context.Context, roots []model.Template) ([]model.Template, error) {
	seen := make(map[string]model.Template)

	if err := f.recurse(ctx, roots, seen); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	flattened := make([]model.Template, 0, len(names))
	for _, name := range names {
		flattened = append(flattened, seen[name])
	}
	return flattened, nil
}

func (f *DependencyFlattener) recurse(ctx context.Context, templates []model.Template, seen map[string]model.Template) error {
	for _, templ := range templates {
		if _, visited := seen[templ.Name()]; visited {
			continue
		}
		seen[templ.Name()] = templ

		extra, err := templ.PrepareTest(ctx)
		if err != nil {
			return fmt.Errorf("failed to prepare template %s: %w", templ.Name(), err)
		}

		declared := templ.TestParams().Dependencies
		deps := make([]model.Template, 0, len(declared)+len(extra))
		deps = append(deps, declared...)
		deps = append(deps, extra...)
		if err := f.recurse(ctx, deps, seen); err != nil {
			return err
		}
	}
	return nil
}
