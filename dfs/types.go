// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/famplex/core"
)

// ErrGraphNil is returned when a nil *core.Graph is passed to DetectCycles.
var ErrGraphNil = errors.New("dfs: graph is nil")

// Option configures DetectCycles.
type Option func(*CycleOptions)

// CycleOptions holds the parameters of a cycle search.
type CycleOptions struct {
	// Ctx allows cancellation; checked once per path extension.
	Ctx context.Context

	// EdgeFilter, if non-nil, is called for every directed edge; returning
	// false hides the edge from the search.
	EdgeFilter func(e *core.Edge) bool
}

// DefaultOptions returns a background context and no edge filter.
func DefaultOptions() CycleOptions {
	return CycleOptions{Ctx: context.Background()}
}

// WithContext sets the cancellation context. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *CycleOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithEdgeFilter restricts the search to edges for which fn returns true.
func WithEdgeFilter(fn func(e *core.Edge) bool) Option {
	return func(o *CycleOptions) {
		o.EdgeFilter = fn
	}
}

// WithRelations restricts the search to edges carrying one of the given relations.
func WithRelations(relations ...string) Option {
	allowed := make(map[string]struct{}, len(relations))
	for _, r := range relations {
		allowed[r] = struct{}{}
	}

	return WithEdgeFilter(func(e *core.Edge) bool {
		_, ok := allowed[e.Relation]
		return ok
	})
}
