// SPDX-License-Identifier: MIT

package famplex

import (
	"github.com/katalvlaran/famplex/bel"
	"github.com/katalvlaran/famplex/logger"
	"github.com/katalvlaran/famplex/namespace"
)

// Option configures the mappers and the enricher.
type Option func(*options)

type options struct {
	log      *logger.Logger
	strict   bool
	kindOf   func(name string) bel.Function
	registry *namespace.Registry
}

func newOptions(opts []Option) *options {
	o := &options{log: logger.Nop(), kindOf: bel.KindOf}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

// registryOr returns the configured registry, or def when none was given.
func (o *options) registryOr(def func() *namespace.Registry) *namespace.Registry {
	if o.registry != nil {
		return o.registry
	}

	return def()
}

// WithLogger routes mapper diagnostics to l.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithStrictKinds makes an unknown relation kind abort the mapping with
// ErrUnknownRelationKind instead of being logged and treated as partof.
func WithStrictKinds() Option {
	return func(o *options) { o.strict = true }
}

// WithKindFunc replaces the name-based node kind heuristic used for equivalences.
// A function returning an invalid Function falls back to bel.KindOf.
func WithKindFunc(fn func(name string) bel.Function) Option {
	return func(o *options) {
		if fn != nil {
			o.kindOf = fn
		}
	}
}

// WithRegistry replaces the default namespace registry of the mapper it is passed to.
func WithRegistry(r *namespace.Registry) Option {
	return func(o *options) { o.registry = r }
}

func (o *options) kind(name string) bel.Function {
	if fn := o.kindOf(name); fn.Valid() {
		return fn
	}

	return bel.KindOf(name)
}
