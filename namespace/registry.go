// SPDX-License-Identifier: MIT

// Package namespace holds the fixed namespace tables used when FamPlex rows are
// turned into BEL terms: namespace codes backed by a BEL namespace file (URL) and
// codes backed by an identifiers.org style key plus a validation pattern.
//
// A Registry is immutable once built. Mappers receive it explicitly; there is no
// package-level mutable state.
package namespace

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidPattern indicates a pattern entry whose expression does not compile.
var ErrInvalidPattern = errors.New("namespace: invalid pattern")

// Pattern is an identifier-syntax backed namespace entry.
type Pattern struct {
	// Key is the canonical lowercase identifier-scheme name (e.g. "interpro").
	Key string
	// Expr is the regular expression identifiers in this namespace must match.
	Expr string

	re *regexp.Regexp
}

// Match reports whether id satisfies the pattern.
func (p Pattern) Match(id string) bool {
	if p.re == nil {
		return false
	}

	return p.re.MatchString(id)
}

// Registry maps short namespace codes to URLs and to patterns.
type Registry struct {
	urls     map[string]string
	patterns map[string]Pattern
}

// New builds a Registry from copies of the given tables, compiling every pattern.
func New(urls map[string]string, patterns map[string]Pattern) (*Registry, error) {
	r := &Registry{
		urls:     make(map[string]string, len(urls)),
		patterns: make(map[string]Pattern, len(patterns)),
	}
	for code, url := range urls {
		r.urls[code] = url
	}
	for code, p := range patterns {
		re, err := regexp.Compile(p.Expr)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPattern, code, err)
		}
		p.re = re
		r.patterns[code] = p
	}

	return r, nil
}

// MustNew is New for tables known at compile time; it panics on a bad pattern.
func MustNew(urls map[string]string, patterns map[string]Pattern) *Registry {
	r, err := New(urls, patterns)
	if err != nil {
		panic(err)
	}

	return r
}

// Pattern returns the pattern entry registered for code.
func (r *Registry) Pattern(code string) (Pattern, bool) {
	p, ok := r.patterns[code]
	return p, ok
}

// URLs returns a copy of the URL table.
func (r *Registry) URLs() map[string]string {
	out := make(map[string]string, len(r.urls))
	for k, v := range r.urls {
		out[k] = v
	}

	return out
}

// PatternsByKey returns the pattern table re-keyed by canonical key, the form a
// BEL document declares (DEFINE NAMESPACE interpro AS PATTERN "...").
func (r *Registry) PatternsByKey() map[string]string {
	out := make(map[string]string, len(r.patterns))
	for _, p := range r.patterns {
		out[p.Key] = p.Expr
	}

	return out
}
