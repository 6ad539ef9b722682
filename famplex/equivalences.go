// SPDX-License-Identifier: MIT
//
// File: equivalences.go
// Role: equivalences.csv → equivalentTo edges between external and FPLX names.

package famplex

import (
	"fmt"

	"github.com/katalvlaran/famplex/bel"
	"github.com/katalvlaran/famplex/namespace"
)

// EquivalencesDocument is the header of a graph built from equivalences.csv.
var EquivalencesDocument = bel.Document{
	Name:    "Famplex_Equivalences",
	Version: "0.0.1",
	Authors: "Kristian Kolpeja",
}

// EquivalenceStats counts how rows were handled by AppendEquivalences.
type EquivalenceStats struct {
	Mapped int
	// Skipped rows had a namespace with neither an alias nor a pattern entry.
	Skipped int
	// Mismatched rows were mapped but their name fails the namespace pattern.
	Mismatched int
	// Incomplete rows had an empty cell and were left out.
	Incomplete int
}

// BuildEquivalences maps rows into a fresh graph headed by EquivalencesDocument.
func BuildEquivalences(rows []EquivalenceRow, opts ...Option) (*bel.Graph, error) {
	g := bel.NewGraph(EquivalencesDocument)
	if _, err := AppendEquivalences(g, rows, opts...); err != nil {
		return nil, err
	}

	return g, nil
}

// AppendEquivalences maps rows into g.
//
// Namespace resolution for each row:
//   - SFAM and SCOMP collapse to SCOMP for complexes and SFAM otherwise.
//   - A code with a pattern entry becomes that entry's key (GO → go, IP → interpro, ...).
//   - Anything else is skipped.
//
// Rows with an empty cell are logged and left out.
//
// The external node and the canonical FPLX node share the function chosen from
// the external name. URL and pattern declarations are made unconditionally.
func AppendEquivalences(g *bel.Graph, rows []EquivalenceRow, opts ...Option) (EquivalenceStats, error) {
	o := newOptions(opts)
	reg := o.registryOr(namespace.Equivalences)
	declareURLs(g, reg)
	for key, expr := range reg.PatternsByKey() {
		g.DefineNamespacePattern(key, expr)
	}

	var stats EquivalenceStats
	for _, row := range rows {
		if row.Namespace == "" || row.Name == "" || row.CanonicalName == "" {
			stats.Incomplete++
			o.log.Warn("equivalence row has an empty cell, skipping", "line", row.Line)
			continue
		}
		fn := o.kind(row.Name)

		var ns string
		switch p, hasPattern := reg.Pattern(row.Namespace); {
		case namespace.IsFamilyComplexAlias(row.Namespace):
			ns = namespace.SFAM
			if fn == bel.NamedComplex {
				ns = namespace.SCOMP
			}
		case hasPattern:
			ns = p.Key
			if !p.Match(row.Name) {
				stats.Mismatched++
				o.log.Debug("identifier does not match namespace pattern",
					"line", row.Line, "namespace", row.Namespace, "name", row.Name)
			}
		default:
			stats.Skipped++
			o.log.Debug("skipping equivalence with unmapped namespace",
				"line", row.Line, "namespace", row.Namespace)
			continue
		}

		external := bel.New(fn, ns, row.Name)
		canonical := bel.New(fn, namespace.FPLX, row.CanonicalName)
		if err := g.AddEquivalence(external, canonical); err != nil {
			return stats, fmt.Errorf("equivalences line %d: %w", row.Line, err)
		}
		stats.Mapped++
	}
	o.log.Debug("equivalences mapped",
		"rows", len(rows), "mapped", stats.Mapped, "skipped", stats.Skipped,
		"mismatched", stats.Mismatched, "incomplete", stats.Incomplete)

	return stats, nil
}
