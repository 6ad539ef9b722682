// SPDX-License-Identifier: MIT
//
// File: relations.go
// Role: relations.csv → isA / hasMember edges.

package famplex

import (
	"fmt"

	"github.com/katalvlaran/famplex/bel"
	"github.com/katalvlaran/famplex/namespace"
)

// RelationsDocument is the header of a graph built from relations.csv.
var RelationsDocument = bel.Document{
	Name:    "FamPlex Relations",
	Version: "0.0.1",
	Authors: "Kristian Kolpeja and Charles Tapley Hoyt",
}

// RelationStats counts how rows were handled by AppendRelations.
type RelationStats struct {
	Mapped int
	// Skipped rows had UP as their first namespace.
	Skipped int
	// Incomplete rows had an empty namespace or name and were left out.
	Incomplete int
}

// BuildRelations maps rows into a fresh graph headed by RelationsDocument.
func BuildRelations(rows []RelationRow, opts ...Option) (*bel.Graph, error) {
	g := bel.NewGraph(RelationsDocument)
	if _, err := AppendRelations(g, rows, opts...); err != nil {
		return nil, err
	}

	return g, nil
}

// AppendRelations maps rows into g.
//
// Behavior:
//   - The registry URL entries (HGNC and FPLX by default) are declared on g
//     even when rows is empty.
//   - Rows whose first namespace is UP are skipped.
//   - Rows with an empty namespace or name are logged and left out.
//   - isa: p(ns1:name1) isA p(ns2:name2).
//   - partof: complex(ns2:name2) hasMember p(ns1:name1).
//   - Any other kind is logged and handled as partof, or returned as
//     ErrUnknownRelationKind under WithStrictKinds.
func AppendRelations(g *bel.Graph, rows []RelationRow, opts ...Option) (RelationStats, error) {
	o := newOptions(opts)
	declareURLs(g, o.registryOr(namespace.Relations))

	var stats RelationStats
	for _, row := range rows {
		if row.Namespace1 == namespace.UP {
			stats.Skipped++
			continue
		}
		mapped, err := applyRelation(g, row, o)
		if err != nil {
			return stats, err
		}
		if mapped {
			stats.Mapped++
		} else {
			stats.Incomplete++
		}
	}
	o.log.Debug("relations mapped", "rows", len(rows), "edges", g.NumberOfEdges(),
		"skipped", stats.Skipped, "incomplete", stats.Incomplete)

	return stats, nil
}

// applyRelation maps one non-UP row. It reports false for a row with an empty
// cell, which is left out.
func applyRelation(g *bel.Graph, row RelationRow, o *options) (bool, error) {
	if row.Namespace1 == "" || row.Name1 == "" || row.Namespace2 == "" || row.Name2 == "" {
		o.log.Warn("relation row has an empty cell, skipping", "line", row.Line)
		return false, nil
	}

	kind, err := ParseRelationKind(row.Kind)
	if err != nil {
		if o.strict {
			return false, fmt.Errorf("relations line %d: %w", row.Line, err)
		}
		o.log.Warn("unknown relation kind, treating as partof",
			"line", row.Line, "kind", row.Kind, "name", row.Name1)
		kind = KindPartOf
	}

	sub := bel.NewProtein(row.Namespace1, row.Name1)
	switch kind {
	case KindIsA:
		err = g.AddIsA(sub, bel.NewProtein(row.Namespace2, row.Name2))
	default:
		err = g.AddHasMember(bel.NewNamedComplex(row.Namespace2, row.Name2), sub)
	}
	if err != nil {
		return false, fmt.Errorf("relations line %d: %w", row.Line, err)
	}

	return true, nil
}

func declareURLs(g *bel.Graph, reg *namespace.Registry) {
	for code, url := range reg.URLs() {
		g.DefineNamespaceURL(code, url)
	}
}
