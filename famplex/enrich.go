// SPDX-License-Identifier: MIT
//
// File: enrich.go
// Role: grow an arbitrary BEL graph with the FamPlex relations touching its nodes.

package famplex

import (
	"strings"

	"github.com/katalvlaran/famplex/bel"
	"github.com/katalvlaran/famplex/namespace"
)

// enrichable holds the lower-cased namespaces whose nodes take part in enrichment.
var enrichable = map[string]struct{}{
	"famplex": {},
	"fplx":    {},
	"hgnc":    {},
}

// Index is a name lookup over relation rows: a name maps to every row that has
// it as Name1 or Name2, in table order.
type Index struct {
	rows   []RelationRow
	byName map[string][]int
}

// NewIndex indexes rows. The slice is retained, not copied.
func NewIndex(rows []RelationRow) *Index {
	ix := &Index{rows: rows, byName: make(map[string][]int, len(rows))}
	for i, row := range rows {
		ix.byName[row.Name1] = append(ix.byName[row.Name1], i)
		if row.Name2 != row.Name1 {
			ix.byName[row.Name2] = append(ix.byName[row.Name2], i)
		}
	}

	return ix
}

// Lookup returns the rows mentioning name in either name column.
func (ix *Index) Lookup(name string) []RelationRow {
	pos := ix.byName[name]
	out := make([]RelationRow, 0, len(pos))
	for _, i := range pos {
		out = append(out, ix.rows[i])
	}

	return out
}

// Rows returns the indexed rows.
func (ix *Index) Rows() []RelationRow { return ix.rows }

// IsEnrichable reports whether n belongs to a FamPlex-aware namespace
// (famplex, fplx or hgnc, in any letter case).
func IsEnrichable(n bel.Node) bool {
	_, ok := enrichable[strings.ToLower(n.Namespace)]
	return ok
}

// Enrich adds, for every enrichable node present when the call starts, the
// relation rows that mention its name. Rows go through the same mapping as
// AppendRelations, so UP rows are skipped and kinds are handled identically.
// Edges already present collapse, so re-applying a row never duplicates an edge.
//
// It returns the number of rows applied, UP rows and rows with an empty cell
// excluded.
func Enrich(g *bel.Graph, ix *Index, opts ...Option) (int, error) {
	o := newOptions(opts)

	var candidates []bel.Node
	for _, n := range g.Nodes() {
		if IsEnrichable(n) {
			candidates = append(candidates, n)
		}
	}
	if len(candidates) == 0 {
		return 0, nil
	}
	declareURLs(g, o.registryOr(namespace.Relations))

	applied := 0
	for _, n := range candidates {
		for _, row := range ix.Lookup(n.Name) {
			if row.Namespace1 == namespace.UP {
				continue
			}
			ok, err := applyRelation(g, row, o)
			if err != nil {
				return applied, err
			}
			if ok {
				applied++
			}
		}
	}
	o.log.Debug("graph enriched", "candidates", len(candidates), "rows", applied)

	return applied, nil
}
