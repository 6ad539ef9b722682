// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries.
//
// Determinism:
//   - Edges() returns edges in insertion order (by internal sequence number).
//
// Concurrency:
//   - Edge catalog, identity index and adjacency protected by muEdgeAdj.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

const edgeIDPrefix = 'e'

// AddEdge inserts a labelled edge from→to, auto-creating missing endpoints.
//
// Implementation:
//   - Stage 1: Validate IDs, relation and loop policy.
//   - Stage 2: Ensure both endpoints exist (AddVertex is idempotent).
//   - Stage 3: Under muEdgeAdj, resolve the identity key; an identical stored edge
//     short-circuits and its ID is returned.
//   - Stage 4: Enforce the multi-edge policy, allocate the next ID and wire adjacency
//     (mirrored for symmetric edges).
//
// Returns:
//   - string: the ID of the new edge, or of the identical edge already stored.
//
// Errors:
//   - ErrEmptyVertexID, ErrEmptyRelation, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddEdge(from, to, relation string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if relation == "" {
		return "", ErrEmptyRelation
	}
	if from == to && !g.Looped() {
		return "", ErrLoopNotAllowed
	}

	e := &Edge{From: from, To: to, Relation: relation, Directed: g.Directed()}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	key := keyOf(e.From, e.To, e.Relation, e.Directed)
	if eid, ok := g.index[key]; ok {
		return eid, nil
	}

	if !g.allowMulti && g.connected(from, to) {
		return "", ErrMultiEdgeNotAllowed
	}

	e.seq = atomic.AddUint64(&g.nextEdgeID, 1)
	e.ID = formatEdgeID(e.seq)
	g.edges[e.ID] = e
	g.index[key] = e.ID
	addAdjacency(g, e)

	return e.ID, nil
}

// connected reports whether any edge joins from and to in either stored direction.
// Caller must hold muEdgeAdj.
func (g *Graph) connected(from, to string) bool {
	return len(g.adjacencyList[from][to]) > 0 || len(g.adjacencyList[to][from]) > 0
}

// HasEdge reports whether any edge can be walked from→to.
// Symmetric edges are visible in both directions.
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// HasRelation reports whether an edge labelled relation can be walked from→to.
func (g *Graph) HasRelation(from, to, relation string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for eid := range g.adjacencyList[from][to] {
		if g.edges[eid].Relation == relation {
			return true
		}
	}

	return false
}

// Edges returns all edges in insertion order.
//
// Complexity:
//   - Time O(E log E), Space O(E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortBySeq(out)

	return out
}

// EdgeCount returns the number of stored edges. A symmetric edge counts once.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// formatEdgeID renders a sequence number as "e<n>".
func formatEdgeID(n uint64) string {
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

func sortBySeq(edges []*Edge) {
	sort.Slice(edges, func(i, j int) bool { return edges[i].seq < edges[j].seq })
}
