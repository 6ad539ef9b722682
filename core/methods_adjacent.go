// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood queries and adjacency maintenance helpers.
//
// Invariants:
//   - A directed edge e is stored at adjacencyList[e.From][e.To].
//   - A symmetric edge is additionally mirrored at adjacencyList[e.To][e.From]
//     (unless it is a self-loop).
//   - Empty inner buckets are pruned on removal.

package core

import "sort"

// Neighbors returns the edges that can be walked out of id: directed edges whose
// source is id plus symmetric edges touching id. A self-loop appears once.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Determinism:
//   - Insertion order.
//
// Complexity:
//   - Time O(d log d) where d is the out-degree, Space O(d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	for _, edgeSet := range g.adjacencyList[id] {
		for eid := range edgeSet {
			if e := g.edges[eid]; !e.IsNil() {
				out = append(out, e)
			}
		}
	}
	sortBySeq(out)

	return out, nil
}

// Incident returns every edge touching id regardless of direction.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity:
//   - Time O(E) (edge catalog scan), Space O(deg(v)).
func (g *Graph) Incident(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	return g.incident(id), nil
}

// incident collects edges touching id. Caller must hold muEdgeAdj.
func (g *Graph) incident(id string) []*Edge {
	var out []*Edge
	for _, e := range g.edges {
		if e.From == id || e.To == id {
			out = append(out, e)
		}
	}
	sortBySeq(out)

	return out
}

// NeighborIDs returns the unique, sorted IDs reachable from id in one step.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		seen[e.Other(id)] = struct{}{}
	}

	ids := make([]string, 0, len(seen))
	for v := range seen {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}

// ensureAdjacency makes sure adjacencyList[from][to] exists.
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}

// addAdjacency registers e in the adjacency maps, mirroring symmetric edges.
func addAdjacency(g *Graph, e *Edge) {
	ensureAdjacency(g, e.From, e.To)
	g.adjacencyList[e.From][e.To][e.ID] = struct{}{}
	if !e.Directed && e.From != e.To {
		ensureAdjacency(g, e.To, e.From)
		g.adjacencyList[e.To][e.From][e.ID] = struct{}{}
	}
}

// removeAdjacency unregisters e from the adjacency maps and prunes empty buckets.
func removeAdjacency(g *Graph, e *Edge) {
	if m := g.adjacencyList[e.From][e.To]; m != nil {
		delete(m, e.ID)
		if len(m) == 0 {
			delete(g.adjacencyList[e.From], e.To)
		}
	}
	if !e.Directed && e.From != e.To {
		if m := g.adjacencyList[e.To][e.From]; m != nil {
			delete(m, e.ID)
			if len(m) == 0 {
				delete(g.adjacencyList[e.To], e.From)
			}
		}
	}
}
