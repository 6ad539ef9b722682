// SPDX-License-Identifier: MIT
//
// File: methods_relabel.go
// Role: In-place vertex relabeling.
//
// Invariants:
//   - Every edge incident to the relabeled vertex survives with the same ID,
//     relation, direction and position in Edges() order.
//   - EdgeCount() is unchanged by a successful relabel.

package core

import "sort"

// RelabelVertex renames oldID to newID in place.
//
// Implementation:
//   - Stage 1: Validate IDs; a rename onto itself is a no-op.
//   - Stage 2: Under both write locks, reject the rename when it would turn an
//     existing oldID↔newID edge into a forbidden self-loop.
//   - Stage 3: Create newID if missing (inheriting oldID's Metadata), then rewire
//     each incident edge endpoint and its adjacency entries.
//   - Stage 4: Drop oldID.
//
// Behavior highlights:
//   - If newID already exists the two vertices merge; edges that become identical
//     are both kept so that multiplicity is preserved.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound, ErrLoopNotAllowed.
//
// Complexity:
//   - Time O(E) (incident edge scan), Space O(deg(v)).
func (g *Graph) RelabelVertex(oldID, newID string) error {
	if oldID == "" || newID == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	old, ok := g.vertices[oldID]
	if !ok {
		return ErrVertexNotFound
	}
	if oldID == newID {
		return nil
	}

	incident := g.incident(oldID)
	if !g.allowLoops {
		for _, e := range incident {
			if e.Other(oldID) == newID {
				return ErrLoopNotAllowed
			}
		}
	}

	if _, exists := g.vertices[newID]; !exists {
		g.vertices[newID] = &Vertex{ID: newID, Metadata: old.Metadata}
	}
	if g.adjacencyList[newID] == nil {
		g.adjacencyList[newID] = make(map[string]map[string]struct{})
	}

	for _, e := range incident {
		removeAdjacency(g, e)
		oldKey := keyOf(e.From, e.To, e.Relation, e.Directed)
		if g.index[oldKey] == e.ID {
			delete(g.index, oldKey)
		}

		if e.From == oldID {
			e.From = newID
		}
		if e.To == oldID {
			e.To = newID
		}

		addAdjacency(g, e)
		newKey := keyOf(e.From, e.To, e.Relation, e.Directed)
		if _, taken := g.index[newKey]; !taken {
			g.index[newKey] = e.ID
		}
	}

	delete(g.vertices, oldID)
	delete(g.adjacencyList, oldID)

	return nil
}

// RelabelVertices applies every oldID→newID pair of mapping, in ascending oldID order.
//
// All source vertices are checked before anything is renamed; a failure during the
// rename phase (ErrLoopNotAllowed) leaves earlier renames applied.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound, ErrLoopNotAllowed.
func (g *Graph) RelabelVertices(mapping map[string]string) error {
	olds := make([]string, 0, len(mapping))
	for oldID := range mapping {
		if !g.HasVertex(oldID) {
			if oldID == "" {
				return ErrEmptyVertexID
			}
			return ErrVertexNotFound
		}
		olds = append(olds, oldID)
	}
	sort.Strings(olds)

	for _, oldID := range olds {
		if err := g.RelabelVertex(oldID, mapping[oldID]); err != nil {
			return err
		}
	}

	return nil
}
