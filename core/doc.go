// SPDX-License-Identifier: MIT

// Package core provides a thread-safe in-memory Graph of labelled edges with a
// minimal, composable API surface. It is the storage layer under bel.Graph.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Parallel edges carrying different relations (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Value identity of edges: (From, To, Relation, Directed) is unique; for symmetric
//     edges the endpoint pair is unordered. Re-adding an edge is a no-op that returns
//     the stored edge ID.
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation (“e1”, “e2”, …)
//   - Vertex relabeling that keeps every incident edge, its ID, relation and direction.
//
// Determinism:
//
//	Vertices() and NeighborIDs() are sorted ascending; Edges() and Neighbors() follow
//	insertion order.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                  // O(1), idempotent
//	HasVertex(id string) bool                   // O(1)
//	SetVertexMetadata(id, key string, v interface{}) error
//	VertexMetadata(id, key string) (interface{}, bool)
//	RelabelVertex(oldID, newID string) error    // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(from, to, relation string) (edgeID string, err error)
//	HasEdge(from, to string) bool
//	HasRelation(from, to, relation string) bool
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)
//	Incident(id string) ([]*Edge, error)
//	NeighborIDs(id string) ([]string, error)
//	Vertices() []string
//	Edges() []*Edge
//	VertexCount(), EdgeCount() int
//
// Errors:
//
//	ErrEmptyVertexID        – zero-length vertex ID
//	ErrVertexNotFound       – missing vertex
//	ErrEmptyRelation        – edge without a relation label
//	ErrLoopNotAllowed       – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed  – parallel edge when multi-edges disabled
package core
