// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Graph, options, sentinel errors and the NewGraph constructor.
// Concurrency:
//   - muVert guards the vertex catalog and configuration flags.
//   - muEdgeAdj guards the edge catalog, the identity index and adjacency.
//   - Lock order is always muVert -> muEdgeAdj.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEmptyRelation indicates an edge was added without a relation label.
	ErrEmptyRelation = errors.New("core: edge relation is empty")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Metadata stores arbitrary key-value data; it is reached through
// SetVertexMetadata and VertexMetadata so access stays under the graph lock.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data.
	Metadata map[string]interface{}
}

// Edge represents a labelled connection between two vertices.
//
// Each Edge has a unique ID, endpoints From→To, a Relation label and the Graph's
// directedness at the time it was added.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Relation is the edge label (e.g. "isA", "hasMember").
	Relation string

	// Directed indicates this edge is one-way (true) or symmetric (false).
	Directed bool

	// seq is the insertion sequence number; it orders Edges() output.
	seq uint64
}

// IsNil reports whether the receiver is nil; safe on typed-nil values behind interfaces.
func (e *Edge) IsNil() bool { return e == nil }

// Other returns the endpoint of e opposite to id.
// For a self-loop it returns id itself.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// edgeKey is the value identity of an edge: two edges with equal keys are the same edge.
// For symmetric edges the endpoints are stored in ascending order so (a,b) and (b,a) collide.
type edgeKey struct {
	from, to string
	relation string
	directed bool
}

// keyOf computes the identity key of an edge description.
func keyOf(from, to, relation string, directed bool) edgeKey {
	if !directed && to < from {
		from, to = to, from
	}

	return edgeKey{from: from, to: to, relation: relation, directed: directed}
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the default directedness for all new edges
// (true = directed, false = undirected).
func WithDirected(defaultDirected bool) GraphOption {
	return func(g *Graph) { g.directed = defaultDirected }
}

// WithMultiEdges permits parallel edges between the same vertices as long as
// their relation or direction differs. Identical edges always collapse.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the core in-memory graph data structure.
//
// It supports directed or undirected edges, parallel edges with distinct
// labels, and self-loops. Edges are deduplicated by value: adding an edge whose
// (From, To, Relation, Directed) matches a stored edge returns the stored edge ID.
type Graph struct {
	muVert    sync.RWMutex // guards vertices and flags
	muEdgeAdj sync.RWMutex // guards edges, index and adjacency

	// Configuration flags
	directed   bool // edge directedness
	allowMulti bool // allow parallel edges with different labels
	allowLoops bool // allow self-loops

	// Storage
	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge
	index      map[edgeKey]string // edge identity → edge ID

	// adjacencyList[from][to][edgeID] = struct{}{}; symmetric edges are mirrored.
	adjacencyList map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected, no loops, no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		index:         make(map[edgeKey]string),
		adjacencyList: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports the directedness applied to newly created edges.
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}
