// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: BEL graph over core.Graph: document metadata, namespace declarations,
// typed node and edge insertion, relabeling.
//
// Invariants:
//   - Every vertex carries its Node under the "node" metadata key.
//   - Every edge is directed; an equivalence is stored as two equivalentTo edges,
//     one per direction.
//   - Identical edges collapse (value identity).
//   - Not safe for concurrent writes while being built; concurrent reads are fine.

package bel

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/famplex/core"
)

// Relation labels a BEL edge.
type Relation string

const (
	// IsA links a specific entity to a more general one (sub → super).
	IsA Relation = "isA"

	// HasMember links a collection to one of its members (collection → member).
	HasMember Relation = "hasMember"

	// EquivalentTo links two names for the same entity. AddEquivalence stores it
	// in both directions.
	EquivalentTo Relation = "equivalentTo"
)

const nodeKey = "node"

// Sentinel errors for BEL graph operations.
var (
	// ErrInvalidNode indicates a node with an unknown function or empty namespace/name.
	ErrInvalidNode = errors.New("bel: invalid node")

	// ErrNodeNotFound indicates a relabel source that is not in the graph.
	ErrNodeNotFound = errors.New("bel: node not found")
)

// Document holds the SET DOCUMENT header values.
type Document struct {
	Name    string
	Version string
	Authors string
}

// Edge is a resolved BEL statement.
type Edge struct {
	ID       string
	Source   Node
	Target   Node
	Relation Relation
}

// String renders the statement as "source relation target".
func (e Edge) String() string {
	return e.Source.String() + " " + string(e.Relation) + " " + e.Target.String()
}

// Graph is a BEL knowledge graph.
type Graph struct {
	mu         sync.RWMutex // guards doc and namespace tables
	doc        Document
	nsURLs     map[string]string
	nsPatterns map[string]string

	g *core.Graph
}

// NewGraph returns an empty graph with the given document header.
func NewGraph(doc Document) *Graph {
	return &Graph{
		doc:        doc,
		nsURLs:     make(map[string]string),
		nsPatterns: make(map[string]string),
		g:          core.NewGraph(core.WithDirected(true), core.WithMultiEdges(), core.WithLoops()),
	}
}

// Document returns the document header.
func (g *Graph) Document() Document {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.doc
}

// DefineNamespaceURL declares a URL-backed namespace. Redefining a key overwrites it.
func (g *Graph) DefineNamespaceURL(key, url string) {
	g.mu.Lock()
	g.nsURLs[key] = url
	g.mu.Unlock()
}

// DefineNamespacePattern declares a pattern-backed namespace.
func (g *Graph) DefineNamespacePattern(key, expr string) {
	g.mu.Lock()
	g.nsPatterns[key] = expr
	g.mu.Unlock()
}

// NamespaceURLs returns a copy of the URL declarations.
func (g *Graph) NamespaceURLs() map[string]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return copyMap(g.nsURLs)
}

// NamespacePatterns returns a copy of the pattern declarations.
func (g *Graph) NamespacePatterns() map[string]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return copyMap(g.nsPatterns)
}

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}

// AddNode inserts n if it is not already present.
func (g *Graph) AddNode(n Node) error {
	if !n.Function.Valid() || n.Namespace == "" || n.Name == "" {
		return fmt.Errorf("%w: %q", ErrInvalidNode, n.String())
	}
	key := n.Key()
	if err := g.g.AddVertex(key); err != nil {
		return err
	}

	return g.g.SetVertexMetadata(key, nodeKey, n)
}

// AddIsA adds sub isA super.
func (g *Graph) AddIsA(sub, super Node) error {
	return g.addEdge(sub, super, IsA)
}

// AddHasMember adds collection hasMember member.
func (g *Graph) AddHasMember(collection, member Node) error {
	return g.addEdge(collection, member, HasMember)
}

// AddEquivalence adds a equivalentTo b and b equivalentTo a.
func (g *Graph) AddEquivalence(a, b Node) error {
	if err := g.addEdge(a, b, EquivalentTo); err != nil {
		return err
	}

	return g.addEdge(b, a, EquivalentTo)
}

func (g *Graph) addEdge(from, to Node, rel Relation) error {
	if err := g.AddNode(from); err != nil {
		return err
	}
	if err := g.AddNode(to); err != nil {
		return err
	}
	if _, err := g.g.AddEdge(from.Key(), to.Key(), string(rel)); err != nil {
		return fmt.Errorf("bel: add %s edge %s -> %s: %w", rel, from, to, err)
	}

	return nil
}

// HasNode reports whether n is in the graph.
func (g *Graph) HasNode(n Node) bool {
	return g.g.HasVertex(n.Key())
}

// HasEdge reports whether the statement from rel to is stored.
func (g *Graph) HasEdge(from, to Node, rel Relation) bool {
	return g.g.HasRelation(from.Key(), to.Key(), string(rel))
}

// NumberOfNodes returns the node count.
func (g *Graph) NumberOfNodes() int { return g.g.VertexCount() }

// NumberOfEdges returns the edge count.
func (g *Graph) NumberOfEdges() int { return g.g.EdgeCount() }

// Nodes returns every node ordered by canonical term.
func (g *Graph) Nodes() []Node {
	keys := g.g.Vertices()
	out := make([]Node, 0, len(keys))
	for _, k := range keys {
		if n, ok := g.node(k); ok {
			out = append(out, n)
		}
	}

	return out
}

// NodeByKey returns the node stored under a canonical term.
func (g *Graph) NodeByKey(key string) (Node, bool) { return g.node(key) }

func (g *Graph) node(key string) (Node, bool) {
	v, ok := g.g.VertexMetadata(key, nodeKey)
	if !ok {
		return Node{}, false
	}
	n, ok := v.(Node)

	return n, ok
}

// Edges returns every statement in insertion order.
func (g *Graph) Edges() []Edge {
	raw := g.g.Edges()
	out := make([]Edge, 0, len(raw))
	for _, e := range raw {
		src, _ := g.node(e.From)
		dst, _ := g.node(e.To)
		out = append(out, Edge{
			ID:       e.ID,
			Source:   src,
			Target:   dst,
			Relation: Relation(e.Relation),
		})
	}

	return out
}

// RelabelNodes replaces each key node of mapping with its value node in place.
// Edges keep their IDs, direction and multiplicity; a replacement that already
// exists in the graph is merged with it.
//
// Errors:
//   - ErrNodeNotFound if a source node is missing; nothing is renamed then.
//   - ErrInvalidNode if a replacement node is malformed.
func (g *Graph) RelabelNodes(mapping map[Node]Node) error {
	keys := make(map[string]string, len(mapping))
	targets := make(map[string]Node, len(mapping))
	for oldN, newN := range mapping {
		if !g.HasNode(oldN) {
			return fmt.Errorf("%w: %s", ErrNodeNotFound, oldN)
		}
		if !newN.Function.Valid() || newN.Namespace == "" || newN.Name == "" {
			return fmt.Errorf("%w: %q", ErrInvalidNode, newN.String())
		}
		keys[oldN.Key()] = newN.Key()
		targets[newN.Key()] = newN
	}
	if err := g.g.RelabelVertices(keys); err != nil {
		return err
	}

	newKeys := make([]string, 0, len(targets))
	for k := range targets {
		newKeys = append(newKeys, k)
	}
	sort.Strings(newKeys)
	for _, k := range newKeys {
		if err := g.g.SetVertexMetadata(k, nodeKey, targets[k]); err != nil {
			return err
		}
	}

	return nil
}

// Core exposes the underlying vertex/edge store, keyed by canonical term.
// Callers must not mutate it.
func (g *Graph) Core() *core.Graph { return g.g }
