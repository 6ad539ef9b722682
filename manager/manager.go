// SPDX-License-Identifier: MIT

// Package manager loads the FamPlex tables once and exposes the composed BEL
// graph together with the operations that reuse it: summary counts, FPLX term
// normalization, enrichment of other graphs, family member listing and a
// hierarchy audit.
package manager

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/famplex/bel"
	"github.com/katalvlaran/famplex/bfs"
	"github.com/katalvlaran/famplex/core"
	"github.com/katalvlaran/famplex/dfs"
	"github.com/katalvlaran/famplex/famplex"
	"github.com/katalvlaran/famplex/logger"
	"github.com/katalvlaran/famplex/source"
	"github.com/katalvlaran/famplex/tracing"
)

// DefaultProgressEvery is how many nodes NormalizeTerms handles between progress lines.
const DefaultProgressEvery = 1000

// Summary holds the counts reported by Summarize.
type Summary struct {
	Relations int `yaml:"relations" json:"relations"`
	Entries   int `yaml:"entries" json:"entries"`
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger for the manager and the mappers it drives.
func WithLogger(l *logger.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.log = l
		}
	}
}

// WithRelationsURL overrides the relations table location.
func WithRelationsURL(location string) Option {
	return func(m *Manager) { m.relationsURL = location }
}

// WithEquivalencesURL overrides the equivalences table location.
func WithEquivalencesURL(location string) Option {
	return func(m *Manager) { m.equivalencesURL = location }
}

// WithStrictKinds makes unknown relation kinds fatal, during construction and Enrich.
func WithStrictKinds() Option {
	return func(m *Manager) { m.strict = true }
}

// WithProgressEvery sets the NormalizeTerms progress interval. Values below 1 are ignored.
func WithProgressEvery(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.progressEvery = n
		}
	}
}

// Manager owns the FamPlex graph built from both tables.
type Manager struct {
	log             *logger.Logger
	relationsURL    string
	equivalencesURL string
	strict          bool
	progressEvery   int

	graph *bel.Graph
	index *famplex.Index
}

// New loads both tables through loader, builds the relations graph and appends
// the equivalences into it. Any load or decode failure aborts construction.
func New(ctx context.Context, loader source.Loader, opts ...Option) (*Manager, error) {
	m := &Manager{
		log:             logger.Nop(),
		relationsURL:    source.RelationsURL,
		equivalencesURL: source.EquivalencesURL,
		progressEvery:   DefaultProgressEvery,
	}
	for _, opt := range opts {
		opt(m)
	}

	ctx, span := tracing.Tracer().Start(ctx, "manager.New")
	defer span.End()

	if err := m.populate(ctx, loader); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("famplex.entries", m.CountEntries()),
		attribute.Int("famplex.relations", m.CountRelations()),
	)
	m.log.Info("famplex graph built", "entries", m.CountEntries(), "relations", m.CountRelations())

	return m, nil
}

func (m *Manager) populate(ctx context.Context, loader source.Loader) error {
	relRecords, err := load(ctx, loader, "relations", m.relationsURL)
	if err != nil {
		return err
	}
	relRows, err := famplex.DecodeRelations(relRecords)
	if err != nil {
		return err
	}

	eqRecords, err := load(ctx, loader, "equivalences", m.equivalencesURL)
	if err != nil {
		return err
	}
	eqRows, err := famplex.DecodeEquivalences(eqRecords)
	if err != nil {
		return err
	}

	_, span := tracing.Tracer().Start(ctx, "manager.build")
	defer span.End()

	g := bel.NewGraph(famplex.RelationsDocument)
	rstats, err := famplex.AppendRelations(g, relRows, m.mapperOptions()...)
	if err != nil {
		return err
	}
	if rstats.Incomplete > 0 {
		m.log.Info("relations partially mapped",
			"mapped", rstats.Mapped, "incomplete", rstats.Incomplete)
	}
	stats, err := famplex.AppendEquivalences(g, eqRows, m.mapperOptions()...)
	if err != nil {
		return err
	}
	if stats.Skipped > 0 || stats.Mismatched > 0 || stats.Incomplete > 0 {
		m.log.Info("equivalences partially mapped",
			"mapped", stats.Mapped, "skipped", stats.Skipped,
			"pattern_mismatches", stats.Mismatched, "incomplete", stats.Incomplete)
	}

	m.graph = g
	m.index = famplex.NewIndex(relRows)

	return nil
}

func load(ctx context.Context, loader source.Loader, table, location string) ([][]string, error) {
	ctx, span := tracing.Tracer().Start(ctx, "load "+table,
		trace.WithAttributes(attribute.String("famplex.location", location)))
	defer span.End()

	records, err := loader.Load(ctx, location)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("manager: load %s: %w", table, err)
	}
	span.SetAttributes(attribute.Int("famplex.records", len(records)))

	return records, nil
}

func (m *Manager) mapperOptions() []famplex.Option {
	opts := []famplex.Option{famplex.WithLogger(m.log)}
	if m.strict {
		opts = append(opts, famplex.WithStrictKinds())
	}

	return opts
}

// IsPopulated always reports true: a Manager only exists once both tables loaded.
func (m *Manager) IsPopulated() bool { return true }

// CountEntries returns the number of nodes.
func (m *Manager) CountEntries() int { return m.graph.NumberOfNodes() }

// CountRelations returns the number of edges.
func (m *Manager) CountRelations() int { return m.graph.NumberOfEdges() }

// Summarize returns both counts.
func (m *Manager) Summarize() Summary {
	return Summary{Relations: m.CountRelations(), Entries: m.CountEntries()}
}

// Graph returns the composed graph. It is shared, not copied.
func (m *Manager) Graph() *bel.Graph { return m.graph }

// NormalizeTerms gives every protein node in the FPLX namespace (any letter
// case) an identifier equal to its name, relabeling it in place. Edge count,
// direction and multiplicity are unchanged. With useProgress set, progress is
// logged every WithProgressEvery nodes.
//
// It returns the number of relabeled nodes.
func (m *Manager) NormalizeTerms(g *bel.Graph, useProgress bool) (int, error) {
	nodes := g.Nodes()
	mapping := make(map[bel.Node]bel.Node)
	for i, n := range nodes {
		if useProgress && (i+1)%m.progressEvery == 0 {
			m.log.Info("normalizing terms", "done", i+1, "total", len(nodes))
		}
		if n.Function != bel.Protein || !strings.EqualFold(n.Namespace, "fplx") || n.Identifier == n.Name {
			continue
		}
		mapping[n] = n.WithIdentifier(n.Name)
	}
	if useProgress {
		m.log.Info("normalizing terms", "done", len(nodes), "total", len(nodes))
	}

	if err := g.RelabelNodes(mapping); err != nil {
		return 0, fmt.Errorf("manager: normalize terms: %w", err)
	}

	return len(mapping), nil
}

// Enrich adds the FamPlex relations that mention g's FamPlex and HGNC nodes.
// It returns the number of relation rows applied.
func (m *Manager) Enrich(g *bel.Graph) (int, error) {
	return famplex.Enrich(g, m.index, m.mapperOptions()...)
}

// Find returns the nodes of the manager's graph with the given namespace
// (any letter case) and name, ordered by term.
func (m *Manager) Find(namespace, name string) []bel.Node {
	var out []bel.Node
	for _, n := range m.graph.Nodes() {
		if n.Name == name && strings.EqualFold(n.Namespace, namespace) {
			out = append(out, n)
		}
	}

	return out
}

// Members lists everything below root in the manager's graph.
func (m *Manager) Members(ctx context.Context, root bel.Node) ([]bel.Node, error) {
	return MembersOf(ctx, m.graph, root)
}

// MembersOf lists the nodes below root in g, nearest first: the subjects of
// isA edges pointing at a visited node and the objects of hasMember edges
// leaving one. root itself is not included and each node appears once.
//
// Errors:
//   - bel.ErrNodeNotFound if root is not in g.
//   - ctx.Err() on cancellation.
func MembersOf(ctx context.Context, g *bel.Graph, root bel.Node) ([]bel.Node, error) {
	if !g.HasNode(root) {
		return nil, fmt.Errorf("manager: members: %w: %s", bel.ErrNodeNotFound, root)
	}
	res, err := bfs.BFS(g.Core(), root.Key(), bfs.WithContext(ctx), bfs.WithStep(memberStep))
	if err != nil {
		return nil, fmt.Errorf("manager: members of %s: %w", root, err)
	}

	out := make([]bel.Node, 0, len(res.Order)-1)
	for _, key := range res.Order[1:] {
		if n, ok := g.NodeByKey(key); ok {
			out = append(out, n)
		}
	}

	return out, nil
}

func memberStep(curr string, e *core.Edge) (string, bool) {
	switch bel.Relation(e.Relation) {
	case bel.IsA:
		return e.From, e.To == curr
	case bel.HasMember:
		return e.To, e.From == curr
	}

	return "", false
}

// Check audits the manager's graph for isA/hasMember cycles.
func (m *Manager) Check(ctx context.Context) ([][]string, error) {
	return CheckGraph(ctx, m.graph)
}

// CheckGraph returns every simple cycle formed by isA and hasMember edges in g, each as a
// closed list of BEL terms.
func CheckGraph(ctx context.Context, g *bel.Graph) ([][]string, error) {
	_, cycles, err := dfs.DetectCycles(g.Core(),
		dfs.WithContext(ctx),
		dfs.WithRelations(string(bel.IsA), string(bel.HasMember)))
	if err != nil {
		return nil, err
	}

	return cycles, nil
}
