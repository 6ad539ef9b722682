// SPDX-License-Identifier: MIT

package famplex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/famplex/bel"
	"github.com/katalvlaran/famplex/famplex"
)

func TestAppendEquivalences(t *testing.T) {
	log, logs := observedLogger()
	g := bel.NewGraph(famplex.EquivalencesDocument)

	stats, err := famplex.AppendEquivalences(g, equivalenceRows(t), famplex.WithLogger(log))
	require.NoError(t, err)
	assert.Equal(t, famplex.EquivalenceStats{Mapped: 6, Skipped: 1, Mismatched: 1}, stats)
	assert.Equal(t, 12, g.NumberOfEdges(), "each mapped row is stored in both directions")

	tests := []struct {
		name     string
		external bel.Node
		fplx     bel.Node
	}{
		{"family alias", bel.NewProtein("SFAM", "RAS Family"), bel.NewProtein("FPLX", "RAS")},
		{"complex alias", bel.NewNamedComplex("SCOMP", "AMPK Complex"), bel.NewNamedComplex("FPLX", "AMPK")},
		{"SFAM complex moves to SCOMP", bel.NewNamedComplex("SCOMP", "PI3K complex"), bel.NewNamedComplex("FPLX", "PI3K")},
		{"GO pattern", bel.NewProtein("go", "GO:0005956"), bel.NewProtein("FPLX", "CK2")},
		{"InterPro pattern", bel.NewProtein("interpro", "IPR000719"), bel.NewProtein("FPLX", "PKinase")},
		{"pattern mismatch kept", bel.NewProtein("ncit", "not an id"), bel.NewProtein("FPLX", "BAR")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, g.HasEdge(tt.external, tt.fplx, bel.EquivalentTo))
			assert.True(t, g.HasEdge(tt.fplx, tt.external, bel.EquivalentTo))
		})
	}

	assert.False(t, g.HasNode(bel.NewProtein("FPLX", "FOO")), "unmapped namespace skipped")
	assert.Len(t, g.NamespaceURLs(), 3)
	assert.Len(t, g.NamespacePatterns(), 7)
	assert.Equal(t, 1, logs.FilterMessage("skipping equivalence with unmapped namespace").Len())
}

func TestBuildEquivalences_Document(t *testing.T) {
	g, err := famplex.BuildEquivalences(nil)
	require.NoError(t, err)
	assert.Equal(t, "Famplex_Equivalences", g.Document().Name)
	assert.Equal(t, "Kristian Kolpeja", g.Document().Authors)
	assert.Len(t, g.NamespacePatterns(), 7)
}

func TestAppendEquivalences_KindFunc(t *testing.T) {
	rows, err := famplex.DecodeEquivalences([][]string{{"SFAM", "RAS Family", "RAS"}})
	require.NoError(t, err)

	g, err := famplex.BuildEquivalences(rows, famplex.WithKindFunc(func(string) bel.Function {
		return bel.NamedComplex
	}))
	require.NoError(t, err)
	assert.True(t, g.HasEdge(
		bel.NewNamedComplex("SCOMP", "RAS Family"),
		bel.NewNamedComplex("FPLX", "RAS"),
		bel.EquivalentTo))

	// An invalid function falls back to the name heuristic.
	g, err = famplex.BuildEquivalences(rows, famplex.WithKindFunc(func(string) bel.Function { return "" }))
	require.NoError(t, err)
	assert.True(t, g.HasNode(bel.NewProtein("SFAM", "RAS Family")))
}

func TestAppendEquivalences_EmptyCellSkipped(t *testing.T) {
	rows, err := famplex.DecodeEquivalences([][]string{
		{"GO", "GO:0005634", "Nucleus"},
		{"SFAM", "", "RAS"},
		{"GO", "GO:0005956", ""},
	})
	require.NoError(t, err)

	g := bel.NewGraph(famplex.EquivalencesDocument)
	stats, err := famplex.AppendEquivalences(g, rows)
	require.NoError(t, err)

	assert.Equal(t, famplex.EquivalenceStats{Mapped: 1, Incomplete: 2}, stats)
	assert.Equal(t, 2, g.NumberOfNodes())
	assert.Equal(t, 2, g.NumberOfEdges())
}

func TestBuildEquivalences_BothDirections(t *testing.T) {
	rows, err := famplex.DecodeEquivalences([][]string{{"GO", "GO:0005634", "Nucleus"}})
	require.NoError(t, err)

	g, err := famplex.BuildEquivalences(rows)
	require.NoError(t, err)

	var statements []string
	for _, e := range g.Edges() {
		statements = append(statements, e.String())
	}
	assert.Equal(t, []string{
		`p(go:"GO:0005634") equivalentTo p(FPLX:Nucleus)`,
		`p(FPLX:Nucleus) equivalentTo p(go:"GO:0005634")`,
	}, statements)
}
