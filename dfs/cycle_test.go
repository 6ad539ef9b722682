// SPDX-License-Identifier: MIT

package dfs_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/famplex/core"
	"github.com/katalvlaran/famplex/dfs"
)

const (
	relIsA       = "isA"
	relHasMem    = "hasMember"
	relEquiv     = "equivalentTo"
	relUnrelated = "other"
)

func hierarchy() *core.Graph {
	return core.NewGraph(core.WithDirected(true), core.WithMultiEdges(), core.WithLoops())
}

// TestDetectCycles_NilGraph verifies a nil graph is rejected.
func TestDetectCycles_NilGraph(t *testing.T) {
	has, cycles, err := dfs.DetectCycles(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
	assert.False(t, has)
	assert.Nil(t, cycles)
}

// TestDetectCycles_NoCycle ensures a tree-shaped hierarchy is clean.
func TestDetectCycles_NoCycle(t *testing.T) {
	g := hierarchy()
	// BRAF -> RAF -> MAPKKK, RAF1 -> RAF, mTORC1 -> MTOR
	_, _ = g.AddEdge("BRAF", "RAF", relIsA)
	_, _ = g.AddEdge("RAF1", "RAF", relIsA)
	_, _ = g.AddEdge("RAF", "MAPKKK", relIsA)
	_, _ = g.AddEdge("mTORC1", "MTOR", relHasMem)

	has, cycles, err := dfs.DetectCycles(g)
	assert.NoError(t, err)
	assert.False(t, has)
	assert.Empty(t, cycles)
}

// TestDetectCycles_TwoNodeCycle covers a family that is its own member's member.
func TestDetectCycles_TwoNodeCycle(t *testing.T) {
	g := hierarchy()
	_, _ = g.AddEdge("B", "A", relIsA)
	_, _ = g.AddEdge("A", "B", relIsA)

	has, cycles, err := dfs.DetectCycles(g)
	assert.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, [][]string{{"A", "B", "A"}}, cycles)
}

// TestDetectCycles_RotationKeepsDirection checks that rotation never reverses a cycle.
func TestDetectCycles_RotationKeepsDirection(t *testing.T) {
	g := hierarchy()
	// C -> B -> A -> C; reversed it would read A,B,C,A.
	_, _ = g.AddEdge("C", "B", relIsA)
	_, _ = g.AddEdge("B", "A", relIsA)
	_, _ = g.AddEdge("A", "C", relIsA)

	has, cycles, err := dfs.DetectCycles(g)
	assert.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, [][]string{{"A", "C", "B", "A"}}, cycles)
}

// TestDetectCycles_SelfLoop reports a vertex related to itself.
func TestDetectCycles_SelfLoop(t *testing.T) {
	g := hierarchy()
	_, _ = g.AddEdge("RAF", "RAF", relIsA)

	has, cycles, err := dfs.DetectCycles(g)
	assert.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, [][]string{{"RAF", "RAF"}}, cycles)
}

// TestDetectCycles_IgnoresSymmetricEdges keeps undirected edges out of the search.
func TestDetectCycles_IgnoresSymmetricEdges(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	_, _ = g.AddEdge("A", "B", relEquiv)
	_, _ = g.AddEdge("B", "C", relEquiv)
	_, _ = g.AddEdge("C", "A", relEquiv)

	has, _, err := dfs.DetectCycles(g)
	assert.NoError(t, err)
	assert.False(t, has)
}

// TestDetectCycles_SharedVertices finds every cycle through a shared vertex,
// including ones whose vertices were already fully explored.
func TestDetectCycles_SharedVertices(t *testing.T) {
	g := hierarchy()
	_, _ = g.AddEdge("A", "B", relIsA)
	_, _ = g.AddEdge("A", "C", relIsA)
	_, _ = g.AddEdge("B", "D", relIsA)
	_, _ = g.AddEdge("C", "D", relIsA)
	_, _ = g.AddEdge("D", "A", relHasMem)

	has, cycles, err := dfs.DetectCycles(g)
	assert.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, [][]string{{"A", "B", "D", "A"}, {"A", "C", "D", "A"}}, cycles)
}

// TestDetectCycles_NestedCycles enumerates overlapping cycles of different lengths.
func TestDetectCycles_NestedCycles(t *testing.T) {
	g := hierarchy()
	_, _ = g.AddEdge("A", "B", relIsA)
	_, _ = g.AddEdge("B", "A", relIsA)
	_, _ = g.AddEdge("B", "C", relIsA)
	_, _ = g.AddEdge("C", "A", relIsA)
	_, _ = g.AddEdge("C", "B", relIsA)
	_, _ = g.AddEdge("C", "B", relHasMem) // parallel edge, same cycles

	_, cycles, err := dfs.DetectCycles(g)
	assert.NoError(t, err)
	assert.Equal(t, [][]string{
		{"A", "B", "A"},
		{"A", "B", "C", "A"},
		{"B", "C", "B"},
	}, cycles)
}

// TestDetectCycles_RelationFilter hides edges outside the allowed relations.
func TestDetectCycles_RelationFilter(t *testing.T) {
	g := hierarchy()
	_, _ = g.AddEdge("A", "B", relIsA)
	_, _ = g.AddEdge("B", "A", relUnrelated)

	has, _, err := dfs.DetectCycles(g)
	assert.NoError(t, err)
	assert.True(t, has)

	has, _, err = dfs.DetectCycles(g, dfs.WithRelations(relIsA, relHasMem))
	assert.NoError(t, err)
	assert.False(t, has)
}

// TestDetectCycles_MultipleDisjoint verifies detection of several disjoint cycles.
func TestDetectCycles_MultipleDisjoint(t *testing.T) {
	g := hierarchy()
	cycle1 := []string{"A", "B", "C", "D", "E", "A"}
	for i := 0; i < len(cycle1)-1; i++ {
		_, _ = g.AddEdge(cycle1[i], cycle1[i+1], relIsA)
	}
	cycle2 := []string{"F", "G", "H", "F"}
	for i := 0; i < len(cycle2)-1; i++ {
		_, _ = g.AddEdge(cycle2[i], cycle2[i+1], relHasMem)
	}
	_, _ = g.AddEdge("E", "F", relIsA)
	_ = g.AddVertex("I")

	has, cycles, err := dfs.DetectCycles(g)
	assert.NoError(t, err)
	assert.True(t, has)

	sigs := make([]string, len(cycles))
	for i, c := range cycles {
		sigs[i] = strings.Join(c, ",")
	}
	assert.Equal(t, []string{strings.Join(cycle1, ","), strings.Join(cycle2, ",")}, sigs)
}

// TestDetectCycles_Canceled stops on a canceled context.
func TestDetectCycles_Canceled(t *testing.T) {
	g := hierarchy()
	_, _ = g.AddEdge("A", "B", relIsA)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	has, cycles, err := dfs.DetectCycles(g, dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, has)
	assert.Nil(t, cycles)
}

func TestMinimalRotation(t *testing.T) {
	assert.Equal(t, []string{"A", "C", "B"}, dfs.MinimalRotation([]string{"C", "B", "A"}))
	assert.Equal(t, []string{"a", "a", "b"}, dfs.MinimalRotation([]string{"a", "b", "a"}))
	assert.Nil(t, dfs.MinimalRotation(nil))
}
