// SPDX-License-Identifier: MIT

package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/famplex/bfs"
	"github.com/katalvlaran/famplex/core"
)

// ExampleBFS lists the members of a family by walking isA edges backwards.
func ExampleBFS() {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("BRAF", "RAF", "isA")
	_, _ = g.AddEdge("RAF1", "RAF", "isA")

	res, _ := bfs.BFS(g, "RAF", bfs.WithStep(func(curr string, e *core.Edge) (string, bool) {
		return e.From, e.To == curr
	}))
	fmt.Println(res.Order)
	// Output: [RAF BRAF RAF1]
}
