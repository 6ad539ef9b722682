// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted distances, parent links and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - OnVisit hook; returning an error aborts the search.
//   - MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Walking
//
//	By default a directed edge is followed from From to To only and an
//	undirected edge both ways. WithStep replaces that rule: the step function
//	sees every edge incident to the current vertex and names the vertex it
//	leads to, which is how callers walk a FamPlex hierarchy downwards along
//	reversed isA edges and forward hasMember edges in one pass.
//
// Determinism
//
//	core returns adjacent edges in insertion order and BFS enqueues them in
//	that order, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) with the default walk; O(V · E) with WithStep, since
//     core.Incident scans the edge catalog.
//   - Memory: O(V) for queue, Depth map, Parent map and visited set.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if core fails to list a vertex's edges.
//   - ctx.Err() on cancellation, and wrapped OnVisit errors.
package bfs
