// SPDX-License-Identifier: MIT

// Package dfs finds cycles among the directed edges of a core.Graph.
//
// In a FamPlex hierarchy, isA points from a member to its family and hasMember
// from a complex to its component; a cycle through those edges means a family
// ends up containing itself. DetectCycles reports every such loop, each simple
// cycle once, using Johnson's blocked-set depth-first enumeration.
//
// Options:
//
//   - WithContext:    cancel a long search
//   - WithEdgeFilter: hide edges from the search
//   - WithRelations:  shorthand filter on edge relation labels
//
// Errors:
//
//   - ErrGraphNil       graph pointer is nil
//   - context errors    search canceled through WithContext
package dfs
