// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/famplex/core"
)

// DetectCycles reports every simple cycle formed by the directed edges of g.
// Symmetric edges are ignored: an equivalence never forms a cycle in a
// hierarchy.
//
// Implementation (Johnson's circuit enumeration):
//   - Stage 1: Take the vertices in ascending order; each one in turn becomes
//     the start s, and only vertices not smaller than s may appear in its circuits.
//   - Stage 2: Walk from s keeping a blocked set; a vertex stays blocked until a
//     circuit through it is found, and blocked predecessors are released
//     through the B lists when that happens.
//   - Stage 3: Every edge back to s closes one circuit.
//
// Every reported cycle is closed ([v0, v1, ..., v0]) and starts at its
// lexicographically smallest vertex; the direction of travel is preserved.
// Parallel edges with different relations yield one cycle. The list is sorted
// by signature.
//
// Returns (true, cycles, nil) if any cycle is found, (false, nil, nil) otherwise,
// and (false, nil, err) on cancellation or a neighbor lookup failure.
//
// Complexity:
//
//   - Time:   O((V + E)·(C + 1))   (C=#cycles)
//   - Memory: O(V + E)
func DetectCycles(g *core.Graph, opts ...Option) (bool, [][]string, error) {
	if g == nil {
		return false, nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &search{
		g:    g,
		opts: o,
		seen: make(map[string]struct{}),
	}
	for _, start := range g.Vertices() {
		s.reset(start)
		if _, err := s.circuit(start); err != nil {
			return false, nil, fmt.Errorf("dfs: DetectCycles: %w", err)
		}
	}

	if len(s.cycles) == 0 {
		return false, nil, nil
	}
	sort.Slice(s.cycles, func(i, j int) bool {
		return JoinSig(s.cycles[i]) < JoinSig(s.cycles[j])
	})

	return true, s.cycles, nil
}

// search carries the state of one DetectCycles call.
type search struct {
	g    *core.Graph
	opts CycleOptions

	start   string
	stack   []string
	blocked map[string]bool
	b       map[string]map[string]struct{}

	seen   map[string]struct{}
	cycles [][]string
}

// reset prepares the per-start state.
func (s *search) reset(start string) {
	s.start = start
	s.stack = s.stack[:0]
	s.blocked = make(map[string]bool)
	s.b = make(map[string]map[string]struct{})
}

// successors returns the distinct targets of the directed, unfiltered edges
// leaving id that are not smaller than the current start.
func (s *search) successors(id string) ([]string, error) {
	edges, err := s.g.Neighbors(id)
	if err != nil {
		return nil, fmt.Errorf("Neighbors(%q): %w", id, err)
	}

	var out []string
	dup := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		if !e.Directed || e.From != id || e.To < s.start {
			continue
		}
		if s.opts.EdgeFilter != nil && !s.opts.EdgeFilter(e) {
			continue
		}
		if _, ok := dup[e.To]; ok {
			continue
		}
		dup[e.To] = struct{}{}
		out = append(out, e.To)
	}

	return out, nil
}

// circuit extends the current path with v and reports whether any circuit
// back to the start was closed below it.
func (s *search) circuit(v string) (bool, error) {
	if err := s.opts.Ctx.Err(); err != nil {
		return false, err
	}
	next, err := s.successors(v)
	if err != nil {
		return false, err
	}

	found := false
	s.stack = append(s.stack, v)
	s.blocked[v] = true

	for _, w := range next {
		if w == s.start {
			s.record()
			found = true
			continue
		}
		if !s.blocked[w] {
			ok, err := s.circuit(w)
			if err != nil {
				return false, err
			}
			found = found || ok
		}
	}

	if found {
		s.unblock(v)
	} else {
		for _, w := range next {
			if s.b[w] == nil {
				s.b[w] = make(map[string]struct{})
			}
			s.b[w][v] = struct{}{}
		}
	}
	s.stack = s.stack[:len(s.stack)-1]

	return found, nil
}

// unblock releases u and, transitively, every vertex waiting on it.
func (s *search) unblock(u string) {
	s.blocked[u] = false
	waiting := s.b[u]
	delete(s.b, u)
	for w := range waiting {
		if s.blocked[w] {
			s.unblock(w)
		}
	}
}

// record stores the circuit on the stack once.
func (s *search) record() {
	sig, canon := canonical(s.stack)
	if _, exists := s.seen[sig]; !exists {
		s.seen[sig] = struct{}{}
		s.cycles = append(s.cycles, canon)
	}
}

// canonical rotates an open cycle [v0..vk] to its minimal rotation and closes it.
func canonical(open []string) (string, []string) {
	rot := MinimalRotation(open)
	closed := append(rot, rot[0])

	return JoinSig(closed), closed
}
