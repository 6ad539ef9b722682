// SPDX-License-Identifier: MIT

// Package famplex converts the FamPlex relations and equivalences tables into
// a BEL document.
//
// The module is organized as:
//
//	core/      thread-safe vertex/edge store with value-deduplicated labelled edges
//	bel/       BEL terms, relations and the Graph built on core
//	namespace/ namespace URL and identifier-pattern registries
//	famplex/   row decoding and the relations/equivalences/enrichment mappers
//	source/    CSV loading from HTTP(S) URLs or local files
//	belio/     deterministic BEL serialization
//	bfs/, dfs/ traversals for family member listing and cycle detection
//	manager/   loads both tables once and drives the operations above
//	config/, logger/, tracing/ YAML configuration, zap logging, OpenTelemetry spans
//	cmd/famplex2bel the command line entry point
//
// Quick start:
//
//	famplex2bel -f famplex.bel
//	famplex2bel -normalize -check -summary
//	famplex2bel -members FPLX:RAF
package famplex
