// SPDX-License-Identifier: MIT

// Package bel models the subset of the Biological Expression Language needed to
// express FamPlex content: protein and named-complex nodes, the isA, hasMember
// and equivalentTo relations, and the document header with namespace
// declarations.
//
// A Graph stores nodes under their canonical term string, e.g.
//
//	p(HGNC:BRAF) isA p(FPLX:RAF)
//	complex(FPLX:RAF_complex) hasMember p(HGNC:BRAF)
//	p(SFAM:"RAF Family") equivalentTo p(FPLX:RAF)
//
// and delegates storage, edge identity and relabeling to core.Graph.
package bel
