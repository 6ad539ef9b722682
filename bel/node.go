// SPDX-License-Identifier: MIT
//
// File: node.go
// Role: BEL node values and their canonical term strings.

package bel

import (
	"strings"
)

// Function is the BEL function of a node.
type Function string

const (
	// Protein is a single gene product entity, written p(...).
	Protein Function = "p"

	// NamedComplex is a named collection (family or complex), written complex(...).
	NamedComplex Function = "complex"
)

// Valid reports whether f is one of the supported functions.
func (f Function) Valid() bool {
	return f == Protein || f == NamedComplex
}

// Node is a namespaced BEL entity. Nodes are plain values: two Nodes with equal
// fields are the same graph node.
type Node struct {
	Function   Function
	Namespace  string
	Name       string
	Identifier string
}

// NewProtein returns the protein node ns:name.
func NewProtein(namespace, name string) Node {
	return Node{Function: Protein, Namespace: namespace, Name: name}
}

// NewNamedComplex returns the named-complex node ns:name.
func NewNamedComplex(namespace, name string) Node {
	return Node{Function: NamedComplex, Namespace: namespace, Name: name}
}

// New returns a node of the given function.
func New(fn Function, namespace, name string) Node {
	return Node{Function: fn, Namespace: namespace, Name: name}
}

// WithIdentifier returns a copy of n carrying identifier id.
func (n Node) WithIdentifier(id string) Node {
	n.Identifier = id
	return n
}

// String renders the canonical BEL term, for example p(HGNC:BRAF),
// complex(FPLX:RAF_complex) or p(FPLX:RAF ! RAF).
func (n Node) String() string {
	var b strings.Builder
	b.Grow(len(n.Function) + len(n.Namespace) + len(n.Name) + len(n.Identifier) + 8)
	b.WriteString(string(n.Function))
	b.WriteByte('(')
	b.WriteString(n.Namespace)
	b.WriteByte(':')
	b.WriteString(Quote(n.Name))
	if n.Identifier != "" {
		b.WriteString(" ! ")
		b.WriteString(Quote(n.Identifier))
	}
	b.WriteByte(')')

	return b.String()
}

// Key is the vertex ID a node is stored under.
func (n Node) Key() string { return n.String() }

// Quote returns s unchanged when it consists only of ASCII letters, digits and
// underscores; otherwise it is wrapped in double quotes with \ and " escaped.
func Quote(s string) string {
	if s != "" && isBareWord(s) {
		return s
	}
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)

	return `"` + r.Replace(s) + `"`
}

func isBareWord(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_':
		default:
			return false
		}
	}

	return true
}

// KindOf infers the function of a FamPlex name: NamedComplex when the name
// contains "complex" in any letter case, Protein otherwise.
func KindOf(name string) Function {
	if strings.Contains(strings.ToLower(name), "complex") {
		return NamedComplex
	}

	return Protein
}
