// SPDX-License-Identifier: MIT
//
// File: rows.go
// Role: FamPlex table rows, relation kinds and positional decoding.

package famplex

import (
	"errors"
	"fmt"
)

// Sentinel errors for FamPlex decoding and mapping.
var (
	// ErrMalformedRow indicates a table row with the wrong number of columns.
	ErrMalformedRow = errors.New("famplex: malformed row")

	// ErrUnknownRelationKind indicates a relation kind other than isa or partof.
	ErrUnknownRelationKind = errors.New("famplex: unknown relation kind")
)

const (
	relationColumns    = 5
	equivalenceColumns = 3
)

// RelationKind is the third column of relations.csv.
type RelationKind int

const (
	// KindIsA marks a specific entity as a member of a family (entity isA entity).
	KindIsA RelationKind = iota + 1

	// KindPartOf marks an entity as a component of a complex (collection hasMember entity).
	KindPartOf
)

// String returns the literal used in the table.
func (k RelationKind) String() string {
	switch k {
	case KindIsA:
		return "isa"
	case KindPartOf:
		return "partof"
	default:
		return fmt.Sprintf("RelationKind(%d)", int(k))
	}
}

// ParseRelationKind maps the literal "isa" or "partof" to its kind.
func ParseRelationKind(s string) (RelationKind, error) {
	switch s {
	case "isa":
		return KindIsA, nil
	case "partof":
		return KindPartOf, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownRelationKind, s)
	}
}

// RelationRow is one line of relations.csv. Kind is kept verbatim; mapping decides
// how to treat values outside the known set.
type RelationRow struct {
	Namespace1 string
	Name1      string
	Kind       string
	Namespace2 string
	Name2      string

	// Line is the 1-based record number in the source table.
	Line int
}

// EquivalenceRow is one line of equivalences.csv.
type EquivalenceRow struct {
	Namespace     string
	Name          string
	CanonicalName string

	Line int
}

// DecodeRelations converts raw CSV records to relation rows. Cells are taken as is.
func DecodeRelations(records [][]string) ([]RelationRow, error) {
	rows := make([]RelationRow, 0, len(records))
	for i, rec := range records {
		if len(rec) != relationColumns {
			return nil, fmt.Errorf("%w: relations line %d: want %d columns, got %d",
				ErrMalformedRow, i+1, relationColumns, len(rec))
		}
		rows = append(rows, RelationRow{
			Namespace1: rec[0],
			Name1:      rec[1],
			Kind:       rec[2],
			Namespace2: rec[3],
			Name2:      rec[4],
			Line:       i + 1,
		})
	}

	return rows, nil
}

// DecodeEquivalences converts raw CSV records to equivalence rows.
func DecodeEquivalences(records [][]string) ([]EquivalenceRow, error) {
	rows := make([]EquivalenceRow, 0, len(records))
	for i, rec := range records {
		if len(rec) != equivalenceColumns {
			return nil, fmt.Errorf("%w: equivalences line %d: want %d columns, got %d",
				ErrMalformedRow, i+1, equivalenceColumns, len(rec))
		}
		rows = append(rows, EquivalenceRow{
			Namespace:     rec[0],
			Name:          rec[1],
			CanonicalName: rec[2],
			Line:          i + 1,
		})
	}

	return rows, nil
}
