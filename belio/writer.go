// SPDX-License-Identifier: MIT

// Package belio renders a bel.Graph as a BEL script.
//
// Layout:
//
//	SET DOCUMENT Name = "FamPlex Relations"
//	SET DOCUMENT Version = "0.0.1"
//	SET DOCUMENT Authors = "..."
//
//	DEFINE NAMESPACE FPLX AS URL "https://..."
//	DEFINE NAMESPACE go AS PATTERN "^GO:\d{7}$"
//
//	p(HGNC:BRAF) isA p(FPLX:RAF)
//
// Declarations are sorted by keyword, statements lexicographically, so equal
// graphs always produce equal bytes.
package belio

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/katalvlaran/famplex/bel"
)

// Write serializes g to w.
func Write(w io.Writer, g *bel.Graph) error {
	bw := bufio.NewWriter(w)

	doc := g.Document()
	header := []struct{ key, value string }{
		{"Name", doc.Name},
		{"Version", doc.Version},
		{"Authors", doc.Authors},
	}
	for _, h := range header {
		if h.value == "" {
			continue
		}
		if _, err := fmt.Fprintf(bw, "SET DOCUMENT %s = %s\n", h.key, quoteValue(h.value)); err != nil {
			return err
		}
	}
	if _, err := bw.WriteString("\n"); err != nil {
		return err
	}

	if err := writeDefinitions(bw, "URL", g.NamespaceURLs()); err != nil {
		return err
	}
	if err := writeDefinitions(bw, "PATTERN", g.NamespacePatterns()); err != nil {
		return err
	}
	if _, err := bw.WriteString("\n"); err != nil {
		return err
	}

	for _, stmt := range Statements(g) {
		if _, err := bw.WriteString(stmt + "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Statements returns every edge as a BEL statement, sorted.
func Statements(g *bel.Graph) []string {
	edges := g.Edges()
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		out = append(out, e.String())
	}
	sort.Strings(out)

	return out
}

func writeDefinitions(w io.Writer, kind string, defs map[string]string) error {
	keys := make([]string, 0, len(defs))
	for k := range defs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, err := fmt.Fprintf(w, "DEFINE NAMESPACE %s AS %s %s\n", k, kind, quoteValue(defs[k])); err != nil {
			return err
		}
	}

	return nil
}

func quoteValue(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
