// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/famplex/bel"
	"github.com/katalvlaran/famplex/famplex"
)

const (
	relationsCSV    = "HGNC,BRAF,isa,FPLX,RAF\nUP,P1,isa,FPLX,RAF\nHGNC,MTOR,partof,FPLX,mTORC1\n"
	equivalencesCSV = "SFAM,RAF Family,RAF\nGO,GO:0005956,CK2\n"
)

// writeTables stores both tables in a temp dir and returns their paths.
func writeTables(t *testing.T, relations, equivalences string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	rel := filepath.Join(dir, "relations.csv")
	eq := filepath.Join(dir, "equivalences.csv")
	require.NoError(t, os.WriteFile(rel, []byte(relations), 0o600))
	require.NoError(t, os.WriteFile(eq, []byte(equivalences), 0o600))

	return rel, eq
}

func TestRun_WritesBEL(t *testing.T) {
	rel, eq := writeTables(t, relationsCSV, equivalencesCSV)
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), &stdout, &stderr, []string{
		"-relations-url", rel, "-equivalences-url", eq, "-log-level", "error",
	})
	require.NoError(t, err)

	out := stdout.String()
	assert.Contains(t, out, `SET DOCUMENT Name = "FamPlex Relations"`)
	assert.Contains(t, out, "DEFINE NAMESPACE SCOMP AS URL")
	assert.Contains(t, out, `DEFINE NAMESPACE go AS PATTERN "^GO:\d{7}$"`)
	assert.Contains(t, out, "p(HGNC:BRAF) isA p(FPLX:RAF)\n")
	assert.Contains(t, out, "complex(FPLX:mTORC1) hasMember p(HGNC:MTOR)\n")
	assert.Contains(t, out, `p(SFAM:"RAF Family") equivalentTo p(FPLX:RAF)`)
	assert.Contains(t, out, `p(FPLX:RAF) equivalentTo p(SFAM:"RAF Family")`)
	assert.NotContains(t, out, "P1")
}

func TestRun_NormalizeToFile(t *testing.T) {
	rel, eq := writeTables(t, relationsCSV, equivalencesCSV)
	outPath := filepath.Join(t.TempDir(), "famplex.bel")
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), &stdout, &stderr, []string{
		"-relations-url", rel, "-equivalences-url", eq, "-log-level", "error",
		"-normalize", "-enrich", "-check", "-f", outPath,
	})
	require.NoError(t, err)
	assert.Empty(t, stdout.String())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "p(HGNC:BRAF) isA p(FPLX:RAF ! RAF)\n")
}

func TestRun_SummaryOverHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/relations.csv":
			_, _ = w.Write([]byte(relationsCSV))
		case "/equivalences.csv":
			_, _ = w.Write([]byte(equivalencesCSV))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), &stdout, &stderr, []string{
		"-relations-url", srv.URL + "/relations.csv",
		"-equivalences-url", srv.URL + "/equivalences.csv",
		"-log-level", "error", "-timeout", "5s", "-summary",
	})
	require.NoError(t, err)
	// Nodes: BRAF, RAF, MTOR, mTORC1, SFAM RAF Family, go GO:0005956, FPLX CK2.
	// Edges: two relations plus two equivalences stored in both directions.
	assert.Equal(t, "relations: 6\nentries: 7\n", stdout.String())
}

func TestRun_ConfigFile(t *testing.T) {
	rel, eq := writeTables(t, relationsCSV, equivalencesCSV)
	cfgPath := filepath.Join(t.TempDir(), "famplex2bel.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(
		"relations_url: "+rel+"\nequivalences_url: "+eq+"\nlog_level: error\n"), 0o600))

	var stdout, stderr bytes.Buffer
	require.NoError(t, run(context.Background(), &stdout, &stderr, []string{"-config", cfgPath, "-summary"}))
	assert.Equal(t, "relations: 6\nentries: 7\n", stdout.String())
}

func TestRun_Members(t *testing.T) {
	rel, eq := writeTables(t, relationsCSV, equivalencesCSV)
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), &stdout, &stderr, []string{
		"-relations-url", rel, "-equivalences-url", eq, "-log-level", "error", "-members", "fplx:mTORC1",
	})
	require.NoError(t, err)
	assert.Equal(t, "p(HGNC:MTOR)\n", stdout.String())

	stdout.Reset()
	err = run(context.Background(), &stdout, &stderr, []string{
		"-relations-url", rel, "-equivalences-url", eq, "-log-level", "error", "-members", "FPLX:MEK",
	})
	assert.ErrorIs(t, err, bel.ErrNodeNotFound)
	assert.Empty(t, stdout.String())
}

func TestRun_StrictRejectsUnknownKind(t *testing.T) {
	rel, eq := writeTables(t, "HGNC,X,memberof,FPLX,Y\n", equivalencesCSV)
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), &stdout, &stderr, []string{
		"-relations-url", rel, "-equivalences-url", eq, "-log-level", "error", "-strict",
	})
	assert.ErrorIs(t, err, famplex.ErrUnknownRelationKind)
	assert.Empty(t, stdout.String(), "no partial output")
}

func TestRun_MalformedTable(t *testing.T) {
	rel, eq := writeTables(t, "HGNC,BRAF,isa\n", equivalencesCSV)
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), &stdout, &stderr, []string{
		"-relations-url", rel, "-equivalences-url", eq, "-log-level", "error",
	})
	assert.ErrorIs(t, err, famplex.ErrMalformedRow)
	assert.Empty(t, stdout.String())
}

func TestRun_UsageErrors(t *testing.T) {
	tests := map[string][]string{
		"unknown flag":     {"-nope"},
		"bad level":        {"-log-level", "loud"},
		"bad format":       {"-log-format", "xml"},
		"extra argument":   {"stray"},
		"missing config":   {"-config", filepath.Join(t.TempDir(), "absent.yaml")},
		"negative timeout": {"-timeout", "-1s"},
		"bad members":      {"-members", "RAF"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := run(context.Background(), &stdout, &stderr, args)
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
		})
	}
}

func TestRun_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run(context.Background(), &stdout, &stderr, []string{"-h"}))
	assert.Contains(t, stderr.String(), "famplex2bel")
	assert.Empty(t, stdout.String())
}
