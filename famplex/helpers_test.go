// SPDX-License-Identifier: MIT

package famplex_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/famplex/famplex"
	"github.com/katalvlaran/famplex/logger"
)

// relationRecords is a small slice of relations.csv.
var relationRecords = [][]string{
	{"HGNC", "BRAF", "isa", "FPLX", "RAF"},
	{"HGNC", "RAF1", "isa", "FPLX", "RAF"},
	{"UP", "P12345", "isa", "FPLX", "RAF"},
	{"HGNC", "MTOR", "partof", "FPLX", "mTORC1"},
}

// equivalenceRecords is a small slice of equivalences.csv.
var equivalenceRecords = [][]string{
	{"SFAM", "RAS Family", "RAS"},
	{"SCOMP", "AMPK Complex", "AMPK"},
	{"SFAM", "PI3K complex", "PI3K"},
	{"GO", "GO:0005956", "CK2"},
	{"IP", "IPR000719", "PKinase"},
	{"BEL", "foo", "FOO"},
	{"NCIT", "not an id", "BAR"},
}

func relationRows(t *testing.T) []famplex.RelationRow {
	t.Helper()
	rows, err := famplex.DecodeRelations(relationRecords)
	require.NoError(t, err)

	return rows
}

func equivalenceRows(t *testing.T) []famplex.EquivalenceRow {
	t.Helper()
	rows, err := famplex.DecodeEquivalences(equivalenceRecords)
	require.NoError(t, err)

	return rows
}

// observedLogger returns a debug-level logger and the sink capturing its entries.
func observedLogger() (*logger.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return logger.FromZap(zap.New(core)), logs
}
