// SPDX-License-Identifier: MIT

// Package source fetches headerless CSV tables from http(s) URLs or local files.
package source

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"resty.dev/v3"

	"github.com/katalvlaran/famplex/logger"
)

// Default FamPlex table locations.
const (
	RelationsURL    = "https://raw.githubusercontent.com/sorgerlab/famplex/master/relations.csv"
	EquivalencesURL = "https://raw.githubusercontent.com/sorgerlab/famplex/master/equivalences.csv"
)

// Sentinel errors returned by Load.
var (
	// ErrEmptyLocation indicates Load was called with an empty location.
	ErrEmptyLocation = errors.New("source: empty location")

	// ErrUnexpectedStatus indicates a non-2xx HTTP response.
	ErrUnexpectedStatus = errors.New("source: unexpected HTTP status")
)

// Loader returns the records of a CSV table.
type Loader interface {
	Load(ctx context.Context, location string) ([][]string, error)
}

// CSVLoader is the default Loader.
type CSVLoader struct {
	client *resty.Client
	log    *logger.Logger
}

// Option configures a CSVLoader.
type Option func(*CSVLoader)

// WithTimeout bounds each HTTP request. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(l *CSVLoader) {
		if d > 0 {
			l.client.SetTimeout(d)
		}
	}
}

// WithLogger sets the logger used for fetch diagnostics.
func WithLogger(log *logger.Logger) Option {
	return func(l *CSVLoader) {
		if log != nil {
			l.log = log
		}
	}
}

// New returns a CSVLoader. Requests are not retried.
func New(opts ...Option) *CSVLoader {
	l := &CSVLoader{client: resty.New(), log: logger.Nop()}
	l.client.SetRetryCount(0)
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Close releases the HTTP client.
func (l *CSVLoader) Close() error {
	return l.client.Close()
}

// Load reads location, an http(s) URL or a file path, and parses it as CSV.
// Rows may differ in width; callers validate columns.
func (l *CSVLoader) Load(ctx context.Context, location string) ([][]string, error) {
	if location == "" {
		return nil, ErrEmptyLocation
	}

	var (
		body []byte
		err  error
	)
	if isRemote(location) {
		body, err = l.fetch(ctx, location)
	} else {
		body, err = os.ReadFile(location)
	}
	if err != nil {
		return nil, fmt.Errorf("source: load %s: %w", location, err)
	}

	records, err := Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("source: parse %s: %w", location, err)
	}
	l.log.Debug("table loaded", "location", location, "records", len(records), "bytes", len(body))

	return records, nil
}

func (l *CSVLoader) fetch(ctx context.Context, url string) ([]byte, error) {
	start := time.Now()
	resp, err := l.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, err
	}
	if resp.IsError() || resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode())
	}
	l.log.Debug("fetched", "url", url, "status", resp.StatusCode(), "elapsed", time.Since(start))

	return resp.Bytes(), nil
}

func isRemote(location string) bool {
	lower := strings.ToLower(location)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Parse reads every CSV record from r. There is no header row.
func Parse(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	return cr.ReadAll()
}
