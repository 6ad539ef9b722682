// SPDX-License-Identifier: MIT

// Command famplex2bel downloads the FamPlex relations and equivalences tables
// and writes them as a single BEL document.
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/famplex/bel"
	"github.com/katalvlaran/famplex/belio"
	"github.com/katalvlaran/famplex/logger"
	"github.com/katalvlaran/famplex/manager"
	"github.com/katalvlaran/famplex/source"
	"github.com/katalvlaran/famplex/tracing"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			stop()
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// run executes one conversion. BEL (or the summary or member list) goes to stdout unless an
// output file is configured; usage text and spans go to stderr.
func run(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}
	if opts == nil {
		return nil
	}
	cfg := opts.cfg

	base, err := logger.New(cfg.GetLogLevel(), cfg.GetLogFormat())
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	defer base.Sync()
	log := base.With("run_id", uuid.NewString())

	shutdown, err := tracing.Init(ctx, stderr, cfg.Trace)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		if serr := shutdown(context.Background()); serr != nil {
			log.Warn("tracing shutdown failed", "error", serr)
		}
	}()

	ctx, span := tracing.Tracer().Start(ctx, "famplex2bel")
	defer span.End()

	loader := source.New(source.WithTimeout(cfg.GetTimeout()), source.WithLogger(log))
	defer func() { _ = loader.Close() }()

	mopts := []manager.Option{
		manager.WithLogger(log),
		manager.WithRelationsURL(cfg.GetRelationsURL()),
		manager.WithEquivalencesURL(cfg.GetEquivalencesURL()),
	}
	if cfg.Strict {
		mopts = append(mopts, manager.WithStrictKinds())
	}
	m, err := manager.New(ctx, loader, mopts...)
	if err != nil {
		return err
	}
	g := m.Graph()

	if cfg.Enrich {
		_, espan := tracing.Tracer().Start(ctx, "enrich")
		n, err := m.Enrich(g)
		espan.SetAttributes(attribute.Int("famplex.rows_applied", n))
		espan.End()
		if err != nil {
			return err
		}
		log.Info("graph enriched", "rows", n)
	}

	if cfg.Normalize {
		_, nspan := tracing.Tracer().Start(ctx, "normalize")
		n, err := m.NormalizeTerms(g, true)
		nspan.SetAttributes(attribute.Int("famplex.normalized", n))
		nspan.End()
		if err != nil {
			return err
		}
		log.Info("terms normalized", "nodes", n)
	}

	if cfg.Check {
		cycles, err := manager.CheckGraph(ctx, g)
		if err != nil {
			return err
		}
		for _, c := range cycles {
			log.Warn("hierarchy cycle", "terms", c)
		}
		log.Info("hierarchy checked", "cycles", len(cycles))
	}

	var buf bytes.Buffer
	switch {
	case opts.members != "":
		if err := writeMembers(ctx, &buf, m, opts.members); err != nil {
			return err
		}
	case opts.summary:
		enc := yaml.NewEncoder(&buf)
		if err := enc.Encode(m.Summarize()); err != nil {
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
	default:
		_, wspan := tracing.Tracer().Start(ctx, "write")
		err := belio.Write(&buf, g)
		wspan.End()
		if err != nil {
			return err
		}
	}

	if cfg.WritesStdout() {
		_, err = stdout.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(cfg.Output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", cfg.Output, err)
	}
	log.Info("output written", "path", cfg.Output, "bytes", buf.Len())

	return nil
}

// writeMembers prints one BEL term per line for everything below the nodes
// named by ref, a NAMESPACE:NAME pair.
func writeMembers(ctx context.Context, w io.Writer, m *manager.Manager, ref string) error {
	ns, name, _ := strings.Cut(ref, ":")
	roots := m.Find(ns, name)
	if len(roots) == 0 {
		return fmt.Errorf("%w: %s", bel.ErrNodeNotFound, ref)
	}
	for _, root := range roots {
		members, err := m.Members(ctx, root)
		if err != nil {
			return err
		}
		for _, n := range members {
			if _, err := fmt.Fprintln(w, n); err != nil {
				return err
			}
		}
	}

	return nil
}
