// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/famplex/config"
)

// ExitError carries the process exit code for a failed run.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// options is the resolved configuration of one run.
type options struct {
	cfg     *config.Config
	summary bool
	// members is a NAMESPACE:NAME pair whose members are listed instead of BEL.
	members string
}

// parseArgs reads flags, loads the optional config file and lets explicitly set
// flags override file values. It returns (nil, nil) when help was requested.
func parseArgs(args []string, output io.Writer) (*options, error) {
	fs := flag.NewFlagSet("famplex2bel", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
famplex2bel - convert the FamPlex relations and equivalences tables to BEL.

Usage:
  famplex2bel [options]

Options:
`)
		fs.PrintDefaults()
	}

	var (
		file            = fs.String("file", "", "Write BEL to this file instead of standard output.")
		f               = fs.String("f", "", "Write BEL to this file (shorthand).")
		configPath      = fs.String("config", "", "Path to a YAML configuration file.")
		relationsURL    = fs.String("relations-url", "", "Location of relations.csv (URL or path).")
		equivalencesURL = fs.String("equivalences-url", "", "Location of equivalences.csv (URL or path).")
		logLevel        = fs.String("log-level", "", "Logging level: debug, info, warn or error.")
		logFormat       = fs.String("log-format", "", "Log output format: console or json.")
		timeout         = fs.Duration("timeout", 0, "Timeout for each HTTP fetch (e.g. 30s).")
		normalize       = fs.Bool("normalize", false, "Give FPLX proteins an identifier before writing.")
		enrich          = fs.Bool("enrich", false, "Enrich the graph with FamPlex relations of its nodes.")
		strict          = fs.Bool("strict", false, "Fail on relation kinds other than isa and partof.")
		check           = fs.Bool("check", false, "Log isA/hasMember cycles.")
		summary         = fs.Bool("summary", false, "Print node and edge counts instead of BEL.")
		members         = fs.String("members", "", "List the members of a family, e.g. FPLX:RAF, instead of BEL.")
		traceFlag       = fs.Bool("trace", false, "Print OpenTelemetry spans to standard error.")
	)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil
		}
		return nil, &ExitError{Code: 2, Message: err.Error()}
	}
	if fs.NArg() > 0 {
		return nil, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", fs.Arg(0))}
	}

	cfg := &config.Config{}
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return nil, &ExitError{Code: 2, Message: err.Error()}
		}
		cfg = loaded
	}

	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "file":
			cfg.Output = *file
		case "f":
			cfg.Output = *f
		case "relations-url":
			cfg.RelationsURL = *relationsURL
		case "equivalences-url":
			cfg.EquivalencesURL = *equivalencesURL
		case "log-level":
			cfg.LogLevel = strings.ToLower(*logLevel)
		case "log-format":
			cfg.LogFormat = strings.ToLower(*logFormat)
		case "timeout":
			cfg.Timeout = timeout.String()
		case "normalize":
			cfg.Normalize = *normalize
		case "enrich":
			cfg.Enrich = *enrich
		case "strict":
			cfg.Strict = *strict
		case "check":
			cfg.Check = *check
		case "trace":
			cfg.Trace = *traceFlag
		}
	})

	if *timeout < 0 {
		return nil, &ExitError{Code: 2, Message: "invalid timeout: must not be negative"}
	}
	if err := cfg.Validate(); err != nil {
		return nil, &ExitError{Code: 2, Message: err.Error()}
	}
	if *members != "" {
		if ns, name, ok := strings.Cut(*members, ":"); !ok || ns == "" || name == "" {
			return nil, &ExitError{Code: 2, Message: fmt.Sprintf("invalid members %q: want NAMESPACE:NAME", *members)}
		}
	}

	return &options{cfg: cfg, summary: *summary, members: *members}, nil
}
