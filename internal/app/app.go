// SPDX-License-Identifier: MIT

// Package app is the valvenet command line: flags and config in, the
// maximum releasable pressure out.
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/valvenet/config"
	"github.com/katalvlaran/valvenet/internal/logging"
	"github.com/katalvlaran/valvenet/matrix"
	"github.com/katalvlaran/valvenet/parse"
	"github.com/katalvlaran/valvenet/search"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ErrStartNotFound reports a start label absent from the input.
var ErrStartNotFound = errors.New("app: start valve not found")

const usageHeader = "usage: valvenet [flags] <input>\n\nflags:\n"

// Run parses argv, solves the input it names and writes the answer to
// stdout. Diagnostics and errors go to stderr.
func Run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := pflag.NewFlagSet("valvenet", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	config.Flags(fs)

	usage := func(w io.Writer) {
		_, _ = io.WriteString(w, usageHeader)
		fs.SetOutput(w)
		fs.PrintDefaults()
	}

	if err := fs.Parse(argv); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			usage(outw)
			return ExitOK
		}
		_, _ = fmt.Fprintln(stderr, err)
		usage(stderr)
		return ExitUsage
	}
	if fs.NArg() != 1 {
		_, _ = fmt.Fprintf(stderr, "expected exactly one input path, got %d\n", fs.NArg())
		usage(stderr)
		return ExitUsage
	}

	cfg, err := config.Load(fs)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		if errors.Is(err, config.ErrInvalid) {
			usage(stderr)
			return ExitUsage
		}
		return ExitFailure
	}

	log, err := logging.New(stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitUsage
	}

	res, err := solve(ctx, log, fs.Arg(0), cfg)
	if err != nil {
		log.Error().Err(err).Str("input", fs.Arg(0)).Msg("run failed")
		_, _ = fmt.Fprintln(stderr, err)
		return ExitFailure
	}

	_, _ = fmt.Fprintf(outw, "Part 1: %d\n", res.Pressure)
	if cfg.Plan {
		for _, s := range res.Plan {
			_, _ = fmt.Fprintf(outw, "minute %2d: open %s (+%d)\n", s.Minute, s.Label, s.Released)
		}
	}
	if err := outw.Flush(); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitFailure
	}

	return ExitOK
}

func solve(ctx context.Context, log zerolog.Logger, path string, cfg *config.Config) (search.Result, error) {
	net, err := parse.File(path)
	if err != nil {
		return search.Result{}, err
	}
	log.Info().Str("input", path).Int("valves", net.Len()).Msg("parsed")

	start, ok := net.Lookup(cfg.Start)
	if !ok {
		return search.Result{}, fmt.Errorf("%w: %q", ErrStartNotFound, cfg.Start)
	}

	dist, err := matrix.FromNetwork(net)
	if err != nil {
		return search.Result{}, err
	}
	if cfg.Verify {
		if err := matrix.Validate(dist); err != nil {
			return search.Result{}, err
		}
		log.Info().Msg("distance matrix verified")
	}

	eng, err := search.New(net, dist,
		search.WithWorkers(cfg.Workers),
		search.WithLogger(log),
	)
	if err != nil {
		return search.Result{}, err
	}

	return eng.Solve(ctx, start, cfg.Minutes)
}
