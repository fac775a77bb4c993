// SPDX-License-Identifier: MIT
// Package search: errors, options and result types.

package search

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/valvenet/memo"
)

// MaxFlowValves is the number of flow valves an OpenedSet can address.
const MaxFlowValves = 64

// Sentinel errors returned by the engine.
var (
	// ErrNilNetwork indicates a nil network or distance matrix.
	ErrNilNetwork = errors.New("search: network is nil")

	// ErrDistanceMismatch indicates a matrix whose order differs from the valve count.
	ErrDistanceMismatch = errors.New("search: distance matrix does not match network")

	// ErrTooManyValves indicates more flow valves than an OpenedSet can hold.
	ErrTooManyValves = errors.New("search: too many flow-producing valves")

	// ErrValveOutOfRange indicates a valve index outside the network.
	ErrValveOutOfRange = errors.New("search: valve index out of range")

	// ErrNegativeMinutes indicates a negative time budget.
	ErrNegativeMinutes = errors.New("search: minutes must be non-negative")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// OpenedSet is a bitmask over dense flow-valve positions.
// Build values with Engine.Open; the zero value means nothing is open.
type OpenedSet uint64

// Step is one valve opening in a plan.
type Step struct {
	Valve    int    // valve index
	Label    string // valve label
	Minute   int    // minute (1-based) at which the valve is fully open
	Released int    // pressure this valve releases until the budget ends
}

// Result is the outcome of Solve.
type Result struct {
	// Pressure is the maximum total release.
	Pressure int

	// Plan lists the openings that achieve Pressure, in time order.
	// The Released fields sum to Pressure.
	Plan []Step

	// States is the number of memoized states after the solve.
	States int

	// Stranded counts flow valves too far from the start to ever be opened.
	Stranded int
}

// Option configures an Engine.
type Option func(*Options)

// Options holds Engine configuration.
type Options struct {
	// Workers bounds the goroutines Solve uses for the root expansion.
	Workers int

	// Cache overrides the memo table. It must be safe for concurrent use
	// when Workers > 1.
	Cache memo.Cache

	// Logger receives solve diagnostics at debug level.
	Logger zerolog.Logger

	err error
}

// DefaultOptions returns one worker, an engine-chosen cache and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Workers: 1,
		Logger:  zerolog.Nop(),
	}
}

// WithWorkers sets the number of workers; n < 1 is an ErrOptionViolation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithCache installs a caller-provided memo table.
func WithCache(c memo.Cache) Option {
	return func(o *Options) {
		if c != nil {
			o.Cache = c
		}
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
