// SPDX-License-Identifier: MIT

package search

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/valvenet/core"
	"github.com/katalvlaran/valvenet/matrix"
	"github.com/katalvlaran/valvenet/memo"
)

// Engine evaluates release plans over one network. The network and matrix
// are read-only; the memo table grows across calls and is never evicted.
type Engine struct {
	net    *core.Network
	valves []core.Valve
	dist   *matrix.Distance

	candidates []int // flow valves, ascending index
	bit        []int // valve index → dense bit position, -1 if no flow

	cache   memo.Cache
	workers int
	log     zerolog.Logger
}

// New prepares an Engine for net using the precomputed hop matrix dist.
//
// Errors:
//   - ErrNilNetwork, ErrDistanceMismatch for inconsistent inputs.
//   - ErrTooManyValves if more than MaxFlowValves valves have flow.
//   - ErrOptionViolation for invalid options.
func New(net *core.Network, dist *matrix.Distance, opts ...Option) (*Engine, error) {
	if net == nil || dist == nil {
		return nil, ErrNilNetwork
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	valves := net.Valves()
	if dist.Order() != len(valves) {
		return nil, fmt.Errorf("%w: %d valves, order %d", ErrDistanceMismatch, len(valves), dist.Order())
	}

	candidates := net.FlowValves()
	if len(candidates) > MaxFlowValves {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyValves, len(candidates), MaxFlowValves)
	}
	bit := make([]int, len(valves))
	for i := range bit {
		bit[i] = -1
	}
	for pos, v := range candidates {
		bit[v] = pos
	}

	cache := o.Cache
	switch {
	case cache == nil && o.Workers > 1:
		sh, err := memo.NewSharded(memo.DefaultShards)
		if err != nil {
			return nil, err
		}
		cache = sh
	case cache == nil:
		cache = memo.NewMap(0)
	default:
		if _, ok := cache.(*memo.Map); ok && o.Workers > 1 {
			return nil, fmt.Errorf("%w: memo.Map is not safe for %d workers", ErrOptionViolation, o.Workers)
		}
	}

	return &Engine{
		net:        net,
		valves:     valves,
		dist:       dist,
		candidates: candidates,
		bit:        bit,
		cache:      cache,
		workers:    o.Workers,
		log:        o.Logger,
	}, nil
}

// Candidates returns the flow valve indices the search may jump to.
func (e *Engine) Candidates() []int {
	out := make([]int, len(e.candidates))
	copy(out, e.candidates)

	return out
}

// Open returns s with valve marked open. Valves without flow have no bit
// and leave s unchanged.
func (e *Engine) Open(s OpenedSet, valve int) OpenedSet {
	if valve < 0 || valve >= len(e.bit) || e.bit[valve] < 0 {
		return s
	}

	return s | 1<<uint(e.bit[valve])
}

// IsOpen reports whether valve is marked open in s.
func (e *Engine) IsOpen(s OpenedSet, valve int) bool {
	if valve < 0 || valve >= len(e.bit) || e.bit[valve] < 0 {
		return false
	}

	return s&(1<<uint(e.bit[valve])) != 0
}

// Stats exposes the memo table counters.
func (e *Engine) Stats() memo.Stats {
	return e.cache.Stats()
}

// BestFlow returns the maximum pressure releasable from valve with minutes
// left and the valves in opened already open.
//
// Errors: ErrValveOutOfRange, ErrNegativeMinutes.
func (e *Engine) BestFlow(valve, minutes int, opened OpenedSet) (int, error) {
	if valve < 0 || valve >= len(e.valves) {
		return 0, fmt.Errorf("%w: %d", ErrValveOutOfRange, valve)
	}
	if minutes < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeMinutes, minutes)
	}

	return e.best(valve, minutes, opened), nil
}

// best is the memoized recursion behind BestFlow.
func (e *Engine) best(cur, minutes int, opened OpenedSet) int {
	if minutes <= 1 {
		return 0
	}
	key := memo.Key{Valve: cur, Minutes: minutes, Opened: uint64(opened)}
	if v, ok := e.cache.Get(key); ok {
		return v
	}

	res, _ := e.moveOn(cur, minutes, opened)
	if gain, left, next, ok := e.openHere(cur, minutes, opened); ok {
		rest, _ := e.moveOn(cur, left, next)
		if gain+rest > res {
			res = gain + rest
		}
	}

	e.cache.Put(key, res)

	return res
}

// openHere reports the immediate reward of opening cur now, the minutes
// left afterwards and the updated set. ok is false when cur has no flow or
// is already open.
func (e *Engine) openHere(cur, minutes int, opened OpenedSet) (gain, left int, next OpenedSet, ok bool) {
	b := e.bit[cur]
	if b < 0 || opened&(1<<uint(b)) != 0 {
		return 0, minutes, opened, false
	}
	left = minutes - 1

	return left * e.valves[cur].FlowRate, left, opened | 1<<uint(b), true
}

// moveOn returns the best value over every jump from cur to another flow
// valve that still leaves time to act, and the first valve achieving it
// (-1 when no jump qualifies).
func (e *Engine) moveOn(cur, minutes int, opened OpenedSet) (best, next int) {
	next = -1
	for _, v := range e.candidates {
		if v == cur {
			continue
		}
		d := e.dist.Hops(cur, v)
		if d+1 >= minutes {
			continue
		}
		if got := e.best(v, minutes-d, opened); next < 0 || got > best {
			best, next = got, v
		}
	}

	return best, next
}
