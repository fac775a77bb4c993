// SPDX-License-Identifier: MIT

package search

import (
	"context"
	"fmt"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/sourcegraph/conc/pool"

	"github.com/katalvlaran/valvenet/bfs"
	"github.com/katalvlaran/valvenet/memo"
)

// branch is one root-level subproblem handed to a worker.
type branch struct {
	valve   int
	minutes int
	opened  OpenedSet
	bonus   int // pressure already banked before the jump
}

// Solve computes the best release from start with the full budget and an
// empty opened set, then replays the cached values into a Plan.
//
// Errors: ErrValveOutOfRange, ErrNegativeMinutes, or ctx.Err() if the
// context ends before the search completes.
func (e *Engine) Solve(ctx context.Context, start, minutes int) (Result, error) {
	if start < 0 || start >= len(e.valves) {
		return Result{}, fmt.Errorf("%w: %d", ErrValveOutOfRange, start)
	}
	if minutes < 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrNegativeMinutes, minutes)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	began := time.Now()

	var (
		pressure int
		err      error
	)
	if e.workers > 1 {
		pressure, err = e.solveParallel(ctx, start, minutes)
	} else {
		pressure = e.best(start, minutes, 0)
		err = ctx.Err()
	}
	if err != nil {
		return Result{}, err
	}

	stranded, err := e.stranded(ctx, start, minutes)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Pressure: pressure,
		Plan:     e.replay(start, minutes, 0, minutes),
		States:   e.cache.Len(),
		Stranded: stranded,
	}

	st := e.cache.Stats()
	e.log.Debug().
		Str("start", e.valves[start].Label).
		Int("minutes", minutes).
		Int("workers", e.workers).
		Int("pressure", res.Pressure).
		Int("states", res.States).
		Int64("hits", st.Hits).
		Int64("misses", st.Misses).
		Int("stranded", res.Stranded).
		Dur("elapsed", time.Since(began)).
		Msg("solve finished")

	return res, nil
}

// solveParallel expands the root state by hand and evaluates each child on
// the worker pool. The combination mirrors best exactly.
func (e *Engine) solveParallel(ctx context.Context, start, minutes int) (int, error) {
	if minutes <= 1 {
		return 0, nil
	}
	key := memo.Key{Valve: start, Minutes: minutes}
	if v, ok := e.cache.Get(key); ok {
		return v, nil
	}

	var (
		branches []branch
		floor    int // value reachable without any jump
	)
	branches = e.appendJumps(branches, start, minutes, 0, 0)
	if gain, left, next, ok := e.openHere(start, minutes, 0); ok {
		floor = gain
		branches = e.appendJumps(branches, start, left, next, gain)
	}

	p := pool.NewWithResults[int]().
		WithContext(ctx).
		WithCancelOnError().
		WithMaxGoroutines(e.workers)
	for _, b := range branches {
		b := b
		p.Go(func(ctx context.Context) (int, error) {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
			return b.bonus + e.best(b.valve, b.minutes, b.opened), nil
		})
	}
	values, err := p.Wait()
	if err != nil {
		return 0, err
	}
	if err = ctx.Err(); err != nil {
		return 0, err
	}

	best := floor
	for _, v := range values {
		if v > best {
			best = v
		}
	}
	e.cache.Put(key, best)

	return best, nil
}

// appendJumps adds one branch per flow valve reachable from cur in time.
func (e *Engine) appendJumps(dst []branch, cur, minutes int, opened OpenedSet, bonus int) []branch {
	for _, v := range e.candidates {
		if v == cur {
			continue
		}
		d := e.dist.Hops(cur, v)
		if d+1 >= minutes {
			continue
		}
		dst = append(dst, branch{valve: v, minutes: minutes - d, opened: opened, bonus: bonus})
	}

	return dst
}

// replay walks cached values from a solved state and records each opening
// on the optimal path. budget is the minute count the plan is reported in.
func (e *Engine) replay(cur, minutes int, opened OpenedSet, budget int) []Step {
	var plan []Step
	target := e.best(cur, minutes, opened)

	for target > 0 {
		if gain, left, next, ok := e.openHere(cur, minutes, opened); ok {
			if rest, to := e.moveOn(cur, left, next); gain+rest == target {
				plan = append(plan, Step{
					Valve:    cur,
					Label:    e.valves[cur].Label,
					Minute:   budget - left,
					Released: gain,
				})
				if rest == 0 || to < 0 {
					break
				}
				target, opened = rest, next
				minutes = left - e.dist.Hops(cur, to)
				cur = to
				continue
			}
		}

		rest, to := e.moveOn(cur, minutes, opened)
		if to < 0 || rest != target {
			break
		}
		minutes -= e.dist.Hops(cur, to)
		cur = to
	}

	return plan
}

// stranded counts flow valves whose hop distance from start leaves no
// minute to open them.
func (e *Engine) stranded(ctx context.Context, start, minutes int) (int, error) {
	res, err := bfs.BFS(e.net, start, bfs.WithContext(ctx))
	if err != nil {
		return 0, fmt.Errorf("search: reachability from %d: %w", start, err)
	}

	reach := roaring.New()
	for v, d := range res.Depth {
		if d+1 < minutes {
			reach.Add(uint32(v))
		}
	}
	flow := roaring.New()
	for _, v := range e.candidates {
		flow.Add(uint32(v))
	}

	return int(flow.GetCardinality() - flow.AndCardinality(reach)), nil
}
