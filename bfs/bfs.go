// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/valvenet/core"
)

// queueItem pairs a valve index with its BFS depth.
type queueItem struct {
	valve int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	net     *core.Network
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited []bool
	res     *Result
}

// BFS runs breadth-first search on net starting from valve start.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any OnVisit/context error.
// On error the partial Result is returned alongside it.
func BFS(net *core.Network, start int, opts ...Option) (*Result, error) {
	if net == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := net.Len()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: index %d", ErrStartVertexNotFound, start)
	}

	w := &walker{
		net:     net,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}

	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

// enqueue marks valve visited at depth d and records its parent (-1 for root).
func (w *walker) enqueue(valve, d, parent int) {
	w.visited[valve] = true
	w.res.Depth[valve] = d
	if parent >= 0 {
		w.res.Parent[valve] = parent
	}
	w.queue = append(w.queue, queueItem{valve: valve, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.valve)
		if err := w.opts.OnVisit(item.valve, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at valve %d: %w", item.valve, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors enqueues every unseen neighbour within MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) error {
	if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
		return nil
	}
	nbrs, err := w.net.Neighbors(item.valve)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %d: %w", item.valve, err)
	}
	for _, nb := range nbrs {
		if w.visited[nb] {
			continue
		}
		w.enqueue(nb, item.depth+1, item.valve)
	}

	return nil
}
