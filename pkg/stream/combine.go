package stream

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"
)

type slotEvent[T any] struct {
	slot  int
	value T
	done  bool
}

// latestArena keeps the most recent value of every source slot.
type latestArena[T any] struct {
	values  []T
	ready   []bool
	pending int
}

func newLatestArena[T any](n int) *latestArena[T] {
	return &latestArena[T]{
		values:  make([]T, n),
		ready:   make([]bool, n),
		pending: n,
	}
}

// set stores v for slot and reports whether every slot has a value.
func (a *latestArena[T]) set(slot int, v T) bool {
	a.values[slot] = v
	if !a.ready[slot] {
		a.ready[slot] = true
		a.pending--
	}
	return a.pending == 0
}

func (a *latestArena[T]) snapshot() []T {
	return slices.Clone(a.values)
}

// CombineLatest runs every source concurrently and emits project applied to the
// latest value of each source, in source order, every time any source emits.
//
// Nothing is emitted until every source has emitted once. If a source completes
// without emitting, the combination completes. Otherwise it completes when every
// source has completed. The first source failure cancels the other sources and
// is returned. project and yield are only called from the calling goroutine, and
// every source has stopped by the time the stream returns.
func CombineLatest[T, R any](sources []Stream[T], project func([]T) R) Stream[R] {
	return func(ctx context.Context, yield func(R) bool) error {
		if len(sources) == 0 {
			return ctx.Err()
		}

		parent := ctx
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		g, gctx := errgroup.WithContext(ctx)
		events := make(chan slotEvent[T])
		send := func(ev slotEvent[T]) bool {
			select {
			case events <- ev:
				return true
			case <-gctx.Done():
				return false
			}
		}

		for i, src := range sources {
			g.Go(func() error {
				err := src(gctx, func(v T) bool {
					return send(slotEvent[T]{slot: i, value: v})
				})
				if err != nil {
					return err
				}
				send(slotEvent[T]{slot: i, done: true})
				return nil
			})
		}

		stop := func() error {
			cancel()
			return g.Wait()
		}

		arena := newLatestArena[T](len(sources))
		completed := 0
		for completed < len(sources) {
			select {
			case ev := <-events:
				if ev.done {
					if !arena.ready[ev.slot] {
						return ignoreCanceled(stop())
					}
					completed++
					continue
				}
				if arena.set(ev.slot, ev.value) {
					if !yield(project(arena.snapshot())) {
						return ignoreCanceled(stop())
					}
				}
			case <-gctx.Done():
				if err := stop(); err != nil {
					return err
				}
				return parent.Err()
			}
		}
		return g.Wait()
	}
}
