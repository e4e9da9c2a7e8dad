package async

import (
	"context"
	"fmt"
	"sync"
)

type task[In any] struct {
	index int
	item  In
}

// Pool runs work over items with at most workers concurrent invocations and
// returns the outputs in input order: out[i] is work(items[i], i).
//
// Every item is processed before Pool returns, even when an earlier item has
// already failed; there is no cancellation primitive beyond ctx itself. When
// one or more invocations fail, the failure with the lowest index is returned
// (wrapped with that index) and no partial output slice is exposed.
func Pool[In, Out any](ctx context.Context, workers int, items []In,
	work func(ctx context.Context, item In, index int) (Out, error)) ([]Out, error) {

	if workers <= 0 || len(items) == 0 {
		return []Out{}, nil
	}

	settled := PoolSettled(ctx, workers, items, work)

	out := make([]Out, len(settled))
	for i, r := range settled {
		if !r.OK() {
			return nil, fmt.Errorf("item %d: %w", i, r.Err())
		}
		out[i] = r.Value()
	}
	return out, nil
}

// PoolSettled runs work over items with at most workers concurrent
// invocations and returns one Result per item, in input order. It never
// short-circuits: failures settle their slot and processing continues.
func PoolSettled[In, Out any](ctx context.Context, workers int, items []In,
	work func(ctx context.Context, item In, index int) (Out, error)) []Result[Out] {

	if workers <= 0 || len(items) == 0 {
		return []Result[Out]{}
	}
	if workers > len(items) {
		workers = len(items)
	}

	// The buffered channel is the claim cursor over the task list:
	// receiving from it is the atomic fetch-and-increment, so no two
	// workers ever claim the same index.
	claims := make(chan task[In], len(items))
	for i, item := range items {
		claims <- task[In]{index: i, item: item}
	}
	close(claims)

	settled := make([]Result[Out], len(items))

	wg := &sync.WaitGroup{}
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for t := range claims {
				if ctx.Err() != nil {
					settled[t.index] = SettleErr[Out](ctx.Err())
					continue
				}

				if v, err := work(ctx, t.item, t.index); err != nil {
					settled[t.index] = SettleErr[Out](err)
				} else {
					settled[t.index] = Settle(v)
				}
			}
		}()
	}
	wg.Wait()

	return settled
}
