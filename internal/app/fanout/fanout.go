// Package fanout runs a function over a slice with a fixed number of
// workers and returns the results in input order.
package fanout

import (
	"context"
	"fmt"
	"sync"
)

// Result is the outcome for one item: Value on success, Err otherwise.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item using at most workers goroutines (values
// below 1 mean 1). Items not yet started when ctx is done get ctx.Err()
// and fn is never called for them. A panic in fn becomes that item's
// error. Run returns once every item has a result.
func Run[T, R any](ctx context.Context, workers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	workers = min(max(workers, 1), len(items))

	next := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for idx := range next {
				results[idx] = call(ctx, items[idx], fn)
			}
		}()
	}

	for i := range items {
		if ctx.Err() != nil {
			results[i] = Result[R]{Err: ctx.Err()}
			continue
		}
		select {
		case next <- i:
		case <-ctx.Done():
			results[i] = Result[R]{Err: ctx.Err()}
		}
	}
	close(next)
	wg.Wait()

	return results
}

func call[T, R any](ctx context.Context, item T, fn func(context.Context, T) (R, error)) (res Result[R]) {
	defer func() {
		if p := recover(); p != nil {
			res = Result[R]{Err: fmt.Errorf("fanout: panic: %v", p)}
		}
	}()

	v, err := fn(ctx, item)
	return Result[R]{Value: v, Err: err}
}
