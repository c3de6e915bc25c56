package utils

import (
	"context"
	"sync"
)

// ParallelForEach calls fn for every item using at most workers goroutines.
// The returned slice holds fn's error for each index. Items not yet started
// when ctx is cancelled are skipped and report ctx.Err().
func ParallelForEach[T any](ctx context.Context, items []T, workers int, fn func(ctx context.Context, idx int, item T) error) []error {
	errs := make([]error, len(items))
	if len(items) == 0 {
		return errs
	}
	if workers <= 0 {
		workers = 1
	}
	if workers > len(items) {
		workers = len(items)
	}

	taskChan := make(chan int)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range taskChan {
				errs[idx] = fn(ctx, idx, items[idx])
			}
		}()
	}

	next := 0
submit:
	for ; next < len(items); next++ {
		select {
		case <-ctx.Done():
			break submit
		case taskChan <- next:
		}
	}
	close(taskChan)
	wg.Wait()

	for ; next < len(items); next++ {
		errs[next] = ctx.Err()
	}
	return errs
}

// FirstError returns the first non-nil error from a slice of errors
func FirstError(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
