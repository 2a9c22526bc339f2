// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

// Process fans items out to workerCount goroutines, invoking process for
// each item. The first process error cancels the remaining work, fires
// onCancel and is returned.
func Process[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) error,
	onCancel func(),
) error {
	if len(items) == 0 {
		return ctx.Err()
	}
	if workerCount < 1 {
		workerCount = 1
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tasks := make(chan T, workerCount)
	errs := make(chan error, workerCount)

	var wg sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(ctx, tasks, errs, process, onCancel, cancel)
		}()
	}

	go func() {
		defer close(tasks)
		for _, item := range items {
			select {
			case <-ctx.Done():
				return
			case tasks <- item:
			}
		}
	}()

	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			return err
		}
	}

	return ctx.Err()
}

func worker[T any](
	ctx context.Context,
	tasks <-chan T,
	errs chan<- error,
	process func(context.Context, T) error,
	onCancel func(),
	cancel context.CancelFunc,
) {
	for {
		select {
		case <-ctx.Done():
			return
		case item, ok := <-tasks:
			if !ok {
				return
			}
			if err := process(ctx, item); err != nil {
				select {
				case errs <- err:
				default:
				}
				if onCancel != nil {
					onCancel()
				}
				cancel()
				return
			}
		}
	}
}
