// Package batcher provides a generic buffered batch processor with rate limiting.
package batcher

import (
	"context"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// Batcher buffers items and flushes them either by size or interval.
type Batcher[T any] struct {
	flushCallback func(context.Context, []T) error
	items         chan T
	flushSize     int
	flushInterval time.Duration
	rl            ratelimit.Limiter
	logger        *zap.Logger

	wg   sync.WaitGroup
	stop chan struct{}
}

// New constructs a Batcher. A non-positive rps disables rate limiting and a
// non-positive flushSize falls back to flushing every item.
func New[T any](logger *zap.Logger, flushCallback func(context.Context, []T) error, flushSize int, flushInterval time.Duration, rps int) *Batcher[T] {
	if flushSize < 1 {
		flushSize = 1
	}

	rl := ratelimit.NewUnlimited()
	if rps > 0 {
		rl = ratelimit.New(rps)
	}

	return &Batcher[T]{
		logger:        logger,
		flushCallback: flushCallback,
		items:         make(chan T, flushSize*2),
		flushSize:     flushSize,
		flushInterval: flushInterval,
		rl:            rl,
		stop:          make(chan struct{}),
	}
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop stops the background flushing loop.
func (b *Batcher[T]) Stop() {
	close(b.stop)
	b.wg.Wait()
}

// Add queues an item for batching, respecting context cancellation.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return context.Canceled
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case b.items <- item:
		return nil
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.flushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.flushSize)

	for {
		select {
		case <-ctx.Done():
			b.flush(ctx, buf)
			return

		case <-b.stop:
			b.flush(ctx, buf)
			return

		case item := <-b.items:
			buf = append(buf, item)
			if len(buf) >= b.flushSize {
				buf = b.flush(ctx, buf)
			}

		case <-ticker.C:
			buf = b.flush(ctx, buf)
		}
	}
}

// flush hands the buffered items to the callback and returns the buffer
// reset for reuse. A failed flush drops the batch after logging it.
func (b *Batcher[T]) flush(ctx context.Context, buf []T) []T {
	if len(buf) == 0 {
		return buf
	}

	b.rl.Take()
	if err := b.flushCallback(ctx, buf); err != nil {
		b.logger.Error("batch not flushed", zap.Int("items", len(buf)), zap.Error(err))
	} else {
		b.logger.Debug("batch flushed", zap.Int("items", len(buf)))
	}
	return buf[:0]
}
