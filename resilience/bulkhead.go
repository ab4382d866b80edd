// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package resilience

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
)

// BulkheadConfig configures a bulkhead.
type BulkheadConfig struct {
	// MaxConcurrent is the maximum number of concurrently admitted
	// operations. Default: 10.
	MaxConcurrent int

	// MaxWait is how long an operation may wait for a slot once the
	// bulkhead is saturated. Default: 0 (reject immediately).
	MaxWait time.Duration

	// MaxQueue bounds the number of operations waiting for a slot;
	// arrivals beyond it are rejected without waiting. Default: 0
	// (no bound beyond MaxWait).
	MaxQueue int

	// Fair admits waiters in FIFO order via a weighted semaphore.
	// When false, waiters contend on a buffered channel in no
	// particular order.
	Fair bool
}

// Bulkhead limits concurrent operations so one overloaded dependency
// cannot drain the caller of goroutines.
type Bulkhead struct {
	config BulkheadConfig
	sem    *semaphore.Weighted
	slots  chan struct{}

	mu        sync.Mutex
	active    int
	maxActive int
	waiting   int
	rejected  int64
}

// NewBulkhead creates a bulkhead.
func NewBulkhead(config BulkheadConfig) *Bulkhead {
	if config.MaxConcurrent <= 0 {
		config.MaxConcurrent = 10
	}
	b := &Bulkhead{config: config}
	if config.Fair {
		b.sem = semaphore.NewWeighted(int64(config.MaxConcurrent))
	} else {
		b.slots = make(chan struct{}, config.MaxConcurrent)
	}
	return b
}

// Acquire admits the caller or returns ErrCapacityExhausted.
// A successful Acquire must be paired with Release; prefer Do.
func (b *Bulkhead) Acquire(ctx context.Context) error {
	if b.tryAcquire() {
		b.admitted()
		return nil
	}
	if b.config.MaxWait <= 0 || !b.enqueue() {
		b.rejectedOne()
		return ErrCapacityExhausted
	}
	defer b.dequeue()

	wctx, cancel := context.WithTimeout(ctx, b.config.MaxWait)
	defer cancel()
	if err := b.wait(wctx); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		b.rejectedOne()
		return ErrCapacityExhausted
	}
	b.admitted()
	return nil
}

// Release returns a slot. Must follow a successful Acquire.
func (b *Bulkhead) Release() {
	if b.config.Fair {
		b.sem.Release(1)
	} else {
		select {
		case <-b.slots:
		default:
			// Release without a matching Acquire.
			return
		}
	}
	b.mu.Lock()
	b.active--
	b.mu.Unlock()
}

// Do runs the operation inside the bulkhead.
func (b *Bulkhead) Do(ctx context.Context, op func(context.Context) error) error {
	if err := b.Acquire(ctx); err != nil {
		return err
	}
	defer b.Release()
	return op(ctx)
}

func (b *Bulkhead) tryAcquire() bool {
	if b.config.Fair {
		return b.sem.TryAcquire(1)
	}
	select {
	case b.slots <- struct{}{}:
		return true
	default:
		return false
	}
}

func (b *Bulkhead) wait(ctx context.Context) error {
	if b.config.Fair {
		return b.sem.Acquire(ctx, 1)
	}
	select {
	case b.slots <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *Bulkhead) enqueue() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.config.MaxQueue > 0 && b.waiting >= b.config.MaxQueue {
		return false
	}
	b.waiting++
	return true
}

func (b *Bulkhead) dequeue() {
	b.mu.Lock()
	b.waiting--
	b.mu.Unlock()
}

func (b *Bulkhead) admitted() {
	b.mu.Lock()
	b.active++
	if b.active > b.maxActive {
		b.maxActive = b.active
	}
	b.mu.Unlock()
}

func (b *Bulkhead) rejectedOne() {
	b.mu.Lock()
	b.rejected++
	b.mu.Unlock()
}

// Metrics returns a snapshot of bulkhead statistics.
func (b *Bulkhead) Metrics() BulkheadMetrics {
	b.mu.Lock()
	defer b.mu.Unlock()
	return BulkheadMetrics{
		Active:        b.active,
		MaxActive:     b.maxActive,
		Waiting:       b.waiting,
		Available:     b.config.MaxConcurrent - b.active,
		MaxConcurrent: b.config.MaxConcurrent,
		Rejected:      b.rejected,
	}
}

// BulkheadMetrics contains bulkhead statistics.
type BulkheadMetrics struct {
	Active        int
	MaxActive     int
	Waiting       int
	Available     int
	MaxConcurrent int
	Rejected      int64
}
