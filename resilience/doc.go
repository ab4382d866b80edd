// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package resilience provides failure-containment wrappers for effectful
// operations: admission limiting (Bulkhead), failure isolation (Breaker),
// and retry with backoff (RetryPolicy).
//
// Each wrapper rejects with a distinct infrastructure fault, so callers can
// tell "the operation failed" apart from "the operation was not admitted":
//
//   - Bulkhead saturation: ErrCapacityExhausted
//   - Open circuit: ErrCircuitOpen
//   - Spent retry budget: *ExhaustedError, wrapping the last failure
//
// The wrappers compose by nesting; a typical stack retries around a
// breaker around a bulkhead:
//
//	p := resilience.ExponentialBackoffWithJitter(3, 100*time.Millisecond)
//	err := p.Execute(ctx, func(ctx context.Context) error {
//	    return br.Do(ctx, func(ctx context.Context) error {
//	        return bh.Do(ctx, callDownstream)
//	    })
//	})
package resilience
