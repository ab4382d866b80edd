// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package resilience

import (
	"errors"
	"fmt"
)

// Infrastructure faults. These report that an operation was not admitted
// or was given up on; they never alias a failure of the operation itself.
var (
	// ErrCapacityExhausted is returned when a bulkhead is saturated and
	// the wait budget, if any, is spent.
	ErrCapacityExhausted = errors.New("resilience: capacity exhausted")

	// ErrCircuitOpen is returned when a breaker rejects without invoking
	// the operation.
	ErrCircuitOpen = errors.New("resilience: circuit open")
)

// ExhaustedError reports that a retry policy's attempt budget was spent.
// It wraps the failure of the final attempt.
type ExhaustedError struct {
	Attempts int
	Cause    error
}

// Error implements the error interface.
func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("resilience: %d attempts exhausted: %v", e.Attempts, e.Cause)
}

// Unwrap returns the failure of the final attempt.
func (e *ExhaustedError) Unwrap() error { return e.Cause }
