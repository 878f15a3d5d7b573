package service

import (
	"errors"
	"fmt"
	"time"
)

// ErrEmptySubmission rejects a submission before any adapter is dispatched.
var ErrEmptySubmission = errors.New("submission text is required")

// SuggestedRetryDelay is surfaced to callers alongside upstream failures.
const SuggestedRetryDelay = 30 * time.Second

// UpstreamError wraps a hard-fail adapter failure. Timeout distinguishes
// exhausted deadlines from other upstream faults.
type UpstreamError struct {
	Service string
	Timeout bool
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("%s timed out: %v", e.Service, e.Err)
	}
	return fmt.Sprintf("%s failed: %v", e.Service, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
