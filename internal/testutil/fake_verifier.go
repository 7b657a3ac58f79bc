package testutil

import (
	"context"
	"sync/atomic"
)

// FakeVerifier is a test-only implementation of the recaptcha.Verifier
// interface with a scripted outcome and a call counter.
type FakeVerifier struct {
	// ShouldSucceed controls the verification outcome.
	ShouldSucceed bool
	// Detail is returned as the failure diagnostic.
	Detail string

	calls int64
}

// Validate implements the recaptcha.Verifier interface for tests.
func (f *FakeVerifier) Validate(ctx context.Context, token string) bool {
	ok, _ := f.ValidateWithDetails(ctx, token)
	return ok
}

// ValidateWithDetails implements the recaptcha.Verifier interface for tests.
func (f *FakeVerifier) ValidateWithDetails(ctx context.Context, token string) (bool, string) {
	atomic.AddInt64(&f.calls, 1)
	if f.ShouldSucceed {
		return true, ""
	}
	return false, f.Detail
}

// Calls reports how many times the verifier was consulted.
func (f *FakeVerifier) Calls() int {
	return int(atomic.LoadInt64(&f.calls))
}
