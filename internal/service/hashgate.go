package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/semaphore"
)

// DefaultHashConcurrency is the number of bcrypt computations allowed at once
// when no limit is configured.
const DefaultHashConcurrency = 2

// HashGate bounds concurrent password hashing.
type HashGate struct {
	sem *semaphore.Weighted
}

// NewHashGate creates a gate admitting n concurrent computations. n < 1 is
// treated as 1.
func NewHashGate(n int) *HashGate {
	if n < 1 {
		n = 1
	}
	return &HashGate{sem: semaphore.NewWeighted(int64(n))}
}

// Do runs fn once a slot is free. It returns ctx's error without running fn
// if ctx is done while waiting.
func (g *HashGate) Do(ctx context.Context, fn func() error) error {
	if err := g.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("waiting for hashing slot: %w", err)
	}
	defer g.sem.Release(1)
	return fn()
}
