// Package hasher hashes and verifies user passwords with bcrypt.
package hasher

import (
	"context"
	"runtime"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

// Hasher bounds the number of concurrent bcrypt computations so that a burst
// of logins cannot occupy every CPU at once.
type Hasher struct {
	cost int
	sem  *semaphore.Weighted
}

// Opt configures a Hasher.
type Opt func(*Hasher)

// WithCost sets the bcrypt cost.
func WithCost(cost int) Opt {
	return func(h *Hasher) {
		h.cost = cost
	}
}

// WithConcurrency sets the maximum number of parallel hash computations.
func WithConcurrency(n int64) Opt {
	return func(h *Hasher) {
		if n > 0 {
			h.sem = semaphore.NewWeighted(n)
		}
	}
}

// New creates a Hasher with bcrypt.DefaultCost and GOMAXPROCS slots.
func New(opts ...Opt) *Hasher {
	h := &Hasher{
		cost: bcrypt.DefaultCost,
		sem:  semaphore.NewWeighted(int64(runtime.GOMAXPROCS(0))),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Hash returns a salted bcrypt hash of password.
func (h *Hasher) Hash(ctx context.Context, password string) (string, error) {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer h.sem.Release(1)

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether password matches hash. A malformed hash or a
// cancelled context is reported as a mismatch.
func (h *Hasher) Verify(ctx context.Context, password, hash string) bool {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return false
	}
	defer h.sem.Release(1)

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
