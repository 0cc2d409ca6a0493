package ports

import (
	"context"
	"fmt"
	"time"
)

// Query narrows a Select or Update to matching rows. Column values are the
// string form the hosted store's filter syntax expects.
type Query struct {
	Eq         map[string]string
	Is         map[string]string
	Gte        map[string]string
	Lt         map[string]string
	Order      string
	Descending bool
	Limit      int
}

// Store is the generic gateway to the hosted relational store. dest, when
// non-nil, receives the returned rows (a pointer to a slice or struct).
// Callers never retry; a failed call propagates to the HTTP boundary.
type Store interface {
	Insert(ctx context.Context, table string, record any, dest any) error
	Select(ctx context.Context, table string, q Query, dest any) error
	Update(ctx context.Context, table string, q Query, patch any, dest any) error
	Upsert(ctx context.Context, table string, record any, onConflict string, dest any) error
}

// StoreError wraps any failure reported by the hosted store (network, auth,
// constraint).
type StoreError struct {
	Table string
	Op    string
	Err   error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s %s: %v", e.Op, e.Table, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Rand supplies the randomness behind template and time-slot selection so
// tests can pin the output.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Scheduler drives recurring background jobs.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
