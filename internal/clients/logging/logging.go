// Package logging provides an in-memory terminator client that accumulates
// every payload it receives, grounded on the original crate's Logging
// client (clients/mod.rs): a single growing slice, nothing more.
package logging

import (
	"sync"

	"github.com/gmt-dos/actors-go/pkg/io"
)

// Logging accumulates every value read on its input into a slice.
type Logging[T any, U io.UID] struct {
	mu     sync.Mutex
	values []T
}

// New returns an empty Logging client.
func New[T any, U io.UID]() *Logging[T, U] {
	return &Logging[T, U]{}
}

// Read appends the payload's value to the accumulator.
func (l *Logging[T, U]) Read(data *io.Data[T, U]) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.values = append(l.values, data.Value)
}

// Values returns a snapshot of everything accumulated so far.
func (l *Logging[T, U]) Values() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]T, len(l.values))
	copy(out, l.values)
	return out
}

// Update is a no-op: Logging has no internal state beyond its accumulator.
func (l *Logging[T, U]) Update() {}
