// Package graph provides the fluent construction surface used to wire
// clients together: AddOutput starts an output, IntoInput connects it to a
// downstream client (returning the rate inferred from the producer), and
// Build finalizes it once every downstream connection is made.
package graph

import (
	"sync"

	"github.com/gmt-dos/actors-go/pkg/chanio"
	"github.com/gmt-dos/actors-go/pkg/io"
)

// Builder accumulates the fan-out senders for one client's output before
// the output is finalized with Build.
type Builder[C io.Writer[T, U], T any, U io.UID] struct {
	client    C
	mu        *sync.Mutex
	rate      int
	bootstrap bool
	unbounded bool
	capacity  int
	senders   []chanio.Sender[*io.Data[T, U]]
}

// AddOutput starts building client's output, produced at rate simulation
// steps per payload (the actor's NO). mu is the lock shared across the
// owning actor's input and output ports.
func AddOutput[C io.Writer[T, U], T any, U io.UID](client C, mu *sync.Mutex, rate int) *Builder[C, T, U] {
	return &Builder[C, T, U]{client: client, mu: mu, rate: rate, capacity: 1}
}

// Bootstrap marks the output for one pre-run send, breaking a feedback
// cycle so the downstream actor's first collect does not block.
func (b *Builder[C, T, U]) Bootstrap() *Builder[C, T, U] {
	b.bootstrap = true
	return b
}

// Unbounded routes every edge from this output through an unbounded
// channel instead of a bounded one of Capacity.
func (b *Builder[C, T, U]) Unbounded() *Builder[C, T, U] {
	b.unbounded = true
	return b
}

// Capacity sets the bounded channel capacity for edges from this output
// (ignored once Unbounded has been called). Default 1.
func (b *Builder[C, T, U]) Capacity(n int) *Builder[C, T, U] {
	b.capacity = n
	return b
}

// Build finalizes the output. Call once every downstream IntoInput call has
// been made; further IntoInput calls after Build are not fanned out.
func (b *Builder[C, T, U]) Build() *io.Output[C, T, U] {
	return io.NewOutput[C, T, U](b.senders, b.client, b.mu, b.bootstrap)
}

func (b *Builder[C, T, U]) newEdge() (chanio.Sender[*io.Data[T, U]], chanio.Receiver[*io.Data[T, U]]) {
	if b.unbounded {
		return chanio.NewUnbounded[*io.Data[T, U]]()
	}
	return chanio.NewBounded[*io.Data[T, U]](b.capacity)
}

// IntoInput connects a new edge from b's output to a new Input owned by a
// downstream client, returning the Input and the NI rate the downstream
// actor must be built with (inferred from b's NO, spec's rate-ratio
// inference decision). A free function, not a method, because Go methods
// cannot introduce the additional downstream-client type parameter RC.
func IntoInput[C io.Writer[T, U], RC io.Reader[T, U], T any, U io.UID](b *Builder[C, T, U], client RC, mu *sync.Mutex) (*io.Input[RC, T, U], int) {
	tx, rx := b.newEdge()
	b.senders = append(b.senders, tx)
	return io.NewInput[RC, T, U](rx, client, mu), b.rate
}
