// Package chanio provides the two channel shapes pkg/io builds ports on top
// of: a bounded channel that blocks the producer on a full buffer, and an
// unbounded channel that never blocks the producer, used to break cycles in
// feedback wiring without deadlocking the graph.
package chanio

import (
	"context"
	"sync"

	"github.com/gmt-dos/actors-go/pkg/errors"
	"github.com/gmt-dos/actors-go/pkg/ringbuf"
)

// Disconnected is returned by Send once the sender side has been closed.
var Disconnected = errors.Unavailable("send on a closed channel", nil)

// Closed is returned by Recv once the channel has been closed and fully drained.
var Closed = errors.Unavailable("channel closed and drained", nil)

// Sender is the write half of a channel. A given Sender is owned by exactly
// one producer goroutine: callers must never call Send concurrently with
// Close, and must never call Send after Close.
type Sender[T any] interface {
	Send(ctx context.Context, val T) error
	Close()
}

// Receiver is the read half of a channel, safe for a single consumer
// goroutine to drain.
type Receiver[T any] interface {
	Recv(ctx context.Context) (T, error)
}

// boundedChan wraps a native Go channel: Send blocks when the buffer of
// capacity n is full, exactly mirroring the blocking semantics of a bare
// `chan T`.
type boundedChan[T any] struct {
	ch   chan T
	once sync.Once
}

// NewBounded returns a bounded channel of capacity n.
func NewBounded[T any](n int) (Sender[T], Receiver[T]) {
	c := &boundedChan[T]{ch: make(chan T, n)}
	return c, c
}

func (c *boundedChan[T]) Send(ctx context.Context, val T) error {
	select {
	case c.ch <- val:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "send canceled")
	}
}

func (c *boundedChan[T]) Recv(ctx context.Context) (T, error) {
	var zero T
	select {
	case val, ok := <-c.ch:
		if !ok {
			return zero, Closed
		}
		return val, nil
	case <-ctx.Done():
		return zero, errors.Wrap(ctx.Err(), "recv canceled")
	}
}

// Close closes the channel; calls after the first are no-ops.
func (c *boundedChan[T]) Close() {
	c.once.Do(func() { close(c.ch) })
}

// unboundedChan is the classic "infinite channel" idiom: a growable
// ringbuf.Ring absorbs every Send immediately, and a single pump goroutine
// drains it into a capacity-1 handoff channel for Recv. Send therefore never
// blocks the producer, at the cost of unbounded memory if the consumer falls
// permanently behind.
type unboundedChan[T any] struct {
	mu     sync.Mutex
	cond   *sync.Cond
	ring   *ringbuf.Ring[T]
	closed bool
	out    chan T
}

// NewUnbounded returns an unbounded channel.
func NewUnbounded[T any]() (Sender[T], Receiver[T]) {
	u := &unboundedChan[T]{
		ring: ringbuf.New[T](16),
		out:  make(chan T, 1),
	}
	u.cond = sync.NewCond(&u.mu)
	go u.pump()
	return u, u
}

func (u *unboundedChan[T]) Send(ctx context.Context, val T) error {
	u.mu.Lock()
	if u.closed {
		u.mu.Unlock()
		return Disconnected
	}
	u.ring.PushBack(val)
	u.mu.Unlock()
	u.cond.Signal()
	return nil
}

func (u *unboundedChan[T]) Recv(ctx context.Context) (T, error) {
	var zero T
	select {
	case val, ok := <-u.out:
		if !ok {
			return zero, Closed
		}
		return val, nil
	case <-ctx.Done():
		return zero, errors.Wrap(ctx.Err(), "recv canceled")
	}
}

func (u *unboundedChan[T]) Close() {
	u.mu.Lock()
	u.closed = true
	u.mu.Unlock()
	u.cond.Signal()
}

// pump moves values from the ring buffer to the handoff channel one at a
// time, blocking on the condition variable while the ring is empty and open.
func (u *unboundedChan[T]) pump() {
	for {
		u.mu.Lock()
		for u.ring.Len() == 0 && !u.closed {
			u.cond.Wait()
		}
		val, ok := u.ring.PopFront()
		closed := u.closed
		u.mu.Unlock()

		if ok {
			u.out <- val
			continue
		}
		if closed {
			close(u.out)
			return
		}
	}
}
