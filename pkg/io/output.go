package io

import (
	"context"
	"sync"

	"github.com/gmt-dos/actors-go/pkg/chanio"
	"github.com/gmt-dos/actors-go/pkg/errors"
)

// ErrNoData is returned by Output.Send when the client's Write returned nil,
// meaning it has nothing to produce this step. pkg/actor treats this as the
// trigger for a graceful shutdown cascade: every fan-out sender is closed so
// downstream actors observe chanio.Closed rather than hanging.
var ErrNoData = errors.Unavailable("client produced no data", nil)

// OutputObject is the type-erased view of an Output that pkg/actor holds in
// its port list.
type OutputObject interface {
	Send(ctx context.Context) error
	Bootstrap(ctx context.Context) error
	Close()
	IsBootstrap() bool
	Len() int
	Who() string
}

// Output asks the owning actor's client for one payload and fans it out to
// every connected Input's sender. It caches the last payload sent so a
// bootstrap step and the first regular step can be told apart by callers
// that need to inspect history, though the step loop itself never does.
type Output[C Writer[T, U], T any, U UID] struct {
	senders   []chanio.Sender[*Data[T, U]]
	client    C
	mu        *sync.Mutex
	bootstrap bool

	// lastMu guards last independently of mu (the client's own lock), since
	// Last is read by graph.Multiplex from outside any client call.
	lastMu sync.Mutex
	last   *Data[T, U]
}

// NewOutput builds an Output fanning out to senders.
func NewOutput[C Writer[T, U], T any, U UID](senders []chanio.Sender[*Data[T, U]], client C, mu *sync.Mutex, bootstrap bool) *Output[C, T, U] {
	return &Output[C, T, U]{senders: senders, client: client, mu: mu, bootstrap: bootstrap}
}

// Send calls the client's Write and broadcasts the result to every fan-out
// sender. If Write returns nil every sender is closed and ErrNoData is
// returned.
func (out *Output[C, T, U]) Send(ctx context.Context) error {
	out.mu.Lock()
	data := out.client.Write()
	out.mu.Unlock()

	if data == nil {
		for _, tx := range out.senders {
			tx.Close()
		}
		return ErrNoData
	}

	out.lastMu.Lock()
	out.last = data
	out.lastMu.Unlock()

	for _, tx := range out.senders {
		if err := tx.Send(ctx, data); err != nil {
			return err
		}
	}
	return nil
}

// Bootstrap performs one send ahead of the run loop, breaking the causal
// cycle in feedback wiring so the downstream actor's first collect does not
// block waiting on a value this actor can only produce after its own first
// collect.
func (out *Output[C, T, U]) Bootstrap(ctx context.Context) error {
	return out.Send(ctx)
}

// IsBootstrap reports whether this output was built with a bootstrap send.
func (out *Output[C, T, U]) IsBootstrap() bool {
	return out.bootstrap
}

// Len returns the output's fan-out degree.
func (out *Output[C, T, U]) Len() int {
	return len(out.senders)
}

// Close force-closes every fan-out sender without asking the client for
// more data, cascading a graceful shutdown to every downstream actor.
func (out *Output[C, T, U]) Close() {
	for _, tx := range out.senders {
		tx.Close()
	}
}

// Who returns the bound identifier's name.
func (out *Output[C, T, U]) Who() string {
	var u U
	return u.ID()
}

// Last returns the most recently sent payload, or nil if Send has not yet
// succeeded. Used by pkg/graph's Multiplex to expose the same signal under
// a second, independently typed output without calling the client's Write
// twice in one step. Synchronized independently of the client's own mutex:
// callers still depend on pkg/actor.distribute running the primary output's
// Send before a dependent Multiplex output's Send in the same step, since a
// lock only rules out a torn read, not a stale one.
func (out *Output[C, T, U]) Last() *Data[T, U] {
	out.lastMu.Lock()
	defer out.lastMu.Unlock()
	return out.last
}
