// Package actor implements the five-case step loop that drives every node
// in the graph: no-op, initiator, terminator, decimation and upsampling,
// chosen from the actor's input/output presence and its NI/NO rate
// factors. Grounded on the original crate's actor.rs collect/distribute/run
// trio, generalized from Rust's const-generic rates to runtime ints and
// from its per-field Input<I,NI>/Output<O,NO> lists to Go's type-erased
// io.InputObject/io.OutputObject slices.
package actor

import (
	"context"
	"sync"

	stderrors "errors"

	"github.com/gmt-dos/actors-go/pkg/chanio"
	"github.com/gmt-dos/actors-go/pkg/client"
	"github.com/gmt-dos/actors-go/pkg/io"
	"github.com/gmt-dos/actors-go/pkg/log"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/gmt-dos/actors-go/pkg/actor")

// Actor runs one node of the graph: collect each input at the owning
// client's pace, update the client, distribute each output. The step loop
// itself never checks ctx; it uses ctx for span and log correlation and
// passes it to every channel send and receive, which give up when ctx is
// done. A cancellation that interrupts a blocked send or receive therefore
// ends the loop with a non-nil error, not a graceful shutdown.
type Actor struct {
	Name    string
	NI, NO  int
	Inputs  []io.InputObject
	Outputs []io.OutputObject

	// ID is a stable per-run identifier distinguishing this actor instance
	// in logs and traces even when two actors share a Go type name, e.g.
	// two identity.Sampler instances wired into the same graph.
	ID string

	// mu is the single mutex shared with every Input and Output built for
	// this actor's client, so consume/update/produce of one step are
	// mutually exclusive with each other and with any outside reader of
	// the client.
	mu *sync.Mutex
}

// New builds an actor with the given name, rate factors and ports. mu must
// be the same mutex passed to every io.Input/io.Output constructed for this
// actor's client.
func New(name string, ni, no int, inputs []io.InputObject, outputs []io.OutputObject, mu *sync.Mutex) *Actor {
	return &Actor{Name: name, NI: ni, NO: no, Inputs: inputs, Outputs: outputs, ID: uuid.NewString(), mu: mu}
}

// NewInitiator builds an actor with no inputs, NI=0.
func NewInitiator(name string, no int, mu *sync.Mutex, outputs ...io.OutputObject) *Actor {
	return New(name, 0, no, nil, outputs, mu)
}

// NewTerminator builds an actor with no outputs, NO=0.
func NewTerminator(name string, ni int, mu *sync.Mutex, inputs ...io.InputObject) *Actor {
	return New(name, ni, 0, inputs, nil, mu)
}

// NewActor builds an actor with both inputs and outputs.
func NewActor(name string, ni, no int, mu *sync.Mutex, inputs []io.InputObject, outputs []io.OutputObject) *Actor {
	return New(name, ni, no, inputs, outputs, mu)
}

// Run drives the step loop to completion. It returns nil on any graceful
// shutdown (an upstream or downstream port closing, or the client
// signaling it has no more data) and a non-nil error on anything else.
func (a *Actor) Run(ctx context.Context, c client.Updater) error {
	hasIn := len(a.Inputs) > 0
	hasOut := len(a.Outputs) > 0

	switch {
	case hasIn && hasOut:
		if a.NO >= a.NI {
			return a.runDecimation(ctx, c)
		}
		return a.runUpsampling(ctx, c)
	case !hasIn && hasOut:
		return a.runInitiator(ctx, c)
	case hasIn && !hasOut:
		return a.runTerminator(ctx, c)
	default:
		return nil // no-op actor: nothing to collect or distribute
	}
}

// runDecimation handles NO >= NI: collect/update NO/NI times for every
// distribute.
func (a *Actor) runDecimation(ctx context.Context, c client.Updater) error {
	ratio := a.NO / a.NI
	for {
		for i := 0; i < ratio; i++ {
			if err := a.collect(ctx); err != nil {
				return a.shutdown(err)
			}
			a.update(c)
		}
		if err := a.distribute(ctx); err != nil {
			return a.shutdown(err)
		}
	}
}

// runUpsampling handles NI > NO: one collect/update feeds NI/NO
// distributes (sample-and-hold).
func (a *Actor) runUpsampling(ctx context.Context, c client.Updater) error {
	ratio := a.NI / a.NO
	for {
		if err := a.collect(ctx); err != nil {
			return a.shutdown(err)
		}
		a.update(c)
		for i := 0; i < ratio; i++ {
			if err := a.distribute(ctx); err != nil {
				return a.shutdown(err)
			}
		}
	}
}

func (a *Actor) runInitiator(ctx context.Context, c client.Updater) error {
	for {
		a.update(c)
		if err := a.distribute(ctx); err != nil {
			return a.shutdown(err)
		}
	}
}

func (a *Actor) runTerminator(ctx context.Context, c client.Updater) error {
	for {
		if err := a.collect(ctx); err != nil {
			return a.shutdown(err)
		}
		a.update(c)
	}
}

func (a *Actor) update(c client.Updater) {
	a.mu.Lock()
	c.Update()
	a.mu.Unlock()
}

// collect receives one payload on every input, in registration order,
// handing each to the client's Read under the shared mutex. Inputs are
// consumed sequentially rather than fanned out across goroutines: the
// original's own collect() replaced a concurrent join_all with a plain
// for loop, and spec guarantee 2 requires inputs be consumed in their
// registration order, which a concurrent race cannot guarantee.
func (a *Actor) collect(ctx context.Context) error {
	if len(a.Inputs) == 0 {
		return ErrNoInputs
	}

	ctx, span := tracer.Start(ctx, a.Name+".collect", trace.WithAttributes(attribute.String("actor.id", a.ID)))
	defer span.End()

	for _, in := range a.Inputs {
		if err := in.Recv(ctx); err != nil {
			log.L().DebugContext(ctx, "collect stopped", "actor", a.Name, "actor.id", a.ID, "error", err)
			return err
		}
	}
	return nil
}

// distribute asks the client for one payload on every output, in
// registration order, and fans each out to its connected inputs. Outputs
// are sent sequentially rather than concurrently: a graph.Multiplex
// output reads the primary output's cached Last() value, so it must run
// strictly after the primary output's Send has produced this step's
// value, not race it on a separate goroutine.
func (a *Actor) distribute(ctx context.Context) error {
	if len(a.Outputs) == 0 {
		return ErrNoOutputs
	}

	ctx, span := tracer.Start(ctx, a.Name+".distribute", trace.WithAttributes(attribute.String("actor.id", a.ID)))
	defer span.End()

	for _, out := range a.Outputs {
		if err := out.Send(ctx); err != nil {
			log.L().DebugContext(ctx, "distribute stopped", "actor", a.Name, "actor.id", a.ID, "error", err)
			return err
		}
	}
	return nil
}

// Bootstrap fires one pre-run send on every output flagged for it, breaking
// the causal cycle a feedback edge would otherwise create.
func (a *Actor) Bootstrap(ctx context.Context) error {
	for _, out := range a.Outputs {
		if !out.IsBootstrap() {
			continue
		}
		if err := out.Bootstrap(ctx); err != nil {
			return err
		}
	}
	return nil
}

// shutdown classifies err as either a graceful end-of-stream (channel
// closed or disconnected upstream/downstream, or the client producing no
// more data) or a genuine failure. A graceful shutdown closes every output
// so the closure cascades to downstream actors, and is reported as nil.
func (a *Actor) shutdown(err error) error {
	if stderrors.Is(err, chanio.Closed) || stderrors.Is(err, chanio.Disconnected) || stderrors.Is(err, io.ErrNoData) {
		for _, out := range a.Outputs {
			out.Close()
		}
		return nil
	}
	return err
}
