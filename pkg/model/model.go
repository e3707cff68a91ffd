// Package model validates an actor set and runs it to completion. Lifecycle:
// constructed -> validated (Check) -> running (Run) -> terminated (Wait
// returns). Grounded on the original crate's model lifecycle description
// (lib.rs's "## Model" section) and on the teacher's errgroup-based fan-out
// idiom for spawning and aggregating concurrent work.
package model

import (
	"context"
	"fmt"
	"io"

	"github.com/gmt-dos/actors-go/pkg/actor"
	"github.com/gmt-dos/actors-go/pkg/client"
	"github.com/gmt-dos/actors-go/pkg/concurrency"
	"github.com/gmt-dos/actors-go/pkg/log"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"
)

var tracer = otel.Tracer("github.com/gmt-dos/actors-go/pkg/model")

// Task pairs one actor with the client it drives.
type Task struct {
	Actor  *actor.Actor
	Client client.Updater
}

// Model is an ordered set of tasks.
type Model struct {
	tasks []Task
	g     *errgroup.Group
}

// New constructs a Model from its tasks. It is not yet validated.
func New(tasks ...Task) *Model {
	return &Model{tasks: tasks}
}

// Check validates that every actor has consistent ports and rates, that
// every output reaches at least one input, and that an actor with both
// inputs and outputs has an NI/NO pair forming an integer ratio in one
// direction or the other, per spec's "non-integer ratios are a build-time
// error." It does not check rate consistency across an edge: pkg/graph's
// IntoInput returns the producer's NO as the NI the consumer should be built
// with, but the actor constructors take NI from the caller and nothing
// verifies that the two match.
func (m *Model) Check() error {
	for _, t := range m.tasks {
		if t.Client == nil {
			return actor.ErrNoClient
		}

		a := t.Actor
		hasIn := len(a.Inputs) > 0
		hasOut := len(a.Outputs) > 0

		switch {
		case hasIn && a.NI == 0:
			return actor.ErrSomeInputsZeroRate(a.Name)
		case !hasIn && a.NI > 0:
			return actor.ErrNoInputsPositiveRate(a.Name)
		}

		switch {
		case hasOut && a.NO == 0:
			return actor.ErrSomeOutputsZeroRate(a.Name)
		case !hasOut && a.NO > 0:
			return actor.ErrNoOutputsPositiveRate(a.Name)
		}

		if hasIn && hasOut {
			var ratioOK bool
			if a.NO >= a.NI {
				ratioOK = a.NO%a.NI == 0
			} else {
				ratioOK = a.NI%a.NO == 0
			}
			if !ratioOK {
				return actor.ErrNonIntegerRateRatio(a.Name, a.NI, a.NO)
			}
		}

		for _, out := range a.Outputs {
			if out.Len() == 0 {
				return actor.ErrOrphanOutput(a.Name)
			}
		}
	}
	return nil
}

// Run validates the model, fires every bootstrap output once, and spawns
// each task's step loop on its own goroutine. It returns as soon as
// spawning completes; call Wait to block for the run's outcome.
func (m *Model) Run(ctx context.Context) error {
	if err := m.Check(); err != nil {
		return err
	}

	ctx, span := tracer.Start(ctx, "model.run")
	defer span.End()

	concurrency.FanOut(ctx, len(m.tasks), func(i int) {
		if err := m.tasks[i].Actor.Bootstrap(ctx); err != nil {
			log.L().WarnContext(ctx, "bootstrap send failed", "actor", m.tasks[i].Actor.Name, "error", err)
		}
	})

	g, gctx := errgroup.WithContext(ctx)
	for _, t := range m.tasks {
		t := t
		g.Go(func() error {
			return concurrency.Recover(func() error { return t.Actor.Run(gctx, t.Client) })
		})
	}
	m.g = g
	return nil
}

// Wait blocks until every task's step loop has returned, surfacing the
// first non-graceful error, if any.
func (m *Model) Wait() error {
	if m.g == nil {
		return nil
	}
	return m.g.Wait()
}

// Flowchart writes a Graphviz DOT description of the actor/port graph to w,
// informational only: it shows each actor's rate and its input/output
// identifiers, not the full producer-to-consumer wiring (which pkg/graph
// does not retain centrally once channels are built).
func (m *Model) Flowchart(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "digraph model {"); err != nil {
		return err
	}
	for _, t := range m.tasks {
		a := t.Actor
		if _, err := fmt.Fprintf(w, "  %q [label=%q];\n", a.Name, fmt.Sprintf("%s\\nNI=%d NO=%d", a.Name, a.NI, a.NO)); err != nil {
			return err
		}
		for _, in := range a.Inputs {
			if _, err := fmt.Fprintf(w, "  %q -> %q;\n", in.Who(), a.Name); err != nil {
				return err
			}
		}
		for _, out := range a.Outputs {
			if _, err := fmt.Fprintf(w, "  %q -> %q;\n", a.Name, out.Who()); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}
