// Package integrator provides a one-pole feedback client used to exercise a
// cycle in the graph: it reads an upstream error signal on UIn, adds Gain
// times that signal to its internal state each step, and writes the new state
// out on UOut, typically wired back around to the actor that produced the
// error. Grounded on the bootstrap+unbounded feedback-edge pattern: the
// edge carrying this client's output back to its own upstream input must
// be built with Bootstrap and Unbounded so the first collect does not
// deadlock.
package integrator

import (
	"github.com/gmt-dos/actors-go/pkg/identifier"
	"github.com/gmt-dos/actors-go/pkg/io"
)

// Integrator accumulates identifier.Vector error samples with gain Gain.
type Integrator[UIn, UOut io.UID] struct {
	Gain float64

	state identifier.Vector
	last  identifier.Vector
}

// New returns an Integrator with the given gain.
func New[UIn, UOut io.UID](gain float64) *Integrator[UIn, UOut] {
	return &Integrator[UIn, UOut]{Gain: gain}
}

// Read records the latest error sample.
func (i *Integrator[UIn, UOut]) Read(data *io.Data[identifier.Vector, UIn]) {
	i.last = data.Value
}

// Update adds Gain times the last error sample to the internal state.
func (i *Integrator[UIn, UOut]) Update() {
	if i.last == nil {
		return
	}
	if i.state == nil {
		i.state = make(identifier.Vector, len(i.last))
	}
	for n, e := range i.last {
		i.state[n] += i.Gain * e
	}
}

// Write emits the current state, or nil before the first Update.
func (i *Integrator[UIn, UOut]) Write() *io.Data[identifier.Vector, UOut] {
	if i.state == nil {
		return nil
	}
	return io.New[identifier.Vector, UOut](i.state)
}
