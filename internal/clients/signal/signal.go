// Package signal provides a small initiator client that generates a
// deterministic test waveform, grounded on the original crate's
// examples/simple/signal.rs: a sinusoid with a lower-amplitude fourth
// harmonic, running for a fixed number of steps before signaling
// end-of-stream by producing nil.
package signal

import (
	"math"

	"github.com/gmt-dos/actors-go/pkg/identifier"
	"github.com/gmt-dos/actors-go/pkg/io"
)

// Signal is an initiator client: NI=0, it only ever writes, producing
// identifier.Vector samples under the bound port identifier U.
type Signal[U io.UID] struct {
	SamplingFrequency float64
	Period            float64
	NSteps            int

	step  int
	value identifier.Vector
	done  bool
}

// New returns a Signal that runs for nSteps simulation steps at
// samplingFrequency Hz with the given waveform period in seconds.
func New[U io.UID](samplingFrequency, period float64, nSteps int) *Signal[U] {
	return &Signal[U]{SamplingFrequency: samplingFrequency, Period: period, NSteps: nSteps}
}

// Update advances the waveform by one step, or marks the stream finished
// once NSteps have been produced.
func (s *Signal[U]) Update() {
	if s.step >= s.NSteps {
		s.done = true
		return
	}

	t := float64(s.step) / (s.SamplingFrequency * s.Period)
	v := math.Sin(2*math.Pi*t) - 0.25*math.Sin(2*math.Pi*(t*4+0.1))
	s.value = identifier.Vector{v}
	s.step++
}

// Write returns the most recently produced sample, or nil once the signal
// has run out of steps, ending the actor's step loop gracefully.
func (s *Signal[U]) Write() *io.Data[identifier.Vector, U] {
	if s.done {
		return nil
	}
	return io.New[identifier.Vector, U](s.value)
}
