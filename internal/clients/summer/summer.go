// Package summer provides an accumulate-and-forward client exercising the
// decimation step loop (NO >= NI): it is read NO/NI times between every
// produce, summing each identifier.Vector read element-wise, and emits the
// running total once per produce, resetting afterward.
package summer

import (
	"github.com/gmt-dos/actors-go/pkg/identifier"
	"github.com/gmt-dos/actors-go/pkg/io"
)

// Summer accumulates identifier.Vector samples between produces.
type Summer[U io.UID] struct {
	total identifier.Vector
}

// New returns an empty Summer.
func New[U io.UID]() *Summer[U] {
	return &Summer[U]{}
}

// Read adds data's value into the running total, element-wise.
func (s *Summer[U]) Read(data *io.Data[identifier.Vector, U]) {
	if s.total == nil {
		s.total = make(identifier.Vector, len(data.Value))
	}
	for i, v := range data.Value {
		s.total[i] += v
	}
}

// Update is a no-op: accumulation happens in Read.
func (s *Summer[U]) Update() {}

// Write returns the running total and resets it for the next window.
func (s *Summer[U]) Write() *io.Data[identifier.Vector, U] {
	if s.total == nil {
		return nil
	}
	total := s.total
	s.total = nil
	return io.New[identifier.Vector, U](total)
}
