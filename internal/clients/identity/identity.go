// Package identity provides a sample-and-hold rate-transition client,
// grounded on the original crate's clients/mod.rs Sampler: it stores
// whatever it last read and re-emits it unmodified on every produce,
// useful for bridging an upsampling edge.
package identity

import "github.com/gmt-dos/actors-go/pkg/io"

// Sampler passes T values from input to output unmodified.
type Sampler[T any, U io.UID] struct {
	value T
	ready bool
}

// New returns an empty Sampler.
func New[T any, U io.UID]() *Sampler[T, U] {
	return &Sampler[T, U]{}
}

// Read stores the payload's value, overwriting whatever was held before.
func (s *Sampler[T, U]) Read(data *io.Data[T, U]) {
	s.value = data.Value
	s.ready = true
}

// Update is a no-op: Sampler holds no state beyond the last read value.
func (s *Sampler[T, U]) Update() {}

// Write re-emits the last read value, or nil if nothing has been read yet.
func (s *Sampler[T, U]) Write() *io.Data[T, U] {
	if !s.ready {
		return nil
	}
	return io.New[T, U](s.value)
}
