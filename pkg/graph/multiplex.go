package graph

import (
	"sync"

	"github.com/gmt-dos/actors-go/pkg/io"
)

// multiplexAdapter exposes an already-built Output's most recently sent
// payload as a second, independently typed Writer, so the same logical
// signal can feed two distinct downstream identifiers without the
// underlying client's Write being called twice in one step.
type multiplexAdapter[C io.Writer[T, USrc], T any, USrc, UDst io.UID] struct {
	source *io.Output[C, T, USrc]
}

func (a *multiplexAdapter[C, T, USrc, UDst]) Write() *io.Data[T, UDst] {
	last := a.source.Last()
	if last == nil {
		return nil
	}
	return io.New[T, UDst](last.Value)
}

// Multiplex starts a second output, identified by UDst, that mirrors
// primary's payload under a different identifier type. primary must appear
// earlier in the owning actor's output list so its Last() reflects the
// current step by the time this adapter's Write is called.
func Multiplex[C io.Writer[T, USrc], T any, USrc, UDst io.UID](primary *io.Output[C, T, USrc], rate int) *Builder[*multiplexAdapter[C, T, USrc, UDst], T, UDst] {
	adapter := &multiplexAdapter[C, T, USrc, UDst]{source: primary}
	return AddOutput[*multiplexAdapter[C, T, USrc, UDst], T, UDst](adapter, &sync.Mutex{}, rate)
}
