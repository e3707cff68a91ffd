package graph

import (
	"sync"

	"github.com/gmt-dos/actors-go/internal/clients/logging"
	"github.com/gmt-dos/actors-go/pkg/io"
)

// Log is a convenience over IntoInput that attaches a fresh in-memory
// logging.Logging terminator to b's output, and returns both the wired Input
// and the client so callers can read back accumulated values after a run.
// The edge uses b's channel settings (Capacity, default 1, or Unbounded);
// Log does not size it itself. mu is the mutex the caller's
// logging actor.Actor must be built with, since it guards the same client.
func Log[C io.Writer[T, U], T any, U io.UID](b *Builder[C, T, U], mu *sync.Mutex) (*io.Input[*logging.Logging[T, U], T, U], *logging.Logging[T, U]) {
	lg := logging.New[T, U]()
	in, _ := IntoInput[C, *logging.Logging[T, U], T, U](b, lg, mu)
	return in, lg
}
