package io

import (
	"context"
	"sync"

	"github.com/gmt-dos/actors-go/pkg/chanio"
)

// InputObject is the type-erased view of an Input that pkg/actor holds in
// its port list; actors never need T or U at the call site, only Recv and a
// name for logging.
type InputObject interface {
	Recv(ctx context.Context) error
	Who() string
}

// Input receives payloads from one upstream Output and hands each one to
// the owning actor's client. It is single-consumer: exactly one actor reads
// from it. The client mutex is shared with the actor's outputs (spec's
// shared-resource policy), so a client's consume/update/produce never run
// concurrently with each other.
type Input[C Reader[T, U], T any, U UID] struct {
	rx     chanio.Receiver[*Data[T, U]]
	client C
	mu     *sync.Mutex
}

// NewInput builds an Input over rx, calling client.Read under mu on every
// receive.
func NewInput[C Reader[T, U], T any, U UID](rx chanio.Receiver[*Data[T, U]], client C, mu *sync.Mutex) *Input[C, T, U] {
	return &Input[C, T, U]{rx: rx, client: client, mu: mu}
}

// Recv awaits one payload and passes it to the client's Read method.
func (in *Input[C, T, U]) Recv(ctx context.Context) error {
	data, err := in.rx.Recv(ctx)
	if err != nil {
		return err
	}
	in.mu.Lock()
	in.client.Read(data)
	in.mu.Unlock()
	return nil
}

// Who returns the bound identifier's name.
func (in *Input[C, T, U]) Who() string {
	var u U
	return u.ID()
}
