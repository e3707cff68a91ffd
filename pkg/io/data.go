// Package io implements the payload wrapper and the input/output port types
// that actors communicate through. Ports are built on pkg/chanio; the
// identifier type parameter U binds a port statically to one payload type,
// giving "two outputs may not share an identifier" for free at compile time.
package io

import "github.com/gmt-dos/actors-go/pkg/identifier"

// UID re-exports identifier.UID so callers only need to import pkg/io for
// the common case of declaring ports.
type UID = identifier.UID

// Data is the payload wrapper passed between ports. It is always shared by
// pointer (*Data[T,U]) so fan-out to several inputs shares one allocation;
// Go's garbage collector makes manual reference counting unnecessary.
type Data[T any, U UID] struct {
	Value T
}

// New wraps value for the port identified by U.
func New[T any, U UID](value T) *Data[T, U] {
	return &Data[T, U]{Value: value}
}

// Who returns the owning identifier's name, for logs and traces.
func (d *Data[T, U]) Who() string {
	var u U
	return u.ID()
}
