// Package client re-exports the behavioral contracts an actor's opaque
// state container may implement: Reader (consume), Writer (produce) and
// Updater (advance one step). Every client implements Updater, since
// pkg/actor's Run takes one; beyond that an initiator only writes, a
// terminator only reads, and a pass-through client does both.
//
// The interfaces themselves live in pkg/io, which Input and Output are
// defined against; this package gives them their public, contract-facing
// names without creating an import cycle.
package client

import "github.com/gmt-dos/actors-go/pkg/io"

type Reader[T any, U io.UID] = io.Reader[T, U]

type Writer[T any, U io.UID] = io.Writer[T, U]

type Updater = io.Updater
