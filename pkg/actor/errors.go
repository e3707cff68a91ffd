package actor

import (
	"fmt"

	"github.com/gmt-dos/actors-go/pkg/errors"
)

// Misconfiguration errors. ErrNoClient is returned by pkg/model's
// Model.Check; ErrNoInputs and ErrNoOutputs are returned by an actor's
// collect and distribute when it has no ports of that kind.
var (
	ErrNoInputs  = errors.InvalidArgument("actor has no inputs defined", nil)
	ErrNoOutputs = errors.InvalidArgument("actor has no outputs defined", nil)
	ErrNoClient  = errors.InvalidArgument("actor has no client defined", nil)
)

// ErrSomeInputsZeroRate reports an actor with a non-empty input list but an
// input rate of zero.
func ErrSomeInputsZeroRate(name string) error {
	return errors.InvalidArgument(name+" has some inputs but input rate is zero", nil)
}

// ErrNoInputsPositiveRate reports an actor with no inputs but a positive
// input rate; it is most likely meant to be an Initiator.
func ErrNoInputsPositiveRate(name string) error {
	return errors.InvalidArgument(name+" has no inputs but a positive input rate (should this be an Initiator?)", nil)
}

// ErrSomeOutputsZeroRate reports an actor with a non-empty output list but
// an output rate of zero.
func ErrSomeOutputsZeroRate(name string) error {
	return errors.InvalidArgument(name+" has some outputs but output rate is zero", nil)
}

// ErrNoOutputsPositiveRate reports an actor with no outputs but a positive
// output rate; it is most likely meant to be a Terminator.
func ErrNoOutputsPositiveRate(name string) error {
	return errors.InvalidArgument(name+" has no outputs but a positive output rate (should this be a Terminator?)", nil)
}

// ErrOrphanOutput reports an output with no downstream connections.
func ErrOrphanOutput(name string) error {
	return errors.InvalidArgument("orphan output in "+name, nil)
}

// ErrNonIntegerRateRatio reports an actor whose NI and NO do not divide
// evenly, so neither the decimation (NO/NI) nor the upsampling (NI/NO)
// branch of the step loop can run at a consistent ratio every step.
func ErrNonIntegerRateRatio(name string, ni, no int) error {
	return errors.InvalidArgument(fmt.Sprintf("%s has a non-integer rate ratio: NI=%d, NO=%d", name, ni, no), nil)
}
