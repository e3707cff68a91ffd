// Package actortest provides testing utilities for actor/model tests.
//
// This package includes:
//   - Suite: base test suite with a context and testify integration
//   - Run: runs a suite from a standard Test* function
//   - WithTimeout: a context with a deadline, for bounding a Model.Wait
//     call in a scenario test
//
// Usage:
//
//	import "github.com/gmt-dos/actors-go/pkg/actortest"
//
//	type GraphSuite struct {
//		actortest.Suite
//	}
//
//	func (s *GraphSuite) TestFeedForward() {
//		s.NoError(doSomething(s.Ctx))
//	}
//
//	func TestGraphSuite(t *testing.T) {
//		actortest.Run(t, new(GraphSuite))
//	}
package actortest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// Suite wraps testify's suite with a context, matching the rest of the
// module's test conventions.
type Suite struct {
	suite.Suite
	Ctx context.Context
}

// SetupTest is called before each test in the suite.
func (s *Suite) SetupTest() {
	s.Ctx = context.Background()
}

// Assert is a helper to access assertions directly if needed.
func (s *Suite) Assert() *assert.Assertions {
	return s.Assertions
}

// Run is a helper function to run a suite from a standard Test* function.
func Run(t *testing.T, s suite.TestingSuite) {
	suite.Run(t, s)
}

// WithTimeout returns a context that is cancelled once d elapses or the
// test ends, whichever comes first. It does not fail the test itself; it
// bounds channel operations in a scenario test where a bug would otherwise
// hang the test runner forever.
func WithTimeout(t *testing.T, d time.Duration) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), d)
	t.Cleanup(cancel)
	return ctx
}
