package tests

import (
	"context"
	"testing"
	"time"

	"github.com/gmt-dos/actors-go/pkg/actortest"
	"github.com/gmt-dos/actors-go/pkg/telemetry"
)

type TelemetryTestSuite struct {
	actortest.Suite
}

func (s *TelemetryTestSuite) TestInit() {
	cfg := telemetry.Config{
		ServiceName: "test-model-run",
		Endpoint:    "localhost:4317", // No listener needed for setup
	}

	shutdown, err := telemetry.Init(cfg)
	s.NoError(err)
	s.NotNil(shutdown)

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	// Shutdown may error (connection refused, no collector listening) but
	// must not hang or panic.
	_ = shutdown(ctx)
}

func TestTelemetrySuite(t *testing.T) {
	actortest.Run(t, new(TelemetryTestSuite))
}
