package tests

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/gmt-dos/actors-go/pkg/actor"
	"github.com/gmt-dos/actors-go/pkg/chanio"
	"github.com/gmt-dos/actors-go/pkg/io"
	"github.com/gmt-dos/actors-go/pkg/model"
)

type tag struct{}

func (tag) ID() string { return "tag" }

type nopClient struct{}

func (nopClient) Update() {}

func (nopClient) Write() *io.Data[int, tag] { return nil }

func (nopClient) Read(*io.Data[int, tag]) {}

func TestCheckRejectsMissingClient(t *testing.T) {
	mu := &sync.Mutex{}
	a := actor.NewInitiator("lonely", 1, mu)
	m := model.New(model.Task{Actor: a, Client: nil})
	if err := m.Check(); err != actor.ErrNoClient {
		t.Fatalf("got %v, want actor.ErrNoClient", err)
	}
}

func TestCheckRejectsOrphanOutput(t *testing.T) {
	mu := &sync.Mutex{}
	out := io.NewOutput[nopClient, int, tag](nil, nopClient{}, mu, false)
	a := actor.NewInitiator("orphan", 1, mu, out)
	m := model.New(model.Task{Actor: a, Client: nopClient{}})
	if err := m.Check(); err == nil {
		t.Fatal("expected an orphan-output error")
	}
}

func TestCheckRejectsInputsWithZeroRate(t *testing.T) {
	mu := &sync.Mutex{}
	_, rx := chanio.NewBounded[*io.Data[int, tag]](1)
	in := io.NewInput[nopClient, int, tag](rx, nopClient{}, mu)
	a := actor.NewActor("zero-rate", 0, 1, mu, []io.InputObject{in}, nil)
	m := model.New(model.Task{Actor: a, Client: nopClient{}})
	if err := m.Check(); err == nil {
		t.Fatal("expected a zero-input-rate error")
	}
}

func TestCheckRejectsNonIntegerRateRatio(t *testing.T) {
	mu := &sync.Mutex{}
	_, rx := chanio.NewBounded[*io.Data[int, tag]](1)
	tx, _ := chanio.NewBounded[*io.Data[int, tag]](1)
	in := io.NewInput[nopClient, int, tag](rx, nopClient{}, mu)
	out := io.NewOutput[nopClient, int, tag]([]chanio.Sender[*io.Data[int, tag]]{tx}, nopClient{}, mu, false)
	a := actor.NewActor("uneven", 3, 2, mu, []io.InputObject{in}, []io.OutputObject{out})
	m := model.New(model.Task{Actor: a, Client: nopClient{}})
	if err := m.Check(); err == nil {
		t.Fatal("expected a non-integer-rate-ratio error for NI=3, NO=2")
	}
}

func TestCheckAcceptsIntegerRateRatioEitherDirection(t *testing.T) {
	mu := &sync.Mutex{}
	_, rx := chanio.NewBounded[*io.Data[int, tag]](1)
	tx, _ := chanio.NewBounded[*io.Data[int, tag]](1)
	in := io.NewInput[nopClient, int, tag](rx, nopClient{}, mu)
	out := io.NewOutput[nopClient, int, tag]([]chanio.Sender[*io.Data[int, tag]]{tx}, nopClient{}, mu, false)
	a := actor.NewActor("decimating", 1, 3, mu, []io.InputObject{in}, []io.OutputObject{out})
	m := model.New(model.Task{Actor: a, Client: nopClient{}})
	if err := m.Check(); err != nil {
		t.Fatalf("Check: %v", err)
	}
}

type finiteSource struct {
	mu   sync.Mutex
	n    int
	max  int
}

func (s *finiteSource) Update() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
}

func (s *finiteSource) Write() *io.Data[int, tag] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.n > s.max {
		return nil
	}
	return io.New[int, tag](s.n)
}

type collector struct {
	mu     sync.Mutex
	values []int
}

func (c *collector) Read(data *io.Data[int, tag]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values = append(c.values, data.Value)
}

func (c *collector) Update() {}

func (c *collector) Values() []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]int, len(c.values))
	copy(out, c.values)
	return out
}

func TestRunAndWaitDeliverAllSamples(t *testing.T) {
	srcMu := &sync.Mutex{}
	sinkMu := &sync.Mutex{}

	tx, rx := chanio.NewBounded[*io.Data[int, tag]](1)
	src := &finiteSource{max: 4}
	sink := &collector{}

	srcOut := io.NewOutput[*finiteSource, int, tag]([]chanio.Sender[*io.Data[int, tag]]{tx}, src, srcMu, false)
	sinkIn := io.NewInput[*collector, int, tag](rx, sink, sinkMu)

	srcActor := actor.NewInitiator("source", 1, srcMu, srcOut)
	sinkActor := actor.NewTerminator("sink", 1, sinkMu, sinkIn)

	m := model.New(
		model.Task{Actor: srcActor, Client: src},
		model.Task{Actor: sinkActor, Client: sink},
	)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := m.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if err := m.Wait(); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if got := len(sink.Values()); got != 4 {
		t.Fatalf("got %d values, want 4", got)
	}
}
