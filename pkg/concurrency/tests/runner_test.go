package tests

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/gmt-dos/actors-go/pkg/concurrency"
)

func TestFanOutRunsEveryIndexExactlyOnce(t *testing.T) {
	const n = 8
	var seen [n]int32

	concurrency.FanOut(context.Background(), n, func(i int) {
		atomic.AddInt32(&seen[i], 1)
	})

	for i, count := range seen {
		if count != 1 {
			t.Fatalf("index %d ran %d times, want 1", i, count)
		}
	}
}

func TestFanOutSurvivesAPanickingTask(t *testing.T) {
	var ran int32
	concurrency.FanOut(context.Background(), 3, func(i int) {
		if i == 1 {
			panic("boom")
		}
		atomic.AddInt32(&ran, 1)
	})
	if ran != 2 {
		t.Fatalf("got %d non-panicking tasks run, want 2", ran)
	}
}
