package tests

import (
	"testing"

	"github.com/gmt-dos/actors-go/pkg/ringbuf"
)

func TestRingFIFOOrder(t *testing.T) {
	r := ringbuf.New[int](2)
	for i := 0; i < 10; i++ {
		r.PushBack(i)
	}
	if r.Len() != 10 {
		t.Fatalf("got len %d, want 10", r.Len())
	}
	for i := 0; i < 10; i++ {
		v, ok := r.PopFront()
		if !ok || v != i {
			t.Fatalf("got %d, %v; want %d, true", v, ok, i)
		}
	}
	if r.Len() != 0 {
		t.Fatalf("got len %d, want 0", r.Len())
	}
}

func TestRingPopFrontEmpty(t *testing.T) {
	r := ringbuf.New[string](1)
	if _, ok := r.PopFront(); ok {
		t.Fatal("expected ok=false on empty ring")
	}
}

func TestRingGrowsAndWraps(t *testing.T) {
	r := ringbuf.New[int](1)
	for round := 0; round < 5; round++ {
		r.PushBack(round)
		r.PushBack(round * 10)
		if v, _ := r.PopFront(); v != round {
			t.Fatalf("round %d: got %d, want %d", round, v, round)
		}
		if v, _ := r.PopFront(); v != round*10 {
			t.Fatalf("round %d: got %d, want %d", round, v, round*10)
		}
	}
}
