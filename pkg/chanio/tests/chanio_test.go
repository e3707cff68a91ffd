package tests

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/gmt-dos/actors-go/pkg/chanio"
)

func TestBoundedBlocksOnFullBuffer(t *testing.T) {
	ctx := context.Background()
	tx, rx := chanio.NewBounded[int](1)

	if err := tx.Send(ctx, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	done := make(chan struct{})
	go func() {
		_ = tx.Send(ctx, 2) // blocks until the buffered value is drained
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("send on full bounded channel returned before the buffer drained")
	case <-time.After(20 * time.Millisecond):
	}

	val, err := rx.Recv(ctx)
	if err != nil || val != 1 {
		t.Fatalf("got %v, %v; want 1, nil", val, err)
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("send never unblocked after buffer drained")
	}
}

func TestBoundedRecvAfterCloseDrainsThenCloses(t *testing.T) {
	ctx := context.Background()
	tx, rx := chanio.NewBounded[int](2)

	_ = tx.Send(ctx, 1)
	_ = tx.Send(ctx, 2)
	tx.Close()

	for _, want := range []int{1, 2} {
		got, err := rx.Recv(ctx)
		if err != nil || got != want {
			t.Fatalf("got %v, %v; want %d, nil", got, err, want)
		}
	}

	if _, err := rx.Recv(ctx); err != chanio.Closed {
		t.Fatalf("got %v; want chanio.Closed", err)
	}
}

func TestUnboundedSendNeverBlocks(t *testing.T) {
	ctx := context.Background()
	tx, rx := chanio.NewUnbounded[int]()

	const n = 10_000
	for i := 0; i < n; i++ {
		if err := tx.Send(ctx, i); err != nil {
			t.Fatalf("send %d: %v", i, err)
		}
	}

	for i := 0; i < n; i++ {
		got, err := rx.Recv(ctx)
		if err != nil || got != i {
			t.Fatalf("got %v, %v; want %d, nil", got, err, i)
		}
	}
}

func TestUnboundedSendAfterCloseReturnsDisconnected(t *testing.T) {
	ctx := context.Background()
	tx, _ := chanio.NewUnbounded[int]()
	tx.Close()

	if err := tx.Send(ctx, 1); err != chanio.Disconnected {
		t.Fatalf("got %v; want chanio.Disconnected", err)
	}
}

func TestUnboundedRecvAfterCloseDrainsThenCloses(t *testing.T) {
	ctx := context.Background()
	tx, rx := chanio.NewUnbounded[int]()

	_ = tx.Send(ctx, 7)
	tx.Close()

	got, err := rx.Recv(ctx)
	if err != nil || got != 7 {
		t.Fatalf("got %v, %v; want 7, nil", got, err)
	}

	if _, err := rx.Recv(ctx); err != chanio.Closed {
		t.Fatalf("got %v; want chanio.Closed", err)
	}
}

func TestUnboundedConcurrentSenders(t *testing.T) {
	ctx := context.Background()
	tx, rx := chanio.NewUnbounded[int]()

	const producers, perProducer = 8, 500
	var wg sync.WaitGroup
	wg.Add(producers)
	for p := 0; p < producers; p++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				_ = tx.Send(ctx, i)
			}
		}()
	}
	wg.Wait()
	tx.Close()

	count := 0
	for {
		if _, err := rx.Recv(ctx); err != nil {
			break
		}
		count++
	}
	if count != producers*perProducer {
		t.Fatalf("got %d values; want %d", count, producers*perProducer)
	}
}
