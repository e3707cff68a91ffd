package tests

import (
	"sync"
	"testing"
	"time"

	"github.com/gmt-dos/actors-go/pkg/concurrency"
)

func TestSmartMutex(t *testing.T) {
	mu := concurrency.NewSmartMutex(concurrency.MutexConfig{
		Name:      "test-mutex",
		DebugMode: true,
	})

	// Basic Lock/Unlock
	mu.Lock()
	mu.Unlock()

	// Concurrent access
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			mu.Lock()
			time.Sleep(1 * time.Millisecond)
			mu.Unlock()
		}()
	}
	wg.Wait()
}

func TestRecoverConvertsPanicToError(t *testing.T) {
	err := concurrency.Recover(func() error {
		panic("client produce exploded")
	})
	if err == nil {
		t.Fatal("expected Recover to convert the panic into an error")
	}
}

func TestRecoverPassesThroughResult(t *testing.T) {
	if err := concurrency.Recover(func() error { return nil }); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}
