package concurrency

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/gmt-dos/actors-go/pkg/log"
)

// SafeGo runs the function in a goroutine and recovers from panics.
func SafeGo(ctx context.Context, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				err := fmt.Errorf("panic recovered: %v", r)
				stack := string(debug.Stack())
				log.L().ErrorContext(ctx, "goroutine panic", "error", err, "stack", stack)
			}
		}()
		fn()
	}()
}

// FanOut runs n copies of fn concurrently and waits for all to finish. Used
// by pkg/model to fire bootstrap sends on every flagged output in any order
// before any actor's first collect.
func FanOut(ctx context.Context, n int, fn func(i int)) {
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		idx := i
		SafeGo(ctx, func() {
			defer wg.Done()
			fn(idx)
		})
	}
	wg.Wait()
}

// Recover runs fn and converts a panic into a returned error instead of
// crashing the process, so a single misbehaving actor client surfaces as a
// Model.Wait error rather than taking the whole run down silently.
func Recover(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic recovered: %v\n%s", r, debug.Stack())
		}
	}()
	return fn()
}
