// Package concurrency provides the per-actor client lock and panic-safe
// goroutine spawning used by pkg/actor and pkg/model.
//
// This package includes:
//   - SmartMutex: sync.Mutex with slow-hold observability. pkg/actor and
//     pkg/io guard each client with a plain *sync.Mutex, not a SmartMutex.
//   - SafeGo/FanOut: panic-recovering goroutine helpers; pkg/model uses
//     FanOut to fire bootstrap sends
//   - Recover: converts a panic into an error; pkg/model wraps each actor's
//     step loop in it so one actor's panic surfaces from Model.Wait
//
// Usage:
//
//	import "github.com/gmt-dos/actors-go/pkg/concurrency"
//
//	mu := concurrency.NewSmartMutex(concurrency.MutexConfig{Name: "mount-actor"})
//	mu.Lock()
//	defer mu.Unlock()
package concurrency

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gmt-dos/actors-go/pkg/log"
)

// MutexConfig controls the behavior of SmartMutex.
type MutexConfig struct {
	// Name identifies this mutex in logs (only used in DebugMode).
	Name string

	// SlowThreshold logs a warning if the lock is held longer than this (only in DebugMode).
	// Default: 100ms
	SlowThreshold time.Duration

	// DebugMode enables observability features: caller tracking and
	// slow-lock logging. This adds overhead per Lock() due to
	// runtime.Caller(). Off by default.
	DebugMode bool
}

// SmartMutex is a sync.Mutex with observability.
type SmartMutex struct {
	mu       sync.Mutex
	config   MutexConfig
	holder   atomic.Value // Stores string (file:line of the caller)
	lockedAt atomic.Int64 // UnixMilli
}

func NewSmartMutex(cfg MutexConfig) *SmartMutex {
	if cfg.SlowThreshold == 0 {
		cfg.SlowThreshold = 100 * time.Millisecond
	}
	return &SmartMutex{config: cfg}
}

func (m *SmartMutex) Lock() {
	m.mu.Lock()

	if !m.config.DebugMode {
		return
	}

	m.lockedAt.Store(time.Now().UnixMilli())
	_, file, line, ok := runtime.Caller(1)
	if ok {
		m.holder.Store(fmt.Sprintf("%s:%d", file, line))
	}
}

func (m *SmartMutex) Unlock() {
	if !m.config.DebugMode {
		m.mu.Unlock()
		return
	}

	start := m.lockedAt.Load()
	duration := time.Since(time.UnixMilli(start))
	holder := m.holder.Load()

	m.mu.Unlock()

	if duration > m.config.SlowThreshold {
		log.L().Warn("actor client lock held too long",
			"name", m.config.Name,
			"duration", duration,
			"caller", holder,
		)
	}
}
