// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package monitor provides a mutex bundled with its condition variable.
package monitor

import (
	"context"
	"sync"
)

// Monitor is a mutex and a condition variable bound to it.
//
// The zero value is not usable; create with New.
type Monitor struct {
	mu   sync.Mutex
	cond *sync.Cond
}

// New creates an unlocked Monitor.
func New() *Monitor {
	m := &Monitor{}
	m.cond = sync.NewCond(&m.mu)
	return m
}

// Lock acquires the monitor.
func (m *Monitor) Lock() { m.mu.Lock() }

// Unlock releases the monitor.
func (m *Monitor) Unlock() { m.mu.Unlock() }

// Wait releases the monitor, blocks until woken, and reacquires it.
// The caller must hold the monitor. Wakeups may be spurious.
func (m *Monitor) Wait() { m.cond.Wait() }

// Signal wakes one waiter. The caller may or may not hold the monitor.
func (m *Monitor) Signal() { m.cond.Signal() }

// Broadcast wakes all waiters.
func (m *Monitor) Broadcast() { m.cond.Broadcast() }

// Do runs f while holding the monitor.
// The monitor is released even if f panics.
func (m *Monitor) Do(f func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f()
}

// WaitFor blocks while cond returns false. The caller must hold the monitor.
func (m *Monitor) WaitFor(cond func() bool) {
	for !cond() {
		m.cond.Wait()
	}
}

// WaitContext is WaitFor bounded by ctx.
// The caller must hold the monitor; it is held again on return.
// Returns ctx.Err() if ctx ends before cond holds.
func (m *Monitor) WaitContext(ctx context.Context, cond func() bool) error {
	if cond() {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	// Wake every waiter when ctx ends. Taking the lock orders the
	// broadcast after the waiter has parked in Wait.
	stop := context.AfterFunc(ctx, func() {
		m.mu.Lock()
		m.cond.Broadcast()
		m.mu.Unlock()
	})
	defer stop()

	for !cond() {
		if err := ctx.Err(); err != nil {
			return err
		}
		m.cond.Wait()
	}
	return nil
}
