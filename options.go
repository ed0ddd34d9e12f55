// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cmdq

import "log/slog"

// Options configures queue creation.
type Options struct {
	capacity int

	// Worker
	start   bool
	onPanic func(v any)

	// Debug logging (cmdq_debug builds only)
	logger *slog.Logger
}

// Builder creates command queues with fluent configuration.
//
// Example:
//
//	// Worker-driven queue that survives panicking commands
//	q := cmdq.NewBuilder().
//	    Capacity(512).
//	    PanicHandler(func(v any) { log.Printf("command panicked: %v", v) }).
//	    Started().
//	    Build()
//
//	// Equivalent to cmdq.New(128)
//	q := cmdq.NewBuilder().Capacity(128).Build()
type Builder struct {
	opts Options
}

// NewBuilder creates a builder with DefaultCapacity and no worker.
func NewBuilder() *Builder {
	return &Builder{opts: Options{capacity: DefaultCapacity}}
}

// Capacity sets the number of slots.
// Panics if n < 1.
func (b *Builder) Capacity(n int) *Builder {
	if n < 1 {
		panic("cmdq: capacity must be >= 1")
	}
	b.opts.capacity = n
	return b
}

// Started makes Build launch the worker before returning.
func (b *Builder) Started() *Builder {
	b.opts.start = true
	return b
}

// PanicHandler sets a function that receives values recovered from
// panicking commands run by the worker. The worker keeps draining after
// a recovered panic.
//
// Without a handler, a panic on the worker terminates the program.
// Commands run by Dequeue or Flush on the caller's goroutine always
// propagate their panics.
func (b *Builder) PanicHandler(fn func(v any)) *Builder {
	b.opts.onPanic = fn
	return b
}

// Logger sets the logger used by cmdq_debug builds. Release builds
// ignore it.
func (b *Builder) Logger(l *slog.Logger) *Builder {
	b.opts.logger = l
	return b
}

// Build creates the queue.
func (b *Builder) Build() *CommandQueue {
	q := newQueue(b.opts)
	if b.opts.start {
		q.Start()
	}
	return q
}
