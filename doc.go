// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cmdq provides a bounded command queue for serializing work
// onto one goroutine.
//
// The typical use is submitting OpenGL calls from any goroutine to the
// goroutine that owns the GL context. Each command is a [Consumer]
// callback paired with an opaque data value; the queue stores commands
// in a fixed-size ring buffer and executes them in FIFO order.
//
// # Quick Start
//
//	q := cmdq.New(256)
//	q.Start() // drain on a dedicated worker goroutine
//	defer q.Close()
//
//	if !q.Enqueue(drawScene, scene) {
//	    // Queue is full - handle backpressure
//	}
//	q.WaitUntilEmpty()
//
// Builder API for less common settings:
//
//	q := cmdq.NewBuilder().
//	    Capacity(1024).
//	    PanicHandler(func(v any) { report(v) }).
//	    Started().
//	    Build()
//
// # Synchronous Use
//
// The worker is optional. Without it, commands run on whichever
// goroutine calls [CommandQueue.Dequeue] or [CommandQueue.Flush]:
//
//	q := cmdq.NewDefault()
//
//	// Producers, any goroutine
//	q.Enqueue(upload, mesh)
//
//	// Render loop, GL goroutine
//	for running {
//	    q.Flush()
//	    swap()
//	}
//
// Flush drains what is queued when it observes the queue; commands
// enqueued concurrently may run in the same call or the next one.
//
// # Backpressure
//
// Enqueue never blocks. When the ring is full it returns false (or
// [ErrWouldBlock] from TryEnqueue) without touching the queue. The
// caller decides what to do: drop the command, retry, or grow the queue
// with [CommandQueue.Resize].
//
//	// Retry with backoff until ctx ends
//	err := cmdq.EnqueueWait(ctx, q, upload, mesh)
//
//	// Or grow on demand
//	for !q.Enqueue(upload, mesh) {
//	    if err := q.Resize(q.Cap() * 2); err != nil {
//	        return err
//	    }
//	}
//
// # Execution
//
// Dequeue copies the command out of its slot and releases the queue
// lock before calling the callback. A slow callback therefore never
// stalls producers. [CommandQueue.WaitUntilEmpty] returns only after
// the queue is empty and every dequeued callback has returned.
//
// Callbacks must not call WaitUntilEmpty, Stop, Shutdown or Close on
// their own queue: those wait for the callback itself and deadlock.
//
// # Worker Lifecycle
//
//	q.Start()    // launch worker; panics if already running
//	q.Stop()     // cancel and join; pending commands stay queued
//	q.Shutdown() // wait until drained, then Stop
//	q.Close()    // Stop and release storage
//
// Stop is cooperative. It wakes the worker and waits for it to exit,
// but never interrupts a running callback. Commands still queued after
// Stop can be flushed synchronously or by a later Start.
//
// # Error Handling
//
// Expected conditions are reported, programming errors panic:
//
//	queue full        → Enqueue returns false, TryEnqueue returns ErrWouldBlock
//	queue empty       → Dequeue returns false
//	resize below Len  → Resize returns ErrCapacity
//	after Close       → ErrClosed
//	nil consumer      → panic
//	capacity < 1      → panic
//
// [ErrWouldBlock] is sourced from [code.hybscloud.com/iox] so queues
// compose with other iox-based components.
//
// # Debug Logging
//
// Building with the cmdq_debug tag logs worker lifecycle, resizes and
// recovered panics through log/slog. Release builds compile the calls
// away.
//
//	go test -tags cmdq_debug ./...
package cmdq
