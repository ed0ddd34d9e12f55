// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cmdq

import (
	"context"

	"code.hybscloud.com/cmdq/internal/thread"
)

// Start launches a worker goroutine that drains the queue until Stop.
//
// The worker flushes, then sleeps until a command is enqueued or Stop is
// called. Start returns once the worker is running.
// Panics if a worker is already running or the queue is closed.
func (q *CommandQueue) Start() {
	q.mon.Lock()
	defer q.mon.Unlock()

	if q.closed {
		panic("cmdq: start on closed queue")
	}
	if q.worker != nil {
		panic("cmdq: worker already started")
	}

	w := thread.New(q.work)
	q.worker = w
	w.Start()
	q.debug("cmdq: worker started", "capacity", len(q.commands), "queued", q.count)
}

// Stop cancels the worker and waits for it to exit.
//
// A command the worker is running completes first. Commands still
// queued remain queued; run them with Flush or a later Start.
// Stop without a running worker does nothing.
func (q *CommandQueue) Stop() {
	q.mon.Lock()
	w := q.detachLocked()
	q.mon.Unlock()

	if w != nil {
		w.Join()
		q.debug("cmdq: worker stopped")
	}
}

// Shutdown runs every queued command, then stops the worker.
// Without a worker, Shutdown flushes on the calling goroutine.
func (q *CommandQueue) Shutdown() {
	if !q.Running() {
		q.Flush()
		return
	}
	q.WaitUntilEmpty()
	q.Stop()
}

// Running reports whether a worker is active.
func (q *CommandQueue) Running() bool {
	q.mon.Lock()
	defer q.mon.Unlock()
	return q.worker != nil
}

// WaitUntilEmpty blocks until no commands are queued and every
// dequeued command has returned.
//
// Without a worker, some other goroutine must Dequeue or Flush for
// WaitUntilEmpty to return.
func (q *CommandQueue) WaitUntilEmpty() {
	q.mon.Lock()
	q.mon.WaitFor(q.drainedLocked)
	q.mon.Unlock()
}

// WaitUntilEmptyContext is WaitUntilEmpty bounded by ctx.
// Returns ctx.Err() if ctx ends first.
func (q *CommandQueue) WaitUntilEmptyContext(ctx context.Context) error {
	q.mon.Lock()
	defer q.mon.Unlock()
	return q.mon.WaitContext(ctx, q.drainedLocked)
}

func (q *CommandQueue) drainedLocked() bool {
	return q.count == 0 && q.running == 0
}

// detachLocked cancels and removes the worker, returning it for Join.
// The caller holds mon. Cancelling under mon means the worker cannot
// miss the flag between its predicate check and Wait.
func (q *CommandQueue) detachLocked() *thread.Thread {
	w := q.worker
	if w == nil {
		return nil
	}
	q.worker = nil
	w.Cancel()
	q.mon.Broadcast()
	return w
}

// work is the worker body.
func (q *CommandQueue) work(t *thread.Thread) {
	for !t.IsCancelled() {
		for q.dequeue(true) {
		}

		q.mon.Lock()
		q.mon.WaitFor(func() bool {
			return t.IsCancelled() || (q.count > 0 && !q.closed)
		})
		q.mon.Unlock()
	}
}
