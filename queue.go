// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cmdq

import (
	"log/slog"

	"code.hybscloud.com/cmdq/internal/monitor"
	"code.hybscloud.com/cmdq/internal/thread"
)

// CommandQueue is a bounded multi-producer command queue.
//
// Commands live in a ring of Cap slots. pending indexes the next command
// to run, free the next slot to fill. The ring, its cursors and worker
// are guarded by mon.
//
// Any number of goroutines may enqueue, dequeue and flush concurrently.
// At most one worker goroutine drains the queue in the background.
type CommandQueue struct {
	mon *monitor.Monitor

	commands []Command
	pending  int
	free     int
	count    int
	running  int // dequeued, callback not yet returned
	closed   bool
	worker   *thread.Thread

	onPanic func(v any)
	logger  *slog.Logger
	stats   counters
}

// New creates a queue with the given number of slots.
// Panics if capacity < 1.
func New(capacity int) *CommandQueue {
	if capacity < 1 {
		panic("cmdq: capacity must be >= 1")
	}
	return newQueue(Options{capacity: capacity})
}

// NewDefault creates a queue with DefaultCapacity slots.
func NewDefault() *CommandQueue {
	return New(DefaultCapacity)
}

func newQueue(opts Options) *CommandQueue {
	return &CommandQueue{
		mon:      monitor.New(),
		commands: make([]Command, opts.capacity),
		onPanic:  opts.onPanic,
		logger:   opts.logger,
	}
}

// Enqueue adds a command to the tail of the queue.
// Returns false if the queue is full or closed; the queue is unchanged.
// Panics if c is nil.
func (q *CommandQueue) Enqueue(c Consumer, data any) bool {
	return q.TryEnqueue(c, data) == nil
}

// TryEnqueue adds a command to the tail of the queue.
// Returns ErrWouldBlock if the queue is full, ErrClosed if it is closed.
// Panics if c is nil.
func (q *CommandQueue) TryEnqueue(c Consumer, data any) error {
	if c == nil {
		panic("cmdq: nil consumer")
	}

	q.mon.Lock()
	defer q.mon.Unlock()

	if q.closed {
		return ErrClosed
	}
	if q.count == len(q.commands) {
		q.stats.rejected.Add(1)
		return ErrWouldBlock
	}

	slot := &q.commands[q.free]
	if slot.Consumer != nil {
		panic("cmdq: free slot is occupied")
	}
	slot.Consumer = c
	slot.Data = data
	q.free = (q.free + 1) % len(q.commands)
	q.count++
	q.stats.enqueued.Add(1)

	q.mon.Broadcast()
	return nil
}

// Dequeue runs the command at the head of the queue on the calling
// goroutine. Returns false if the queue was empty.
//
// The command is removed from its slot before its callback runs, and
// the queue lock is not held during the callback. If the callback
// panics the panic propagates after the queue has recorded completion.
func (q *CommandQueue) Dequeue() bool {
	return q.dequeue(false)
}

// Flush runs commands on the calling goroutine until the queue is
// observed empty.
func (q *CommandQueue) Flush() {
	for q.Dequeue() {
	}
}

// dequeue pops and runs one command. With guard set and a panic handler
// configured, a panicking callback is recovered and reported.
func (q *CommandQueue) dequeue(guard bool) (ok bool) {
	q.mon.Lock()
	if q.closed || q.count == 0 {
		q.mon.Unlock()
		return false
	}

	slot := &q.commands[q.pending]
	cmd := *slot
	if cmd.Consumer == nil {
		q.mon.Unlock()
		panic("cmdq: pending slot is empty")
	}
	*slot = Command{}
	q.pending = (q.pending + 1) % len(q.commands)
	q.count--
	q.running++
	q.mon.Unlock()

	defer q.complete()
	if guard && q.onPanic != nil {
		defer func() {
			if v := recover(); v != nil {
				q.stats.panics.Add(1)
				q.debug("cmdq: recovered command panic", "value", v)
				q.onPanic(v)
				ok = true
			}
		}()
	}

	cmd.Consumer(cmd.Data)
	return true
}

// complete marks one dequeued command as finished and wakes waiters.
func (q *CommandQueue) complete() {
	q.stats.executed.Add(1)
	q.mon.Lock()
	q.running--
	q.mon.Broadcast()
	q.mon.Unlock()
}

// IsEmpty reports whether no commands are queued.
// A command that has been dequeued but is still running does not count.
func (q *CommandQueue) IsEmpty() bool {
	q.mon.Lock()
	defer q.mon.Unlock()
	return q.count == 0
}

// Len returns the number of queued commands.
func (q *CommandQueue) Len() int {
	q.mon.Lock()
	defer q.mon.Unlock()
	return q.count
}

// Cap returns the number of slots. Cap is 0 after Close.
func (q *CommandQueue) Cap() int {
	q.mon.Lock()
	defer q.mon.Unlock()
	return len(q.commands)
}

// Resize replaces the slot array with one of the given capacity.
//
// Queued commands keep their order and move to the front of the new
// array. Resize is safe while producers and the worker are active.
// Returns ErrCapacity if capacity < Len, ErrClosed after Close.
// Panics if capacity < 1.
func (q *CommandQueue) Resize(capacity int) error {
	if capacity < 1 {
		panic("cmdq: capacity must be >= 1")
	}

	q.mon.Lock()
	defer q.mon.Unlock()

	if q.closed {
		return ErrClosed
	}
	if capacity < q.count {
		return ErrCapacity
	}

	commands := make([]Command, capacity)
	for i := range q.count {
		commands[i] = q.commands[(q.pending+i)%len(q.commands)]
	}

	old := len(q.commands)
	q.commands = commands
	q.pending = 0
	q.free = q.count % capacity
	q.stats.resizes.Add(1)
	q.debug("cmdq: resized", "from", old, "to", capacity, "queued", q.count)
	return nil
}

// Close stops the worker and releases the slot array.
// Commands still queued are discarded without running.
// Close is idempotent and always returns nil.
func (q *CommandQueue) Close() error {
	q.mon.Lock()
	if q.closed {
		q.mon.Unlock()
		return nil
	}
	q.closed = true
	w := q.detachLocked()
	if q.count > 0 {
		q.debug("cmdq: discarding queued commands on close", "count", q.count)
	}
	q.commands = nil
	q.pending, q.free, q.count = 0, 0, 0
	q.mon.Broadcast()
	q.mon.Unlock()

	if w != nil {
		w.Join()
	}
	return nil
}
