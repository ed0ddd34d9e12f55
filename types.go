// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cmdq

// DefaultCapacity is the capacity used by NewDefault and NewBuilder.
const DefaultCapacity = 64

// Consumer is a command callback. It receives the data value that was
// enqueued with it.
//
// The queue never inspects data. The caller owns whatever data refers
// to and must keep it valid until the command has run.
type Consumer func(data any)

// Command is one unit of deferred work.
//
// A slot holding a Command with a nil Consumer is unoccupied.
type Command struct {
	Consumer Consumer
	Data     any
}

// Queue is the combined producer-executor interface for a command queue.
type Queue interface {
	Enqueuer
	Executor

	// Cap returns the number of slots.
	Cap() int
	// Len returns the number of queued commands.
	Len() int
	// IsEmpty reports whether no commands are queued.
	IsEmpty() bool
	// WaitUntilEmpty blocks until the queue is empty and no dequeued
	// command is still running.
	WaitUntilEmpty()
}

// Enqueuer is the interface for submitting commands.
//
// Enqueue operations never block. They are safe for any number of
// concurrent goroutines.
type Enqueuer interface {
	// Enqueue adds a command. Returns false if the queue is full.
	// Panics if c is nil.
	Enqueue(c Consumer, data any) bool

	// TryEnqueue adds a command.
	// Returns nil on success, ErrWouldBlock if the queue is full,
	// ErrClosed if the queue has been closed.
	// Panics if c is nil.
	TryEnqueue(c Consumer, data any) error
}

// Executor is the interface for running queued commands on the
// calling goroutine.
type Executor interface {
	// Dequeue runs the next command.
	// Returns false if the queue was empty.
	Dequeue() bool

	// Flush runs commands until the queue is observed empty.
	Flush()
}
