// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package thread runs a function on a dedicated goroutine with
// cooperative cancellation and join.
package thread

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// State is a Thread lifecycle stage.
type State uint64

const (
	Created State = iota
	Started
	Running
	Cancelled
	Joined
)

func (s State) String() string {
	switch s {
	case Created:
		return "created"
	case Started:
		return "started"
	case Running:
		return "running"
	case Cancelled:
		return "cancelled"
	case Joined:
		return "joined"
	default:
		return "unknown"
	}
}

// Func is the body of a Thread. It should return once t.IsCancelled
// reports true.
type Func func(t *Thread)

// Thread is a single-use goroutine with a cancel flag.
//
// Lifecycle: Created → Started → Running → Cancelled → Joined.
// A Thread cannot be restarted; create a new one instead.
type Thread struct {
	fn        Func
	state     atomix.Uint64
	cancelled atomix.Bool
	done      chan struct{}
}

// New creates a Thread that will run fn. It does not start it.
func New(fn Func) *Thread {
	if fn == nil {
		panic("thread: nil function")
	}
	return &Thread{
		fn:   fn,
		done: make(chan struct{}),
	}
}

// Start launches the goroutine and returns once the body is about to run.
// Panics if the Thread was already started.
func (t *Thread) Start() {
	if !t.state.CompareAndSwapAcqRel(uint64(Created), uint64(Started)) {
		panic("thread: already started")
	}

	go t.run()

	sw := spin.Wait{}
	for State(t.state.LoadAcquire()) == Started {
		sw.Once()
	}
}

func (t *Thread) run() {
	defer close(t.done)
	t.state.CompareAndSwapAcqRel(uint64(Started), uint64(Running))
	t.fn(t)
}

// Cancel sets the cancel flag. The body observes it via IsCancelled.
// Cancelling a Thread that has not been started only sets the flag; the
// body will see it as soon as it runs.
func (t *Thread) Cancel() {
	t.cancelled.StoreRelease(true)
	for {
		s := State(t.state.LoadAcquire())
		if s != Started && s != Running {
			return
		}
		if t.state.CompareAndSwapAcqRel(uint64(s), uint64(Cancelled)) {
			return
		}
	}
}

// IsCancelled reports whether Cancel has been called.
func (t *Thread) IsCancelled() bool {
	return t.cancelled.LoadAcquire()
}

// Join blocks until the body returns. Join on a Thread that was never
// started returns immediately.
func (t *Thread) Join() {
	switch State(t.state.LoadAcquire()) {
	case Created:
		return
	case Joined:
		return
	}
	<-t.done
	t.state.StoreRelease(uint64(Joined))
}

// State returns the current lifecycle stage.
func (t *Thread) State() State {
	return State(t.state.LoadAcquire())
}
