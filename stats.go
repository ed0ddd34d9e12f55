// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cmdq

import "code.hybscloud.com/atomix"

// Stats is a snapshot of a queue's monotonic counters.
type Stats struct {
	Enqueued uint64 // commands accepted
	Rejected uint64 // enqueues refused because the queue was full
	Executed uint64 // callbacks that ran, including ones that panicked
	Panics   uint64 // panics recovered by the worker
	Resizes  uint64 // successful Resize calls
}

type counters struct {
	enqueued atomix.Uint64
	rejected atomix.Uint64
	executed atomix.Uint64
	panics   atomix.Uint64
	resizes  atomix.Uint64
}

// Stats returns the queue's counters.
// Counters are read individually; a snapshot taken while the queue is in
// use may not be mutually consistent.
func (q *CommandQueue) Stats() Stats {
	return Stats{
		Enqueued: q.stats.enqueued.Load(),
		Rejected: q.stats.rejected.Load(),
		Executed: q.stats.executed.Load(),
		Panics:   q.stats.panics.Load(),
		Resizes:  q.stats.resizes.Load(),
	}
}
