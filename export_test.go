// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cmdq

// Cursors returns the ring cursors and queued count.
func (q *CommandQueue) Cursors() (pending, free, count int) {
	q.mon.Lock()
	defer q.mon.Unlock()
	return q.pending, q.free, q.count
}
