// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cmdq

import (
	"context"

	"code.hybscloud.com/iox"
)

// EnqueueWait retries q.TryEnqueue with adaptive backoff until it
// succeeds, fails with something other than ErrWouldBlock, or ctx ends.
//
// The queue never retries on its own. EnqueueWait is for producers that
// can afford to wait; latency-sensitive callers should use Enqueue and
// handle a false return directly.
func EnqueueWait(ctx context.Context, q Enqueuer, c Consumer, data any) error {
	backoff := iox.Backoff{}
	for {
		err := q.TryEnqueue(c, data)
		if !IsWouldBlock(err) {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		backoff.Wait()
	}
}
