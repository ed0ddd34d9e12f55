// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cmdq

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates the queue is full.
//
// ErrWouldBlock is a control flow signal, not a failure. The caller
// should drop the command, retry later, or grow the queue.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
//
// Example:
//
//	backoff := iox.Backoff{}
//	for {
//	    err := q.TryEnqueue(draw, frame)
//	    if err == nil {
//	        break
//	    }
//	    if cmdq.IsWouldBlock(err) {
//	        backoff.Wait()
//	        continue
//	    }
//	    return err // ErrClosed
//	}
var ErrWouldBlock = iox.ErrWouldBlock

// ErrClosed is returned by operations on a closed queue.
var ErrClosed = errors.New("cmdq: queue closed")

// ErrCapacity is returned by Resize when the requested capacity cannot
// hold the commands already queued.
var ErrCapacity = errors.New("cmdq: capacity below queued command count")

// IsWouldBlock reports whether err indicates the queue was full.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil, ErrWouldBlock, or ErrMore.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
