// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cmdq_test

import (
	"context"
	"fmt"

	"code.hybscloud.com/cmdq"
)

// ExampleNew runs commands synchronously on the calling goroutine.
func ExampleNew() {
	q := cmdq.New(8)

	say := func(data any) { fmt.Println(data) }
	q.Enqueue(say, "clear")
	q.Enqueue(say, "draw")
	q.Enqueue(say, "swap")

	q.Flush()
	fmt.Println("empty:", q.IsEmpty())

	// Output:
	// clear
	// draw
	// swap
	// empty: true
}

// ExampleCommandQueue_Enqueue shows fail-fast backpressure.
func ExampleCommandQueue_Enqueue() {
	q := cmdq.New(2)
	noop := func(any) {}

	fmt.Println(q.Enqueue(noop, 1))
	fmt.Println(q.Enqueue(noop, 2))
	fmt.Println(q.Enqueue(noop, 3)) // full

	err := q.TryEnqueue(noop, 3)
	fmt.Println(cmdq.IsWouldBlock(err))

	// Output:
	// true
	// true
	// false
	// true
}

// ExampleCommandQueue_Resize grows the queue when it fills up.
func ExampleCommandQueue_Resize() {
	q := cmdq.New(2)
	sum := 0
	add := func(data any) { sum += data.(int) }

	for i := 1; i <= 10; i++ {
		for !q.Enqueue(add, i) {
			q.Resize(q.Cap() * 2)
		}
	}
	fmt.Println("cap:", q.Cap(), "len:", q.Len())

	q.Flush()
	fmt.Println("sum:", sum)

	// Output:
	// cap: 16 len: 10
	// sum: 55
}

// ExampleEnqueueWait retries a full queue until the context ends.
func ExampleEnqueueWait() {
	q := cmdq.New(1)
	q.Enqueue(func(any) {}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := cmdq.EnqueueWait(ctx, q, func(any) {}, nil)
	fmt.Println(err)

	// Output:
	// context canceled
}
