// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

package thread_test

import (
	"testing"
	"time"

	"code.hybscloud.com/cmdq/internal/thread"
)

func TestLifecycle(t *testing.T) {
	release := make(chan struct{})
	th := thread.New(func(t *thread.Thread) {
		for !t.IsCancelled() {
			select {
			case <-release:
			case <-time.After(time.Millisecond):
			}
		}
	})

	if got := th.State(); got != thread.Created {
		t.Fatalf("State: got %v, want %v", got, thread.Created)
	}

	th.Start()
	if got := th.State(); got != thread.Running {
		t.Fatalf("State after Start: got %v, want %v", got, thread.Running)
	}

	th.Cancel()
	if !th.IsCancelled() {
		t.Fatalf("IsCancelled: got false, want true")
	}
	if got := th.State(); got != thread.Cancelled {
		t.Fatalf("State after Cancel: got %v, want %v", got, thread.Cancelled)
	}

	close(release)
	th.Join()
	if got := th.State(); got != thread.Joined {
		t.Fatalf("State after Join: got %v, want %v", got, thread.Joined)
	}

	// Join is idempotent
	th.Join()
}

func TestCancelBeforeStart(t *testing.T) {
	ran := false
	th := thread.New(func(t *thread.Thread) {
		ran = !t.IsCancelled()
	})
	th.Cancel()
	if got := th.State(); got != thread.Created {
		t.Fatalf("State: got %v, want %v", got, thread.Created)
	}

	th.Start()
	th.Join()
	if ran {
		t.Fatalf("body did not observe early cancel")
	}
}

func TestJoinWithoutStart(t *testing.T) {
	th := thread.New(func(*thread.Thread) {})
	done := make(chan struct{})
	go func() {
		th.Join()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("Join on unstarted thread blocked")
	}
}

func TestBodyReturnsOnItsOwn(t *testing.T) {
	th := thread.New(func(*thread.Thread) {})
	th.Start()
	th.Join()
	if got := th.State(); got != thread.Joined {
		t.Fatalf("State: got %v, want %v", got, thread.Joined)
	}
}

func TestPanics(t *testing.T) {
	check := func(name string, f func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Fatalf("%s: expected panic", name)
			}
		}()
		f()
	}

	check("New(nil)", func() { thread.New(nil) })

	th := thread.New(func(*thread.Thread) {})
	th.Start()
	check("second Start", th.Start)
	th.Join()
}

func TestStateString(t *testing.T) {
	tests := []struct {
		s    thread.State
		want string
	}{
		{thread.Created, "created"},
		{thread.Started, "started"},
		{thread.Running, "running"},
		{thread.Cancelled, "cancelled"},
		{thread.Joined, "joined"},
		{thread.State(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Fatalf("String(%d): got %q, want %q", tt.s, got, tt.want)
		}
	}
}
