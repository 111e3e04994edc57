package asset

import (
	"context"
	"fmt"
	"sync"
)

// Status is the observable state of a Task.
type Status int

const (
	Pending Status = iota
	Succeeded
	Failed
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Task is the result of one asynchronous fetch. It completes at most once; Poll never blocks,
// so a render loop can check it every frame.
type Task[T any] struct {
	mu     sync.Mutex
	status Status
	value  T
	err    error
	done   chan struct{}
}

// NewTask returns a pending task. Complete it with Resolve or Reject.
func NewTask[T any]() *Task[T] {
	return &Task[T]{done: make(chan struct{})}
}

// Start runs fn in a new goroutine and returns its task. A panic in fn fails the task.
func Start[T any](ctx context.Context, fn func(context.Context) (T, error)) *Task[T] {
	t := NewTask[T]()
	go func() {
		defer func() {
			if r := recover(); r != nil {
				t.Reject(fmt.Errorf("asset: fetch panicked: %v", r))
			}
		}()
		v, err := fn(ctx)
		if err != nil {
			t.Reject(err)
			return
		}
		t.Resolve(v)
	}()
	return t
}

// Resolve completes the task with v. It returns false if the task was already complete.
func (t *Task[T]) Resolve(v T) bool {
	return t.complete(Succeeded, v, nil)
}

// Reject fails the task with err. It returns false if the task was already complete.
func (t *Task[T]) Reject(err error) bool {
	var zero T
	if err == nil {
		err = fmt.Errorf("asset: rejected without error")
	}
	return t.complete(Failed, zero, err)
}

func (t *Task[T]) complete(s Status, v T, err error) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.status != Pending {
		return false
	}
	t.status, t.value, t.err = s, v, err
	close(t.done)
	return true
}

// Poll returns the current status with the value (Succeeded) or error (Failed).
func (t *Task[T]) Poll() (Status, T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status, t.value, t.err
}

// Done is closed when the task completes.
func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task completes or ctx is done.
func (t *Task[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-t.done:
		_, v, err := t.Poll()
		return v, err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
