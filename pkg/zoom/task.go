package zoom

import "context"

// Task is a Session running on its own goroutine.
type Task struct {
	cancel context.CancelFunc
	done   chan struct{}
	err    error
}

// Start runs s in a new goroutine under a context derived from ctx. Stop the
// task with Stop, or by cancelling ctx.
func (s *Session) Start(ctx context.Context) *Task {
	ctx, cancel := context.WithCancel(ctx)

	t := &Task{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(t.done)
		defer cancel()
		t.err = s.Run(ctx)
	}()

	return t
}

// Done is closed once the session has returned.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Err waits for the session to return and reports its result.
func (t *Task) Err() error {
	<-t.done
	return t.err
}

// Stop cancels the session and waits for it to return. It may be called
// more than once.
func (t *Task) Stop() error {
	t.cancel()
	return t.Err()
}
