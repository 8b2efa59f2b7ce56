package parallel

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestPool_ExecuteAll(t *testing.T) {
	p := NewPool(4)
	defer p.Close()

	var count atomic.Int64
	work := make([]func(), 100)
	for i := range work {
		work[i] = func() { count.Add(1) }
	}

	p.ExecuteAll(work)

	if got := count.Load(); got != 100 {
		t.Errorf("expected 100 executions, got %d", got)
	}
}

func TestPool_ExecuteAllFromWorker(t *testing.T) {
	// ExecuteAll invoked from inside the only worker must still finish:
	// the calling goroutine shares the work instead of waiting on itself.
	p := NewPool(1)
	defer p.Close()

	var count atomic.Int64
	done := make(chan struct{})
	p.Submit(func() {
		work := make([]func(), 10)
		for i := range work {
			work[i] = func() { count.Add(1) }
		}
		p.ExecuteAll(work)
		close(done)
	})

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("nested ExecuteAll deadlocked")
	}
	if got := count.Load(); got != 10 {
		t.Errorf("expected 10 executions, got %d", got)
	}
}

func TestPool_ExecuteAllFromEveryWorker(t *testing.T) {
	// Every worker busy inside a task that itself calls ExecuteAll, with
	// more outstanding tasks than workers. Helper enqueues must not block
	// on the full queue; each caller drains its own list.
	p := NewPool(4)
	defer p.Close()

	const tasks = 12
	var count atomic.Int64
	done := make(chan struct{}, tasks)
	for i := 0; i < tasks; i++ {
		p.Submit(func() {
			work := make([]func(), 64)
			for i := range work {
				work[i] = func() { count.Add(1) }
			}
			p.ExecuteAll(work)
			done <- struct{}{}
		})
	}

	for i := 0; i < tasks; i++ {
		select {
		case <-done:
		case <-time.After(10 * time.Second):
			t.Fatalf("concurrent ExecuteAll deadlocked after %d tasks", i)
		}
	}
	if got := count.Load(); got != tasks*64 {
		t.Errorf("expected %d executions, got %d", tasks*64, got)
	}
}

func TestPool_Submit(t *testing.T) {
	p := NewPool(2)
	defer p.Close()

	done := make(chan struct{})
	p.Submit(func() { close(done) })

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("submitted work did not run")
	}
}

func TestPool_SubmitNil(t *testing.T) {
	p := NewPool(1)
	defer p.Close()
	p.Submit(nil) // must not panic or wedge a worker
	p.ExecuteAll([]func(){func() {}})
}

func TestPool_DefaultWorkers(t *testing.T) {
	p := NewPool(0)
	defer p.Close()
	if p.Workers() < 1 {
		t.Errorf("expected at least one worker, got %d", p.Workers())
	}
}

func TestPool_CloseDrainsQueue(t *testing.T) {
	p := NewPool(1)

	var count atomic.Int64
	for i := 0; i < 50; i++ {
		p.Submit(func() {
			count.Add(1)
		})
	}
	p.Close()

	if got := count.Load(); got != 50 {
		t.Errorf("expected all queued work to finish before Close returns, got %d", got)
	}
}

func TestPool_SubmitAfterCloseRunsInline(t *testing.T) {
	p := NewPool(1)
	p.Close()
	p.Close() // idempotent

	ran := false
	p.Submit(func() { ran = true })
	if !ran {
		t.Error("work submitted after Close should run on the caller")
	}
}
