package worker_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mathsheet/backend/internal/worker"
)

func TestPool_SubmitDeliversAllResults(t *testing.T) {
	pool := worker.NewPool[int](3, 10)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		n := i
		if err := pool.Submit(ctx, fmt.Sprint(n), func(context.Context) (int, error) {
			return n * n, nil
		}); err != nil {
			t.Fatalf("submit %d: %v", n, err)
		}
	}

	sum := 0
	for i := 0; i < 10; i++ {
		res := <-pool.Results()
		if res.Err != nil {
			t.Errorf("job %s: unexpected error %v", res.JobID, res.Err)
		}
		sum += res.Output
	}
	pool.Close()

	if sum != 285 {
		t.Errorf("expected sum of squares 285, got %d", sum)
	}
}

func TestPool_DoReturnsOwnResult(t *testing.T) {
	pool := worker.NewPool[string](2, 4)
	defer pool.Close()

	got, err := pool.Do(context.Background(), "a", func(context.Context) (string, error) {
		return "done", nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "done" {
		t.Errorf("expected %q, got %q", "done", got)
	}
}

func TestPool_DoPropagatesError(t *testing.T) {
	pool := worker.NewPool[int](1, 1)
	defer pool.Close()

	boom := errors.New("boom")
	_, err := pool.Do(context.Background(), "x", func(context.Context) (int, error) {
		return 0, boom
	})

	if !errors.Is(err, boom) {
		t.Errorf("expected boom, got %v", err)
	}
}

func TestPool_DoSkipsCancelledJob(t *testing.T) {
	pool := worker.NewPool[int](1, 1)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ran atomic.Bool
	_, err := pool.Do(ctx, "x", func(context.Context) (int, error) {
		ran.Store(true)
		return 1, nil
	})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	if ran.Load() {
		t.Error("expected cancelled job not to run")
	}
}

func TestPool_LimitsConcurrency(t *testing.T) {
	pool := worker.NewPool[int](2, 8)

	var running, peak atomic.Int32
	for i := 0; i < 8; i++ {
		pool.Submit(context.Background(), fmt.Sprint(i), func(context.Context) (int, error) {
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			running.Add(-1)
			return 0, nil
		})
	}
	for i := 0; i < 8; i++ {
		<-pool.Results()
	}
	pool.Close()

	if peak.Load() > 2 {
		t.Errorf("expected at most 2 concurrent jobs, got %d", peak.Load())
	}
}

func TestPool_SubmitAfterClose(t *testing.T) {
	pool := worker.NewPool[int](1, 1)
	pool.Close()

	err := pool.Submit(context.Background(), "late", func(context.Context) (int, error) { return 0, nil })
	if !errors.Is(err, worker.ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}

	if _, ok := <-pool.Results(); ok {
		t.Error("expected results channel to be closed")
	}
}
