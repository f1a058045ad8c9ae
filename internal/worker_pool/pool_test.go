package worker_pool

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"
)

func TestRun_PreservesOrder(t *testing.T) {
	wp := NewWorkerPool(3)

	tasks := make([]Task[string], 10)
	for i := range tasks {
		tasks[i] = func(ctx context.Context) (string, error) {
			time.Sleep(time.Duration(10-i) * time.Millisecond)
			return fmt.Sprintf("task-%d", i), nil
		}
	}

	results := Run(context.Background(), wp, tasks)
	if len(results) != len(tasks) {
		t.Fatalf("Expected %d results, got %d", len(tasks), len(results))
	}
	for i, r := range results {
		if r.Error != nil {
			t.Errorf("Task %d failed: %v", i, r.Error)
		}
		if want := fmt.Sprintf("task-%d", i); r.Value != want {
			t.Errorf("Expected %s at %d, got %s", want, i, r.Value)
		}
	}
}

func TestRun_LimitsConcurrency(t *testing.T) {
	wp := NewWorkerPool(2)

	var running, peak int32
	tasks := make([]Task[int], 8)
	for i := range tasks {
		tasks[i] = func(ctx context.Context) (int, error) {
			n := atomic.AddInt32(&running, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			atomic.AddInt32(&running, -1)
			return 0, nil
		}
	}

	Run(context.Background(), wp, tasks)

	if peak > 2 {
		t.Errorf("Expected at most 2 concurrent tasks, saw %d", peak)
	}
}

func TestRun_CancelledContext(t *testing.T) {
	wp := NewWorkerPool(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// the slot is taken so every task has to wait and sees the cancellation
	wp.semaphore <- struct{}{}
	defer func() { <-wp.semaphore }()

	results := Run(ctx, wp, []Task[int]{
		func(ctx context.Context) (int, error) { return 1, nil },
		func(ctx context.Context) (int, error) { return 2, nil },
	})

	for i, r := range results {
		if r.Error != context.Canceled {
			t.Errorf("Expected context.Canceled for task %d, got %v", i, r.Error)
		}
	}
}

func TestRun_Empty(t *testing.T) {
	results := Run[int](context.Background(), NewWorkerPool(0), nil)
	if len(results) != 0 {
		t.Errorf("Expected no results, got %d", len(results))
	}
}

func TestNewWorkerPool_DefaultsToCPUCount(t *testing.T) {
	if NewWorkerPool(0).GetMaxWorkers() < 1 {
		t.Error("Expected at least one worker")
	}
	if NewWorkerPool(5).GetMaxWorkers() != 5 {
		t.Error("Expected 5 workers")
	}
}
