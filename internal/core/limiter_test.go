package core

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestLimiter_AcquireRelease(t *testing.T) {
	l := NewLimiter(2, time.Second)
	ctx := context.Background()

	if got := l.Status(); got.Active != 0 || got.Available != 2 || got.MaxConcurrent != 2 {
		t.Errorf("initial Status = %+v", got)
	}

	for i := 0; i < 2; i++ {
		if err := l.Acquire(ctx); err != nil {
			t.Fatalf("Acquire %d failed: %v", i, err)
		}
	}
	if got := l.Status(); got.Active != 2 || got.Available != 0 {
		t.Errorf("full Status = %+v", got)
	}

	l.Release()
	l.Release()

	if got := l.Status(); got.Active != 0 || got.Available != 2 {
		t.Errorf("drained Status = %+v", got)
	}
}

func TestLimiter_Timeout(t *testing.T) {
	l := NewLimiter(1, 20*time.Millisecond)
	ctx := context.Background()

	if err := l.Acquire(ctx); err != nil {
		t.Fatal(err)
	}
	defer l.Release()

	start := time.Now()
	err := l.Acquire(ctx)
	if !errors.Is(err, ErrTooManyConversions) {
		t.Fatalf("Acquire error = %v, want ErrTooManyConversions", err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("Acquire returned after %v, before maxWait", elapsed)
	}
}

func TestLimiter_ContextCancelled(t *testing.T) {
	l := NewLimiter(1, time.Minute)
	if err := l.Acquire(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer l.Release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := l.Acquire(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Acquire error = %v, want context.Canceled", err)
	}
}

func TestLimiter_WaiterGetsReleasedSlot(t *testing.T) {
	l := NewLimiter(1, time.Second)
	ctx := context.Background()
	if err := l.Acquire(ctx); err != nil {
		t.Fatal(err)
	}

	done := make(chan error, 1)
	go func() { done <- l.Acquire(ctx) }()

	time.Sleep(10 * time.Millisecond)
	l.Release()

	if err := <-done; err != nil {
		t.Fatalf("waiting Acquire failed: %v", err)
	}
	l.Release()
}

func TestLimiter_WaitForDrain(t *testing.T) {
	l := NewLimiter(4, time.Second)
	ctx := context.Background()

	// Idle limiter drains immediately.
	if err := l.WaitForDrain(ctx); err != nil {
		t.Fatalf("WaitForDrain on idle limiter: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		if err := l.Acquire(ctx); err != nil {
			t.Fatal(err)
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			time.Sleep(10 * time.Millisecond)
			l.Release()
		}()
	}

	if err := l.WaitForDrain(ctx); err != nil {
		t.Fatalf("WaitForDrain: %v", err)
	}
	if got := l.Status().Active; got != 0 {
		t.Errorf("Active after drain = %d, want 0", got)
	}
	wg.Wait()
}

func TestLimiter_WaitForDrainTimeout(t *testing.T) {
	l := NewLimiter(1, time.Second)
	if err := l.Acquire(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer l.Release()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if err := l.WaitForDrain(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("WaitForDrain error = %v, want DeadlineExceeded", err)
	}
}

func TestNewLimiter_Defaults(t *testing.T) {
	l := NewLimiter(0, 0)
	if got := l.Status().MaxConcurrent; got != DefaultMaxConcurrent {
		t.Errorf("MaxConcurrent = %d, want %d", got, DefaultMaxConcurrent)
	}
	if l.maxWait != DefaultMaxWait {
		t.Errorf("maxWait = %v, want %v", l.maxWait, DefaultMaxWait)
	}
}
