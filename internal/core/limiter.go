package core

// limiter.go bounds how many conversions run at once.
//
// Each conversion holds a slot for its duration. When every slot is taken a
// new conversion waits up to maxWait, then fails with ErrTooManyConversions.
// WaitForDrain lets shutdown wait for in-flight conversions.

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrTooManyConversions is returned when no slot frees up in time.
var ErrTooManyConversions = errors.New("too many concurrent conversions")

// Limiter defaults, used when the config leaves them unset.
const (
	DefaultMaxConcurrent = 64
	DefaultMaxWait       = 5 * time.Second
)

// Limiter is a counting semaphore over conversions.
type Limiter struct {
	slots   chan struct{}
	maxWait time.Duration

	mu     sync.Mutex
	active int
	idle   chan struct{} // closed while active == 0
}

// NewLimiter allows at most maxConcurrent conversions, waiting up to maxWait
// for a slot. Non-positive values fall back to the defaults.
func NewLimiter(maxConcurrent int, maxWait time.Duration) *Limiter {
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrent
	}
	if maxWait <= 0 {
		maxWait = DefaultMaxWait
	}
	idle := make(chan struct{})
	close(idle)
	return &Limiter{
		slots:   make(chan struct{}, maxConcurrent),
		maxWait: maxWait,
		idle:    idle,
	}
}

// Acquire takes a slot. The caller must Release it.
func (l *Limiter) Acquire(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case l.slots <- struct{}{}:
		l.started()
		return nil
	default:
	}

	timer := time.NewTimer(l.maxWait)
	defer timer.Stop()

	select {
	case l.slots <- struct{}{}:
		l.started()
		return nil
	case <-timer.C:
		return ErrTooManyConversions
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Release returns a slot taken by Acquire.
func (l *Limiter) Release() {
	l.mu.Lock()
	l.active--
	if l.active == 0 {
		close(l.idle)
	}
	l.mu.Unlock()

	<-l.slots
}

func (l *Limiter) started() {
	l.mu.Lock()
	if l.active == 0 {
		l.idle = make(chan struct{})
	}
	l.active++
	l.mu.Unlock()
}

// WaitForDrain blocks until no conversion is running or ctx is done.
func (l *Limiter) WaitForDrain(ctx context.Context) error {
	l.mu.Lock()
	idle := l.idle
	l.mu.Unlock()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// LimiterStatus is a snapshot of a Limiter.
type LimiterStatus struct {
	Active        int `json:"active"`
	Available     int `json:"available"`
	MaxConcurrent int `json:"max_concurrent"`
}

// Status returns the current limiter state.
func (l *Limiter) Status() LimiterStatus {
	l.mu.Lock()
	active := l.active
	l.mu.Unlock()

	return LimiterStatus{
		Active:        active,
		Available:     cap(l.slots) - len(l.slots),
		MaxConcurrent: cap(l.slots),
	}
}
