package workers

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrPoolExhausted is returned by Submit when no dispatcher slot became free
// within the acquire timeout.
var ErrPoolExhausted = errors.New("blocking pool exhausted")

// ErrCallPanicked is returned by Submit when fn panics.
var ErrCallPanicked = errors.New("dispatched call panicked")

// Dispatcher runs blocking calls on their own goroutines while keeping at
// most size of them in flight.
type Dispatcher struct {
	sem            chan struct{}
	acquireTimeout time.Duration
}

// NewDispatcher creates a dispatcher with size slots. A non-positive
// acquireTimeout waits for a slot until the caller's context ends.
func NewDispatcher(size int, acquireTimeout time.Duration) *Dispatcher {
	if size < 1 {
		size = 1
	}
	return &Dispatcher{
		sem:            make(chan struct{}, size),
		acquireTimeout: acquireTimeout,
	}
}

// Size returns the number of slots.
func (d *Dispatcher) Size() int {
	return cap(d.sem)
}

// InFlight returns the number of calls currently holding a slot.
func (d *Dispatcher) InFlight() int {
	return len(d.sem)
}

func (d *Dispatcher) acquire(ctx context.Context) (func(), error) {
	acqCtx := ctx
	if d.acquireTimeout > 0 {
		var cancel context.CancelFunc
		acqCtx, cancel = context.WithTimeout(ctx, d.acquireTimeout)
		defer cancel()
	}

	select {
	case d.sem <- struct{}{}:
		return func() { <-d.sem }, nil
	case <-acqCtx.Done():
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, ErrPoolExhausted
	}
}

type result[T any] struct {
	value T
	err   error
}

// Submit runs fn on a dispatcher goroutine and waits for its result.
//
// If ctx ends first Submit returns ctx.Err(); fn keeps its slot until it
// returns and its result is dropped.
func Submit[T any](ctx context.Context, d *Dispatcher, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	release, err := d.acquire(ctx)
	if err != nil {
		return zero, err
	}

	done := make(chan result[T], 1)
	go func() {
		defer release()
		defer func() {
			if r := recover(); r != nil {
				done <- result[T]{err: fmt.Errorf("%w: %v", ErrCallPanicked, r)}
			}
		}()
		v, err := fn(ctx)
		done <- result[T]{value: v, err: err}
	}()

	select {
	case res := <-done:
		return res.value, res.err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
