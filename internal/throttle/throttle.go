// Package throttle bounds how many units of work may start per second.
// Units run in submission order, the queue is unbounded and units are never
// dropped; only start times are gated, so completions may still arrive out
// of order.
package throttle

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/time/rate"
)

// ErrClosed is returned for units submitted after Close was called.
var ErrClosed = errors.New("throttle: dispatcher closed")

type unit struct {
	ctx  context.Context
	run  func() error
	done chan error
}

// A Dispatcher owns a FIFO queue of units of work and a single worker
// goroutine that starts them at the configured rate. Each client instance
// carries its own Dispatcher; rate budgets are never shared.
type Dispatcher struct {
	limiter *rate.Limiter

	mu     sync.Mutex
	cond   *sync.Cond
	queue  []*unit
	closed bool
}

// New returns a running Dispatcher allowing at most perSecond starts per
// second, evenly spaced. Values below 1 are raised to 1.
func New(perSecond int) *Dispatcher {
	if perSecond < 1 {
		perSecond = 1
	}

	d := &Dispatcher{limiter: rate.NewLimiter(rate.Limit(perSecond), 1)}
	d.cond = sync.NewCond(&d.mu)
	go d.loop()
	return d
}

// Submit appends fn to the queue and immediately returns a channel that
// receives fn's result once it has been started and has finished. Submit
// never blocks on queue capacity.
func (d *Dispatcher) Submit(ctx context.Context, fn func() error) <-chan error {
	u := &unit{ctx: ctx, run: fn, done: make(chan error, 1)}

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		u.done <- ErrClosed
		return u.done
	}

	d.queue = append(d.queue, u)
	d.mu.Unlock()
	d.cond.Signal()
	return u.done
}

// Do submits fn and waits for its result.
func (d *Dispatcher) Do(ctx context.Context, fn func() error) error {
	return <-d.Submit(ctx, fn)
}

// Close stops the worker once the already queued units have run. Further
// submissions resolve with ErrClosed.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()
	d.cond.Signal()
}

func (d *Dispatcher) loop() {
	for {
		d.mu.Lock()
		for len(d.queue) == 0 && !d.closed {
			d.cond.Wait()
		}

		if len(d.queue) == 0 {
			d.mu.Unlock()
			return
		}

		u := d.queue[0]
		d.queue = d.queue[1:]
		d.mu.Unlock()

		// a unit whose context died while queued resolves as a failure
		// without consuming a rate token
		if err := d.limiter.Wait(u.ctx); err != nil {
			u.done <- err
			continue
		}

		go func(u *unit) {
			u.done <- u.run()
		}(u)
	}
}
