package throttle

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestDispatcherOrderingAndSpacing(t *testing.T) {
	t.Run("starts units in submission order with at least the configured spacing", func(t *testing.T) {
		const perSecond = 5

		dispatcher := New(perSecond)
		defer dispatcher.Close()

		var (
			mu     sync.Mutex
			order  []int
			starts []time.Time
		)

		results := make([]<-chan error, 0, 5)
		for i := 1; i <= 5; i++ {
			i := i
			results = append(results, dispatcher.Submit(context.Background(), func() error {
				mu.Lock()
				order = append(order, i)
				starts = append(starts, time.Now())
				mu.Unlock()

				// completion latency must not influence start order
				time.Sleep(time.Duration(6-i) * 10 * time.Millisecond)
				return nil
			}))
		}

		for _, result := range results {
			if err := <-result; err != nil {
				t.Errorf("received error %v, expected %v", err, nil)
			}
		}

		for i, received := range order {
			if received != i+1 {
				t.Fatalf("received start order %v, but expected units in submission order", order)
			}
		}

		minSpacing := time.Second / perSecond
		for i := 1; i < len(starts); i++ {
			if spacing := starts[i].Sub(starts[i-1]); spacing < minSpacing-20*time.Millisecond {
				t.Errorf("received spacing %v between units %d and %d, but expected at least %v", spacing, i, i+1, minSpacing)
			}
		}
	})
}

func TestDispatcherFailureHandling(t *testing.T) {
	t.Run("a failing unit resolves its own result and leaves the queue running", func(t *testing.T) {
		dispatcher := New(50)
		defer dispatcher.Close()

		expected := errors.New("unit failed")
		failed := dispatcher.Submit(context.Background(), func() error { return expected })

		ran := false
		succeeded := dispatcher.Submit(context.Background(), func() error {
			ran = true
			return nil
		})

		if received := <-failed; !errors.Is(received, expected) {
			t.Errorf("received error %v, but expected %v", received, expected)
		}

		if received := <-succeeded; received != nil {
			t.Errorf("received error %v, expected %v", received, nil)
		}

		if !ran {
			t.Error("expected the unit submitted after a failure to run")
		}
	})

	t.Run("a unit whose context is cancelled while queued resolves with the context error", func(t *testing.T) {
		dispatcher := New(1)
		defer dispatcher.Close()

		// occupy the only token of the current second
		<-dispatcher.Submit(context.Background(), func() error { return nil })

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		received := <-dispatcher.Submit(ctx, func() error { return nil })
		if !errors.Is(received, context.Canceled) {
			t.Errorf("received error %v, but expected %v", received, context.Canceled)
		}
	})
}

func TestDispatcherClose(t *testing.T) {
	t.Run("submissions after Close resolve with ErrClosed", func(t *testing.T) {
		dispatcher := New(50)
		dispatcher.Close()

		received := <-dispatcher.Submit(context.Background(), func() error { return nil })
		if !errors.Is(received, ErrClosed) {
			t.Errorf("received error %v, but expected %v", received, ErrClosed)
		}
	})
}
