// Package progress implements the synthetic progress feedback the product
// shows during uploads and analysis. The values are time-based UI
// approximations, unrelated to bytes transferred; what matters is that
// every timer is stopped the moment the real response lands.
package progress

import (
	"context"
	"sync"
	"time"
)

// Func receives progress updates in the range 0-100.
type Func func(percent int)

// Ticker advances a synthetic progress value by a fixed step on a fixed
// interval, up to a cap. It holds at the cap until Stop supplies the final
// value. Stop is idempotent and guarantees no further updates are emitted.
type Ticker struct {
	mu      sync.Mutex
	value   int
	cap     int
	step    int
	onTick  Func
	done    chan struct{}
	stopped bool
}

// StartTicker begins emitting synthetic progress: the initial value
// immediately, then +step every interval until cap is reached. onTick may
// be nil. Emissions are serialized with Stop, so onTick must not call back
// into the Ticker.
func StartTicker(initial, max, step int, interval time.Duration, onTick Func) *Ticker {
	t := &Ticker{
		value:  initial,
		cap:    max,
		step:   step,
		onTick: onTick,
		done:   make(chan struct{}),
	}
	t.emit(initial)

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-t.done:
				return
			case <-ticker.C:
				t.advance()
			}
		}
	}()

	return t
}

func (t *Ticker) advance() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped || t.value >= t.cap {
		return
	}
	t.value += t.step
	if t.value > t.cap {
		t.value = t.cap
	}
	t.emit(t.value)
}

func (t *Ticker) emit(v int) {
	if t.onTick != nil {
		t.onTick(v)
	}
}

// Value returns the current progress value.
func (t *Ticker) Value() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.value
}

// Stop halts the ticker and emits the final value. Calling Stop again is a
// no-op; no update is ever emitted after the first Stop returns.
func (t *Ticker) Stop(final int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	t.stopped = true
	t.value = final
	close(t.done)
	t.emit(final)
}

// Countdown counts down from seconds to zero, invoking onTick once per
// second with the remaining count. It returns true when the countdown
// completed and false when the context was cancelled first.
func Countdown(ctx context.Context, seconds int, onTick func(remaining int)) bool {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for remaining := seconds; remaining > 0; {
		if onTick != nil {
			onTick(remaining)
		}
		select {
		case <-ctx.Done():
			return false
		case <-ticker.C:
			remaining--
		}
	}
	return true
}
