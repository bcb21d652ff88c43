package intake

import (
	"sync"
	"time"
)

// DefaultDebounce is how long after the last keystroke the email validity
// indicator becomes visible.
const DefaultDebounce = 800 * time.Millisecond

// EmailDebouncer delays the email validity indicator until the user stops
// typing, so no error flashes mid-keystroke. Every keystroke resets the
// timer; Close guarantees the timer never fires after the owner is gone.
type EmailDebouncer struct {
	mu     sync.Mutex
	delay  time.Duration
	timer  *time.Timer
	email  string
	shown  bool
	closed bool
}

// NewEmailDebouncer creates a debouncer. A zero delay means DefaultDebounce.
func NewEmailDebouncer(delay time.Duration) *EmailDebouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &EmailDebouncer{delay: delay}
}

// Type records a keystroke: the indicator is hidden immediately and the
// reveal timer restarts. An empty value disarms the timer entirely, so no
// indicator is shown for an empty field.
func (d *EmailDebouncer) Type(email string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}

	d.email = email
	d.shown = false
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if email == "" {
		return
	}

	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		if d.closed || d.email != email {
			return
		}
		d.shown = true
	})
}

// Indicator reports whether the validity indicator is visible and, if so,
// whether the current value is valid.
func (d *EmailDebouncer) Indicator() (visible, valid bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.shown {
		return false, false
	}
	return true, ValidEmail(d.email)
}

// Close stops the pending timer. After Close the indicator never appears.
func (d *EmailDebouncer) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
