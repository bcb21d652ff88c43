package intake

import (
	"testing"
	"time"
)

const testDebounce = 30 * time.Millisecond

// waitForIndicator polls until the indicator becomes visible or the deadline
// passes. Returns the final (visible, valid) pair.
func waitForIndicator(d *EmailDebouncer, deadline time.Duration) (bool, bool) {
	stop := time.Now().Add(deadline)
	for time.Now().Before(stop) {
		if visible, valid := d.Indicator(); visible {
			return visible, valid
		}
		time.Sleep(2 * time.Millisecond)
	}
	return d.Indicator()
}

func TestDebouncer_ShowsAfterPause(t *testing.T) {
	d := NewEmailDebouncer(testDebounce)
	defer d.Close()

	d.Type("a@b.c")
	if visible, _ := d.Indicator(); visible {
		t.Fatal("indicator visible immediately after typing")
	}

	visible, valid := waitForIndicator(d, 10*testDebounce)
	if !visible {
		t.Fatal("indicator never appeared")
	}
	if !valid {
		t.Error("expected valid indicator for a@b.c")
	}
}

func TestDebouncer_InvalidEmailShowsInvalid(t *testing.T) {
	d := NewEmailDebouncer(testDebounce)
	defer d.Close()

	d.Type("not-an-email")
	visible, valid := waitForIndicator(d, 10*testDebounce)
	if !visible {
		t.Fatal("indicator never appeared")
	}
	if valid {
		t.Error("expected invalid indicator")
	}
}

func TestDebouncer_ContinuousTypingSuppresses(t *testing.T) {
	d := NewEmailDebouncer(5 * testDebounce)
	defer d.Close()

	// Keystrokes land well inside the debounce window each time.
	inputs := []string{"a", "a@", "a@b", "a@b.", "a@b.c"}
	for _, in := range inputs {
		d.Type(in)
		time.Sleep(testDebounce)
		if visible, _ := d.Indicator(); visible {
			t.Fatal("indicator appeared while still typing")
		}
	}
}

func TestDebouncer_EmptyInputDisarms(t *testing.T) {
	d := NewEmailDebouncer(testDebounce)
	defer d.Close()

	d.Type("a@b.c")
	d.Type("")
	time.Sleep(10 * testDebounce)
	if visible, _ := d.Indicator(); visible {
		t.Fatal("indicator appeared for an empty field")
	}
}

func TestDebouncer_TypingHidesVisibleIndicator(t *testing.T) {
	d := NewEmailDebouncer(testDebounce)
	defer d.Close()

	d.Type("a@b.c")
	if visible, _ := waitForIndicator(d, 10*testDebounce); !visible {
		t.Fatal("indicator never appeared")
	}

	d.Type("a@b.cd")
	if visible, _ := d.Indicator(); visible {
		t.Fatal("indicator still visible right after a keystroke")
	}
}

func TestDebouncer_CloseStopsPendingReveal(t *testing.T) {
	d := NewEmailDebouncer(testDebounce)

	d.Type("a@b.c")
	d.Close()
	time.Sleep(10 * testDebounce)
	if visible, _ := d.Indicator(); visible {
		t.Fatal("indicator appeared after Close")
	}
}
