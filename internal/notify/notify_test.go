package notify

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type fakeTimer struct {
	d       time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	was := !t.stopped && !t.fired
	t.stopped = true
	return was
}

// newTestCenter returns a center whose timers only fire when the test says so
func newTestCenter() *Center {
	c := NewCenter()
	c.afterFunc = func(d time.Duration, f func()) Timer {
		return &fakeTimer{d: d, f: f}
	}
	return c
}

// fire runs the notification's pending step
func fire(t *testing.T, n *Notification) {
	t.Helper()
	n.mu.Lock()
	ft, _ := n.timer.(*fakeTimer)
	n.mu.Unlock()
	if ft == nil || ft.stopped || ft.fired {
		t.Fatalf("notification %q has no pending timer", n.Message)
	}
	ft.fired = true
	ft.f()
}

func pendingDuration(n *Notification) time.Duration {
	n.mu.Lock()
	defer n.mu.Unlock()
	if ft, ok := n.timer.(*fakeTimer); ok {
		return ft.d
	}
	return -1
}

func TestShow_Lifecycle(t *testing.T) {
	c := newTestCenter()
	n := c.Show("Password copied!", KindSuccess)

	if n.Phase() != PhaseEntering {
		t.Fatalf("phase = %v, want entering", n.Phase())
	}
	if pendingDuration(n) != DefaultTransition {
		t.Errorf("entry timer = %v, want %v", pendingDuration(n), DefaultTransition)
	}

	fire(t, n)
	if n.Phase() != PhaseVisible {
		t.Fatalf("phase = %v, want visible", n.Phase())
	}
	if pendingDuration(n) != DefaultLifetime-DefaultTransition {
		t.Errorf("visible timer = %v", pendingDuration(n))
	}

	fire(t, n)
	if n.Phase() != PhaseLeaving {
		t.Fatalf("phase = %v, want leaving", n.Phase())
	}
	if len(c.Active()) != 1 {
		t.Error("leaving notification should still be rendered")
	}

	fire(t, n)
	if n.Phase() != PhaseRemoved {
		t.Fatalf("phase = %v, want removed", n.Phase())
	}
	if len(c.Active()) != 0 {
		t.Errorf("Active() = %d, want 0", len(c.Active()))
	}
}

func TestShow_ConcurrentNotificationsAreIndependent(t *testing.T) {
	c := newTestCenter()
	a := c.Show("first", KindSuccess)
	b := c.Show("second", KindError)

	if a.ID == b.ID {
		t.Fatal("notifications must have distinct ids")
	}

	// Expire a entirely while b is still entering
	fire(t, a)
	fire(t, a)
	fire(t, a)

	if a.Phase() != PhaseRemoved {
		t.Errorf("a phase = %v, want removed", a.Phase())
	}
	if b.Phase() != PhaseEntering {
		t.Errorf("b phase = %v, want entering (untouched)", b.Phase())
	}

	active := c.Active()
	if len(active) != 1 || active[0] != b {
		t.Fatalf("Active() = %v, want only b", active)
	}

	// b's own timer is still pending and still works
	fire(t, b)
	if b.Phase() != PhaseVisible {
		t.Errorf("b phase = %v, want visible", b.Phase())
	}
}

func TestDismiss(t *testing.T) {
	c := newTestCenter()
	a := c.Show("a", KindSuccess)
	b := c.Show("b", KindSuccess)
	fire(t, a)

	a.Dismiss()
	if a.Phase() != PhaseLeaving {
		t.Fatalf("phase = %v, want leaving", a.Phase())
	}
	if pendingDuration(a) != DefaultTransition {
		t.Errorf("exit timer = %v", pendingDuration(a))
	}

	// Dismissing twice does not restart the exit transition
	a.Dismiss()
	fire(t, a)
	if a.Phase() != PhaseRemoved {
		t.Errorf("phase = %v, want removed", a.Phase())
	}
	if b.Phase() != PhaseEntering {
		t.Errorf("b phase = %v, want entering", b.Phase())
	}
}

func TestStaleStepIsIgnored(t *testing.T) {
	c := newTestCenter()
	n := c.Show("x", KindSuccess)

	n.mu.Lock()
	entry := n.timer.(*fakeTimer)
	n.mu.Unlock()

	n.Dismiss()
	if !entry.stopped {
		t.Error("dismiss should stop the pending entry timer")
	}

	// A step that slipped past Stop must not move the phase backwards
	entry.f()
	if n.Phase() != PhaseLeaving {
		t.Errorf("phase = %v, want leaving", n.Phase())
	}
}

func TestOnChange(t *testing.T) {
	c := newTestCenter()
	var calls int
	c.OnChange = func() { calls++ }

	n := c.Show("x", KindSuccess)
	fire(t, n)
	fire(t, n)
	fire(t, n)

	if calls != 4 {
		t.Errorf("OnChange called %d times, want 4", calls)
	}
}

func TestClose(t *testing.T) {
	c := newTestCenter()
	a := c.Show("a", KindSuccess)
	b := c.Show("b", KindError)

	c.Close()

	if len(c.Active()) != 0 {
		t.Error("Close should clear active notifications")
	}
	for _, n := range []*Notification{a, b} {
		if n.Phase() != PhaseRemoved {
			t.Errorf("%s phase = %v, want removed", n.Message, n.Phase())
		}
	}

	late := c.Show("late", KindSuccess)
	if late.Phase() != PhaseRemoved || len(c.Active()) != 0 {
		t.Error("Show after Close should not display anything")
	}
}

func TestRealTimers(t *testing.T) {
	c := NewCenter()
	c.Lifetime = 40 * time.Millisecond
	c.Transition = 10 * time.Millisecond

	var mu sync.Mutex
	var removed atomic.Int32
	c.OnChange = func() {
		mu.Lock()
		defer mu.Unlock()
		if len(c.Active()) == 0 {
			removed.Add(1)
		}
	}

	for i := 0; i < 5; i++ {
		c.Show("burst", KindSuccess)
	}

	deadline := time.Now().Add(2 * time.Second)
	for len(c.Active()) > 0 {
		if time.Now().After(deadline) {
			t.Fatalf("notifications still active: %d", len(c.Active()))
		}
		time.Sleep(5 * time.Millisecond)
	}
	if removed.Load() == 0 {
		t.Error("OnChange should have observed the empty state")
	}
}

func TestPhaseAndKindStrings(t *testing.T) {
	if KindError.String() != "error" || KindSuccess.String() != "success" {
		t.Error("unexpected Kind strings")
	}
	if PhaseLeaving.String() != "leaving" || PhaseRemoved.String() != "removed" {
		t.Error("unexpected Phase strings")
	}
}
