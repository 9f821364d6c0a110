package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultLifetime is how long a notification stays up before it starts leaving
	DefaultLifetime = 3000 * time.Millisecond

	// DefaultTransition is the length of the entry and exit transitions
	DefaultTransition = 300 * time.Millisecond
)

// Kind selects how a notification is styled
type Kind int

const (
	KindSuccess Kind = iota
	KindError
)

func (k Kind) String() string {
	if k == KindError {
		return "error"
	}
	return "success"
}

// Phase is where a notification is in its lifecycle
type Phase int

const (
	PhaseEntering Phase = iota // Sliding in
	PhaseVisible               // Fully shown
	PhaseLeaving               // Sliding out
	PhaseRemoved               // Gone
)

func (p Phase) String() string {
	switch p {
	case PhaseEntering:
		return "entering"
	case PhaseVisible:
		return "visible"
	case PhaseLeaving:
		return "leaving"
	default:
		return "removed"
	}
}

// Timer is the cancellation handle of a scheduled step
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f to run once after d
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Notification is one transient message. It owns the timer driving its own
// lifecycle; nothing else ever stops or reschedules it.
type Notification struct {
	ID        uuid.UUID
	Message   string
	Kind      Kind
	CreatedAt time.Time

	center *Center

	mu    sync.Mutex
	phase Phase
	timer Timer
}

// Phase returns the current lifecycle phase
func (n *Notification) Phase() Phase {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.phase
}

// Dismiss starts the exit transition early
func (n *Notification) Dismiss() {
	n.startLeaving()
}

// schedule replaces this notification's pending step. Caller holds n.mu.
func (n *Notification) schedule(d time.Duration, step func()) {
	if n.timer != nil {
		n.timer.Stop()
	}
	n.timer = n.center.after(d, step)
}

func (n *Notification) enterDone() {
	n.mu.Lock()
	if n.phase != PhaseEntering {
		n.mu.Unlock()
		return
	}
	n.phase = PhaseVisible
	n.schedule(n.center.visibleFor(), n.startLeaving)
	n.mu.Unlock()

	n.center.changed()
}

func (n *Notification) startLeaving() {
	n.mu.Lock()
	if n.phase >= PhaseLeaving {
		n.mu.Unlock()
		return
	}
	n.phase = PhaseLeaving
	n.schedule(n.center.transition(), n.remove)
	n.mu.Unlock()

	n.center.changed()
}

func (n *Notification) remove() {
	n.mu.Lock()
	if n.phase == PhaseRemoved {
		n.mu.Unlock()
		return
	}
	n.phase = PhaseRemoved
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.mu.Unlock()

	n.center.detach(n)
	n.center.changed()
}

// Center shows independent, self-dismissing notifications.
// It only tracks which notifications are on screen, in creation order.
type Center struct {
	// Lifetime is the time from Show until the exit transition begins
	Lifetime time.Duration

	// Transition is the duration of the entry and exit transitions
	Transition time.Duration

	// OnChange is called (outside any lock) whenever the visible set or a
	// phase changes. The terminal UI uses it to request a redraw.
	OnChange func()

	afterFunc AfterFunc

	mu     sync.Mutex
	active []*Notification
	closed bool
}

// NewCenter creates a notification center with default timings
func NewCenter() *Center {
	return &Center{
		Lifetime:   DefaultLifetime,
		Transition: DefaultTransition,
		afterFunc:  realAfterFunc,
	}
}

// Show displays a new notification and returns it
func (c *Center) Show(message string, kind Kind) *Notification {
	n := &Notification{
		ID:        uuid.New(),
		Message:   message,
		Kind:      kind,
		CreatedAt: time.Now(),
		center:    c,
		phase:     PhaseEntering,
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		n.phase = PhaseRemoved
		return n
	}
	c.active = append(c.active, n)
	c.mu.Unlock()

	n.mu.Lock()
	n.schedule(c.transition(), n.enterDone)
	n.mu.Unlock()

	c.changed()
	return n
}

// Active returns the notifications currently on screen, oldest first
func (c *Center) Active() []*Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*Notification, len(c.active))
	copy(out, c.active)
	return out
}

// Close removes every notification and stops their timers.
// Show after Close returns an already-removed notification.
func (c *Center) Close() {
	c.mu.Lock()
	c.closed = true
	pending := c.active
	c.active = nil
	c.mu.Unlock()

	for _, n := range pending {
		n.mu.Lock()
		n.phase = PhaseRemoved
		if n.timer != nil {
			n.timer.Stop()
			n.timer = nil
		}
		n.mu.Unlock()
	}
	c.changed()
}

func (c *Center) detach(n *Notification) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, cur := range c.active {
		if cur == n {
			c.active = append(c.active[:i:i], c.active[i+1:]...)
			return
		}
	}
}

func (c *Center) changed() {
	if c.OnChange != nil {
		c.OnChange()
	}
}

func (c *Center) after(d time.Duration, f func()) Timer {
	if c.afterFunc == nil {
		return realAfterFunc(d, f)
	}
	return c.afterFunc(d, f)
}

func (c *Center) transition() time.Duration {
	if c.Transition < 0 {
		return 0
	}
	return c.Transition
}

// visibleFor is the time spent fully visible: Lifetime minus the entry
func (c *Center) visibleFor() time.Duration {
	d := c.Lifetime - c.transition()
	if d < 0 {
		return 0
	}
	return d
}
