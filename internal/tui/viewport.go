package tui

import (
	"slices"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rihenm13-code/password-checker/internal/controller"
	"github.com/rihenm13-code/password-checker/internal/strength"
)

// Frame is everything the screen shows apart from the text input widget
type Frame struct {
	Percentage    float64
	LabelText     string
	LabelColor    strength.Color
	Feedback      []controller.FeedbackItem
	PanelVisible  bool
	GeneratedText string
	CopyVisible   bool
	Input         string
}

// Viewport is the controller's view of the terminal screen.
//
// Setters only record the new values and wake the program; the Bubble
// Tea loop picks up a Snapshot on the next redraw. Setters never block,
// so they are safe to call with the controller's lock held.
type Viewport struct {
	mu    sync.Mutex
	frame Frame

	redraw    chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// NewViewport creates an empty viewport
func NewViewport() *Viewport {
	return &Viewport{
		redraw: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

// Close releases any pending redraw subscription. Setters keep working.
func (v *Viewport) Close() {
	v.closeOnce.Do(func() { close(v.done) })
}

func (v *Viewport) update(f func(fr *Frame)) {
	v.mu.Lock()
	f(&v.frame)
	v.mu.Unlock()
	v.Touch()
}

// Touch requests a redraw. Multiple requests before the program wakes up
// collapse into one.
func (v *Viewport) Touch() {
	select {
	case v.redraw <- struct{}{}:
	default:
	}
}

// Snapshot returns a copy of the current frame
func (v *Viewport) Snapshot() Frame {
	v.mu.Lock()
	defer v.mu.Unlock()
	fr := v.frame
	fr.Feedback = slices.Clone(v.frame.Feedback)
	return fr
}

func (v *Viewport) SetBarWidth(percentage float64) {
	v.update(func(fr *Frame) { fr.Percentage = percentage })
}

func (v *Viewport) SetLabel(text string, color strength.Color) {
	v.update(func(fr *Frame) { fr.LabelText, fr.LabelColor = text, color })
}

func (v *Viewport) SetFeedbackList(items []controller.FeedbackItem) {
	v.update(func(fr *Frame) { fr.Feedback = slices.Clone(items) })
}

func (v *Viewport) SetPanelVisible(visible bool) {
	v.update(func(fr *Frame) { fr.PanelVisible = visible })
}

func (v *Viewport) SetGeneratedText(password string) {
	v.update(func(fr *Frame) { fr.GeneratedText = password })
}

func (v *Viewport) SetCopyVisible(visible bool) {
	v.update(func(fr *Frame) { fr.CopyVisible = visible })
}

func (v *Viewport) SetInputValue(value string) {
	v.update(func(fr *Frame) { fr.Input = value })
}

func (v *Viewport) InputValue() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.frame.Input
}

// redrawMsg tells the model to take a fresh Snapshot
type redrawMsg struct{}

// waitForRedraw blocks until the viewport or a notification changes,
// or the viewport is closed.
func waitForRedraw(v *Viewport) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-v.redraw:
			return redrawMsg{}
		case <-v.done:
			return nil
		}
	}
}

var _ controller.View = (*Viewport)(nil)
