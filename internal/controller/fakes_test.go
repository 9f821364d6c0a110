package controller

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/rihenm13-code/password-checker/internal/clipboard"
	"github.com/rihenm13-code/password-checker/internal/notify"
	"github.com/rihenm13-code/password-checker/internal/scoring"
	"github.com/rihenm13-code/password-checker/internal/strength"
)

// viewState is what the fake view currently shows
type viewState struct {
	bar           float64
	label         string
	color         strength.Color
	feedback      []FeedbackItem
	panelVisible  bool
	generatedText string
	copyVisible   bool
	input         string
}

// fakeView records what the controller pushed to it
type fakeView struct {
	mu sync.Mutex
	s  viewState
}

func (v *fakeView) set(f func(s *viewState)) {
	v.mu.Lock()
	defer v.mu.Unlock()
	f(&v.s)
}

func (v *fakeView) SetBarWidth(p float64) { v.set(func(s *viewState) { s.bar = p }) }

func (v *fakeView) SetLabel(text string, color strength.Color) {
	v.set(func(s *viewState) { s.label, s.color = text, color })
}

func (v *fakeView) SetFeedbackList(items []FeedbackItem) {
	v.set(func(s *viewState) { s.feedback = slices.Clone(items) })
}

func (v *fakeView) SetPanelVisible(visible bool) {
	v.set(func(s *viewState) { s.panelVisible = visible })
}

func (v *fakeView) SetGeneratedText(password string) {
	v.set(func(s *viewState) { s.generatedText = password })
}

func (v *fakeView) SetCopyVisible(visible bool) {
	v.set(func(s *viewState) { s.copyVisible = visible })
}

func (v *fakeView) SetInputValue(value string) { v.set(func(s *viewState) { s.input = value }) }

func (v *fakeView) InputValue() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.s.input
}

// typeInput mimics a keystroke reported by the input widget
func (v *fakeView) typeInput(c *Controller, value string) {
	c.PasswordChanged(value)
}

func (v *fakeView) snapshot() viewState {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := v.s
	out.feedback = slices.Clone(v.s.feedback)
	return out
}

type checkReply struct {
	a   strength.Assessment
	err error
}

type generateReply struct {
	gen strength.GeneratedPassword
	err error
}

// pendingCall is one in-flight request whose reply the test controls
type pendingCall struct {
	password string
	check    chan checkReply
	generate chan generateReply
}

// fakeScorer hands every request to the test and blocks until replied
type fakeScorer struct {
	issued chan *pendingCall
}

func newFakeScorer() *fakeScorer {
	return &fakeScorer{issued: make(chan *pendingCall, 16)}
}

func (s *fakeScorer) Check(ctx context.Context, password string) (strength.Assessment, error) {
	p := &pendingCall{password: password, check: make(chan checkReply, 1)}
	s.issued <- p
	select {
	case r := <-p.check:
		return r.a, r.err
	case <-ctx.Done():
		return strength.Assessment{}, &scoring.ServiceError{Type: scoring.ErrTypeCanceled, Op: "check", Err: ctx.Err()}
	}
}

func (s *fakeScorer) Generate(ctx context.Context) (strength.GeneratedPassword, error) {
	p := &pendingCall{generate: make(chan generateReply, 1)}
	s.issued <- p
	select {
	case r := <-p.generate:
		return r.gen, r.err
	case <-ctx.Done():
		return strength.GeneratedPassword{}, &scoring.ServiceError{Type: scoring.ErrTypeCanceled, Op: "generate", Err: ctx.Err()}
	}
}

func (s *fakeScorer) next(t *testing.T) *pendingCall {
	t.Helper()
	select {
	case p := <-s.issued:
		return p
	case <-time.After(2 * time.Second):
		t.Fatal("no request was issued")
		return nil
	}
}

type shown struct {
	message string
	kind    notify.Kind
}

// fakeNotifier records notifications instead of timing them
type fakeNotifier struct {
	mu    sync.Mutex
	shown []shown
}

func (n *fakeNotifier) Show(message string, kind notify.Kind) *notify.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.shown = append(n.shown, shown{message, kind})
	return nil
}

func (n *fakeNotifier) all() []shown {
	n.mu.Lock()
	defer n.mu.Unlock()
	return slices.Clone(n.shown)
}

// fakeClipboard records copies and optionally fails
type fakeClipboard struct {
	mu     sync.Mutex
	copied []string
	fail   error
}

func (f *fakeClipboard) CopyText(text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if text == "" {
		return &clipboard.Error{Err: clipboard.ErrEmpty}
	}
	if f.fail != nil {
		return &clipboard.Error{Err: f.fail}
	}
	f.copied = append(f.copied, text)
	return nil
}

var errDenied = errors.New("permission denied")

type harness struct {
	ctrl   *Controller
	view   *fakeView
	scorer *fakeScorer
	notes  *fakeNotifier
	clip   *fakeClipboard
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		view:   &fakeView{},
		scorer: newFakeScorer(),
		notes:  &fakeNotifier{},
		clip:   &fakeClipboard{},
	}
	h.ctrl = New(h.view, h.scorer, h.clip, h.notes)
	t.Cleanup(h.ctrl.Close)
	return h
}

func assessment(t *testing.T, pct float64, label string, feedback ...string) strength.Assessment {
	t.Helper()
	a, err := strength.NewAssessment(pct, label, feedback)
	if err != nil {
		t.Fatalf("NewAssessment() error = %v", err)
	}
	return a
}

// waitFor polls until cond holds
func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(time.Millisecond)
	}
}
