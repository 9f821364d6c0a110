package controller

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/rihenm13-code/password-checker/internal/clipboard"
	"github.com/rihenm13-code/password-checker/internal/logging"
	"github.com/rihenm13-code/password-checker/internal/notify"
	"github.com/rihenm13-code/password-checker/internal/scoring"
	"github.com/rihenm13-code/password-checker/internal/strength"
)

// View is the rendering surface driven by the controller.
//
// Setters are called with the controller's lock held, from whichever
// goroutine resolved the request. Implementations must be safe for
// concurrent use and must not call back into the Controller.
type View interface {
	SetBarWidth(percentage float64)
	SetLabel(text string, color strength.Color)
	SetFeedbackList(items []FeedbackItem)
	SetPanelVisible(visible bool)
	SetGeneratedText(password string)
	SetCopyVisible(visible bool)
	SetInputValue(value string)
	InputValue() string
}

// Scorer is the scoring service as seen by the controller
type Scorer interface {
	Check(ctx context.Context, password string) (strength.Assessment, error)
	Generate(ctx context.Context) (strength.GeneratedPassword, error)
}

// Notifier shows transient notifications
type Notifier interface {
	Show(message string, kind notify.Kind) *notify.Notification
}

// Source selects where CopyRequested reads its text from
type Source int

const (
	SourceInput Source = iota
	SourceGeneratedPanel
)

func (s Source) String() string {
	if s == SourceGeneratedPanel {
		return "generated_panel"
	}
	return "input"
}

// Controller reconciles the view with scoring results.
//
// Every input event bumps a generation counter and tags its request with
// the new value. A result is applied only if its tag is still the current
// generation, so the display always reflects the most recently issued
// request regardless of the order responses arrive in.
type Controller struct {
	view   View
	scorer Scorer
	clip   clipboard.Service
	notes  Notifier

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	// mu guards generation and state. Bump-and-capture and
	// compare-and-apply each happen in one critical section.
	mu         sync.Mutex
	generation uint64
	state      DisplayState
}

// New creates a controller and renders the empty state
func New(view View, scorer Scorer, clip clipboard.Service, notes Notifier) *Controller {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Controller{
		view:   view,
		scorer: scorer,
		clip:   clip,
		notes:  notes,
		ctx:    ctx,
		cancel: cancel,
	}

	c.mu.Lock()
	c.reset()
	c.mu.Unlock()

	return c
}

// PasswordChanged handles an edit of the password input. The view's
// input is set to candidate under the same lock that bumps the
// generation, so no older result can overwrite the edit.
func (c *Controller) PasswordChanged(candidate string) {
	c.mu.Lock()
	g := c.bump()
	c.view.SetInputValue(candidate)
	if candidate == "" {
		c.reset()
		c.mu.Unlock()
		logging.Debug("Input cleared", zap.Uint64("generation", g))
		return
	}
	c.mu.Unlock()

	logging.Debug("Check issued",
		zap.Uint64("generation", g),
		zap.Int("length", len(candidate)),
	)

	c.async(func(ctx context.Context) {
		a, err := c.scorer.Check(ctx, candidate)
		c.resolveCheck(g, a, err)
	})
}

// GenerateRequested asks the service for a new password
func (c *Controller) GenerateRequested() {
	c.mu.Lock()
	g := c.bump()
	c.mu.Unlock()

	logging.Debug("Generate issued", zap.Uint64("generation", g))

	c.async(func(ctx context.Context) {
		gen, err := c.scorer.Generate(ctx)
		c.resolveGenerate(g, gen, err)
	})
}

// CopyRequested copies the value of source to the clipboard.
// It never changes the display state.
func (c *Controller) CopyRequested(source Source) {
	c.mu.Lock()
	var text string
	switch source {
	case SourceGeneratedPanel:
		text = c.state.GeneratedPassword
	default:
		text = c.view.InputValue()
	}
	c.mu.Unlock()

	c.async(func(context.Context) {
		if err := c.clip.CopyText(text); err != nil {
			logging.Warn("Copy failed", zap.String("source", source.String()), zap.Error(err))
			c.notes.Show(CopyErrorMessage, notify.KindError)
			return
		}
		c.notes.Show(CopiedMessage, notify.KindSuccess)
	})
}

// State returns a copy of the current display state
func (c *Controller) State() DisplayState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Generation returns the current generation counter
func (c *Controller) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// Wait blocks until every in-flight request has resolved
func (c *Controller) Wait() {
	c.wg.Wait()
}

// Close cancels in-flight requests and waits for them to finish.
// Results that arrive after Close are dropped.
func (c *Controller) Close() {
	c.cancel()
	c.wg.Wait()
}

// bump starts a new generation. Caller holds c.mu.
func (c *Controller) bump() uint64 {
	c.generation++
	return c.generation
}

// current reports whether g is still the latest generation. Caller holds c.mu.
func (c *Controller) current(op string, g uint64) bool {
	if c.ctx.Err() != nil {
		return false
	}
	if g != c.generation {
		logging.LogStaleResult(op, g, c.generation)
		return false
	}
	return true
}

func (c *Controller) async(f func(ctx context.Context)) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		f(c.ctx)
	}()
}

func (c *Controller) resolveCheck(g uint64, a strength.Assessment, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.current("check", g) {
		return
	}

	if err != nil {
		// Keep the previous numbers and panel; only the feedback changes
		logging.Warn("Check failed", zap.Uint64("generation", g), zap.String("reason", scoring.ShortMessage(err)))
		c.state.Feedback = []FeedbackItem{{Text: CheckErrorMessage, Kind: FeedbackWarning}}
		c.view.SetFeedbackList(c.state.clone().Feedback)
		return
	}

	c.applyAssessment(a, false)
}

func (c *Controller) resolveGenerate(g uint64, gen strength.GeneratedPassword, err error) {
	c.mu.Lock()
	if !c.current("generate", g) {
		c.mu.Unlock()
		return
	}

	if err != nil {
		c.mu.Unlock()
		logging.Warn("Generate failed", zap.Uint64("generation", g), zap.String("reason", scoring.ShortMessage(err)))
		c.notes.Show(GenerateErrorMessage, notify.KindError)
		return
	}

	c.view.SetInputValue(gen.Password)
	c.applyAssessment(gen.Assessment, true)

	c.state.GeneratedPassword = gen.Password
	c.state.GeneratedPanelVisible = true
	c.view.SetGeneratedText(gen.Password)
	c.view.SetPanelVisible(true)
	c.mu.Unlock()

	c.notes.Show(GeneratedMessage, notify.KindSuccess)
}

// applyAssessment reconciles the display with a. Caller holds c.mu.
func (c *Controller) applyAssessment(a strength.Assessment, fromGenerate bool) {
	c.state.Percentage = a.Percentage
	c.view.SetBarWidth(a.Percentage)

	c.state.LabelText = a.LabelText
	c.state.LabelColor = a.Color()
	c.view.SetLabel(c.state.LabelText, c.state.LabelColor)

	c.state.Feedback = feedbackItems(a.Feedback)
	c.view.SetFeedbackList(c.state.clone().Feedback)

	if c.view.InputValue() != "" {
		c.state.CopyVisible = true
		c.view.SetCopyVisible(true)
	}

	if !fromGenerate {
		c.hidePanel()
	}
}

// hidePanel hides the generated-password panel and forgets its value.
// Caller holds c.mu.
func (c *Controller) hidePanel() {
	c.state.GeneratedPanelVisible = false
	c.state.GeneratedPassword = ""
	c.view.SetPanelVisible(false)
	c.view.SetGeneratedText("")
}

// reset shows the canonical empty state. Caller holds c.mu.
func (c *Controller) reset() {
	c.state = EmptyState()
	c.view.SetBarWidth(0)
	c.view.SetLabel(c.state.LabelText, c.state.LabelColor)
	c.view.SetFeedbackList(nil)
	c.view.SetCopyVisible(false)
	c.hidePanel()
}
