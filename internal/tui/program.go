package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/rihenm13-code/password-checker/internal/clipboard"
	"github.com/rihenm13-code/password-checker/internal/controller"
	"github.com/rihenm13-code/password-checker/internal/logging"
	"github.com/rihenm13-code/password-checker/internal/notify"
)

// Options configures the interactive checker
type Options struct {
	Scorer               controller.Scorer
	Clipboard            clipboard.Service // Defaults to the system clipboard
	ServerURL            string            // Shown in the header
	NotificationLifetime time.Duration     // Defaults to notify.DefaultLifetime
	Masked               bool
	ProgramOptions       []tea.ProgramOption
}

// Run starts the interactive checker and blocks until the user quits or
// ctx is cancelled. In-flight requests are cancelled on return.
func Run(ctx context.Context, opts Options) error {
	if opts.Scorer == nil {
		return fmt.Errorf("tui: no scorer configured")
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.System
	}

	view := NewViewport()
	defer view.Close()

	center := notify.NewCenter()
	if opts.NotificationLifetime > 0 {
		center.Lifetime = opts.NotificationLifetime
	}
	center.OnChange = view.Touch
	defer center.Close()

	ctrl := controller.New(view, opts.Scorer, opts.Clipboard, center)
	defer ctrl.Close()

	model := NewModel(ctrl, view, center, opts.ServerURL, opts.Masked)

	progOpts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts.ProgramOptions...)
	p := tea.NewProgram(model, progOpts...)

	logging.Info("Interactive checker started", zap.String("server", opts.ServerURL))
	_, err := p.Run()
	logging.Info("Interactive checker stopped", zap.Uint64("generation", ctrl.Generation()))

	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}
	return nil
}
