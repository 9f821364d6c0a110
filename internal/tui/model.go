package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rihenm13-code/password-checker/internal/controller"
	"github.com/rihenm13-code/password-checker/internal/notify"
	"github.com/rihenm13-code/password-checker/internal/ui"
)

// Actions are the user intents the screen forwards to the controller
type Actions interface {
	PasswordChanged(candidate string)
	GenerateRequested()
	CopyRequested(source controller.Source)
}

// Toasts lists the notifications to draw
type Toasts interface {
	Active() []*notify.Notification
}

// Model is the Bubble Tea model of the checker screen
type Model struct {
	actions Actions
	view    *Viewport
	toasts  Toasts

	Input textinput.Model
	Frame Frame

	ServerURL string
	Width     int
	Height    int

	Help help.Model
	Keys keyMap
}

// NewModel creates the checker screen. masked selects whether the
// password is hidden initially.
func NewModel(actions Actions, view *Viewport, toasts Toasts, serverURL string, masked bool) Model {
	in := textinput.New()
	in.Placeholder = "Type a password"
	in.Prompt = "› "
	in.CharLimit = 256
	if masked {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '•'
	}
	in.Focus()

	m := Model{
		actions:   actions,
		view:      view,
		toasts:    toasts,
		Input:     in,
		Frame:     view.Snapshot(),
		ServerURL: serverURL,
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Help:      help.New(),
		Keys:      newKeyMap(),
	}
	m.Keys.updateEnabled(m.Frame)
	return m
}

// Init starts the cursor blink and the redraw subscription
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForRedraw(m.view))
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		m.Input.Width = inputWidth(msg.Width)
		return m, nil

	case redrawMsg:
		m.sync()
		return m, waitForRedraw(m.view)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.Keys.Generate):
			m.actions.GenerateRequested()
			return m, nil

		case key.Matches(msg, m.Keys.CopyInput):
			m.actions.CopyRequested(controller.SourceInput)
			return m, nil

		case key.Matches(msg, m.Keys.CopyGenerated):
			m.actions.CopyRequested(controller.SourceGeneratedPanel)
			return m, nil

		case key.Matches(msg, m.Keys.ToggleMask):
			m.toggleMask()
			return m, nil

		case key.Matches(msg, m.Keys.Help):
			m.Help.ShowAll = !m.Help.ShowAll
			return m, nil
		}
	}

	return m.updateInput(msg)
}

// updateInput passes the message to the text input and reports edits
func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.Input.Value()

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)

	if after := m.Input.Value(); after != before {
		m.Frame.Input = after
		m.actions.PasswordChanged(after)
	}
	return m, cmd
}

// sync takes a new snapshot. A value set by the controller (a generated
// password) replaces what the input shows, without counting as an edit.
func (m *Model) sync() {
	m.Frame = m.view.Snapshot()
	if m.Frame.Input != m.Input.Value() {
		m.Input.SetValue(m.Frame.Input)
		m.Input.CursorEnd()
	}
	m.Keys.updateEnabled(m.Frame)
}

func (m *Model) toggleMask() {
	if m.Input.EchoMode == textinput.EchoPassword {
		m.Input.EchoMode = textinput.EchoNormal
		return
	}
	m.Input.EchoMode = textinput.EchoPassword
	m.Input.EchoCharacter = '•'
}

// Masked reports whether the input currently hides the password
func (m Model) Masked() bool {
	return m.Input.EchoMode == textinput.EchoPassword
}

func inputWidth(terminalWidth int) int {
	w := terminalWidth - 14 // Container border, input border, prompt
	if w < 20 {
		w = 20
	}
	return w
}

// View renders the screen
func (m Model) View() string {
	return RenderApplicationContainer(m.buildContent(), m.Help.View(m.Keys), m.ServerURL, m.Width, m.Height)
}

func (m Model) buildContent() string {
	var b strings.Builder

	b.WriteString(SectionTitleStyle.Render("Password"))
	b.WriteString("\n")
	b.WriteString(InputBoxStyle.Render(m.Input.View()))
	b.WriteString("\n")
	b.WriteString(m.renderInputHints())
	b.WriteString("\n\n")

	b.WriteString(m.renderStrength())
	b.WriteString("\n\n")

	b.WriteString(SectionTitleStyle.Render("Feedback"))
	b.WriteString("\n")
	b.WriteString(renderFeedback(m.Frame.Feedback))

	if m.Frame.PanelVisible {
		b.WriteString("\n\n")
		b.WriteString(m.renderGeneratedPanel())
	}

	if toasts := m.renderToasts(); toasts != "" {
		b.WriteString("\n\n")
		b.WriteString(toasts)
	}

	return b.String()
}

func (m Model) renderInputHints() string {
	hints := []string{"ctrl+g generate"}
	if m.Frame.CopyVisible {
		hints = append(hints, "ctrl+y copy")
	}
	if m.Masked() {
		hints = append(hints, "ctrl+t show")
	} else {
		hints = append(hints, "ctrl+t hide")
	}
	return HintStyle.Render(strings.Join(hints, " · "))
}

func (m Model) renderStrength() string {
	width := ui.MeterBarWidth(m.Width)
	bar := ui.NewStrengthBar(m.Frame.LabelColor, width).ViewAs(m.Frame.Percentage / 100)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		bar, "  ",
		ui.FormatPercentage(m.Frame.Percentage), "  ",
		ui.LabelStyle(m.Frame.LabelColor).Render(m.Frame.LabelText),
	)
}

func renderFeedback(items []controller.FeedbackItem) string {
	if len(items) == 0 {
		return HintStyle.Render("  Start typing to see suggestions")
	}

	lines := make([]string, len(items))
	for i, it := range items {
		if it.Kind == controller.FeedbackSuccess {
			lines[i] = ui.FeedbackSuccessStyle.Render("  " + ui.SuccessMarker + " " + it.Text)
		} else {
			lines[i] = ui.FeedbackWarningStyle.Render("  " + ui.WarningMarker + " " + it.Text)
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderGeneratedPanel() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		SectionTitleStyle.Render("Generated password"),
		ui.PasswordStyle.Render(m.Frame.GeneratedText),
		HintStyle.Render("ctrl+p copy"),
	)
	return GeneratedBoxStyle.Width(m.Width - generatedBoxInset - 4).Render(content)
}

func (m Model) renderToasts() string {
	if m.toasts == nil {
		return ""
	}
	var rendered []string
	for _, n := range m.toasts.Active() {
		phase := n.Phase()
		if phase == notify.PhaseRemoved {
			continue
		}
		marker := ui.SuccessMarker
		if n.Kind == notify.KindError {
			marker = ui.FailureMarker
		}
		rendered = append(rendered, toastStyle(n.Kind, phase).Render(marker+" "+n.Message))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}
