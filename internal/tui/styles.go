package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rihenm13-code/password-checker/internal/notify"
	"github.com/rihenm13-code/password-checker/internal/ui"
	"github.com/rihenm13-code/password-checker/internal/urls"
	"github.com/rihenm13-code/password-checker/internal/version"
)

// AppName is shown in the container header
const AppName = "PASSWORD STRENGTH CHECKER"

// Layout constants for responsive terminal width
const (
	MinTerminalWidth  = 60
	MaxContentWidth   = 100
	DefaultWidth      = 80
	DefaultHeight     = 24
	toastWidth        = 36
	generatedBoxInset = 6
)

// Neutral colors
var (
	BorderColor = lipgloss.Color("#7D56F4") // Purple
	SubtleColor = lipgloss.Color("#626262") // Gray
	FaintColor  = lipgloss.Color("#3a3a3a") // Dark gray for transitions
)

var (
	// SectionTitleStyle is for "Password", "Feedback" and panel titles
	SectionTitleStyle = lipgloss.NewStyle().
				Foreground(SubtleColor).
				Bold(true)

	// InputBoxStyle wraps the password input
	InputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	// HintStyle is for inline key hints such as "ctrl+y copy"
	HintStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	// GeneratedBoxStyle is the generated-password panel
	GeneratedBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ui.SuccessColor).
				Padding(0, 1)
)

// toastStyle returns the style of a notification in the given phase.
// Entering and leaving toasts are drawn faint to suggest the transition.
func toastStyle(kind notify.Kind, phase notify.Phase) lipgloss.Style {
	accent := ui.SuccessColor
	if kind == notify.KindError {
		accent = ui.ErrorColor
	}

	s := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Width(toastWidth).
		Padding(0, 1)

	if phase == notify.PhaseVisible {
		return s.BorderForeground(accent).Foreground(accent).Bold(true)
	}
	return s.BorderForeground(FaintColor).Foreground(SubtleColor).Faint(true)
}

// BuildHeaderContent creates header content with app name, version and
// the service in use
func BuildHeaderContent(serverURL string) string {
	left := lipgloss.NewStyle().
		Foreground(ui.TextColor).
		Bold(true).
		Render(AppName + " v" + version.Version)

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(serverURL)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

// RenderApplicationContainer wraps the screen content with the header,
// the help footer and an outer border filling the terminal.
func RenderApplicationContainer(content, footerText, serverURL string, terminalWidth, terminalHeight int) string {
	if terminalWidth < MinTerminalWidth {
		terminalWidth = MinTerminalWidth
	}
	if terminalHeight < 10 {
		terminalHeight = DefaultHeight
	}

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	footer := lipgloss.NewStyle().Foreground(SubtleColor).Render(footerText)
	footer += "\n" + lipgloss.NewStyle().Foreground(FaintColor).Render(urls.Repository)

	inner := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(BuildHeaderContent(serverURL)),
		lipgloss.NewStyle().Width(terminalWidth-4).Render(content),
		footerStyle.Render(footer),
	)

	bordered := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2).
		Height(terminalHeight - 2).
		AlignVertical(lipgloss.Top).
		Render(inner)

	return lipgloss.Place(terminalWidth, terminalHeight, lipgloss.Left, lipgloss.Top, bordered)
}
