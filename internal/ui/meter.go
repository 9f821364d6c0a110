package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/rihenm13-code/password-checker/internal/strength"
)

// Meter bar width bounds
const (
	MinMeterWidth = 20
	MaxMeterWidth = 50
)

// Meter renders a strength assessment as a colored bar, a percentage,
// the label and the feedback list.
type Meter struct {
	Assessment strength.Assessment
	Width      int // Terminal width
}

// NewMeter creates a meter for a
func NewMeter(a strength.Assessment) *Meter {
	return &Meter{
		Assessment: a,
		Width:      GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (m *Meter) SetWidth(width int) *Meter {
	m.Width = width
	return m
}

// MeterBarWidth returns the bar width for a given terminal width.
// It leaves room for the percentage and the label.
func MeterBarWidth(width int) int {
	w := width - 30
	if w < MinMeterWidth {
		w = MinMeterWidth
	}
	if w > MaxMeterWidth {
		w = MaxMeterWidth
	}
	return w
}

// NewStrengthBar returns a progress bar filled with the label color
func NewStrengthBar(color strength.Color, width int) progress.Model {
	return progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
}

// Render returns the styled meter as a string
func (m *Meter) Render() string {
	var b strings.Builder
	b.WriteString(m.renderBar())
	b.WriteString("\n\n")
	b.WriteString(RenderFeedback(m.Assessment.Feedback))
	b.WriteString("\n")
	return b.String()
}

func (m *Meter) renderBar() string {
	a := m.Assessment
	bar := NewStrengthBar(a.Color(), MeterBarWidth(m.Width))

	return lipgloss.NewStyle().
		PaddingLeft(2).
		Render(fmt.Sprintf("%s  %s  %s",
			bar.ViewAs(a.Percentage/100),
			FormatPercentage(a.Percentage),
			LabelStyle(a.Color()).Render(a.LabelText),
		))
}

// FormatPercentage renders a percentage the way the bar shows it
func FormatPercentage(p float64) string {
	return fmt.Sprintf("%3.0f%%", p)
}

// RenderFeedback renders suggestions as a bullet list. No suggestions
// renders the single success line.
func RenderFeedback(feedback []string) string {
	if len(feedback) == 0 {
		return FeedbackSuccessStyle.Render("  " + SuccessMarker + " Password looks great!")
	}

	lines := make([]string, len(feedback))
	for i, f := range feedback {
		lines[i] = FeedbackWarningStyle.Render("  " + WarningMarker + " " + f)
	}
	return strings.Join(lines, "\n")
}
