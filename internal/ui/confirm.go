package ui

import (
	"bufio"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Confirm displays a warning box and asks a yes/no question.
// Only "y" or "yes" (any case) confirms; anything else, including EOF,
// declines.
func (p *Printer) Confirm(in io.Reader, title string, warnings []string, question string) bool {
	width := p.width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	lines := []string{
		"",
		FeedbackWarningStyle.Bold(true).Render("   " + WarningMarker + "  WARNING  ─  " + title),
		"",
	}
	bulletStyle := lipgloss.NewStyle().Foreground(TextColor)
	for _, w := range warnings {
		lines = append(lines, bulletStyle.Render("   • "+w))
	}
	lines = append(lines, "")

	p.Println(WarningBoxStyle(width).Render(strings.Join(lines, "\n")))
	p.Newline()

	promptStyle := lipgloss.NewStyle().
		Foreground(WarningColor).
		Bold(true)
	p.Print(promptStyle.Render(question + " [y/N]: "))

	input, _ := bufio.NewReader(in).ReadString('\n')
	p.Newline()

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true
	}

	p.Println(lipgloss.NewStyle().Foreground(MutedColor).Render("  Operation cancelled."))
	return false
}
