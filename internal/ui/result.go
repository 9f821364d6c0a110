package ui

import (
	"strings"
)

// ResultType indicates success or failure
type ResultType int

const (
	ResultSuccess ResultType = iota
	ResultFailure
	ResultWarning
)

// Result represents a result box (success, failure, or warning)
type Result struct {
	Type            ResultType // Success, failure, or warning
	Title           string     // e.g., "Password generated"
	Details         []Param    // Key-value details, in display order
	Error           error      // Error (for failure results)
	Troubleshooting []string   // Troubleshooting tips (for failure results)
	Width           int        // Terminal width
}

// NewSuccessResult creates a success result box
func NewSuccessResult(title string, details ...Param) *Result {
	return &Result{
		Type:    ResultSuccess,
		Title:   title,
		Details: details,
		Width:   GetTerminalWidth(),
	}
}

// NewFailureResult creates a failure result box
func NewFailureResult(title string, err error, troubleshooting []string) *Result {
	return &Result{
		Type:            ResultFailure,
		Title:           title,
		Error:           err,
		Troubleshooting: troubleshooting,
		Width:           GetTerminalWidth(),
	}
}

// NewWarningResult creates a warning result box
func NewWarningResult(title string, details ...Param) *Result {
	return &Result{
		Type:    ResultWarning,
		Title:   title,
		Details: details,
		Width:   GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (r *Result) SetWidth(width int) *Result {
	r.Width = width
	return r
}

// AddDetail appends a detail key-value pair
func (r *Result) AddDetail(key, value string) *Result {
	r.Details = append(r.Details, Param{Key: key, Value: value})
	return r
}

// Render returns the styled result box as a string
func (r *Result) Render() string {
	width := r.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	lines := []string{""}

	switch r.Type {
	case ResultFailure:
		lines = append(lines, ErrorTitleStyle.Render("   "+FailureMarker+"  FAILED  ─  "+r.Title), "")
		if r.Error != nil {
			lines = append(lines, ErrorMessageStyle.Render("   Error: "+r.Error.Error()), "")
		}
		if len(r.Troubleshooting) > 0 {
			lines = append(lines, renderTroubleshooting(r.Troubleshooting, width), "")
		}
		return ErrorBoxStyle(width).Render(strings.Join(lines, "\n"))

	case ResultWarning:
		title := FeedbackWarningStyle.Bold(true).Render("   " + WarningMarker + "  WARNING  ─  " + r.Title)
		lines = append(lines, title, "")
		lines = append(lines, r.renderDetails()...)
		lines = append(lines, "")
		return WarningBoxStyle(width).Render(strings.Join(lines, "\n"))

	default:
		lines = append(lines, SuccessTitleStyle.Render("   "+SuccessMarker+"  SUCCESS  ─  "+r.Title), "")
		lines = append(lines, r.renderDetails()...)
		lines = append(lines, "")
		return SuccessBoxStyle(width).Render(strings.Join(lines, "\n"))
	}
}

func (r *Result) renderDetails() []string {
	lines := make([]string, len(r.Details))
	for i, d := range r.Details {
		lines[i] = ResultKeyStyle.Render("   "+d.Key+":") + " " + ResultValueStyle.Render(d.Value)
	}
	return lines
}

func renderTroubleshooting(tips []string, width int) string {
	lines := []string{TroubleshootingTitleStyle.Render("Troubleshooting:"), ""}
	for _, tip := range tips {
		lines = append(lines, TroubleshootingItemStyle.Render("  • "+tip))
	}
	return TroubleshootingBoxStyle(width).Render(strings.Join(lines, "\n"))
}

// String implements fmt.Stringer
func (r *Result) String() string {
	return r.Render()
}
