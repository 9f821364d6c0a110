package controller

import (
	"slices"

	"github.com/rihenm13-code/password-checker/internal/strength"
)

// Canonical texts shown by the controller
const (
	EmptyLabel        = "Enter a password"
	LooksGreatMessage = "Password looks great!"
	CheckErrorMessage = "Error checking password"

	GeneratedMessage     = "Password generated successfully!"
	GenerateErrorMessage = "Error generating password"
	CopiedMessage        = "Password copied!"
	CopyErrorMessage     = "Failed to copy"
)

// FeedbackKind distinguishes the "all good" entry from suggestions
type FeedbackKind int

const (
	FeedbackWarning FeedbackKind = iota
	FeedbackSuccess
)

// FeedbackItem is one line of the feedback list
type FeedbackItem struct {
	Text string
	Kind FeedbackKind
}

// DisplayState is everything the view currently shows
type DisplayState struct {
	Percentage            float64
	LabelText             string
	LabelColor            strength.Color
	Feedback              []FeedbackItem
	GeneratedPanelVisible bool
	GeneratedPassword     string
	CopyVisible           bool
}

// EmptyState is the state shown when the input is empty
func EmptyState() DisplayState {
	return DisplayState{
		Percentage: 0,
		LabelText:  EmptyLabel,
		LabelColor: strength.NeutralColor,
	}
}

func (s DisplayState) clone() DisplayState {
	s.Feedback = slices.Clone(s.Feedback)
	return s
}

// feedbackItems maps assessment feedback to display items.
// No suggestions means a single success entry.
func feedbackItems(feedback []string) []FeedbackItem {
	if len(feedback) == 0 {
		return []FeedbackItem{{Text: LooksGreatMessage, Kind: FeedbackSuccess}}
	}
	items := make([]FeedbackItem, len(feedback))
	for i, f := range feedback {
		items[i] = FeedbackItem{Text: f, Kind: FeedbackWarning}
	}
	return items
}
