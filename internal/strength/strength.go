package strength

import (
	"fmt"
	"slices"
)

// Label is the strength bucket reported by the scoring service.
// The zero value is Unknown so that unrecognised wire values are safe.
type Label int

const (
	Unknown Label = iota
	VeryWeak
	Weak
	Fair
	Good
	VeryStrong
)

// Wire names for each label, exactly as the scoring service sends them
var labelNames = map[Label]string{
	VeryWeak:   "Very Weak",
	Weak:       "Weak",
	Fair:       "Fair",
	Good:       "Good",
	VeryStrong: "Very Strong",
}

// Color is a hex RGB color string such as "#22c55e"
type Color string

// NeutralColor is used for the empty state and for any label outside the
// known vocabulary.
const NeutralColor Color = "#6b7280"

var labelColors = map[Label]Color{
	VeryWeak:   "#ef4444", // red
	Weak:       "#f97316", // orange
	Fair:       "#eab308", // yellow
	Good:       "#84cc16", // light green
	VeryStrong: "#22c55e", // green
}

// ParseLabel maps a wire string to a Label. Anything outside the
// vocabulary yields Unknown; it is never an error.
func ParseLabel(s string) Label {
	for l, name := range labelNames {
		if name == s {
			return l
		}
	}
	return Unknown
}

// String returns the wire name, or "Unknown"
func (l Label) String() string {
	if name, ok := labelNames[l]; ok {
		return name
	}
	return "Unknown"
}

// Color returns the display color for the label
func (l Label) Color() Color {
	if c, ok := labelColors[l]; ok {
		return c
	}
	return NeutralColor
}

// Labels returns the known labels from weakest to strongest
func Labels() []Label {
	return []Label{VeryWeak, Weak, Fair, Good, VeryStrong}
}

// Assessment is one strength result from the scoring service
type Assessment struct {
	Percentage float64  // 0..100
	Label      Label    // Parsed label (Unknown for unrecognised values)
	LabelText  string   // Label as received, shown verbatim
	Feedback   []string // Suggestions in service order, may be empty
}

// NewAssessment builds an Assessment from raw wire values.
// Percentage must be within [0,100].
func NewAssessment(percentage float64, label string, feedback []string) (Assessment, error) {
	if percentage < 0 || percentage > 100 {
		return Assessment{}, fmt.Errorf("percentage %v out of range [0,100]", percentage)
	}
	return Assessment{
		Percentage: percentage,
		Label:      ParseLabel(label),
		LabelText:  label,
		Feedback:   slices.Clone(feedback),
	}, nil
}

// Color returns the display color for this assessment's label
func (a Assessment) Color() Color {
	return a.Label.Color()
}

// GeneratedPassword is a freshly generated password and its assessment
type GeneratedPassword struct {
	Password   string
	Assessment Assessment
}
