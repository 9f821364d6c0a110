package strength

import "testing"

func TestParseLabel(t *testing.T) {
	tests := []struct {
		in   string
		want Label
	}{
		{"Very Weak", VeryWeak},
		{"Weak", Weak},
		{"Fair", Fair},
		{"Good", Good},
		{"Very Strong", VeryStrong},
		{"Mythical", Unknown},
		{"very weak", Unknown},
		{"", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLabel(tt.in); got != tt.want {
				t.Errorf("ParseLabel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLabelColor(t *testing.T) {
	seen := make(map[Color]Label)
	for _, l := range Labels() {
		c := l.Color()
		if c == NeutralColor {
			t.Errorf("%v uses the neutral color", l)
		}
		if other, dup := seen[c]; dup {
			t.Errorf("%v and %v share color %s", l, other, c)
		}
		seen[c] = l
	}

	if Unknown.Color() != NeutralColor {
		t.Errorf("Unknown.Color() = %s, want %s", Unknown.Color(), NeutralColor)
	}
	if Label(42).Color() != NeutralColor {
		t.Error("out-of-range label should fall back to neutral")
	}
}

func TestLabelsOrdered(t *testing.T) {
	labels := Labels()
	for i := 1; i < len(labels); i++ {
		if labels[i-1] >= labels[i] {
			t.Errorf("labels not ascending at %d: %v >= %v", i, labels[i-1], labels[i])
		}
	}
}

func TestNewAssessment(t *testing.T) {
	feedback := []string{"Add numbers"}
	a, err := NewAssessment(42.5, "Mythical", feedback)
	if err != nil {
		t.Fatalf("NewAssessment() error = %v", err)
	}

	if a.Label != Unknown || a.LabelText != "Mythical" {
		t.Errorf("label = %v/%q, want Unknown/Mythical", a.Label, a.LabelText)
	}
	if a.Color() != NeutralColor {
		t.Errorf("Color() = %s, want neutral", a.Color())
	}

	feedback[0] = "mutated"
	if a.Feedback[0] != "Add numbers" {
		t.Error("assessment feedback must not alias the caller's slice")
	}
}

func TestNewAssessment_OutOfRange(t *testing.T) {
	for _, p := range []float64{-0.1, 100.01} {
		if _, err := NewAssessment(p, "Good", nil); err == nil {
			t.Errorf("NewAssessment(%v) should fail", p)
		}
	}
}
