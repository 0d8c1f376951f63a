package termcore

import "testing"

func TestColor256PaletteRange(t *testing.T) {
	for n := 0; n < 256; n++ {
		c := Color256(n)

		for _, ch := range []float64{c.R, c.G, c.B, c.A} {
			if ch < 0 || ch > 1 {
				t.Fatalf("index %d: channel %v out of [0,1]", n, ch)
			}
		}
		if n < 16 && c != AnsiColors[n] {
			t.Errorf("index %d: expected ANSI palette color, got %+v", n, c)
		}
		if n >= 232 && (c.R != c.G || c.G != c.B) {
			t.Errorf("index %d: expected grayscale, got %+v", n, c)
		}
	}
}

func TestColor256Cube(t *testing.T) {
	// Index 196 is cube position (5, 0, 0): pure bright red.
	c := Color256(196)
	if c.R != 1 || c.G != 0 || c.B != 0 {
		t.Errorf("expected (1, 0, 0), got %+v", c)
	}

	// Index 16 is cube position (0, 0, 0).
	c = Color256(16)
	if c.R != 0 || c.G != 0 || c.B != 0 {
		t.Errorf("expected black, got %+v", c)
	}
}

func TestColor256OutOfRange(t *testing.T) {
	if Color256(-1) != DefaultForeground {
		t.Error("expected default foreground for negative index")
	}
	if Color256(256) != DefaultForeground {
		t.Error("expected default foreground for index 256")
	}
}

func TestApplySGRResetIdempotent(t *testing.T) {
	s := DefaultStyle()
	applySGR(&s, []int{1, 4, 31, 45, 7})

	applySGR(&s, []int{0})
	if !s.IsDefault() {
		t.Errorf("expected default style after SGR 0, got %+v", s)
	}

	// Empty parameter list is also a full reset.
	applySGR(&s, []int{31})
	applySGR(&s, nil)
	if !s.IsDefault() {
		t.Errorf("expected default style after empty SGR, got %+v", s)
	}
}

func TestApplySGRFlags(t *testing.T) {
	s := DefaultStyle()

	applySGR(&s, []int{1, 2, 3, 4, 5, 7, 8, 9})
	if !s.Bold || !s.Dim || !s.Italic || !s.Underline || !s.Blink || !s.Inverse || !s.Hidden || !s.Strikethrough {
		t.Errorf("expected all flags set, got %+v", s)
	}

	applySGR(&s, []int{22, 23, 24, 25, 27, 28, 29})
	if s.Bold || s.Dim || s.Italic || s.Underline || s.Blink || s.Inverse || s.Hidden || s.Strikethrough {
		t.Errorf("expected all flags cleared, got %+v", s)
	}
}

func TestApplySGRBrightColors(t *testing.T) {
	s := DefaultStyle()

	applySGR(&s, []int{91, 104})
	if s.Fg != AnsiColors[9] {
		t.Errorf("expected bright red foreground, got %+v", s.Fg)
	}
	if s.Bg != AnsiColors[12] {
		t.Errorf("expected bright blue background, got %+v", s.Bg)
	}

	applySGR(&s, []int{39, 49})
	if s.Fg != DefaultForeground || s.Bg != DefaultBackground {
		t.Errorf("expected default colors after 39/49, got %+v", s)
	}
}

func TestApplySGRTruncatedExtendedColor(t *testing.T) {
	s := DefaultStyle()

	// 38;5 without an index and 38;2 without a full triple change nothing.
	applySGR(&s, []int{38, 5})
	applySGR(&s, []int{38, 2, 10, 20})
	if s.Fg != DefaultForeground {
		t.Errorf("expected foreground unchanged, got %+v", s.Fg)
	}
}

func TestEffectiveFgInverse(t *testing.T) {
	s := DefaultStyle()
	s.Inverse = true

	// Transparent background inverts to the dark fallback, not nothing.
	if got := s.EffectiveFg(); got != inverseFallback {
		t.Errorf("expected inverse fallback, got %+v", got)
	}
	if got := s.EffectiveBg(); got != s.Fg {
		t.Errorf("expected background = foreground under inverse, got %+v", got)
	}

	s.Bg = AnsiColors[4]
	if got := s.EffectiveFg(); got != AnsiColors[4] {
		t.Errorf("expected swapped background color, got %+v", got)
	}
}

func TestEffectiveFgDim(t *testing.T) {
	s := DefaultStyle()
	s.Fg = Color{R: 1, G: 0.5, B: 0, A: 1}
	s.Dim = true

	got := s.EffectiveFg()
	if got.R != 0.6 || got.G != 0.3 || got.B != 0 || got.A != 1 {
		t.Errorf("expected channels scaled by 0.6, got %+v", got)
	}
}

func TestEffectiveFgHidden(t *testing.T) {
	s := DefaultStyle()
	s.Bg = AnsiColors[2]
	s.Hidden = true

	if got := s.EffectiveFg(); got != AnsiColors[2] {
		t.Errorf("expected foreground = background when hidden, got %+v", got)
	}
}
