package termcore

// Color is an RGBA color with straight (non-premultiplied) alpha.
// All channels are in [0, 1].
type Color struct {
	R, G, B, A float64
}

// Opaque returns true if the color is fully opaque.
func (c Color) Opaque() bool {
	return c.A >= 1
}

// Transparent returns true if the color is fully transparent.
func (c Color) Transparent() bool {
	return c.A <= 0
}

// scaled returns the color with its RGB channels multiplied by f.
func (c Color) scaled(f float64) Color {
	return Color{R: c.R * f, G: c.G * f, B: c.B * f, A: c.A}
}

// rgb builds an opaque color from 8-bit channel values.
func rgb(r, g, b uint8) Color {
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: 1,
	}
}

// DefaultForeground is the default text color (light gray).
var DefaultForeground = rgb(229, 229, 229)

// DefaultBackground is the default background color. It is transparent so a
// host can composite the screen over its own background.
var DefaultBackground = Color{}

// inverseFallback is the background substitute used when inverse video would
// otherwise paint text with a fully transparent color.
var inverseFallback = rgb(30, 30, 30)

// AnsiColors is the standard 16-color ANSI palette: 8 normal colors followed
// by their bright variants.
var AnsiColors = [16]Color{
	rgb(0, 0, 0),       // Black
	rgb(205, 49, 49),   // Red
	rgb(13, 188, 121),  // Green
	rgb(229, 229, 16),  // Yellow
	rgb(36, 114, 200),  // Blue
	rgb(188, 63, 188),  // Magenta
	rgb(17, 168, 205),  // Cyan
	rgb(229, 229, 229), // White

	rgb(102, 102, 102), // Bright Black
	rgb(241, 76, 76),   // Bright Red
	rgb(35, 209, 139),  // Bright Green
	rgb(245, 245, 67),  // Bright Yellow
	rgb(59, 142, 234),  // Bright Blue
	rgb(214, 112, 214), // Bright Magenta
	rgb(41, 184, 219),  // Bright Cyan
	rgb(255, 255, 255), // Bright White
}

// Color256 maps a 256-color palette index to a Color: 0-15 are the ANSI
// palette, 16-231 a 6x6x6 color cube, 232-255 a 24-step grayscale ramp.
// Out-of-range indices return the default foreground.
func Color256(n int) Color {
	switch {
	case n >= 0 && n < 16:
		return AnsiColors[n]
	case n >= 16 && n < 232:
		n -= 16
		r := cubeChannel(n / 36)
		g := cubeChannel((n / 6) % 6)
		b := cubeChannel(n % 6)
		return rgb(r, g, b)
	case n >= 232 && n < 256:
		gray := uint8((n-232)*10 + 8)
		return rgb(gray, gray, gray)
	default:
		return DefaultForeground
	}
}

// cubeChannel maps a color-cube digit (0-5) to its 8-bit channel value.
func cubeChannel(d int) uint8 {
	if d == 0 {
		return 0
	}
	return uint8(40*d + 55)
}

// Style holds the visual attributes applied to written characters: colors
// plus the SGR boolean flags. The zero value is not the default style; use
// [DefaultStyle].
type Style struct {
	Fg Color
	Bg Color

	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
	Dim           bool
	Inverse       bool
	Blink         bool
	Hidden        bool
}

// DefaultStyle returns the style used for newly constructed cells: default
// foreground and background, no flags.
func DefaultStyle() Style {
	return Style{Fg: DefaultForeground, Bg: DefaultBackground}
}

// IsDefault returns true if the style equals the default style.
func (s Style) IsDefault() bool {
	return s == DefaultStyle()
}

// EffectiveFg returns the foreground a renderer should paint with, after
// applying inverse, hidden, and dim.
func (s Style) EffectiveFg() Color {
	if s.Hidden {
		return s.EffectiveBg()
	}

	fg := s.Fg
	if s.Inverse {
		fg = s.Bg
		if fg.Transparent() {
			fg = inverseFallback
		}
	}
	if s.Dim {
		fg = fg.scaled(0.6)
	}
	return fg
}

// EffectiveBg returns the background a renderer should paint with, after
// applying inverse.
func (s Style) EffectiveBg() Color {
	if s.Inverse {
		return s.Fg
	}
	return s.Bg
}

// applySGR interprets an SGR parameter list left to right, mutating the
// style accumulator. Unknown codes are ignored. An empty list is treated as
// a full reset, matching CSI m with no parameters.
func applySGR(s *Style, params []int) {
	if len(params) == 0 {
		params = []int{0}
	}

	for i := 0; i < len(params); i++ {
		code := params[i]
		switch {
		case code == 0:
			*s = DefaultStyle()
		case code == 1:
			s.Bold = true
		case code == 2:
			s.Dim = true
		case code == 3:
			s.Italic = true
		case code == 4:
			s.Underline = true
		case code == 5 || code == 6:
			s.Blink = true
		case code == 7:
			s.Inverse = true
		case code == 8:
			s.Hidden = true
		case code == 9:
			s.Strikethrough = true
		case code == 21:
			s.Bold = false
		case code == 22:
			s.Bold = false
			s.Dim = false
		case code == 23:
			s.Italic = false
		case code == 24:
			s.Underline = false
		case code == 25:
			s.Blink = false
		case code == 27:
			s.Inverse = false
		case code == 28:
			s.Hidden = false
		case code == 29:
			s.Strikethrough = false
		case code >= 30 && code <= 37:
			s.Fg = AnsiColors[code-30]
		case code == 38:
			if c, skip, ok := extendedColor(params[i+1:]); ok {
				s.Fg = c
				i += skip
			}
		case code == 39:
			s.Fg = DefaultForeground
		case code >= 40 && code <= 47:
			s.Bg = AnsiColors[code-40]
		case code == 48:
			if c, skip, ok := extendedColor(params[i+1:]); ok {
				s.Bg = c
				i += skip
			}
		case code == 49:
			s.Bg = DefaultBackground
		case code >= 90 && code <= 97:
			s.Fg = AnsiColors[code-90+8]
		case code >= 100 && code <= 107:
			s.Bg = AnsiColors[code-100+8]
		}
	}
}

// extendedColor decodes the parameters following SGR 38/48: mode 2 consumes
// an RGB triple, mode 5 a 256-color index. Returns the color, the number of
// parameters consumed, and whether the sequence was well formed.
func extendedColor(params []int) (Color, int, bool) {
	if len(params) == 0 {
		return Color{}, 0, false
	}

	switch params[0] {
	case 2:
		if len(params) < 4 {
			return Color{}, 0, false
		}
		return Color{
			R: float64(clamp(params[1], 0, 255)) / 255,
			G: float64(clamp(params[2], 0, 255)) / 255,
			B: float64(clamp(params[3], 0, 255)) / 255,
			A: 1,
		}, 4, true
	case 5:
		if len(params) < 2 {
			return Color{}, 0, false
		}
		return Color256(params[1]), 2, true
	default:
		return Color{}, 0, false
	}
}
