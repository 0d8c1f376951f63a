package termcore

import "fmt"

// SnapshotDetail specifies the level of detail in a snapshot.
type SnapshotDetail string

const (
	// SnapshotDetailText returns plain text only.
	SnapshotDetailText SnapshotDetail = "text"
	// SnapshotDetailStyled returns text with style segments per line.
	SnapshotDetailStyled SnapshotDetail = "styled"
)

// Snapshot is a JSON-serializable capture of the visible screen.
type Snapshot struct {
	Size   SnapshotSize   `json:"size"`
	Cursor SnapshotCursor `json:"cursor"`
	Title  string         `json:"title,omitempty"`
	Lines  []SnapshotLine `json:"lines"`
}

// SnapshotSize holds terminal dimensions.
type SnapshotSize struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// SnapshotCursor holds cursor state.
type SnapshotCursor struct {
	Row     int    `json:"row"`
	Col     int    `json:"col"`
	Visible bool   `json:"visible"`
	Style   string `json:"style"`
}

// SnapshotLine represents a single line in the snapshot.
type SnapshotLine struct {
	Text     string         `json:"text"`
	Segments []SnapshotSpan `json:"segments,omitempty"`
}

// SnapshotSpan is a run of characters sharing one style within a line.
type SnapshotSpan struct {
	Text       string        `json:"text"`
	Fg         string        `json:"fg,omitempty"`
	Bg         string        `json:"bg,omitempty"`
	Attributes SnapshotAttrs `json:"attrs,omitempty"`
}

// SnapshotAttrs holds text formatting attributes.
type SnapshotAttrs struct {
	Bold          bool `json:"bold,omitempty"`
	Dim           bool `json:"dim,omitempty"`
	Italic        bool `json:"italic,omitempty"`
	Underline     bool `json:"underline,omitempty"`
	Blink         bool `json:"blink,omitempty"`
	Inverse       bool `json:"inverse,omitempty"`
	Hidden        bool `json:"hidden,omitempty"`
	Strikethrough bool `json:"strikethrough,omitempty"`
}

// Snapshot captures the current visible screen. The detail parameter
// controls how much information each line carries.
func (t *Terminal) Snapshot(detail SnapshotDetail) *Snapshot {
	snap := &Snapshot{
		Size: SnapshotSize{
			Rows: t.rows,
			Cols: t.cols,
		},
		Cursor: SnapshotCursor{
			Row:     t.cursor.Row,
			Col:     t.cursor.Col,
			Visible: t.cursorVisible,
			Style:   cursorStyleToString(t.cursorStyle),
		},
		Title: t.title,
		Lines: make([]SnapshotLine, t.rows),
	}

	for row := 0; row < t.rows; row++ {
		snap.Lines[row] = SnapshotLine{Text: t.LineContent(row)}
		if detail == SnapshotDetailStyled {
			snap.Lines[row].Segments = t.lineToSpans(row)
		}
	}

	return snap
}

// lineToSpans converts a viewport line to runs of same-styled text.
func (t *Terminal) lineToSpans(row int) []SnapshotSpan {
	var spans []SnapshotSpan
	var current *SnapshotSpan
	var chars []rune

	for _, cell := range t.screenLine(row).Cells {
		if cell.IsSpacer() {
			continue
		}

		fg := colorToHex(cell.Style.EffectiveFg())
		bg := colorToHex(cell.Style.EffectiveBg())
		attrs := styleAttrs(cell.Style)

		if current == nil || current.Fg != fg || current.Bg != bg || current.Attributes != attrs {
			if current != nil && len(chars) > 0 {
				current.Text = string(chars)
				spans = append(spans, *current)
			}
			current = &SnapshotSpan{Fg: fg, Bg: bg, Attributes: attrs}
			chars = nil
		}

		ch := cell.Char
		if ch == 0 {
			ch = ' '
		}
		chars = append(chars, ch)
	}

	if current != nil && len(chars) > 0 {
		current.Text = string(chars)
		spans = append(spans, *current)
	}

	return spans
}

// colorToHex renders a color as an #rrggbb string, empty for fully
// transparent colors.
func colorToHex(c Color) string {
	if c.Transparent() {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", channelByte(c.R), channelByte(c.G), channelByte(c.B))
}

// channelByte converts a [0,1] channel to its 8-bit value.
func channelByte(v float64) uint8 {
	return uint8(clamp(int(v*255+0.5), 0, 255))
}

// styleAttrs extracts the boolean flags of a style.
func styleAttrs(s Style) SnapshotAttrs {
	return SnapshotAttrs{
		Bold:          s.Bold,
		Dim:           s.Dim,
		Italic:        s.Italic,
		Underline:     s.Underline,
		Blink:         s.Blink,
		Inverse:       s.Inverse,
		Hidden:        s.Hidden,
		Strikethrough: s.Strikethrough,
	}
}

// cursorStyleToString converts a cursor style to its snapshot label.
func cursorStyleToString(style CursorStyle) string {
	switch style {
	case CursorUnderline:
		return "underline"
	case CursorBar:
		return "bar"
	default:
		return "block"
	}
}
