package termcore

// SegmentType identifies the kind of a parsed segment.
type SegmentType int

const (
	// SegText is a run of printable characters sharing one style.
	SegText SegmentType = iota
	// SegBell is the BEL control character.
	SegBell
	// SegBackspace moves the cursor one column left.
	SegBackspace
	// SegTab advances the cursor to the next tab stop.
	SegTab
	// SegLineFeed moves the cursor down one row (LF, VT, FF).
	SegLineFeed
	// SegCarriageReturn moves the cursor to column 0.
	SegCarriageReturn
	// SegCursorUp moves the cursor up N rows.
	SegCursorUp
	// SegCursorDown moves the cursor down N rows.
	SegCursorDown
	// SegCursorForward moves the cursor right N columns.
	SegCursorForward
	// SegCursorBackward moves the cursor left N columns.
	SegCursorBackward
	// SegCursorNextLine moves the cursor down N rows and to column 0.
	SegCursorNextLine
	// SegCursorPrevLine moves the cursor up N rows and to column 0.
	SegCursorPrevLine
	// SegCursorToColumn moves the cursor to column N (1-based).
	SegCursorToColumn
	// SegCursorPosition moves the cursor to (Row, Col), 0-based.
	SegCursorPosition
	// SegClearScreen clears screen regions according to Mode.
	SegClearScreen
	// SegClearLine clears line regions according to Mode.
	SegClearLine
	// SegInsertLines inserts N blank lines at the cursor.
	SegInsertLines
	// SegDeleteLines deletes N lines at the cursor.
	SegDeleteLines
	// SegInsertChars inserts N blank cells at the cursor.
	SegInsertChars
	// SegDeleteChars deletes N cells at the cursor.
	SegDeleteChars
	// SegEraseChars blanks N cells at the cursor without shifting.
	SegEraseChars
	// SegScrollUp scrolls the region up N lines.
	SegScrollUp
	// SegScrollDown scrolls the region down N lines.
	SegScrollDown
	// SegSetScrollRegion sets the scroll region to [Row, Col] (top, bottom), 0-based inclusive.
	SegSetScrollRegion
	// SegResetScrollRegion restores full-screen scrolling.
	SegResetScrollRegion
	// SegCursorSave saves the cursor position and attributes (DECSC).
	SegCursorSave
	// SegCursorRestore restores the saved cursor (DECRC).
	SegCursorRestore
	// SegReverseIndex moves the cursor up, scrolling down at the region top.
	SegReverseIndex
	// SegReset restores the terminal to its initial state (RIS).
	SegReset
	// SegSetTitle sets the window title to Text.
	SegSetTitle
	// SegCursorStyle changes the cursor shape (DECSCUSR parameter in N).
	SegCursorStyle
	// SegOriginMode toggles origin mode (DECOM).
	SegOriginMode
	// SegAutoWrap toggles autowrap mode (DECAWM).
	SegAutoWrap
	// SegCursorVisible toggles cursor visibility (DECTCEM).
	SegCursorVisible
	// SegAltScreenEnter switches to the alternate screen.
	SegAltScreenEnter
	// SegAltScreenExit returns to the primary screen.
	SegAltScreenExit
	// SegMouseTracking toggles mouse event reporting.
	SegMouseTracking
	// SegFocusTracking toggles focus in/out reporting.
	SegFocusTracking
	// SegBracketedPaste toggles bracketed paste mode.
	SegBracketedPaste
)

// ClearMode selects which part of the screen or line a clear affects.
type ClearMode int

const (
	// ClearToEnd clears from the cursor to the end.
	ClearToEnd ClearMode = iota
	// ClearToStart clears from the start to the cursor.
	ClearToStart
	// ClearAll clears everything.
	ClearAll
	// ClearScrollback clears saved scrollback lines.
	ClearScrollback
)

// ClearModeFromParam maps a CSI J/K parameter to a ClearMode.
// Unknown parameters fall back to ClearToEnd.
func ClearModeFromParam(p int) ClearMode {
	switch p {
	case 1:
		return ClearToStart
	case 2:
		return ClearAll
	case 3:
		return ClearScrollback
	default:
		return ClearToEnd
	}
}

// Segment is one decoded unit of terminal output: a styled text run, a
// control function, or a mode change. Which payload fields are meaningful
// depends on Type; the rest are zero.
//
// Segments are emitted in application order. A consumer must apply them in
// the order returned by [Parser.Parse].
type Segment struct {
	Type SegmentType

	// Text holds the characters of a SegText run or the SegSetTitle title.
	Text string
	// Style is the SGR state attached to a SegText run.
	Style Style
	// N is a repeat count or raw parameter (cursor moves, edits, DECSCUSR).
	N int
	// Row and Col carry a cursor position or scroll-region bounds (top, bottom).
	Row, Col int
	// Mode selects the region for SegClearScreen and SegClearLine.
	Mode ClearMode
	// Enabled carries the direction of a mode toggle.
	Enabled bool
}

// textSegment builds a SegText segment with a copy of the given style.
func textSegment(text string, style Style) Segment {
	return Segment{Type: SegText, Text: text, Style: style}
}

// countSegment builds a segment carrying a single repeat count.
func countSegment(typ SegmentType, n int) Segment {
	return Segment{Type: typ, N: n}
}

// modeSegment builds a mode-toggle segment.
func modeSegment(typ SegmentType, enabled bool) Segment {
	return Segment{Type: typ, Enabled: enabled}
}
