package termcore

// WriteString writes text at the cursor using the current style. The C0
// controls a PTY host commonly leaves in text (\n, \r, \t, \b) are honored;
// other control characters are dropped.
func (t *Terminal) WriteString(s string) {
	for _, r := range s {
		switch r {
		case '\n':
			t.Newline()
		case '\r':
			t.CarriageReturn()
		case '\t':
			t.Tab()
		case '\b':
			t.Backspace()
		default:
			if r >= 0x20 {
				t.WriteChar(r)
			}
		}
	}
}

// WriteChar places one character at the cursor with the current style and
// advances the cursor by the character's display width. A character that
// does not fit before the right edge wraps early (marking the line) when
// autowrap is set; with autowrap off a narrow character overwrites the last
// cell and a wide one is dropped, since it cannot straddle the edge.
// Zero-width characters are dropped.
func (t *Terminal) WriteChar(r rune) {
	w := runeWidth(r)
	if w <= 0 || w > t.cols {
		return
	}

	if t.cursor.Col+w > t.cols {
		if t.autowrap {
			t.screenLine(t.cursor.Row).Wrapped = true
			t.Newline()
		} else if w == 2 {
			return
		} else {
			t.cursor.Col = t.cols - 1
		}
	}

	line := t.screenLine(t.cursor.Row)
	if t.insertMode {
		line.InsertCells(t.cursor.Col, w, t.currentStyle)
	}

	line.Cells[t.cursor.Col] = Cell{Char: r, Style: t.currentStyle, Width: w}
	if w == 2 && t.cursor.Col+1 < t.cols {
		line.Cells[t.cursor.Col+1] = spacerCell()
	}

	t.cursor.Col += w
	if t.cursor.Col > t.cols {
		t.cursor.Col = t.cols
	}
}

// Newline moves to the start of the next line, scrolling the region when the
// cursor sits at (or below) its bottom.
func (t *Terminal) Newline() {
	t.cursor.Col = 0
	t.advanceLine()
}

// LineFeed moves the cursor down one line without changing the column,
// scrolling the region when the cursor sits at (or below) its bottom.
func (t *Terminal) LineFeed() {
	t.advanceLine()
}

// advanceLine is the shared scroll-or-step of Newline and LineFeed. New
// output pins the viewport back to the bottom unless the user has scrolled
// away.
func (t *Terminal) advanceLine() {
	if t.cursor.Row >= t.scrollBottom {
		t.scrollUpRegion()
	} else if t.cursor.Row < t.rows-1 {
		t.cursor.Row++
	}
	if !t.userScrolled {
		t.scrollOffset = 0
	}
}

// CarriageReturn moves the cursor to column 0.
func (t *Terminal) CarriageReturn() {
	t.cursor.Col = 0
}

// Backspace moves the cursor one column left, stopping at column 0.
func (t *Terminal) Backspace() {
	if t.cursor.Col > 0 {
		t.cursor.Col--
	}
}

// Tab advances the cursor to the next tab stop, or the last column when no
// stop remains.
func (t *Terminal) Tab() {
	for _, stop := range t.tabs {
		if stop > t.cursor.Col {
			t.cursor.Col = clamp(stop, 0, t.cols-1)
			return
		}
	}
	t.cursor.Col = t.cols - 1
}

// verticalBounds returns the rows the cursor may occupy: the scroll region
// under origin mode, the full screen otherwise.
func (t *Terminal) verticalBounds() (top, bottom int) {
	if t.originMode {
		return t.scrollTop, t.scrollBottom
	}
	return 0, t.rows - 1
}

// CursorUp moves the cursor up n rows, clamped to the addressable area.
func (t *Terminal) CursorUp(n int) {
	if n <= 0 {
		return
	}
	top, bottom := t.verticalBounds()
	t.cursor.Row = clamp(t.cursor.Row-n, top, bottom)
}

// CursorDown moves the cursor down n rows, clamped to the addressable area.
func (t *Terminal) CursorDown(n int) {
	if n <= 0 {
		return
	}
	top, bottom := t.verticalBounds()
	t.cursor.Row = clamp(t.cursor.Row+n, top, bottom)
}

// CursorForward moves the cursor right n columns, clamped to the last column.
func (t *Terminal) CursorForward(n int) {
	if n <= 0 {
		return
	}
	t.cursor.Col = clamp(t.cursor.Col+n, 0, t.cols-1)
}

// CursorBackward moves the cursor left n columns, stopping at column 0.
func (t *Terminal) CursorBackward(n int) {
	if n <= 0 {
		return
	}
	t.cursor.Col = clamp(t.cursor.Col-n, 0, t.cols-1)
}

// CursorNextLine moves the cursor down n rows and to column 0.
func (t *Terminal) CursorNextLine(n int) {
	t.CursorDown(n)
	t.cursor.Col = 0
}

// CursorPrevLine moves the cursor up n rows and to column 0.
func (t *Terminal) CursorPrevLine(n int) {
	t.CursorUp(n)
	t.cursor.Col = 0
}

// CursorToColumn moves the cursor to a 1-based column (CHA).
func (t *Terminal) CursorToColumn(col int) {
	t.cursor.Col = clamp(col-1, 0, t.cols-1)
}

// CursorToLine moves the cursor to a 1-based row, keeping the column (VPA).
func (t *Terminal) CursorToLine(row int) {
	t.MoveCursorTo(row-1, t.cursor.Col)
}

// MoveCursorTo places the cursor at a 0-based position. Under origin mode
// the row is relative to the scroll region top; the result is clamped to the
// addressable area either way.
func (t *Terminal) MoveCursorTo(row, col int) {
	top, bottom := t.verticalBounds()
	if t.originMode {
		row += t.scrollTop
	}
	t.cursor.Row = clamp(row, top, bottom)
	t.cursor.Col = clamp(col, 0, t.cols-1)
}

// SaveCursor snapshots the cursor position, current style, and addressing
// modes as one unit (DECSC).
func (t *Terminal) SaveCursor() {
	t.savedCursor = &SavedCursor{
		Position:   t.cursor,
		Style:      t.currentStyle,
		OriginMode: t.originMode,
		Autowrap:   t.autowrap,
	}
}

// RestoreCursor reinstates the state saved by SaveCursor (DECRC). No-op when
// nothing was saved.
func (t *Terminal) RestoreCursor() {
	if t.savedCursor == nil {
		return
	}
	t.currentStyle = t.savedCursor.Style
	t.originMode = t.savedCursor.OriginMode
	t.autowrap = t.savedCursor.Autowrap
	t.cursor.Row = clamp(t.savedCursor.Position.Row, 0, t.rows-1)
	t.cursor.Col = clamp(t.savedCursor.Position.Col, 0, t.cols-1)
}

// SetScrollRegion sets the scroll region bounds, 0-based inclusive, and
// homes the cursor (DECSTBM). The region is rejected unless top < bottom
// after clamping to the screen.
func (t *Terminal) SetScrollRegion(top, bottom int) {
	top = clamp(top, 0, t.rows-1)
	bottom = clamp(bottom, 0, t.rows-1)
	if top >= bottom {
		return
	}
	t.scrollTop = top
	t.scrollBottom = bottom
	t.cursor = Position{}
}

// ResetScrollRegion restores full-screen scrolling.
func (t *Terminal) ResetScrollRegion() {
	t.scrollTop = 0
	t.scrollBottom = t.rows - 1
}

// ClearScreen blanks every viewport line with the current style and homes
// the cursor (ED 2). Scrollback is untouched.
func (t *Terminal) ClearScreen() {
	for row := 0; row < t.rows; row++ {
		t.screenLine(row).Clear(t.currentStyle)
	}
	t.cursor = Position{}
}

// ClearScreenBelow blanks from the cursor to the end of the screen (ED 0).
func (t *Terminal) ClearScreenBelow() {
	t.screenLine(t.cursor.Row).ClearToEnd(t.cursor.Col, t.currentStyle)
	for row := t.cursor.Row + 1; row < t.rows; row++ {
		t.screenLine(row).Clear(t.currentStyle)
	}
}

// ClearScreenAbove blanks from the top of the screen through the cursor
// (ED 1).
func (t *Terminal) ClearScreenAbove() {
	for row := 0; row < t.cursor.Row; row++ {
		t.screenLine(row).Clear(t.currentStyle)
	}
	t.screenLine(t.cursor.Row).ClearToStart(t.cursor.Col, t.currentStyle)
}

// ClearScrollback discards all scrollback lines (ED 3), keeping the viewport
// intact.
func (t *Terminal) ClearScrollback() {
	if extra := t.ScrollbackLines(); extra > 0 {
		t.lines = append([]Line(nil), t.lines[extra:]...)
	}
	t.scrollOffset = 0
	t.userScrolled = false
}

// ClearLine blanks the cursor's line with the current style (EL 2).
func (t *Terminal) ClearLine() {
	t.screenLine(t.cursor.Row).Clear(t.currentStyle)
}

// ClearToEndOfLine blanks from the cursor to the end of its line (EL 0).
func (t *Terminal) ClearToEndOfLine() {
	t.screenLine(t.cursor.Row).ClearToEnd(t.cursor.Col, t.currentStyle)
}

// ClearToStartOfLine blanks from the start of the line through the cursor
// (EL 1).
func (t *Terminal) ClearToStartOfLine() {
	t.screenLine(t.cursor.Row).ClearToStart(t.cursor.Col, t.currentStyle)
}

// EraseChars blanks n cells at the cursor without shifting (ECH).
func (t *Terminal) EraseChars(n int) {
	t.screenLine(t.cursor.Row).EraseCells(clamp(t.cursor.Col, 0, t.cols-1), n, t.currentStyle)
}

// InsertChars shifts the rest of the line right and inserts n blanks (ICH).
func (t *Terminal) InsertChars(n int) {
	t.screenLine(t.cursor.Row).InsertCells(clamp(t.cursor.Col, 0, t.cols-1), n, t.currentStyle)
}

// DeleteChars removes n cells at the cursor, shifting the rest left (DCH).
func (t *Terminal) DeleteChars(n int) {
	t.screenLine(t.cursor.Row).DeleteCells(clamp(t.cursor.Col, 0, t.cols-1), n, t.currentStyle)
}

// InsertLines inserts n blank lines at the cursor, pushing lines below it
// toward the region bottom (IL). No-op when the cursor is outside the scroll
// region; lines outside the region never move.
func (t *Terminal) InsertLines(n int) {
	if n <= 0 || t.cursor.Row < t.scrollTop || t.cursor.Row > t.scrollBottom {
		return
	}
	n = clamp(n, 0, t.scrollBottom-t.cursor.Row+1)

	top := t.viewportToAbsolute(t.cursor.Row)
	bottom := t.viewportToAbsolute(t.scrollBottom)
	region := t.lines[top : bottom+1]

	copy(region[n:], region[:len(region)-n])
	for i := 0; i < n; i++ {
		region[i] = newLine(t.cols, t.currentStyle)
	}
}

// DeleteLines removes n lines at the cursor, pulling lines up from the
// region bottom and filling it with blanks (DL). No-op when the cursor is
// outside the scroll region; lines outside the region never move.
func (t *Terminal) DeleteLines(n int) {
	if n <= 0 || t.cursor.Row < t.scrollTop || t.cursor.Row > t.scrollBottom {
		return
	}
	n = clamp(n, 0, t.scrollBottom-t.cursor.Row+1)

	top := t.viewportToAbsolute(t.cursor.Row)
	bottom := t.viewportToAbsolute(t.scrollBottom)
	region := t.lines[top : bottom+1]

	copy(region, region[n:])
	for i := len(region) - n; i < len(region); i++ {
		region[i] = newLine(t.cols, t.currentStyle)
	}
}
