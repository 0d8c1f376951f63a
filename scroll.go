package termcore

// scrollUpRegion scrolls the scroll region up one line. On the alternate
// screen the shift happens in place, whatever the region; the line buffer
// never grows there. On the primary screen the top line migrates into
// scrollback: a blank line is appended and the oldest lines are evicted once
// the cap is exceeded.
func (t *Terminal) scrollUpRegion() {
	if t.altScreen != nil {
		top := t.viewportToAbsolute(t.scrollTop)
		bottom := t.viewportToAbsolute(t.scrollBottom)
		region := t.lines[top : bottom+1]
		copy(region, region[1:])
		region[len(region)-1] = newLine(t.cols, t.currentStyle)
		return
	}

	t.lines = append(t.lines, newLine(t.cols, t.currentStyle))
	if extra := len(t.lines) - (t.rows + t.maxScrollback); extra > 0 {
		t.lines = t.lines[extra:]
	}
}

// scrollDownRegion scrolls the scroll region down one line: a blank line
// appears at the region top and the region's bottom line is dropped. Lines
// outside the region never move, so this is always an in-place shift.
func (t *Terminal) scrollDownRegion() {
	top := t.viewportToAbsolute(t.scrollTop)
	bottom := t.viewportToAbsolute(t.scrollBottom)
	region := t.lines[top : bottom+1]
	copy(region[1:], region[:len(region)-1])
	region[0] = newLine(t.cols, t.currentStyle)
}

// ScrollUp scrolls the region up n lines without moving the cursor (SU).
func (t *Terminal) ScrollUp(n int) {
	for i := 0; i < n; i++ {
		t.scrollUpRegion()
	}
}

// ScrollDown scrolls the region down n lines without moving the cursor (SD).
func (t *Terminal) ScrollDown(n int) {
	for i := 0; i < n; i++ {
		t.scrollDownRegion()
	}
}

// ReverseIndex moves the cursor up one row, scrolling the region down only
// when the cursor sits exactly at the region top (RI). Above the region the
// cursor moves up normally, stopping at the first row.
func (t *Terminal) ReverseIndex() {
	if t.cursor.Row == t.scrollTop {
		t.scrollDownRegion()
		return
	}
	if t.cursor.Row > 0 {
		t.cursor.Row--
	}
}

// EnterAltScreen switches to a blank alternate screen, stashing the primary
// screen's lines, cursor, and saved cursor for restoration on exit. No-op if
// the alternate screen is already active.
func (t *Terminal) EnterAltScreen() {
	if t.altScreen != nil {
		return
	}

	t.altScreen = &altScreenState{
		lines:       t.lines,
		cursor:      t.cursor,
		savedCursor: t.savedCursor,
	}

	t.lines = blankLines(t.rows, t.cols)
	t.cursor = Position{}
	t.savedCursor = nil
	t.scrollOffset = 0
	t.userScrolled = false
}

// ExitAltScreen restores the primary screen stashed by EnterAltScreen,
// discarding everything written to the alternate screen. No-op if the
// alternate screen is not active.
func (t *Terminal) ExitAltScreen() {
	if t.altScreen == nil {
		return
	}

	t.lines = t.altScreen.lines
	t.cursor = t.altScreen.cursor
	t.savedCursor = t.altScreen.savedCursor
	t.altScreen = nil
	t.scrollOffset = 0
}

// ScrollViewportUp scrolls the read window n lines into scrollback. Once the
// offset is nonzero the view stops following new output until the user
// scrolls back down.
func (t *Terminal) ScrollViewportUp(n int) {
	if n <= 0 {
		return
	}
	t.scrollOffset = clamp(t.scrollOffset+n, 0, t.MaxScrollOffset())
	if t.scrollOffset > 0 {
		t.userScrolled = true
	}
}

// ScrollViewportDown scrolls the read window n lines toward the newest
// output, resuming follow mode on reaching the bottom.
func (t *Terminal) ScrollViewportDown(n int) {
	if n <= 0 {
		return
	}
	t.scrollOffset = clamp(t.scrollOffset-n, 0, t.MaxScrollOffset())
	if t.scrollOffset == 0 {
		t.userScrolled = false
	}
}

// ScrollToBottom snaps the read window back to the newest output.
func (t *Terminal) ScrollToBottom() {
	t.scrollOffset = 0
	t.userScrolled = false
}
