package termcore

const (
	// DefaultRows is the default number of terminal rows.
	DefaultRows = 24
	// DefaultCols is the default number of terminal columns.
	DefaultCols = 80
	// DefaultMaxScrollback is the default scrollback line cap.
	DefaultMaxScrollback = 10000

	// tabInterval is the spacing of the default tab stops.
	tabInterval = 8
)

// altScreenState is the primary-screen snapshot held while the alternate
// screen is active. Kept behind a pointer so a terminal that never enters the
// alternate screen carries no second buffer.
type altScreenState struct {
	lines       []Line
	cursor      Position
	savedCursor *SavedCursor
}

// Terminal owns the logical screen of a terminal session: a line buffer
// whose tail rows form the visible viewport and whose prefix is scrollback,
// plus cursor, scroll region, mode flags, and the alternate screen.
//
// A Terminal is not safe for concurrent use. It is built for the classic
// read-parse-apply-render loop of a single owner; a concurrent host must
// serialize access itself.
type Terminal struct {
	cols int
	rows int

	// lines holds scrollback followed by the viewport; the viewport is
	// always the last rows entries.
	lines  []Line
	cursor Position

	// Scroll region bounds, 0-based inclusive.
	scrollTop    int
	scrollBottom int

	originMode     bool
	autowrap       bool
	insertMode     bool
	bracketedPaste bool
	mouseTracking  bool
	focusTracking  bool

	cursorVisible bool
	cursorStyle   CursorStyle
	savedCursor   *SavedCursor

	// altScreen is non-nil while the alternate screen is active.
	altScreen *altScreenState

	currentStyle Style
	title        string
	tabs         []int

	maxScrollback int

	// Viewport scroll state (user-driven, never touched by escape codes).
	scrollOffset int
	userScrolled bool

	// Host-process bookkeeping, not interpreted internally.
	workingDirectory string
	running          bool
}

// Option configures a Terminal during construction.
type Option func(*Terminal)

// WithMaxScrollback sets the maximum number of scrollback lines retained
// above the viewport. Negative values are treated as zero (no scrollback).
func WithMaxScrollback(max int) Option {
	if max < 0 {
		max = 0
	}
	return func(t *Terminal) {
		t.maxScrollback = max
	}
}

// New creates a terminal with the given dimensions and a blank screen.
// Dimensions <= 0 are replaced with defaults (80x24).
func New(cols, rows int, opts ...Option) *Terminal {
	if cols <= 0 {
		cols = DefaultCols
	}
	if rows <= 0 {
		rows = DefaultRows
	}

	t := &Terminal{
		cols:          cols,
		rows:          rows,
		maxScrollback: DefaultMaxScrollback,
	}

	for _, opt := range opts {
		opt(t)
	}

	t.lines = blankLines(rows, cols)
	t.scrollBottom = rows - 1
	t.autowrap = true
	t.cursorVisible = true
	t.currentStyle = DefaultStyle()
	t.tabs = tabStops(cols)

	return t
}

// blankLines builds n default-styled blank lines of the given width.
func blankLines(n, cols int) []Line {
	lines := make([]Line, n)
	for i := range lines {
		lines[i] = newLine(cols, DefaultStyle())
	}
	return lines
}

// tabStops returns the default tab stop columns for the given width, one
// every eight columns.
func tabStops(cols int) []int {
	var stops []int
	for col := tabInterval; col < cols; col += tabInterval {
		stops = append(stops, col)
	}
	return stops
}

// clamp ensures the value is within the given range.
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// viewportToAbsolute maps a viewport row to its index in the line buffer.
func (t *Terminal) viewportToAbsolute(row int) int {
	return len(t.lines) - t.rows + row
}

// screenLine returns the line at the given viewport row, growing the buffer
// if it has somehow fallen short of rows lines.
func (t *Terminal) screenLine(row int) *Line {
	for len(t.lines) < t.rows {
		t.lines = append(t.lines, newLine(t.cols, DefaultStyle()))
	}
	return &t.lines[t.viewportToAbsolute(clamp(row, 0, t.rows-1))]
}

// Rows returns the terminal height in character rows.
func (t *Terminal) Rows() int {
	return t.rows
}

// Cols returns the terminal width in character columns.
func (t *Terminal) Cols() int {
	return t.cols
}

// Cursor returns the current cursor position (0-based).
func (t *Terminal) Cursor() Position {
	return t.cursor
}

// CursorVisible returns true if the cursor is currently visible.
func (t *Terminal) CursorVisible() bool {
	return t.cursorVisible
}

// CursorStyle returns the current cursor rendering style.
func (t *Terminal) CursorStyle() CursorStyle {
	return t.cursorStyle
}

// Title returns the current window title string.
func (t *Terminal) Title() string {
	return t.title
}

// CurrentStyle returns the style applied to newly written characters.
func (t *Terminal) CurrentStyle() Style {
	return t.currentStyle
}

// SetStyle replaces the style applied to newly written characters.
func (t *Terminal) SetStyle(style Style) {
	t.currentStyle = style
}

// TotalLines returns the number of retained lines, scrollback included.
func (t *Terminal) TotalLines() int {
	return len(t.lines)
}

// ScrollbackLines returns the number of lines scrolled off above the
// viewport. Always 0 while the alternate screen is active.
func (t *Terminal) ScrollbackLines() int {
	return len(t.lines) - t.rows
}

// MaxScrollback returns the scrollback line cap.
func (t *Terminal) MaxScrollback() int {
	return t.maxScrollback
}

// MaxScrollOffset returns how far the viewport can be scrolled back.
func (t *Terminal) MaxScrollOffset() int {
	return t.ScrollbackLines()
}

// ScrollOffset returns the viewport's distance from the bottom, 0 = bottom.
func (t *Terminal) ScrollOffset() int {
	return t.scrollOffset
}

// IsAtBottom returns true if the viewport is pinned to the newest output.
func (t *Terminal) IsAtBottom() bool {
	return t.scrollOffset == 0
}

// IsAlternateScreen returns true if the alternate screen is active.
func (t *Terminal) IsAlternateScreen() bool {
	return t.altScreen != nil
}

// ScrollRegion returns the scroll region bounds (0-based, inclusive).
func (t *Terminal) ScrollRegion() (top, bottom int) {
	return t.scrollTop, t.scrollBottom
}

// OriginMode returns true if cursor addressing is relative to the scroll
// region (DECOM).
func (t *Terminal) OriginMode() bool {
	return t.originMode
}

// Autowrap returns true if writing past the last column wraps (DECAWM).
func (t *Terminal) Autowrap() bool {
	return t.autowrap
}

// InsertMode returns true if written characters shift existing content right.
func (t *Terminal) InsertMode() bool {
	return t.insertMode
}

// BracketedPaste returns true if bracketed paste mode is set.
func (t *Terminal) BracketedPaste() bool {
	return t.bracketedPaste
}

// MouseTracking returns true if any mouse reporting mode is set.
func (t *Terminal) MouseTracking() bool {
	return t.mouseTracking
}

// FocusTracking returns true if focus in/out reporting is set.
func (t *Terminal) FocusTracking() bool {
	return t.focusTracking
}

// VisibleLines returns the rows lines currently shown, honoring the viewport
// scroll offset. The returned slice shares cell storage with the terminal
// and must be treated as read-only.
func (t *Terminal) VisibleLines() []Line {
	start := len(t.lines) - t.rows - t.scrollOffset
	start = clamp(start, 0, len(t.lines)-t.rows)
	return t.lines[start : start+t.rows]
}

// Cell returns the cell at a viewport position, ignoring the scroll offset.
// Returns nil if coordinates are out of bounds.
func (t *Terminal) Cell(row, col int) *Cell {
	if row < 0 || row >= t.rows || col < 0 || col >= t.cols {
		return nil
	}
	line := t.screenLine(row)
	return &line.Cells[col]
}

// LineContent returns the text of a viewport line, trailing spaces trimmed.
// Returns empty string if the row is out of bounds.
func (t *Terminal) LineContent(row int) string {
	if row < 0 || row >= t.rows {
		return ""
	}
	return t.screenLine(row).String()
}

// ScrollbackLine returns a scrollback line, where 0 is the oldest.
// Returns nil if the index is out of range.
func (t *Terminal) ScrollbackLine(index int) *Line {
	if index < 0 || index >= t.ScrollbackLines() {
		return nil
	}
	return &t.lines[index]
}

// String returns the visible screen content as a newline-separated string.
// Trailing empty lines are omitted. Implements fmt.Stringer.
func (t *Terminal) String() string {
	lastNonEmpty := -1
	contents := make([]string, t.rows)
	for row := 0; row < t.rows; row++ {
		contents[row] = t.LineContent(row)
		if contents[row] != "" {
			lastNonEmpty = row
		}
	}

	if lastNonEmpty < 0 {
		return ""
	}

	result := ""
	for i, line := range contents[:lastNonEmpty+1] {
		if i > 0 {
			result += "\n"
		}
		result += line
	}
	return result
}

// Resize changes the terminal dimensions without reflowing content: lines
// are padded or truncated in place, the scroll region resets to full screen,
// and the cursor is clamped into the new bounds. Invalid dimensions (<= 0)
// and no-op resizes are ignored.
func (t *Terminal) Resize(cols, rows int) {
	if cols <= 0 || rows <= 0 {
		return
	}
	if cols == t.cols && rows == t.rows {
		return
	}

	t.cols = cols
	t.rows = rows

	for i := range t.lines {
		t.lines[i].Resize(cols)
	}
	for len(t.lines) < rows {
		t.lines = append(t.lines, newLine(cols, DefaultStyle()))
	}

	if t.altScreen != nil {
		for i := range t.altScreen.lines {
			t.altScreen.lines[i].Resize(cols)
		}
		for len(t.altScreen.lines) < rows {
			t.altScreen.lines = append(t.altScreen.lines, newLine(cols, DefaultStyle()))
		}
	}

	t.cursor.Row = clamp(t.cursor.Row, 0, rows-1)
	t.cursor.Col = clamp(t.cursor.Col, 0, cols-1)

	t.scrollTop = 0
	t.scrollBottom = rows - 1
	t.scrollOffset = clamp(t.scrollOffset, 0, t.MaxScrollOffset())
	t.tabs = tabStops(cols)
}

// Reset reinitializes the screen to blank lines and restores every mode,
// style, and cursor field to its default (RIS). Scrollback and the alternate
// screen snapshot are discarded; dimensions, the scrollback cap, and host
// metadata are preserved.
func (t *Terminal) Reset() {
	t.lines = blankLines(t.rows, t.cols)
	t.cursor = Position{}

	t.scrollTop = 0
	t.scrollBottom = t.rows - 1

	t.originMode = false
	t.autowrap = true
	t.insertMode = false
	t.bracketedPaste = false
	t.mouseTracking = false
	t.focusTracking = false

	t.cursorVisible = true
	t.cursorStyle = CursorBlock
	t.savedCursor = nil
	t.altScreen = nil

	t.currentStyle = DefaultStyle()
	t.title = ""
	t.tabs = tabStops(t.cols)

	t.scrollOffset = 0
	t.userScrolled = false
}

// SetTitle sets the window title (OSC 0/1/2).
func (t *Terminal) SetTitle(title string) {
	t.title = title
}

// SetCursorVisible toggles cursor visibility (DECTCEM).
func (t *Terminal) SetCursorVisible(visible bool) {
	t.cursorVisible = visible
}

// SetCursorStyle changes the cursor rendering style (DECSCUSR).
func (t *Terminal) SetCursorStyle(style CursorStyle) {
	t.cursorStyle = style
}

// SetOriginMode toggles scroll-region-relative cursor addressing (DECOM).
func (t *Terminal) SetOriginMode(enabled bool) {
	t.originMode = enabled
}

// SetAutowrap toggles wrapping at the last column (DECAWM).
func (t *Terminal) SetAutowrap(enabled bool) {
	t.autowrap = enabled
}

// SetInsertMode toggles insert mode (IRM).
func (t *Terminal) SetInsertMode(enabled bool) {
	t.insertMode = enabled
}

// SetBracketedPaste toggles bracketed paste mode.
func (t *Terminal) SetBracketedPaste(enabled bool) {
	t.bracketedPaste = enabled
}

// SetMouseTracking toggles mouse event reporting.
func (t *Terminal) SetMouseTracking(enabled bool) {
	t.mouseTracking = enabled
}

// SetFocusTracking toggles focus in/out reporting.
func (t *Terminal) SetFocusTracking(enabled bool) {
	t.focusTracking = enabled
}

// SetRunning records whether the host process is still alive. Plain
// bookkeeping for a PTY host; nothing here depends on it.
func (t *Terminal) SetRunning(running bool) {
	t.running = running
}

// IsRunning returns the host-process running flag.
func (t *Terminal) IsRunning() bool {
	return t.running
}
