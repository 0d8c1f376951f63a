package termcore

import "strings"

// Cell stores the character, style, and display width for one grid position.
// Wide characters (2 columns) use a zero-width spacer cell in the second
// position; a spacer never appears except immediately after a wide cell.
type Cell struct {
	Char  rune
	Style Style
	Width int
}

// blankCell returns a space cell carrying the given style.
func blankCell(style Style) Cell {
	return Cell{Char: ' ', Style: style, Width: 1}
}

// spacerCell returns the zero-width placeholder behind a wide character.
func spacerCell() Cell {
	return Cell{Style: DefaultStyle()}
}

// IsSpacer returns true if this is the trailing cell of a wide character
// (skipped during rendering).
func (c Cell) IsSpacer() bool {
	return c.Width == 0
}

// Line is one terminal row: a fixed-length run of cells plus a flag telling
// whether its content continues onto the next row due to autowrap.
type Line struct {
	Cells   []Cell
	Wrapped bool
}

// newLine creates a line of cols blank cells carrying the given style.
func newLine(cols int, style Style) Line {
	cells := make([]Cell, cols)
	for i := range cells {
		cells[i] = blankCell(style)
	}
	return Line{Cells: cells}
}

// Resize pads or truncates the line to the new column count. New cells are
// blank with the default style.
func (l *Line) Resize(cols int) {
	switch {
	case cols < len(l.Cells):
		l.Cells = l.Cells[:cols]
		// Never leave a wide cell without its spacer.
		if cols > 0 && l.Cells[cols-1].Width == 2 {
			l.Cells[cols-1] = blankCell(DefaultStyle())
		}
	case cols > len(l.Cells):
		for len(l.Cells) < cols {
			l.Cells = append(l.Cells, blankCell(DefaultStyle()))
		}
	}
}

// Clear fills the whole line with blank cells of the given style.
func (l *Line) Clear(style Style) {
	for i := range l.Cells {
		l.Cells[i] = blankCell(style)
	}
	l.Wrapped = false
}

// ClearToEnd blanks the line from col to the end, inclusive.
func (l *Line) ClearToEnd(col int, style Style) {
	for i := clamp(col, 0, len(l.Cells)); i < len(l.Cells); i++ {
		l.Cells[i] = blankCell(style)
	}
}

// ClearToStart blanks the line from the start through col, inclusive.
func (l *Line) ClearToStart(col int, style Style) {
	end := clamp(col+1, 0, len(l.Cells))
	for i := 0; i < end; i++ {
		l.Cells[i] = blankCell(style)
	}
}

// InsertCells shifts cells right at col and inserts n blanks, dropping cells
// pushed past the end. Line length is preserved.
func (l *Line) InsertCells(col, n int, style Style) {
	if col < 0 || col >= len(l.Cells) || n <= 0 {
		return
	}
	n = clamp(n, 0, len(l.Cells)-col)
	copy(l.Cells[col+n:], l.Cells[col:])
	for i := col; i < col+n; i++ {
		l.Cells[i] = blankCell(style)
	}
}

// DeleteCells removes n cells at col, shifting the remainder left and padding
// the end with blanks. Line length is preserved.
func (l *Line) DeleteCells(col, n int, style Style) {
	if col < 0 || col >= len(l.Cells) || n <= 0 {
		return
	}
	n = clamp(n, 0, len(l.Cells)-col)
	copy(l.Cells[col:], l.Cells[col+n:])
	for i := len(l.Cells) - n; i < len(l.Cells); i++ {
		l.Cells[i] = blankCell(style)
	}
}

// EraseCells blanks n cells starting at col without shifting.
func (l *Line) EraseCells(col, n int, style Style) {
	if col < 0 || col >= len(l.Cells) || n <= 0 {
		return
	}
	end := clamp(col+n, 0, len(l.Cells))
	for i := col; i < end; i++ {
		l.Cells[i] = blankCell(style)
	}
}

// String returns the line text with wide-char spacers skipped and trailing
// spaces trimmed.
func (l Line) String() string {
	var b strings.Builder
	for _, c := range l.Cells {
		if c.IsSpacer() {
			continue
		}
		if c.Char == 0 {
			b.WriteRune(' ')
		} else {
			b.WriteRune(c.Char)
		}
	}
	return strings.TrimRight(b.String(), " ")
}
