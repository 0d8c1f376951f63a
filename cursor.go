package termcore

// Position is a 0-based (row, col) screen coordinate.
type Position struct {
	Row int
	Col int
}

// CursorStyle determines how the cursor is rendered.
type CursorStyle int

const (
	CursorBlock CursorStyle = iota
	CursorUnderline
	CursorBar
)

// CursorStyleFromParam maps a DECSCUSR parameter to a cursor style: 0-2 are
// block variants, 3-4 underline, 5-6 bar. Unknown values fall back to block.
func CursorStyleFromParam(p int) CursorStyle {
	switch p {
	case 3, 4:
		return CursorUnderline
	case 5, 6:
		return CursorBar
	default:
		return CursorBlock
	}
}

// SavedCursor stores the state snapshotted by DECSC and reinstated by DECRC:
// position, the SGR accumulator, and the addressing modes.
type SavedCursor struct {
	Position   Position
	Style      Style
	OriginMode bool
	Autowrap   bool
}
