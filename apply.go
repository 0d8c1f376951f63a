package termcore

// Apply mutates the terminal according to one parsed segment. It is the 1:1
// mapping between the parser's output and the state methods; segments must
// be applied in the order [Parser.Parse] returned them.
//
//	p := NewParser()
//	t := New(80, 24)
//	for _, seg := range p.Parse(chunk) {
//		t.Apply(seg)
//	}
func (t *Terminal) Apply(seg Segment) {
	switch seg.Type {
	case SegText:
		t.currentStyle = seg.Style
		t.WriteString(seg.Text)
	case SegBell:
		// Audible only; no screen state changes.
	case SegBackspace:
		t.Backspace()
	case SegTab:
		t.Tab()
	case SegLineFeed:
		t.LineFeed()
	case SegCarriageReturn:
		t.CarriageReturn()
	case SegCursorUp:
		t.CursorUp(seg.N)
	case SegCursorDown:
		t.CursorDown(seg.N)
	case SegCursorForward:
		t.CursorForward(seg.N)
	case SegCursorBackward:
		t.CursorBackward(seg.N)
	case SegCursorNextLine:
		t.CursorNextLine(seg.N)
	case SegCursorPrevLine:
		t.CursorPrevLine(seg.N)
	case SegCursorToColumn:
		t.CursorToColumn(seg.N)
	case SegCursorPosition:
		t.MoveCursorTo(seg.Row, seg.Col)
	case SegClearScreen:
		switch seg.Mode {
		case ClearToEnd:
			t.ClearScreenBelow()
		case ClearToStart:
			t.ClearScreenAbove()
		case ClearAll:
			t.ClearScreen()
		case ClearScrollback:
			t.ClearScrollback()
		}
	case SegClearLine:
		switch seg.Mode {
		case ClearToEnd:
			t.ClearToEndOfLine()
		case ClearToStart:
			t.ClearToStartOfLine()
		case ClearAll:
			t.ClearLine()
		}
	case SegInsertLines:
		t.InsertLines(seg.N)
	case SegDeleteLines:
		t.DeleteLines(seg.N)
	case SegInsertChars:
		t.InsertChars(seg.N)
	case SegDeleteChars:
		t.DeleteChars(seg.N)
	case SegEraseChars:
		t.EraseChars(seg.N)
	case SegScrollUp:
		t.ScrollUp(seg.N)
	case SegScrollDown:
		t.ScrollDown(seg.N)
	case SegSetScrollRegion:
		t.SetScrollRegion(seg.Row, seg.Col)
	case SegResetScrollRegion:
		t.ResetScrollRegion()
	case SegCursorSave:
		t.SaveCursor()
	case SegCursorRestore:
		t.RestoreCursor()
	case SegReverseIndex:
		t.ReverseIndex()
	case SegReset:
		t.Reset()
	case SegSetTitle:
		t.SetTitle(seg.Text)
	case SegCursorStyle:
		t.SetCursorStyle(CursorStyleFromParam(seg.N))
	case SegOriginMode:
		t.SetOriginMode(seg.Enabled)
	case SegAutoWrap:
		t.SetAutowrap(seg.Enabled)
	case SegCursorVisible:
		t.SetCursorVisible(seg.Enabled)
	case SegAltScreenEnter:
		t.EnterAltScreen()
	case SegAltScreenExit:
		t.ExitAltScreen()
	case SegMouseTracking:
		t.SetMouseTracking(seg.Enabled)
	case SegFocusTracking:
		t.SetFocusTracking(seg.Enabled)
	case SegBracketedPaste:
		t.SetBracketedPaste(seg.Enabled)
	}
}

// ApplyAll applies a batch of segments in order.
func (t *Terminal) ApplyAll(segs []Segment) {
	for _, seg := range segs {
		t.Apply(seg)
	}
}
