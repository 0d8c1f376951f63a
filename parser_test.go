package termcore

import "testing"

// collectText concatenates the text of all SegText segments.
func collectText(segs []Segment) string {
	out := ""
	for _, seg := range segs {
		if seg.Type == SegText {
			out += seg.Text
		}
	}
	return out
}

func TestParsePlainText(t *testing.T) {
	p := NewParser()

	segs := p.Parse([]byte("Hello"))

	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segs))
	}
	if segs[0].Type != SegText || segs[0].Text != "Hello" {
		t.Errorf("expected Text 'Hello', got %+v", segs[0])
	}
	if !segs[0].Style.IsDefault() {
		t.Errorf("expected default style, got %+v", segs[0].Style)
	}
}

func TestParseStyledText(t *testing.T) {
	p := NewParser()

	segs := p.Parse([]byte("\x1b[31mHello\x1b[0m World"))

	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
	if segs[0].Text != "Hello" {
		t.Errorf("expected 'Hello', got '%s'", segs[0].Text)
	}
	if segs[0].Style.Fg != AnsiColors[1] {
		t.Errorf("expected red foreground, got %+v", segs[0].Style.Fg)
	}
	if segs[1].Text != " World" {
		t.Errorf("expected ' World', got '%s'", segs[1].Text)
	}
	if !segs[1].Style.IsDefault() {
		t.Errorf("expected default style after SGR 0, got %+v", segs[1].Style)
	}
}

func TestParseCursorPosition(t *testing.T) {
	p := NewParser()

	segs := p.Parse([]byte("\x1b[2;5H"))

	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segs))
	}
	if segs[0].Type != SegCursorPosition || segs[0].Row != 1 || segs[0].Col != 4 {
		t.Errorf("expected CursorPosition(1, 4), got %+v", segs[0])
	}
}

func TestParseCursorDefaults(t *testing.T) {
	p := NewParser()

	segs := p.Parse([]byte("\x1b[H\x1b[A\x1b[5B"))

	if len(segs) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(segs))
	}
	if segs[0].Row != 0 || segs[0].Col != 0 {
		t.Errorf("expected home position, got %+v", segs[0])
	}
	if segs[1].Type != SegCursorUp || segs[1].N != 1 {
		t.Errorf("expected CursorUp(1), got %+v", segs[1])
	}
	if segs[2].Type != SegCursorDown || segs[2].N != 5 {
		t.Errorf("expected CursorDown(5), got %+v", segs[2])
	}
}

func TestParseSplitEscapeSequence(t *testing.T) {
	p := NewParser()

	var segs []Segment
	segs = append(segs, p.Parse([]byte("\x1b["))...)
	segs = append(segs, p.Parse([]byte("3"))...)
	segs = append(segs, p.Parse([]byte("1mX"))...)

	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segs))
	}
	if segs[0].Text != "X" || segs[0].Style.Fg != AnsiColors[1] {
		t.Errorf("expected red 'X', got %+v", segs[0])
	}
}

func TestParseUTF8ChunkIndependence(t *testing.T) {
	input := []byte("héllo 世界 ok")

	whole := NewParser()
	want := collectText(whole.Parse(input))

	for split := 1; split < len(input); split++ {
		p := NewParser()
		var segs []Segment
		segs = append(segs, p.Parse(input[:split])...)
		segs = append(segs, p.Parse(input[split:])...)

		if got := collectText(segs); got != want {
			t.Errorf("split at %d: expected '%s', got '%s'", split, want, got)
		}
	}
}

func TestParseInvalidUTF8Continuation(t *testing.T) {
	p := NewParser()

	// 0xC3 expects a continuation byte; '(' is not one. The partial
	// sequence is dropped and '(' survives as text.
	segs := p.Parse([]byte("a\xc3(b"))

	if got := collectText(segs); got != "a(b" {
		t.Errorf("expected 'a(b', got '%s'", got)
	}
}

func TestParseOrphanContinuationByte(t *testing.T) {
	p := NewParser()

	segs := p.Parse([]byte("a\x80b"))

	if got := collectText(segs); got != "ab" {
		t.Errorf("expected 'ab', got '%s'", got)
	}
}

func TestParseControlCharacters(t *testing.T) {
	p := NewParser()

	segs := p.Parse([]byte("a\x07b\r\n"))

	want := []SegmentType{SegText, SegBell, SegText, SegCarriageReturn, SegLineFeed}
	if len(segs) != len(want) {
		t.Fatalf("expected %d segments, got %d", len(want), len(segs))
	}
	for i, typ := range want {
		if segs[i].Type != typ {
			t.Errorf("segment %d: expected type %d, got %d", i, typ, segs[i].Type)
		}
	}
}

func TestParseOSCTitle(t *testing.T) {
	p := NewParser()

	segs := p.Parse([]byte("\x1b]0;My Terminal\x07"))

	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segs))
	}
	if segs[0].Type != SegSetTitle || segs[0].Text != "My Terminal" {
		t.Errorf("expected SetTitle 'My Terminal', got %+v", segs[0])
	}
}

func TestParseOSCEscapeTerminator(t *testing.T) {
	p := NewParser()

	// A bare ESC ends the OSC string; the byte after it is reprocessed
	// from ground, so the backslash of a full ST surfaces as text.
	segs := p.Parse([]byte("\x1b]2;T\x1b\\"))

	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
	if segs[0].Type != SegSetTitle || segs[0].Text != "T" {
		t.Errorf("expected SetTitle 'T', got %+v", segs[0])
	}
	if segs[1].Type != SegText || segs[1].Text != "\\" {
		t.Errorf("expected trailing backslash text, got %+v", segs[1])
	}
}

func TestParseUnknownOSCDropped(t *testing.T) {
	p := NewParser()

	segs := p.Parse([]byte("\x1b]52;c;aGVsbG8=\x07ok"))

	if len(segs) != 1 || segs[0].Type != SegText || segs[0].Text != "ok" {
		t.Errorf("expected only 'ok' text, got %+v", segs)
	}
}

func TestParsePrivateModes(t *testing.T) {
	p := NewParser()

	segs := p.Parse([]byte("\x1b[?25l"))
	if len(segs) != 1 || segs[0].Type != SegCursorVisible || segs[0].Enabled {
		t.Errorf("expected CursorVisible(false), got %+v", segs)
	}

	segs = p.Parse([]byte("\x1b[?1000;1002h"))
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments for chained modes, got %d", len(segs))
	}
	for i, seg := range segs {
		if seg.Type != SegMouseTracking || !seg.Enabled {
			t.Errorf("segment %d: expected MouseTracking(true), got %+v", i, seg)
		}
	}
}

func TestParseAltScreen1049(t *testing.T) {
	p := NewParser()

	segs := p.Parse([]byte("\x1b[?1049h"))

	want := []SegmentType{SegCursorSave, SegAltScreenEnter, SegClearScreen}
	if len(segs) != len(want) {
		t.Fatalf("expected %d segments, got %d", len(want), len(segs))
	}
	for i, typ := range want {
		if segs[i].Type != typ {
			t.Errorf("segment %d: expected type %d, got %d", i, typ, segs[i].Type)
		}
	}
	if segs[2].Mode != ClearAll {
		t.Errorf("expected full clear, got mode %d", segs[2].Mode)
	}

	segs = p.Parse([]byte("\x1b[?1049l"))
	if len(segs) != 2 || segs[0].Type != SegAltScreenExit || segs[1].Type != SegCursorRestore {
		t.Errorf("expected AltScreenExit + CursorRestore, got %+v", segs)
	}
}

func TestParseScrollRegion(t *testing.T) {
	p := NewParser()

	segs := p.Parse([]byte("\x1b[5;10r"))
	if len(segs) != 1 || segs[0].Type != SegSetScrollRegion || segs[0].Row != 4 || segs[0].Col != 9 {
		t.Errorf("expected SetScrollRegion(4, 9), got %+v", segs)
	}

	segs = p.Parse([]byte("\x1b[r"))
	if len(segs) != 1 || segs[0].Type != SegResetScrollRegion {
		t.Errorf("expected ResetScrollRegion, got %+v", segs)
	}
}

func TestParseCursorStyle(t *testing.T) {
	p := NewParser()

	segs := p.Parse([]byte("\x1b[4 q"))

	if len(segs) != 1 || segs[0].Type != SegCursorStyle || segs[0].N != 4 {
		t.Errorf("expected CursorStyle(4), got %+v", segs)
	}
}

func TestParseSimpleEscapes(t *testing.T) {
	p := NewParser()

	segs := p.Parse([]byte("\x1b7\x1b8\x1bM\x1bE"))

	want := []SegmentType{SegCursorSave, SegCursorRestore, SegReverseIndex, SegLineFeed, SegCarriageReturn}
	if len(segs) != len(want) {
		t.Fatalf("expected %d segments, got %d", len(want), len(segs))
	}
	for i, typ := range want {
		if segs[i].Type != typ {
			t.Errorf("segment %d: expected type %d, got %d", i, typ, segs[i].Type)
		}
	}
}

func TestParseResetClearsStyle(t *testing.T) {
	p := NewParser()

	segs := p.Parse([]byte("\x1b[1;31m\x1bcA"))

	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
	if segs[0].Type != SegReset {
		t.Errorf("expected Reset, got %+v", segs[0])
	}
	if segs[1].Text != "A" || !segs[1].Style.IsDefault() {
		t.Errorf("expected default-styled 'A' after RIS, got %+v", segs[1])
	}
}

func TestParseDCSIgnored(t *testing.T) {
	p := NewParser()

	segs := p.Parse([]byte("\x1bPq#0;2;0;0;0#0~~\x9cok"))

	if len(segs) != 1 || segs[0].Type != SegText || segs[0].Text != "ok" {
		t.Errorf("expected only 'ok' after DCS payload, got %+v", segs)
	}
}

func TestParse256Color(t *testing.T) {
	p := NewParser()

	segs := p.Parse([]byte("\x1b[38;5;196mX"))

	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segs))
	}
	if segs[0].Style.Fg != Color256(196) {
		t.Errorf("expected palette color 196, got %+v", segs[0].Style.Fg)
	}
}

func TestParseTrueColor(t *testing.T) {
	p := NewParser()

	segs := p.Parse([]byte("\x1b[48;2;255;0;128mX"))

	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segs))
	}
	bg := segs[0].Style.Bg
	if bg.R != 1 || bg.G != 0 || bg.B != 128.0/255 || bg.A != 1 {
		t.Errorf("unexpected true color background: %+v", bg)
	}
}

func TestParseParamSaturation(t *testing.T) {
	p := NewParser()

	segs := p.Parse([]byte("\x1b[99999999999999A"))

	if len(segs) != 1 || segs[0].N != 65535 {
		t.Errorf("expected saturated param 65535, got %+v", segs)
	}
}

func TestParseUnknownCSISwallowed(t *testing.T) {
	p := NewParser()

	segs := p.Parse([]byte("\x1b[12zafter"))

	if len(segs) != 1 || segs[0].Type != SegText || segs[0].Text != "after" {
		t.Errorf("expected only 'after', got %+v", segs)
	}
}

func TestParseTextFlushedAtChunkEnd(t *testing.T) {
	p := NewParser()

	segs := p.Parse([]byte("abc"))
	if collectText(segs) != "abc" {
		t.Errorf("expected buffered text flushed at end of chunk, got %+v", segs)
	}

	segs = p.Parse([]byte("def"))
	if collectText(segs) != "def" {
		t.Errorf("expected fresh buffer on next chunk, got %+v", segs)
	}
}
