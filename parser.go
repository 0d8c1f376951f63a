package termcore

import (
	"strings"
	"unicode/utf8"
)

// parserState identifies where the state machine is within an escape sequence.
type parserState int

const (
	stateGround parserState = iota
	stateEscape
	stateEscapeIntermediate
	stateCsiEntry
	stateCsiParam
	stateCsiIntermediate
	stateCsiPrivate
	stateOscString
	stateDcsEntry
)

// maxParam caps CSI parameter accumulation so hostile input cannot overflow.
const maxParam = 65535

// Parser decodes a terminal output byte stream into an ordered sequence of
// segments. It is incremental: input may be split at any byte boundary, in
// particular inside escape sequences and multi-byte UTF-8 characters, and
// the partial state is carried to the next Parse call.
//
// The parser never fails. Malformed sequences and invalid UTF-8 are consumed
// silently and the machine returns to ground.
type Parser struct {
	state parserState

	params       []int
	currentParam int
	hasParam     bool
	private      byte
	intermediate []byte
	oscBuf       []byte

	// Partial UTF-8 sequence carried across Parse calls.
	pending     []byte
	pendingNeed int

	// Buffered printable characters awaiting flush into one SegText run.
	text  []byte
	style Style
}

// NewParser creates a parser in ground state with the default style.
func NewParser() *Parser {
	return &Parser{
		params:       make([]int, 0, 16),
		intermediate: make([]byte, 0, 2),
		style:        DefaultStyle(),
	}
}

// CurrentStyle returns the SGR accumulator that will be attached to the next
// text run.
func (p *Parser) CurrentStyle() Style {
	return p.style
}

// Parse consumes a chunk of raw terminal output and returns the segments
// decoded from it, in application order. Any text buffered when the chunk
// ends is flushed as a final segment; escape sequences split across chunks
// resume on the next call.
func (p *Parser) Parse(data []byte) []Segment {
	var segs []Segment

	for _, b := range data {
		switch p.state {
		case stateGround:
			p.ground(b, &segs)
		case stateEscape:
			p.escape(b, &segs)
		case stateEscapeIntermediate:
			p.escapeIntermediate(b)
		case stateCsiEntry, stateCsiParam:
			p.csi(b, &segs)
		case stateCsiPrivate:
			p.csiPrivate(b, &segs)
		case stateCsiIntermediate:
			p.csiIntermediate(b, &segs)
		case stateOscString:
			p.osc(b, &segs)
		case stateDcsEntry:
			p.dcs(b)
		}
	}

	p.flushText(&segs)
	return segs
}

// reset restores the parser to its initial state. Invoked by RIS (ESC c).
func (p *Parser) reset() {
	p.state = stateGround
	p.params = p.params[:0]
	p.currentParam = 0
	p.hasParam = false
	p.private = 0
	p.intermediate = p.intermediate[:0]
	p.oscBuf = p.oscBuf[:0]
	p.pending = p.pending[:0]
	p.pendingNeed = 0
	p.text = p.text[:0]
	p.style = DefaultStyle()
}

// flushText emits the buffered text as one segment tagged with a copy of the
// current style. No-op when the buffer is empty.
func (p *Parser) flushText(segs *[]Segment) {
	if len(p.text) == 0 {
		return
	}
	*segs = append(*segs, textSegment(string(p.text), p.style))
	p.text = p.text[:0]
}

// ground handles a byte outside any escape sequence: printable text, UTF-8
// reassembly, and C0 control codes.
func (p *Parser) ground(b byte, segs *[]Segment) {
	if p.pendingNeed > 0 {
		if b >= 0x80 && b <= 0xbf {
			p.pending = append(p.pending, b)
			p.pendingNeed--
			if p.pendingNeed == 0 {
				if utf8.Valid(p.pending) {
					p.text = append(p.text, p.pending...)
				}
				p.pending = p.pending[:0]
			}
			return
		}
		// Invalid continuation: discard the partial sequence and
		// reprocess this byte as a fresh one.
		p.pending = p.pending[:0]
		p.pendingNeed = 0
	}

	switch {
	case b == 0x1b:
		p.flushText(segs)
		p.state = stateEscape
	case b == 0x07:
		p.flushText(segs)
		*segs = append(*segs, Segment{Type: SegBell})
	case b == 0x08:
		p.flushText(segs)
		*segs = append(*segs, Segment{Type: SegBackspace})
	case b == 0x09:
		p.flushText(segs)
		*segs = append(*segs, Segment{Type: SegTab})
	case b == 0x0a, b == 0x0b, b == 0x0c:
		p.flushText(segs)
		*segs = append(*segs, Segment{Type: SegLineFeed})
	case b == 0x0d:
		p.flushText(segs)
		*segs = append(*segs, Segment{Type: SegCarriageReturn})
	case b < 0x20:
		// Unhandled C0 controls are dropped.
	case b <= 0x7f:
		p.text = append(p.text, b)
	case b >= 0xc0 && b <= 0xdf:
		p.pending = append(p.pending[:0], b)
		p.pendingNeed = 1
	case b >= 0xe0 && b <= 0xef:
		p.pending = append(p.pending[:0], b)
		p.pendingNeed = 2
	case b >= 0xf0 && b <= 0xf7:
		p.pending = append(p.pending[:0], b)
		p.pendingNeed = 3
	default:
		// Orphan continuation byte or invalid lead: dropped.
	}
}

// escape handles the byte after ESC.
func (p *Parser) escape(b byte, segs *[]Segment) {
	switch {
	case b == '[':
		p.params = p.params[:0]
		p.currentParam = 0
		p.hasParam = false
		p.private = 0
		p.intermediate = p.intermediate[:0]
		p.state = stateCsiEntry
	case b == ']':
		p.oscBuf = p.oscBuf[:0]
		p.state = stateOscString
	case b == 'P':
		p.state = stateDcsEntry
	case b == '7':
		*segs = append(*segs, Segment{Type: SegCursorSave})
		p.state = stateGround
	case b == '8':
		*segs = append(*segs, Segment{Type: SegCursorRestore})
		p.state = stateGround
	case b == 'D':
		*segs = append(*segs, Segment{Type: SegLineFeed})
		p.state = stateGround
	case b == 'E':
		*segs = append(*segs, Segment{Type: SegLineFeed}, Segment{Type: SegCarriageReturn})
		p.state = stateGround
	case b == 'M':
		*segs = append(*segs, Segment{Type: SegReverseIndex})
		p.state = stateGround
	case b == 'c':
		p.reset()
		*segs = append(*segs, Segment{Type: SegReset})
	case b >= 0x20 && b <= 0x2f:
		p.intermediate = append(p.intermediate[:0], b)
		p.state = stateEscapeIntermediate
	default:
		// Unrecognized two-byte escape: swallowed.
		p.state = stateGround
	}
}

// escapeIntermediate consumes the tail of ESC sequences with intermediate
// bytes. These are recognized but not acted upon.
func (p *Parser) escapeIntermediate(b byte) {
	if b >= 0x20 && b <= 0x2f {
		p.intermediate = append(p.intermediate, b)
		return
	}
	p.state = stateGround
}

// addDigit folds a digit into the current parameter, saturating at maxParam.
func (p *Parser) addDigit(b byte) {
	p.currentParam = p.currentParam*10 + int(b-'0')
	if p.currentParam > maxParam {
		p.currentParam = maxParam
	}
	p.hasParam = true
}

// endParam closes the current parameter, defaulting an unset one to 0.
func (p *Parser) endParam() {
	p.params = append(p.params, p.currentParam)
	p.currentParam = 0
	p.hasParam = false
}

// finishParams appends a trailing in-progress parameter before dispatch.
func (p *Parser) finishParams() {
	if p.hasParam {
		p.endParam()
	}
}

// csi handles bytes in the CsiEntry and CsiParam states.
func (p *Parser) csi(b byte, segs *[]Segment) {
	switch {
	case b >= '0' && b <= '9':
		p.addDigit(b)
		p.state = stateCsiParam
	case b == ';' || b == ':':
		p.endParam()
		p.state = stateCsiParam
	case b == '?' || b == '>' || b == '=' || b == '!' || b == '<':
		p.private = b
		p.state = stateCsiPrivate
	case b >= 0x20 && b <= 0x2f:
		p.intermediate = append(p.intermediate, b)
		p.state = stateCsiIntermediate
	case b >= 0x40 && b <= 0x7e:
		p.finishParams()
		p.executeCSI(b, segs)
		p.state = stateGround
	default:
		// Stray control byte inside a CSI sequence: dropped.
	}
}

// csiPrivate handles bytes after a private-mode marker.
func (p *Parser) csiPrivate(b byte, segs *[]Segment) {
	switch {
	case b >= '0' && b <= '9':
		p.addDigit(b)
	case b == ';' || b == ':':
		p.endParam()
	case b >= 0x40 && b <= 0x7e:
		p.finishParams()
		p.executePrivateMode(b, segs)
		p.state = stateGround
	default:
		// Dropped.
	}
}

// csiIntermediate handles CSI sequences carrying intermediate bytes. The
// only one acted upon is DECSCUSR (CSI <space> q, cursor style); everything
// else is discarded.
func (p *Parser) csiIntermediate(b byte, segs *[]Segment) {
	if b >= 0x20 && b <= 0x2f {
		p.intermediate = append(p.intermediate, b)
		return
	}
	if b >= 0x40 && b <= 0x7e {
		p.finishParams()
		if len(p.intermediate) > 0 && p.intermediate[0] == ' ' && b == 'q' {
			*segs = append(*segs, countSegment(SegCursorStyle, p.rawParam(0)))
		}
		p.state = stateGround
	}
}

// osc accumulates an Operating System Command string. Terminated by BEL, ST
// (0x9C), or a bare ESC; an ESC terminator returns to ground without
// consuming the byte that follows it.
func (p *Parser) osc(b byte, segs *[]Segment) {
	switch {
	case b == 0x07, b == 0x1b, b == 0x9c:
		p.executeOSC(segs)
		p.state = stateGround
	case b >= 0x20 && b <= 0x7e:
		p.oscBuf = append(p.oscBuf, b)
	default:
		// Dropped.
	}
}

// dcs discards a Device Control String. Sixel, termcap queries and other DCS
// payloads are intentionally unsupported.
func (p *Parser) dcs(b byte) {
	if b == 0x1b || b == 0x9c {
		p.state = stateGround
	}
}

// executeOSC interprets the accumulated OSC payload. Only title commands
// (0, 1, 2) are recognized; everything else is dropped.
func (p *Parser) executeOSC(segs *[]Segment) {
	payload := string(p.oscBuf)
	p.oscBuf = p.oscBuf[:0]

	cmd, rest, ok := strings.Cut(payload, ";")
	if !ok {
		return
	}
	switch cmd {
	case "0", "1", "2":
		*segs = append(*segs, Segment{Type: SegSetTitle, Text: rest})
	}
}

// paramOr returns parameter i, or def when the parameter is 0 or missing.
func (p *Parser) paramOr(i, def int) int {
	if i < len(p.params) && p.params[i] != 0 {
		return p.params[i]
	}
	return def
}

// rawParam returns parameter i without defaulting, 0 when missing.
func (p *Parser) rawParam(i int) int {
	if i < len(p.params) {
		return p.params[i]
	}
	return 0
}

// executeCSI dispatches on a CSI final byte. Unknown final bytes are
// swallowed without emitting a segment.
func (p *Parser) executeCSI(final byte, segs *[]Segment) {
	switch final {
	case 'A':
		*segs = append(*segs, countSegment(SegCursorUp, p.paramOr(0, 1)))
	case 'B', 'e':
		*segs = append(*segs, countSegment(SegCursorDown, p.paramOr(0, 1)))
	case 'C', 'a':
		*segs = append(*segs, countSegment(SegCursorForward, p.paramOr(0, 1)))
	case 'D':
		*segs = append(*segs, countSegment(SegCursorBackward, p.paramOr(0, 1)))
	case 'E':
		*segs = append(*segs, countSegment(SegCursorNextLine, p.paramOr(0, 1)))
	case 'F':
		*segs = append(*segs, countSegment(SegCursorPrevLine, p.paramOr(0, 1)))
	case 'G', '`':
		*segs = append(*segs, countSegment(SegCursorToColumn, p.paramOr(0, 1)))
	case 'H', 'f':
		*segs = append(*segs, Segment{
			Type: SegCursorPosition,
			Row:  p.paramOr(0, 1) - 1,
			Col:  p.paramOr(1, 1) - 1,
		})
	case 'd':
		*segs = append(*segs, Segment{
			Type: SegCursorPosition,
			Row:  p.paramOr(0, 1) - 1,
			Col:  0,
		})
	case 'J':
		*segs = append(*segs, Segment{Type: SegClearScreen, Mode: ClearModeFromParam(p.rawParam(0))})
	case 'K':
		*segs = append(*segs, Segment{Type: SegClearLine, Mode: ClearModeFromParam(p.rawParam(0))})
	case 'L':
		*segs = append(*segs, countSegment(SegInsertLines, p.paramOr(0, 1)))
	case 'M':
		*segs = append(*segs, countSegment(SegDeleteLines, p.paramOr(0, 1)))
	case '@':
		*segs = append(*segs, countSegment(SegInsertChars, p.paramOr(0, 1)))
	case 'P':
		*segs = append(*segs, countSegment(SegDeleteChars, p.paramOr(0, 1)))
	case 'X':
		*segs = append(*segs, countSegment(SegEraseChars, p.paramOr(0, 1)))
	case 'S':
		*segs = append(*segs, countSegment(SegScrollUp, p.paramOr(0, 1)))
	case 'T':
		*segs = append(*segs, countSegment(SegScrollDown, p.paramOr(0, 1)))
	case 'r':
		if p.rawParam(1) == 0 {
			*segs = append(*segs, Segment{Type: SegResetScrollRegion})
		} else {
			*segs = append(*segs, Segment{
				Type: SegSetScrollRegion,
				Row:  p.paramOr(0, 1) - 1,
				Col:  p.rawParam(1) - 1,
			})
		}
	case 'm':
		applySGR(&p.style, p.params)
	case 's':
		*segs = append(*segs, Segment{Type: SegCursorSave})
	case 'u':
		*segs = append(*segs, Segment{Type: SegCursorRestore})
	case 'n', 't':
		// Device status reports and window ops: intentionally unimplemented.
	}
}

// executePrivateMode dispatches DEC private set/reset sequences. Several
// modes may be chained in one sequence; each is handled independently.
func (p *Parser) executePrivateMode(final byte, segs *[]Segment) {
	if final != 'h' && final != 'l' {
		return
	}
	enabled := final == 'h'

	for _, mode := range p.params {
		switch mode {
		case 6:
			*segs = append(*segs, modeSegment(SegOriginMode, enabled))
		case 7:
			*segs = append(*segs, modeSegment(SegAutoWrap, enabled))
		case 25:
			*segs = append(*segs, modeSegment(SegCursorVisible, enabled))
		case 47, 1047:
			if enabled {
				*segs = append(*segs, Segment{Type: SegAltScreenEnter})
			} else {
				*segs = append(*segs, Segment{Type: SegAltScreenExit})
			}
		case 1000, 1002, 1003, 1006, 1015:
			*segs = append(*segs, modeSegment(SegMouseTracking, enabled))
		case 1004:
			*segs = append(*segs, modeSegment(SegFocusTracking, enabled))
		case 1049:
			if enabled {
				*segs = append(*segs,
					Segment{Type: SegCursorSave},
					Segment{Type: SegAltScreenEnter},
					Segment{Type: SegClearScreen, Mode: ClearAll},
				)
			} else {
				*segs = append(*segs,
					Segment{Type: SegAltScreenExit},
					Segment{Type: SegCursorRestore},
				)
			}
		case 2004:
			*segs = append(*segs, modeSegment(SegBracketedPaste, enabled))
		case 1, 12:
			// Application cursor keys and cursor blink: recognized, ignored.
		}
	}
}
