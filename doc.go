// Package termcore provides the core of a terminal emulator: an incremental
// ANSI/VT escape-sequence parser and a headless screen-buffer state machine.
//
// The package has no rendering, input, or PTY handling of its own. It turns
// raw terminal output bytes into a faithful logical screen that a renderer
// (GUI widget, web view, test harness) can read.
//
// # Quick Start
//
// Feed bytes through a [Parser] and apply the resulting segments to a
// [Terminal]:
//
//	p := termcore.NewParser()
//	t := termcore.New(80, 24)
//
//	t.ApplyAll(p.Parse([]byte("\x1b[31mHello \x1b[32mWorld\x1b[0m!")))
//	fmt.Println(t.String()) // "Hello World!"
//
// # Architecture
//
// The package is organized around these core types:
//
//   - [Parser]: An incremental byte-stream decoder producing [Segment] values
//   - [Segment]: One decoded unit of output (text run, control, mode toggle)
//   - [Terminal]: The screen state machine with scrollback and scroll regions
//   - [Cell] / [Line]: The character grid, wide-character aware
//   - [Style] / [Color]: SGR attributes and the 16/256/true-color palette
//
// # Parser
//
// [Parser.Parse] accepts arbitrary chunks: escape sequences and multi-byte
// UTF-8 characters may be split at any byte boundary across calls, and the
// partial state carries over. Malformed input never fails; unrecognized
// sequences are consumed silently. The SGR state accumulates inside the
// parser and is attached to each emitted text run, so every SegText segment
// has a single uniform style.
//
// # Terminal
//
// [Terminal] owns a line buffer whose tail is the visible viewport and whose
// prefix is scrollback, capped at a configurable line count:
//
//	t := termcore.New(80, 24, termcore.WithMaxScrollback(5000))
//
// Each parsed segment maps to one state method ([Terminal.Apply] is that
// mapping), and every method is also callable directly. All boundary
// conditions clamp or no-op; nothing in this package panics or returns an
// error on adversarial input.
//
// The read surface for a renderer: [Terminal.VisibleLines] (honoring the
// user's scrollback position), [Terminal.Cursor], [Terminal.Title],
// [Terminal.String], and [Terminal.Snapshot] for a JSON-serializable
// capture.
//
// # Alternate Screen
//
// Full-screen applications (vim, less, htop) switch to the alternate screen
// via CSI ?1049h/l. The primary screen, its cursor, and its scrollback are
// stashed on entry and restored intact on exit; the alternate screen never
// grows scrollback.
//
//	if t.IsAlternateScreen() {
//	    // Full-screen app is running
//	}
//
// # Concurrency
//
// A Parser/Terminal pair is not safe for concurrent use. The intended
// deployment is a single owner running the classic read-parse-apply-render
// loop; a concurrent host must serialize access to the pair itself.
//
// # Supported Sequences
//
// Cursor movement (CUU, CUD, CUF, CUB, CUP, HVP, CHA, VPA), cursor
// save/restore (DECSC, DECRC), erase (ED, EL, ECH), insert/delete (ICH, DCH,
// IL, DL), scrolling (SU, SD, RI, DECSTBM), SGR with 16/256/true color,
// DEC private modes (DECOM, DECAWM, DECTCEM, alternate screen, mouse and
// focus tracking, bracketed paste), cursor shape (DECSCUSR), and window
// title (OSC 0/1/2). DCS payloads (Sixel, termcap queries) are consumed and
// ignored.
package termcore
