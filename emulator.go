package vtcore

import (
	"fmt"
	"log/slog"
)

// Emulator consumes ParserState events and mutates Grid, the cursor, and
// EmulatorState accordingly. It owns no window, font, or rendering
// resources; diagnostics for unrecognized sequences go to an injected
// *slog.Logger rather than to the PTY.
type Emulator struct {
	Grid   *Grid
	Cursor Cursor
	State  *EmulatorState

	parser *ParserState
	logger *slog.Logger
}

// NewEmulator builds an emulator with a freshly created Grid of the given
// size and a default EmulatorState.
func NewEmulator(cols, rows int, logger *slog.Logger) *Emulator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Emulator{
		Grid:   NewGrid(cols, rows),
		Cursor: NewCursor(),
		State:  NewEmulatorState(),
		parser: NewParserState(),
		logger: logger,
	}
}

// Feed decodes data and applies every resulting event, in order.
func (e *Emulator) Feed(data []byte) {
	e.parser.Feed(e, data)
}

// Resize resizes the grid, preserving content, and clamps the cursor back
// into the new bounds.
func (e *Emulator) Resize(cols, rows int) {
	e.Grid.Resize(cols, rows)
	if e.Cursor.Col >= cols {
		e.Cursor.Col = maxInt(0, cols-1)
	}
	minRow := e.Grid.ViewportStart
	maxRow := e.Grid.ViewportStart + e.Grid.ViewportHeight - 1
	if e.Cursor.Row < minRow {
		e.Cursor.Row = minRow
	}
	if e.Cursor.Row > maxRow {
		e.Cursor.Row = maxRow
	}
}

// viewportBottom returns the absolute row index of the last visible line.
func (e *Emulator) viewportBottom() int {
	return e.Grid.ViewportStart + e.Grid.ViewportHeight - 1
}

// cursorViewportRow returns the cursor's row relative to the viewport top.
func (e *Emulator) cursorViewportRow() int {
	return e.Cursor.Row - e.Grid.ViewportStart
}

// Print implements Perform: writes a cell at the cursor, handling
// auto-wrap, and advances the cursor. With auto-wrap off, writing the last
// column still advances the cursor to Width; the next Print pulls it back to
// Width-1 and pins it there, so every further Print overwrites that same
// cell instead of advancing past it.
func (e *Emulator) Print(r rune) {
	pinned := false
	if e.Cursor.Col >= e.Grid.Width {
		if e.State.AutoWrap {
			e.Cursor.Col = 0
			e.lineFeedCursorRow()
		} else {
			e.Cursor.Col = maxInt(0, e.Grid.Width-1)
			pinned = true
		}
	}
	e.Grid.PutCell(e.Cursor.Row, e.Cursor.Col, e.State.currentCell(r))
	if !pinned {
		e.Cursor.Col++
	}
}

// Execute implements Perform for C0 controls.
func (e *Emulator) Execute(b byte) {
	switch b {
	case '\n':
		e.lineFeedCursorRow()
	case '\r':
		e.Cursor.Col = 0
	case '\b':
		e.Cursor.Col = maxInt(0, e.Cursor.Col-1)
	case '\t':
		e.Cursor.Col = minInt(e.Grid.Width-1, ((e.Cursor.Col/8)+1)*8)
	default:
		// ignored
	}
}

// lineFeedCursorRow advances the cursor one row, scrolling the full
// viewport up when it runs past the bottom. Per spec, LF-triggered
// scrolling always scrolls the full viewport, ignoring the scroll region
// (unlike CSI L/M, which honor it) — this is the resolved reading of
// spec §9's open question.
func (e *Emulator) lineFeedCursorRow() {
	e.Cursor.Row++
	if e.Cursor.Row > e.viewportBottom() {
		e.Grid.ScrollUp(1)
		e.Cursor.Row = e.viewportBottom()
	}
}

func (e *Emulator) diagnostic(format string, args ...any) {
	e.logger.Debug(fmt.Sprintf(format, args...))
}
