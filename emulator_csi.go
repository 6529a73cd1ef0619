package vtcore

import "fmt"

// paramOr returns params[idx]'s first value, treating a missing group, an
// empty group, or an explicit zero as "use def" — the uniform rule spec
// §4.2 states for every CSI consumer (testable property 7).
func paramOr(params [][]int, idx, def int) int {
	if idx < 0 || idx >= len(params) {
		return def
	}
	group := params[idx]
	if len(group) == 0 || group[0] == 0 {
		return def
	}
	return group[0]
}

// flattenParams concatenates every parameter group into one sequential
// list of integers, treating an empty group as a single 0. SGR processing
// only cares about the sequence of values, not which separator (';' or ':')
// produced the grouping.
func flattenParams(params [][]int) []int {
	var out []int
	for _, g := range params {
		if len(g) == 0 {
			out = append(out, 0)
			continue
		}
		out = append(out, g...)
	}
	return out
}

// CsiDispatch implements Perform: applies the CSI command table of §4.3.3.
func (e *Emulator) CsiDispatch(params [][]int, intermediates []byte, private byte, final rune) {
	switch {
	case private == '?' && len(intermediates) == 1 && intermediates[0] == '$' && final == 'p':
		e.decrqm(paramOr(params, 0, 0))
		return
	case private == '?' && final == 'h':
		e.setPrivateModes(params, true)
		return
	case private == '?' && final == 'l':
		e.setPrivateModes(params, false)
		return
	}

	switch final {
	case 'H', 'f':
		row := paramOr(params, 0, 1)
		col := paramOr(params, 1, 1)
		e.cursorPosition(row, col)
	case 'A':
		e.moveCursorRow(-paramOr(params, 0, 1))
	case 'B':
		e.moveCursorRow(paramOr(params, 0, 1))
	case 'C':
		e.moveCursorCol(paramOr(params, 0, 1))
	case 'D':
		e.moveCursorCol(-paramOr(params, 0, 1))
	case 'G':
		e.cursorHorizontalAbsolute(paramOr(params, 0, 1))
	case 'd':
		e.verticalPositionAbsolute(paramOr(params, 0, 1))
	case 'J':
		e.eraseInDisplay(paramOr(params, 0, 0))
	case 'K':
		e.eraseInLine(paramOr(params, 0, 0))
	case 'X':
		e.eraseChars(paramOr(params, 0, 1))
	case 'P':
		e.deleteChars(paramOr(params, 0, 1))
	case 'L':
		e.Grid.InsertLines(e.cursorViewportRow(), paramOr(params, 0, 1))
	case 'M':
		e.Grid.DeleteLines(e.cursorViewportRow(), paramOr(params, 0, 1))
	case 'S':
		e.Grid.ScrollUp(paramOr(params, 0, 1))
	case 'T':
		e.Grid.ScrollDown(paramOr(params, 0, 1))
	case 'm':
		e.sgr(flattenParams(params))
	case 'r':
		e.setScrollingRegion(paramOr(params, 0, 1), paramOr(params, 1, e.Grid.ViewportHeight))
	case 'n':
		e.deviceStatusReport(paramOr(params, 0, 0))
	case 'c':
		e.deviceAttributes(private, paramOr(params, 0, 0))
	case 'q':
		if len(intermediates) == 1 && intermediates[0] == ' ' {
			e.setCursorStyle(paramOr(params, 0, 0))
		}
	case 't':
		// Window manipulation: absorbed silently, no response.
	default:
		e.diagnostic("unimplemented CSI final=%q private=%q intermediates=%v", final, private, intermediates)
	}
}

func (e *Emulator) clampCol(col int) int {
	if col < 0 {
		return 0
	}
	if col >= e.Grid.Width {
		return e.Grid.Width - 1
	}
	return col
}

func (e *Emulator) clampRow(row int) int {
	lo := e.Grid.ViewportStart
	hi := e.Grid.ViewportStart + e.Grid.ViewportHeight - 1
	if row < lo {
		return lo
	}
	if row > hi {
		return hi
	}
	return row
}

// cursorPosition implements CUP (H/f): 1-indexed absolute row/col, clamped.
func (e *Emulator) cursorPosition(row, col int) {
	e.Cursor.Row = e.clampRow(e.Grid.ViewportStart + row - 1)
	e.Cursor.Col = e.clampCol(col - 1)
}

func (e *Emulator) moveCursorRow(delta int) {
	e.Cursor.Row = e.clampRow(e.Cursor.Row + delta)
}

func (e *Emulator) moveCursorCol(delta int) {
	e.Cursor.Col = e.clampCol(e.Cursor.Col + delta)
}

// cursorHorizontalAbsolute implements CHA (G): 1-indexed column, clamped.
func (e *Emulator) cursorHorizontalAbsolute(col int) {
	e.Cursor.Col = e.clampCol(col - 1)
}

// verticalPositionAbsolute implements VPA (d): 1-indexed row, clamped;
// column is left unchanged.
func (e *Emulator) verticalPositionAbsolute(row int) {
	e.Cursor.Row = e.clampRow(e.Grid.ViewportStart + row - 1)
}

// eraseInDisplay implements ED (J). Erased cells take default attributes,
// not the current SGR state (xterm's "bce" fill-with-background mode is
// deliberately not implemented). Mode 3 additionally drops the primary
// screen's scrollback rows above the viewport ("erase saved lines"); mode 2
// clears only what's currently visible and leaves scrollback intact.
func (e *Emulator) eraseInDisplay(mode int) {
	switch mode {
	case 0:
		e.clearFromCursorToEnd()
	case 1:
		e.clearFromStartToCursor()
	case 2, 3:
		e.Grid.ClearViewport()
		if mode == 3 {
			e.Grid.ClearScrollback()
		}
		e.Cursor.Row = e.Grid.ViewportStart
		e.Cursor.Col = 0
	default:
		e.diagnostic("unknown ED mode %d", mode)
	}
}

func (e *Emulator) clearFromCursorToEnd() {
	e.eraseLineFrom(e.Cursor.Row, e.Cursor.Col, e.Grid.Width)
	for r := e.Cursor.Row + 1; r <= e.viewportBottom(); r++ {
		e.Grid.ClearLine(r)
	}
}

func (e *Emulator) clearFromStartToCursor() {
	for r := e.Grid.ViewportStart; r < e.Cursor.Row; r++ {
		e.Grid.ClearLine(r)
	}
	e.eraseLineFrom(e.Cursor.Row, 0, e.Cursor.Col+1)
}

// eraseLineFrom clears columns [from, to) of the given absolute row.
func (e *Emulator) eraseLineFrom(row, from, to int) {
	if row < 0 || row >= e.Grid.RowCount() {
		return
	}
	for c := from; c < to && c < e.Grid.Width; c++ {
		e.Grid.PutCell(row, c, DefaultCell())
	}
}

// eraseInLine implements EL (K), analogous to ED but confined to the
// current row.
func (e *Emulator) eraseInLine(mode int) {
	switch mode {
	case 0:
		e.eraseLineFrom(e.Cursor.Row, e.Cursor.Col, e.Grid.Width)
	case 1:
		e.eraseLineFrom(e.Cursor.Row, 0, e.Cursor.Col+1)
	case 2:
		e.eraseLineFrom(e.Cursor.Row, 0, e.Grid.Width)
	default:
		e.diagnostic("unknown EL mode %d", mode)
	}
}

// eraseChars implements ECH (X): replaces n cells at the cursor with
// defaults, no shifting.
func (e *Emulator) eraseChars(n int) {
	e.eraseLineFrom(e.Cursor.Row, e.Cursor.Col, e.Cursor.Col+n)
}

// deleteChars implements DCH (P): removes n cells at the cursor, shifting
// the remainder of the row left and filling the vacated tail with defaults.
func (e *Emulator) deleteChars(n int) {
	row := e.Cursor.Row
	if row < 0 || row >= e.Grid.RowCount() {
		return
	}
	width := e.Grid.Width
	col := e.Cursor.Col
	if col >= width {
		return
	}
	n = minInt(n, width-col)
	for c := col; c < width; c++ {
		src := c + n
		if src < width {
			e.Grid.PutCell(row, c, e.cellAt(row, src))
		} else {
			e.Grid.PutCell(row, c, DefaultCell())
		}
	}
}

func (e *Emulator) cellAt(row, col int) Cell {
	vp := e.Grid.rows
	if row < 0 || row >= len(vp) {
		return DefaultCell()
	}
	r := vp[row]
	if col < 0 || col >= len(r) {
		return DefaultCell()
	}
	return r[col]
}

// setScrollingRegion implements DECSTBM (r): top defaults to 1, bottom to
// the viewport height, so both omitted is the same 0-indexed [0,height-1]
// range ResetScrollRegion produces; cursor homes to the origin either way.
func (e *Emulator) setScrollingRegion(top, bottom int) {
	e.Grid.SetScrollRegion(top-1, bottom-1)
	e.Cursor.Row = e.Grid.ViewportStart
	e.Cursor.Col = 0
}

// deviceStatusReport implements DSR (n): n=6 queues a CPR reply with the
// 1-indexed cursor position.
func (e *Emulator) deviceStatusReport(n int) {
	if n != 6 {
		return
	}
	row := e.cursorViewportRow() + 1
	col := e.Cursor.Col + 1
	e.State.queueResponse([]byte(fmt.Sprintf("\x1b[%d;%dR", row, col)))
}

// deviceAttributes implements DA (c).
func (e *Emulator) deviceAttributes(private byte, n int) {
	if private == '>' {
		e.State.queueResponse([]byte("\x1b[>1;0;0c"))
		return
	}
	if n == 0 {
		e.State.queueResponse([]byte("\x1b[?1;2c"))
	}
}

// setCursorStyle implements DECSCUSR (q).
func (e *Emulator) setCursorStyle(style int) {
	switch style {
	case 0, 1, 2:
		e.Cursor.Style = CursorBlock
	case 3, 4:
		e.Cursor.Style = CursorUnderline
	case 5, 6:
		e.Cursor.Style = CursorBar
	default:
		e.diagnostic("unknown cursor style %d", style)
		return
	}
	e.State.Blink = style%2 == 1
}

// decrqm implements DECRQM: queries a DEC private mode's current state.
func (e *Emulator) decrqm(modeNum int) {
	mode := decModeFromNumber(modeNum)
	value := 0
	if mode != ModeUnknown {
		if e.modeIsSet(mode) {
			value = 1
		} else {
			value = 2
		}
	}
	e.State.queueResponse([]byte(fmt.Sprintf("\x1b[?%d;%d$y", modeNum, value)))
}

func (e *Emulator) modeIsSet(mode DecMode) bool {
	switch mode {
	case ModeApplicationCursorKeys:
		return e.State.ApplicationCursorKeys
	case ModeAutoWrap:
		return e.State.AutoWrap
	case ModeCursorBlink:
		return e.State.CursorBlink
	case ModeShowCursor:
		return e.State.ShowCursor
	case ModeAlternateScreenBuffer:
		return e.Grid.UseAlternate
	case ModeMouseTracking:
		return e.State.MouseTracking
	case ModeMouseCellMotion:
		return e.State.MouseCellMotion
	case ModeMouseAllMotion:
		return e.State.MouseAllMotion
	case ModeFocusEvents:
		return e.State.FocusEvents
	case ModeMouseSGR:
		return e.State.MouseSGR
	case ModeBracketedPaste:
		return e.State.BracketedPaste
	case ModeSynchronizedOutput:
		return e.State.SynchronizedOutput
	default:
		return false
	}
}

// setPrivateModes implements SM/RM (h/l) with the '?' private marker: the
// DEC private mode registry of §4.3.5.
func (e *Emulator) setPrivateModes(params [][]int, on bool) {
	for i := range params {
		n := paramOr(params, i, 0)
		mode := decModeFromNumber(n)
		if mode == ModeUnknown {
			e.diagnostic("unknown DEC private mode %d", n)
			continue
		}
		if mode == ModeAlternateScreenBuffer {
			e.toggleAlternateScreen(on)
			continue
		}
		e.State.setMode(mode, on)
	}
}

// toggleAlternateScreen implements modes 47/1049 identically: swap screen,
// clear the alternate on entry, home the cursor; reset swaps back with
// primary content intact. No DECSC/DECRC cursor save/restore is performed.
// A set while the alternate screen is already active is a no-op.
func (e *Emulator) toggleAlternateScreen(on bool) {
	if on {
		if e.Grid.UseAlternate {
			return
		}
		e.Grid.UseAlternateScreen()
		e.Grid.ClearViewport()
		e.Cursor.Row = e.Grid.ViewportStart
		e.Cursor.Col = 0
		return
	}
	e.Grid.UseMainScreen()
	e.Cursor.Row = e.clampRow(e.Cursor.Row)
	e.Cursor.Col = e.clampCol(e.Cursor.Col)
}
