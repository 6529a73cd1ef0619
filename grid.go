package vtcore

// Grid is the two-screen (primary + alternate) cell store. Only the primary
// screen grows past ViewportHeight to hold scrollback; the alternate screen
// is always exactly ViewportHeight rows.
type Grid struct {
	Width         int
	ViewportHeight int
	ViewportStart int
	MaxScrollback int
	UseAlternate  bool
	ScrollTop     int
	ScrollBottom  int

	rows          [][]Cell
	altRows       [][]Cell
	altViewportStart int
}

// NewGrid constructs a grid with the given dimensions. Both screens start as
// exactly viewportHeight rows of default cells.
func NewGrid(width, viewportHeight int) *Grid {
	g := &Grid{
		Width:          width,
		ViewportHeight: viewportHeight,
		ViewportStart:  0,
		MaxScrollback:  10000,
		ScrollTop:      0,
		ScrollBottom:   maxInt(viewportHeight-1, 0),
	}
	g.rows = newBlankRows(viewportHeight, width)
	g.altRows = newBlankRows(viewportHeight, width)
	return g
}

func newBlankRows(n, width int) [][]Cell {
	rows := make([][]Cell, n)
	for i := range rows {
		rows[i] = newBlankRow(width)
	}
	return rows
}

func newBlankRow(width int) []Cell {
	row := make([]Cell, width)
	for i := range row {
		row[i] = DefaultCell()
	}
	return row
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// PutCell writes cell at (row, col). Row indices beyond the current row
// count grow the primary screen's row vector (filling intervening rows with
// default cells); the scrollback cap is then enforced, trimming the oldest
// rows and adjusting ViewportStart. Columns outside [0, Width) are ignored.
func (g *Grid) PutCell(row, col int, cell Cell) {
	for row >= len(g.rows) {
		g.rows = append(g.rows, newBlankRow(g.Width))
	}
	if col >= 0 && col < g.Width {
		g.rows[row][col] = cell
	}
	if len(g.rows) > g.MaxScrollback {
		excess := len(g.rows) - g.MaxScrollback
		g.rows = g.rows[excess:]
		g.ViewportStart = maxInt(0, g.ViewportStart-excess)
	}
}

// ClearViewport replaces every cell in the current viewport with the
// default cell.
func (g *Grid) ClearViewport() {
	end := minInt(g.ViewportStart+g.ViewportHeight, len(g.rows))
	for r := g.ViewportStart; r < end; r++ {
		clearRow(g.rows[r])
	}
}

// ClearLine replaces the cells of the given absolute row with defaults. A
// row out of range is a no-op.
func (g *Grid) ClearLine(row int) {
	if row < 0 || row >= len(g.rows) {
		return
	}
	clearRow(g.rows[row])
}

func clearRow(row []Cell) {
	for i := range row {
		row[i] = DefaultCell()
	}
}

// ClearScrollback drops every row above the current viewport, so only the
// visible rows remain (ED mode 3, "erase saved lines"). ViewportStart is
// reset to 0 afterward since there is nothing left above it. A no-op on the
// alternate screen, which never accumulates scrollback.
func (g *Grid) ClearScrollback() {
	if g.UseAlternate || g.ViewportStart == 0 {
		return
	}
	g.rows = g.rows[g.ViewportStart:]
	g.ViewportStart = 0
}

// ViewportToEnd moves the viewport to show the most recently written rows.
func (g *Grid) ViewportToEnd() {
	if len(g.rows) > g.ViewportHeight {
		g.ViewportStart = len(g.rows) - g.ViewportHeight
	} else {
		g.ViewportStart = 0
	}
}

// Viewport returns the ViewportHeight rows starting at ViewportStart.
func (g *Grid) Viewport() [][]Cell {
	start := g.ViewportStart
	end := minInt(start+g.ViewportHeight, len(g.rows))
	return g.rows[start:end]
}

// RowCount reports the current number of rows on the active screen.
func (g *Grid) RowCount() int { return len(g.rows) }

// UseAlternateScreen swaps in the alternate screen's cells and viewport
// position. A redundant call while already on the alternate screen is a
// no-op. Grid performs no cursor save/restore.
func (g *Grid) UseAlternateScreen() {
	if g.UseAlternate {
		return
	}
	g.rows, g.altRows = g.altRows, g.rows
	g.ViewportStart, g.altViewportStart = g.altViewportStart, g.ViewportStart
	g.UseAlternate = true
}

// UseMainScreen swaps back to the primary screen. A redundant call while
// already on the primary screen is a no-op.
func (g *Grid) UseMainScreen() {
	if !g.UseAlternate {
		return
	}
	g.rows, g.altRows = g.altRows, g.rows
	g.ViewportStart, g.altViewportStart = g.altViewportStart, g.ViewportStart
	g.UseAlternate = false
}

// Resize changes the active width/height of both screens. Rows shorter than
// newWidth are padded with default cells; longer rows are truncated. Each
// screen is grown to at least newViewportHeight rows, and the alternate
// screen is trimmed to exactly that many. The viewport is moved
// to the end and the scroll region is reset to the full screen.
func (g *Grid) Resize(newWidth, newViewportHeight int) {
	g.ViewportHeight = newViewportHeight

	if newWidth != g.Width {
		resizeRowsWidth(g.rows, newWidth)
		resizeRowsWidth(g.altRows, newWidth)
		g.Width = newWidth
	}

	for len(g.rows) < g.ViewportHeight {
		g.rows = append(g.rows, newBlankRow(g.Width))
	}
	for len(g.altRows) < g.ViewportHeight {
		g.altRows = append(g.altRows, newBlankRow(g.Width))
	}
	// The alternate screen is also trimmed back to exactly the new height.
	if g.UseAlternate {
		if len(g.rows) > g.ViewportHeight {
			g.rows = g.rows[:g.ViewportHeight]
		}
	} else if len(g.altRows) > g.ViewportHeight {
		g.altRows = g.altRows[:g.ViewportHeight]
	}

	g.ViewportToEnd()

	g.ScrollTop = 0
	g.ScrollBottom = maxInt(g.ViewportHeight-1, 0)
}

func resizeRowsWidth(rows [][]Cell, newWidth int) {
	for i, row := range rows {
		switch {
		case len(row) < newWidth:
			padded := make([]Cell, newWidth)
			copy(padded, row)
			for j := len(row); j < newWidth; j++ {
				padded[j] = DefaultCell()
			}
			rows[i] = padded
		case len(row) > newWidth:
			rows[i] = row[:newWidth]
		}
	}
}

// SetScrollRegion sets the scrolling region margins (0-indexed, inclusive).
// An invalid region (not top < bottom < ViewportHeight) is silently ignored.
func (g *Grid) SetScrollRegion(top, bottom int) {
	if top < bottom && bottom < g.ViewportHeight {
		g.ScrollTop = top
		g.ScrollBottom = bottom
	}
}

// ResetScrollRegion restores the scrolling region to the full screen.
func (g *Grid) ResetScrollRegion() {
	g.ScrollTop = 0
	g.ScrollBottom = maxInt(g.ViewportHeight-1, 0)
}

// regionBounds returns the absolute [top, bottom] row indices (inclusive)
// of the scrolling region, clamped to the current row vector, or ok=false if
// the region is empty or entirely out of range.
func (g *Grid) regionBounds() (top, bottom int, ok bool) {
	top = g.ViewportStart + g.ScrollTop
	bottom = g.ViewportStart + g.ScrollBottom
	if bottom >= len(g.rows) {
		bottom = len(g.rows) - 1
	}
	if top > bottom {
		return 0, 0, false
	}
	return top, bottom, true
}

// InsertLines inserts count blank lines at the viewport-relative row,
// pushing lines at the bottom of the scrolling region out. Only the region
// itself is rewritten, in place, so rows outside [ScrollTop, ScrollBottom]
// (including below it) are left untouched. A no-op if row is outside
// [ScrollTop, ScrollBottom].
func (g *Grid) InsertLines(row, count int) {
	if row < g.ScrollTop || row > g.ScrollBottom {
		return
	}
	_, regionBottom, ok := g.regionBounds()
	if !ok {
		return
	}
	absRow := g.ViewportStart + row
	if absRow > regionBottom {
		return
	}
	count = minInt(count, regionBottom-absRow+1)
	if count <= 0 {
		return
	}

	region := g.rows[absRow : regionBottom+1]
	kept := region[:len(region)-count]
	rebuilt := make([][]Cell, 0, len(region))
	for i := 0; i < count; i++ {
		rebuilt = append(rebuilt, newBlankRow(g.Width))
	}
	rebuilt = append(rebuilt, kept...)
	copy(region, rebuilt)
}

// DeleteLines removes count lines at the viewport-relative row, pulling
// lines below (within the region) up and filling the bottom of the
// scrolling region with blank lines. Only the region itself is rewritten,
// in place, so rows below it are left untouched. A no-op if row is outside
// [ScrollTop, ScrollBottom].
func (g *Grid) DeleteLines(row, count int) {
	if row < g.ScrollTop || row > g.ScrollBottom {
		return
	}
	_, regionBottom, ok := g.regionBounds()
	if !ok {
		return
	}
	absRow := g.ViewportStart + row
	if absRow > regionBottom {
		return
	}
	count = minInt(count, regionBottom-absRow+1)
	if count <= 0 {
		return
	}

	region := g.rows[absRow : regionBottom+1]
	kept := region[count:]
	rebuilt := make([][]Cell, 0, len(region))
	rebuilt = append(rebuilt, kept...)
	for i := 0; i < count; i++ {
		rebuilt = append(rebuilt, newBlankRow(g.Width))
	}
	copy(region, rebuilt)
}

func insertRow(rows [][]Cell, pos int, row []Cell) [][]Cell {
	rows = append(rows, nil)
	copy(rows[pos+1:], rows[pos:])
	rows[pos] = row
	return rows
}

// ScrollUp scrolls the viewport up by n lines: n rows are removed from the
// top of the viewport and n default rows are appended at the bottom. On the
// primary screen this grows the row vector (the rows scrolled off become
// scrollback) and honors the scrollback cap, trimming the oldest rows and
// adjusting ViewportStart; the alternate screen never grows, so rows are
// shifted in place instead.
func (g *Grid) ScrollUp(n int) {
	if n <= 0 {
		return
	}
	if g.UseAlternate {
		for i := 0; i < n; i++ {
			if len(g.rows) > 0 {
				g.rows = g.rows[1:]
			}
			g.rows = append(g.rows, newBlankRow(g.Width))
		}
		return
	}

	for i := 0; i < n; i++ {
		g.rows = append(g.rows, newBlankRow(g.Width))
	}
	g.ViewportStart += n
	if len(g.rows) > g.MaxScrollback {
		excess := len(g.rows) - g.MaxScrollback
		g.rows = g.rows[excess:]
		g.ViewportStart = maxInt(0, g.ViewportStart-excess)
	}
	if maxStart := maxInt(0, len(g.rows)-g.ViewportHeight); g.ViewportStart > maxStart {
		g.ViewportStart = maxStart
	}
}

// ScrollDown scrolls the viewport down by n lines: n default rows are
// inserted at the top of the viewport, and a matching number of rows are
// dropped from the end of the row vector so the total row count does not
// grow without bound.
func (g *Grid) ScrollDown(n int) {
	if n <= 0 {
		return
	}
	for i := 0; i < n; i++ {
		g.rows = insertRow(g.rows, g.ViewportStart, newBlankRow(g.Width))
		if len(g.rows) > g.ViewportStart+1 {
			g.rows = g.rows[:len(g.rows)-1]
		}
	}
}
