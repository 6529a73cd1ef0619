package vtcore

import "testing"

func TestGridNew(t *testing.T) {
	g := NewGrid(80, 24)
	if g.Width != 80 || g.ViewportHeight != 24 || g.ViewportStart != 0 {
		t.Fatalf("unexpected new grid: %+v", g)
	}
	if g.MaxScrollback != 10000 {
		t.Fatalf("MaxScrollback = %d, want 10000", g.MaxScrollback)
	}
	if g.RowCount() != 24 || len(g.rows[0]) != 80 {
		t.Fatalf("unexpected row shape")
	}
}

func TestPutCellBasic(t *testing.T) {
	g := NewGrid(80, 24)
	g.PutCell(5, 10, Cell{Ch: 'A'})
	if g.rows[5][10].Ch != 'A' {
		t.Fatalf("cell not written")
	}
}

func TestPutCellExpandsRows(t *testing.T) {
	g := NewGrid(80, 24)
	g.PutCell(30, 10, Cell{Ch: 'B'})
	if g.RowCount() < 31 || g.rows[30][10].Ch != 'B' {
		t.Fatalf("row did not grow as expected")
	}
}

func TestPutCellRespectsScrollbackLimit(t *testing.T) {
	g := NewGrid(80, 24)
	g.MaxScrollback = 100
	for i := 0; i < 150; i++ {
		g.PutCell(i, 0, Cell{Ch: 'X'})
	}
	if g.RowCount() != 100 {
		t.Fatalf("RowCount() = %d, want 100", g.RowCount())
	}
}

func TestPutCellIgnoresOutOfBoundsColumn(t *testing.T) {
	g := NewGrid(80, 24)
	g.PutCell(0, 100, Cell{Ch: 'C'})
	if g.rows[0][0].Ch != ' ' {
		t.Fatalf("out-of-bounds write should be ignored")
	}
}

func TestClearViewport(t *testing.T) {
	g := NewGrid(80, 24)
	for r := 0; r < 24; r++ {
		for c := 0; c < 80; c++ {
			g.PutCell(r, c, Cell{Ch: 'X'})
		}
	}
	g.ClearViewport()
	for r := 0; r < 24; r++ {
		for c := 0; c < 80; c++ {
			if g.rows[r][c].Ch != ' ' {
				t.Fatalf("cell (%d,%d) not cleared", r, c)
			}
		}
	}
}

func TestClearLine(t *testing.T) {
	g := NewGrid(80, 24)
	for c := 0; c < 80; c++ {
		g.PutCell(10, c, Cell{Ch: 'Y'})
	}
	g.ClearLine(10)
	for c := 0; c < 80; c++ {
		if g.rows[10][c].Ch != ' ' {
			t.Fatalf("row 10 not cleared at col %d", c)
		}
	}
	if g.rows[9][0].Ch != ' ' {
		t.Fatalf("unrelated row mutated")
	}
}

func TestViewportToEnd(t *testing.T) {
	g := NewGrid(80, 24)
	for i := 0; i < 50; i++ {
		g.PutCell(i, 0, Cell{Ch: 'Z'})
	}
	g.ViewportToEnd()
	if g.ViewportStart != 26 {
		t.Fatalf("ViewportStart = %d, want 26", g.ViewportStart)
	}
}

func TestViewportToEndInsufficientRows(t *testing.T) {
	g := NewGrid(80, 24)
	for i := 0; i < 10; i++ {
		g.PutCell(i, 0, Cell{Ch: 'A'})
	}
	g.ViewportToEnd()
	if g.ViewportStart != 0 {
		t.Fatalf("ViewportStart = %d, want 0", g.ViewportStart)
	}
}

func TestResizeWidthIncrease(t *testing.T) {
	g := NewGrid(80, 24)
	g.PutCell(0, 0, Cell{Ch: 'A'})
	g.Resize(100, 24)
	if g.Width != 100 || len(g.rows[0]) != 100 {
		t.Fatalf("resize did not widen rows")
	}
	if g.rows[0][0].Ch != 'A' {
		t.Fatalf("existing content lost on widen")
	}
	if g.rows[0][99].Ch != ' ' {
		t.Fatalf("new columns should be blank")
	}
}

func TestResizeWidthDecrease(t *testing.T) {
	g := NewGrid(80, 24)
	g.PutCell(0, 0, Cell{Ch: 'B'})
	g.PutCell(0, 70, Cell{Ch: 'X'})
	g.Resize(60, 24)
	if g.Width != 60 || len(g.rows[0]) != 60 {
		t.Fatalf("resize did not narrow rows")
	}
	if g.rows[0][0].Ch != 'B' {
		t.Fatalf("content within new width should be preserved")
	}
}

func TestResizeResetsScrollRegion(t *testing.T) {
	g := NewGrid(80, 24)
	g.SetScrollRegion(2, 10)
	g.Resize(80, 24)
	if g.ScrollTop != 0 || g.ScrollBottom != 23 {
		t.Fatalf("resize should reset scroll region, got [%d,%d]", g.ScrollTop, g.ScrollBottom)
	}
}

func TestUseAlternateScreenRoundTrip(t *testing.T) {
	g := NewGrid(80, 24)
	g.PutCell(0, 0, Cell{Ch: 'P'})

	g.UseAlternateScreen()
	if !g.UseAlternate {
		t.Fatalf("UseAlternate should be true")
	}
	if g.rows[0][0].Ch != ' ' {
		t.Fatalf("alternate screen should start blank")
	}
	g.PutCell(0, 0, Cell{Ch: 'Q'})

	g.UseAlternateScreen() // redundant call: must be a no-op
	if g.rows[0][0].Ch != 'Q' {
		t.Fatalf("redundant UseAlternateScreen call corrupted active screen")
	}

	g.UseMainScreen()
	if g.UseAlternate {
		t.Fatalf("UseAlternate should be false")
	}
	if g.rows[0][0].Ch != 'P' {
		t.Fatalf("primary content should be restored intact, got %q", g.rows[0][0].Ch)
	}
}

func TestSetScrollRegionInvalidIgnored(t *testing.T) {
	g := NewGrid(80, 24)
	g.SetScrollRegion(5, 2)
	if g.ScrollTop != 0 || g.ScrollBottom != 23 {
		t.Fatalf("invalid scroll region should be ignored")
	}
	g.SetScrollRegion(1, 100)
	if g.ScrollTop != 0 || g.ScrollBottom != 23 {
		t.Fatalf("out-of-range scroll region should be ignored")
	}
}

func TestInsertLinesShiftsWithinRegion(t *testing.T) {
	g := NewGrid(5, 5)
	for r := 0; r < 5; r++ {
		g.PutCell(r, 0, Cell{Ch: rune('0' + r)})
	}
	g.InsertLines(1, 1)
	if g.rows[1][0].Ch != ' ' {
		t.Fatalf("inserted row should be blank, got %q", g.rows[1][0].Ch)
	}
	if g.rows[2][0].Ch != '1' {
		t.Fatalf("row 1 should have shifted to row 2, got %q", g.rows[2][0].Ch)
	}
}

// Region bottom narrower than the viewport: rows below the region must be
// left untouched, even when count spans the whole region.
func TestInsertLinesLeavesRowsBelowRegionUntouched(t *testing.T) {
	g := NewGrid(5, 5)
	for r := 0; r < 5; r++ {
		g.PutCell(r, 0, Cell{Ch: rune('0' + r)})
	}
	g.SetScrollRegion(1, 3)
	g.InsertLines(1, 2)

	want := []rune{'0', ' ', ' ', '1', '4'}
	for r, ch := range want {
		if g.rows[r][0].Ch != ch {
			t.Fatalf("row %d = %q, want %q (full result %v)", r, g.rows[r][0].Ch, ch, rowChars(g))
		}
	}
}

func TestDeleteLinesLeavesRowsBelowRegionUntouched(t *testing.T) {
	g := NewGrid(5, 5)
	for r := 0; r < 5; r++ {
		g.PutCell(r, 0, Cell{Ch: rune('0' + r)})
	}
	g.SetScrollRegion(1, 3)
	g.DeleteLines(1, 2)

	want := []rune{'0', '3', ' ', ' ', '4'}
	for r, ch := range want {
		if g.rows[r][0].Ch != ch {
			t.Fatalf("row %d = %q, want %q (full result %v)", r, g.rows[r][0].Ch, ch, rowChars(g))
		}
	}
}

func rowChars(g *Grid) []rune {
	out := make([]rune, len(g.rows))
	for i, row := range g.rows {
		out[i] = row[0].Ch
	}
	return out
}
