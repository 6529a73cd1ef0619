package vtcore

// Cell is a single grid position: one code point plus the attributes it was
// written with. Cells are value types; copying one is cheap.
type Cell struct {
	Ch        rune
	Fg        Color
	Bg        Color
	Bold      bool
	Italic    bool
	Underline bool
	Reverse   bool
}

// DefaultCell is a blank space on the default foreground/background.
func DefaultCell() Cell {
	return Cell{Ch: ' ', Fg: White(), Bg: Black()}
}
