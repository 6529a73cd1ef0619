package vtcore

// CursorStyle is the rendering shape the cursor should take. The blink
// request itself lives on EmulatorState, not here: it governs whether the
// renderer should blink, while the actual visible phase is owned by the
// renderer.
type CursorStyle int

const (
	CursorBlock CursorStyle = iota
	CursorUnderline
	CursorBar
)

// Cursor is the emulator's write position. Row is an absolute index into
// the grid's row vector, not a viewport-relative index.
type Cursor struct {
	Row     int
	Col     int
	Visible bool
	Style   CursorStyle
}

// NewCursor returns a cursor at the origin, visible, block-styled.
func NewCursor() Cursor {
	return Cursor{Row: 0, Col: 0, Visible: true, Style: CursorBlock}
}
