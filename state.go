package vtcore

// EmulatorState is the emulator's current SGR and mode state: the
// attributes new cells are written with, the DEC private mode flags, and
// the FIFO of pending shell-bound responses.
type EmulatorState struct {
	Fg, Bg    Color
	Bold      bool
	Italic    bool
	Underline bool
	Reverse   bool

	// Faint, Blink, Conceal, CrossedOut, and the underline color supplement
	// the spec's minimum SGR table (grounded in
	// original_source/src/terminal/command.rs's SgrParameter enum). They
	// have no corresponding Cell field; they are tracked only as emulator
	// state for fidelity with a broader SGR vocabulary.
	Faint         bool
	Blink         bool
	Conceal       bool
	CrossedOut    bool
	UnderlineColor *Color

	ApplicationCursorKeys bool
	AutoWrap              bool
	CursorBlink            bool
	ShowCursor             bool
	MouseTracking          bool
	MouseCellMotion        bool
	MouseAllMotion         bool
	FocusEvents            bool
	MouseSGR               bool
	BracketedPaste         bool
	SynchronizedOutput     bool

	responses [][]byte
}

// NewEmulatorState returns the default emulator state: default colors, no
// attributes set, auto-wrap and cursor visibility on (matching xterm's
// power-on defaults), every other mode off.
func NewEmulatorState() *EmulatorState {
	return &EmulatorState{
		Fg:         White(),
		Bg:         Black(),
		AutoWrap:   true,
		ShowCursor: true,
	}
}

// currentCell builds a Cell from the current attribute state for the given
// rune, swapping fg/bg when Reverse is active.
func (s *EmulatorState) currentCell(ch rune) Cell {
	fg, bg := s.Fg, s.Bg
	if s.Reverse {
		fg, bg = bg, fg
	}
	return Cell{
		Ch:        ch,
		Fg:        fg,
		Bg:        bg,
		Bold:      s.Bold,
		Italic:    s.Italic,
		Underline: s.Underline,
		Reverse:   s.Reverse,
	}
}

// resetAttributes clears SGR state back to defaults without touching mode
// flags (SGR 0 only resets attributes/colors, not DEC private modes).
func (s *EmulatorState) resetAttributes() {
	s.Fg = White()
	s.Bg = Black()
	s.Bold = false
	s.Italic = false
	s.Underline = false
	s.Reverse = false
	s.Faint = false
	s.Blink = false
	s.Conceal = false
	s.CrossedOut = false
	s.UnderlineColor = nil
}

// queueResponse appends a shell-bound response to the FIFO.
func (s *EmulatorState) queueResponse(b []byte) {
	s.responses = append(s.responses, b)
}

// DrainResponses returns and clears all pending responses, in the order
// they were queued.
func (s *EmulatorState) DrainResponses() [][]byte {
	out := s.responses
	s.responses = nil
	return out
}

// setMode applies set/reset for a DEC private mode flag. The alternate
// screen mode is not handled here: Emulator.toggleAlternateScreen acts on
// Grid and the cursor for it.
func (s *EmulatorState) setMode(mode DecMode, on bool) {
	switch mode {
	case ModeApplicationCursorKeys:
		s.ApplicationCursorKeys = on
	case ModeAutoWrap:
		s.AutoWrap = on
	case ModeCursorBlink:
		s.CursorBlink = on
	case ModeShowCursor:
		s.ShowCursor = on
	case ModeMouseTracking:
		s.MouseTracking = on
	case ModeMouseCellMotion:
		s.MouseCellMotion = on
	case ModeMouseAllMotion:
		s.MouseAllMotion = on
	case ModeFocusEvents:
		s.FocusEvents = on
	case ModeMouseSGR:
		s.MouseSGR = on
	case ModeBracketedPaste:
		s.BracketedPaste = on
	case ModeSynchronizedOutput:
		s.SynchronizedOutput = on
	}
}
