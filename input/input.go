// Package input encodes keyboard, mouse, focus, and paste events into the
// byte sequences a shell expects on its PTY input, mirroring the mode-aware
// encoding rules an emulator's CsiDispatch/sgr side implements for output.
package input

import "fmt"

// NamedKey identifies a non-printable key that has its own escape sequence.
type NamedKey int

const (
	KeyEnter NamedKey = iota
	KeyBackspace
	KeyTab
	KeySpace
	KeyEscape
	KeyArrowUp
	KeyArrowDown
	KeyArrowRight
	KeyArrowLeft
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyDelete
	KeyInsert
)

// EncodeNamedKey returns the bytes to send for a named key, or ok=false if
// the key has no mapping. The arrow keys switch between the CSI and SS3
// encodings depending on whether application cursor keys mode is active.
func EncodeNamedKey(key NamedKey, applicationCursorKeys bool) (data []byte, ok bool) {
	switch key {
	case KeyEnter:
		return []byte("\r"), true
	case KeyBackspace:
		return []byte("\x7f"), true
	case KeyTab:
		return []byte("\t"), true
	case KeySpace:
		return []byte(" "), true
	case KeyEscape:
		return []byte("\x1b"), true
	case KeyArrowUp:
		return arrowSequence('A', applicationCursorKeys), true
	case KeyArrowDown:
		return arrowSequence('B', applicationCursorKeys), true
	case KeyArrowRight:
		return arrowSequence('C', applicationCursorKeys), true
	case KeyArrowLeft:
		return arrowSequence('D', applicationCursorKeys), true
	case KeyHome:
		return []byte("\x1b[H"), true
	case KeyEnd:
		return []byte("\x1b[F"), true
	case KeyPageUp:
		return []byte("\x1b[5~"), true
	case KeyPageDown:
		return []byte("\x1b[6~"), true
	case KeyDelete:
		return []byte("\x1b[3~"), true
	case KeyInsert:
		return []byte("\x1b[2~"), true
	default:
		return nil, false
	}
}

func arrowSequence(final byte, applicationCursorKeys bool) []byte {
	if applicationCursorKeys {
		return []byte{0x1b, 'O', final}
	}
	return []byte{0x1b, '[', final}
}

// EncodeChar encodes a single printable character, applying Ctrl+letter ->
// control-code translation. Ctrl+V is reserved for paste at the caller's
// level: EncodeChar reports isPaste=true and returns no data so the caller
// can read the clipboard instead of forwarding the keystroke.
func EncodeChar(ch rune, ctrl bool) (data []byte, isPaste bool) {
	isAlpha := (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
	if ctrl && isAlpha {
		lower := ch | 0x20
		if lower == 'v' {
			return nil, true
		}
		return []byte{byte(lower - 'a' + 1)}, false
	}
	return []byte(string(ch)), false
}

// EncodeBracketedPaste wraps pasted text in the bracketed-paste markers when
// bracketedPaste mode is active; otherwise it returns the text unchanged.
func EncodeBracketedPaste(text []byte, bracketedPaste bool) []byte {
	if !bracketedPaste {
		return text
	}
	out := make([]byte, 0, len(text)+12)
	out = append(out, "\x1b[200~"...)
	out = append(out, text...)
	out = append(out, "\x1b[201~"...)
	return out
}

// EncodeFocus returns the focus-in/focus-out sequence, or nil if focus
// events mode is off.
func EncodeFocus(focused, focusEvents bool) []byte {
	if !focusEvents {
		return nil
	}
	if focused {
		return []byte("\x1b[I")
	}
	return []byte("\x1b[O")
}

// MouseButton is the 0-indexed button number a press/release/motion event
// reports: 0=left, 1=middle, 2=right.
type MouseButton int

// MouseState is the subset of emulator mode flags that affect mouse event
// encoding.
type MouseState struct {
	SGR         bool
	Tracking    bool
	CellMotion  bool
}

// EncodeMouse returns the escape sequence for a mouse press, release, or
// drag, or nil if no mouse mode is active. SGR mode (CSI < Cb ; Cx ; Cy M/m)
// is preferred when enabled; otherwise X10/X11 mode encodes button and
// coordinates as bytes offset by 32, each clamped to 255.
func EncodeMouse(state MouseState, button MouseButton, col, row int, pressed bool) []byte {
	cb := int(button)
	if !pressed {
		cb = 3
	}

	switch {
	case state.SGR:
		suffix := byte('m')
		if pressed {
			suffix = 'M'
		}
		return []byte(fmt.Sprintf("\x1b[<%d;%d;%d%c", cb, col+1, row+1, suffix))
	case state.Tracking || state.CellMotion:
		return []byte{
			0x1b, '[', 'M',
			clampMouseByte(cb + 32),
			clampMouseByte(col + 1 + 32),
			clampMouseByte(row + 1 + 32),
		}
	default:
		return nil
	}
}

func clampMouseByte(v int) byte {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return byte(v)
}
