package vtcore

// sgr implements §4.3.4: a flat sequence of SGR codes. An empty sequence is
// treated the same as an explicit 0 (full reset) — "0 or empty resets all
// attributes and colors to defaults".
func (e *Emulator) sgr(codes []int) {
	if len(codes) == 0 {
		codes = []int{0}
	}
	for i := 0; i < len(codes); i++ {
		code := codes[i]
		switch {
		case code == 0:
			e.State.resetAttributes()
		case code == 1:
			e.State.Bold = true
		case code == 2:
			e.State.Faint = true
		case code == 3:
			e.State.Italic = true
		case code == 4:
			e.State.Underline = true
		case code == 5 || code == 6:
			e.State.Blink = true
		case code == 7:
			e.State.Reverse = true
		case code == 8:
			e.State.Conceal = true
		case code == 9:
			e.State.CrossedOut = true
		case code == 22:
			e.State.Bold = false
			e.State.Faint = false
		case code == 23:
			e.State.Italic = false
		case code == 24:
			e.State.Underline = false
		case code == 25:
			e.State.Blink = false
		case code == 27:
			e.State.Reverse = false
		case code == 28:
			e.State.Conceal = false
		case code == 29:
			e.State.CrossedOut = false
		case code == 39:
			e.State.Fg = White()
		case code == 49:
			e.State.Bg = Black()
		case code >= 30 && code <= 37:
			e.State.Fg = FromIndex(code - 30)
		case code >= 40 && code <= 47:
			e.State.Bg = FromIndex(code - 40)
		case code >= 90 && code <= 97:
			e.State.Fg = FromIndex(8 + code - 90)
		case code >= 100 && code <= 107:
			e.State.Bg = FromIndex(8 + code - 100)
		case code == 38 || code == 48:
			consumed, color := extendedColor(codes, i+1)
			if color != nil {
				if code == 38 {
					e.State.Fg = *color
				} else {
					e.State.Bg = *color
				}
			}
			i += consumed
		case code == 58:
			consumed, color := extendedColor(codes, i+1)
			if color != nil {
				e.State.UnderlineColor = color
			}
			i += consumed
		case code == 59:
			e.State.UnderlineColor = nil
		default:
			e.diagnostic("unknown SGR code %d", code)
		}
	}
}

// extendedColor parses the sub-parameters of an extended color SGR code
// (38/48/58) starting at idx: "5" selects a palette index (one following
// parameter), "2" selects RGB (three following parameters, missing values
// treated as 0). Both ';' and ':' separators feed the same flattened
// sequence here, since flattenParams has already merged them. Returns how
// many additional codes were consumed and the resolved color, or nil if the
// sub-parameters were incomplete.
func extendedColor(codes []int, idx int) (int, *Color) {
	if idx >= len(codes) {
		return 0, nil
	}
	switch codes[idx] {
	case 5:
		if idx+1 < len(codes) {
			c := FromIndex(codes[idx+1])
			return 2, &c
		}
		return 1, nil
	case 2:
		r := intOr(codes, idx+1, 0)
		g := intOr(codes, idx+2, 0)
		b := intOr(codes, idx+3, 0)
		c := Color{uint8(r), uint8(g), uint8(b)}
		return 4, &c
	default:
		return 1, nil
	}
}

func intOr(codes []int, idx, def int) int {
	if idx < 0 || idx >= len(codes) {
		return def
	}
	return codes[idx]
}
