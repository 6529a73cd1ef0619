// Package vtcore implements the core of a terminal emulator: a VT/ANSI byte
// stream parser, a 2D cell grid with scrollback and an alternate screen, and
// an emulator that applies parsed events to the grid and cursor.
//
// Window-system integration, font rendering, and the keyboard/mouse encoder
// are not part of this package; see the input subpackage for the latter.
package vtcore
