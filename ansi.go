package msglog

import "strconv"

// ANSI escape sequences for the 16 named colors use the 256-color form
// \x1B[38;5;⟨n⟩m (text) and \x1B[48;5;⟨n⟩m (background). Text sequences
// additionally set the font weight: standard colors force normal weight
// (22), bright colors force bold (1), so switching between them never
// leaks the previous weight.
const (
	ansiResetAll  = "\x1B[0m"
	ansiClearLine = "\x1B[K" // clear colored background past the cursor
	ansiTextDflt  = "\x1B[22;39m"
	ansiBackDflt  = "\x1B[49m"
)

// ansiText returns the escape sequence that colors the text font.
// Total over the color enumeration; out-of-range values fall back to the
// terminal default.
func ansiText(c Color) string {
	switch c := normColor(c); {
	case c < COL_BRIGHT_BLACK:
		return "\x1B[22;38;5;" + strconv.Itoa(int(c)) + "m"
	case c < COL_DEFAULT:
		return "\x1B[1;38;5;" + strconv.Itoa(int(c)) + "m"
	default:
		return ansiTextDflt
	}
}

// ansiBackground returns the escape sequence that colors the text
// background. Total over the color enumeration like ansiText.
func ansiBackground(c Color) string {
	if c = normColor(c); c < COL_DEFAULT {
		return "\x1B[48;5;" + strconv.Itoa(int(c)) + "m"
	}
	return ansiBackDflt
}
