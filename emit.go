package msglog

import (
	"fmt"
	"io"
	"strings"
)

/*
emit.go

The per-category entry points. Every category follows the same flow:
acquire the guard, write the context tag, the category tag and the body
to the terminal with the configured colors, reset the styling, then write
a parallel color-free timestamped line to the log file when one is
configured. The body is rendered once with fmt.Sprintf and reused for
both sinks. No category function ever fails.
*/

// Message emits a plain message: no category tag, default message colors.
// An empty context omits the context prefix.
func (l *Logger) Message(context, format string, args ...any) {
	l.emit(MSG_DEFAULT, TAG_CONTEXT, context, format, args...)
}

// Success emits a message tagged "(Success)".
func (l *Logger) Success(context, format string, args ...any) {
	l.emit(MSG_SUCCESS, TAG_SUCCESS, context, format, args...)
}

// Warning emits a message tagged "(Warning)".
func (l *Logger) Warning(context, format string, args ...any) {
	l.emit(MSG_WARNING, TAG_WARNING, context, format, args...)
}

// Error emits a message tagged "(Error)".
func (l *Logger) Error(context, format string, args ...any) {
	l.emit(MSG_ERROR, TAG_ERROR, context, format, args...)
}

// Info emits a message tagged "(Info)".
func (l *Logger) Info(context, format string, args ...any) {
	l.emit(MSG_INFO, TAG_INFO, context, format, args...)
}

// emit renders and writes one message to both sinks. TAG_CONTEXT stands
// in as "no category tag" for plain messages since its literal tag text
// is empty.
func (l *Logger) emit(mcat MsgCategory, tcat TagCategory, context, format string, args ...any) {
	body := fmt.Sprintf(format, args...)
	mcat = normMsgCategory(mcat)
	tcat = normTagCategory(tcat)
	l.acquire()
	defer l.release()
	if context != "" {
		l.styled(l.pallet.Tags[TAG_CONTEXT], context+": ")
	}
	if tag := tagTexts[tcat]; tag != "" {
		l.styled(l.pallet.Tags[tcat], tag+" ")
	}
	l.styled(l.pallet.Messages[mcat], body)
	l.resetStyling()
	if !strings.HasSuffix(body, "\n") {
		l.termWrite("\n")
	}
	l.writeLogLine(context, tagTexts[tcat], body)
}

// ColorText switches the terminal's font color for subsequent caller
// writes. No-op when colored output is off.
func (l *Logger) ColorText(color Color) {
	l.acquire()
	defer l.release()
	if l.colored {
		l.termWrite(ansiText(color))
	}
}

// ColorBackground switches the terminal's background color for
// subsequent caller writes, clearing the colored background past the
// cursor so the new color takes effect on the current line.
func (l *Logger) ColorBackground(color Color) {
	l.acquire()
	defer l.release()
	if l.colored {
		l.termWrite(ansiBackground(color))
		l.termWrite(ansiClearLine)
	}
}

// ResetColors restores the terminal's default colors and attributes.
func (l *Logger) ResetColors() {
	l.acquire()
	defer l.release()
	l.resetStyling()
}

// ResetTextColor restores the terminal's default font color.
func (l *Logger) ResetTextColor() {
	l.ColorText(COL_DEFAULT)
}

// ResetBackgroundColor restores the terminal's default background color.
func (l *Logger) ResetBackgroundColor() {
	l.ColorBackground(COL_DEFAULT)
}

// styled writes one run of text with the given colors applied. The
// background sequence is followed by a clear-line so line wraps do not
// drag the previous background along.
func (l *Logger) styled(colors DisplayColors, s string) {
	if l.colored {
		l.termWrite(ansiText(colors.Text))
		l.termWrite(ansiBackground(colors.Background))
		l.termWrite(ansiClearLine)
	}
	l.termWrite(s)
}

func (l *Logger) resetStyling() {
	if l.colored {
		l.termWrite(ansiResetAll)
		l.termWrite(ansiClearLine)
	}
}

// termWrite pushes bytes to the terminal sink. Terminal write errors are
// not checked (write-and-forget).
func (l *Logger) termWrite(s string) {
	_, _ = io.WriteString(l.term, s)
}
