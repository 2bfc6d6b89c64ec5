package msglog

import (
	"fmt"

	"github.com/lestrrat-go/strftime"
)

/*
colors.go

The display configuration store: per-category color assignments for
message bodies and tags, plus the log file timestamp format. All getters
return copies, all mutators replace whole values, and everything runs
inside the guard's critical section when thread safety is enabled.
*/

// MsgColors returns a copy of the colors assigned to a message category.
// Out-of-range categories are clamped to the default category.
func (l *Logger) MsgColors(category MsgCategory) DisplayColors {
	l.acquire()
	defer l.release()
	return l.pallet.Messages[normMsgCategory(category)]
}

// SetMsgColors assigns the colors used for a message category's body.
func (l *Logger) SetMsgColors(category MsgCategory, colors DisplayColors) {
	l.acquire()
	defer l.release()
	l.pallet.Messages[normMsgCategory(category)] = normDisplayColors(colors)
}

// TagColors returns a copy of the colors assigned to a tag category.
func (l *Logger) TagColors(category TagCategory) DisplayColors {
	l.acquire()
	defer l.release()
	return l.pallet.Tags[normTagCategory(category)]
}

// SetTagColors assigns the colors used for a tag category.
func (l *Logger) SetTagColors(category TagCategory, colors DisplayColors) {
	l.acquire()
	defer l.release()
	l.pallet.Tags[normTagCategory(category)] = normDisplayColors(colors)
}

// ResetLoggerColors restores the built-in default pallet for every
// message and tag category in one step under the guard, so partial
// resets are never observable.
func (l *Logger) ResetLoggerColors() {
	l.acquire()
	defer l.release()
	l.pallet = defaultPallet
}

// TimeFormat returns the active strftime pattern for file timestamps.
func (l *Logger) TimeFormat() string {
	l.acquire()
	defer l.release()
	return l.timefmt
}

// SetTimeFormat replaces the timestamp pattern used for log file lines.
// Patterns longer than TIME_FMT_SIZE or that fail to compile are
// rejected and the stored format stays unchanged. Failures are also
// reported through the logger's own error path.
func (l *Logger) SetTimeFormat(format string) error {
	if len(format) > TIME_FMT_SIZE {
		l.Error(internalContext,
			"Could not change time format! Try again with an argument of less than %d characters.",
			TIME_FMT_SIZE)
		return ErrFormatTooLong
	}
	cvt, err := strftime.New(format)
	if err != nil {
		l.Error(internalContext, "Could not change time format! %v.", err)
		return fmt.Errorf("invalid time format %q: %w", format, err)
	}
	l.acquire()
	defer l.release()
	l.timefmt = format
	l.timecvt = cvt
	return nil
}

func normDisplayColors(colors DisplayColors) DisplayColors {
	return DisplayColors{
		Text:       normColor(colors.Text),
		Background: normColor(colors.Background),
	}
}
