package msglog

import (
	"io"
	"os"

	"github.com/lestrrat-go/strftime"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Option mutates a Logger during construction.
type Option func(*Logger)

// Init returns a logger with the built-in defaults: colored output to
// stdout when it is a terminal, default pallet, default time format, no
// log file and no thread safety.
func Init() *Logger {
	return InitWithParams(os.Stdout)
}

// InitWithParams returns a logger writing terminal output to term,
// adjusted by the given options.
func InitWithParams(term io.Writer, opts ...Option) *Logger {
	l := new(Logger)
	l.pallet = defaultPallet
	l.timefmt = DEFAULT_TIME_FORMAT
	l.timecvt, _ = strftime.New(DEFAULT_TIME_FORMAT)
	l.SetOutput(term)
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	return l
}

// WithColorMode forces colored output on or off instead of autodetecting
// from the terminal writer.
func WithColorMode(mode ColorMode) Option {
	return func(l *Logger) {
		l.colmode = normColorMode(mode)
		l.resolveColored()
	}
}

// WithTimeFormat sets the initial log file timestamp pattern. Invalid or
// overlong patterns are ignored and the default stays in place.
func WithTimeFormat(format string) Option {
	return func(l *Logger) {
		_ = l.SetTimeFormat(format)
	}
}

// WithPallet replaces the whole color pallet in one step.
func WithPallet(pallet ColorPallet) Option {
	return func(l *Logger) {
		for i := range pallet.Messages {
			pallet.Messages[i] = normDisplayColors(pallet.Messages[i])
		}
		for i := range pallet.Tags {
			pallet.Tags[i] = normDisplayColors(pallet.Tags[i])
		}
		l.pallet = pallet
	}
}

// SetOutput redirects terminal output and re-resolves color support for
// the new writer. A nil writer discards terminal output.
func (l *Logger) SetOutput(term io.Writer) *Logger {
	l.acquire()
	defer l.release()
	if term != nil {
		l.term = term
	} else {
		l.term = io.Discard
	}
	l.resolveColored()
	return l
}

// Shutdown closes the log file and disables the thread-safety guard.
// Safe to call repeatedly. Emitting after Shutdown still writes to the
// terminal but silently loses file logging and locking.
func (l *Logger) Shutdown() {
	l.acquire()
	l.closeSink()
	l.release()
	l.safety.Store(false)
}

// resolveColored decides whether styled output is emitted: an explicit
// mode wins, otherwise the writer must be a terminal and the environment
// must not disable color (NO_COLOR, TERM=dumb).
func (l *Logger) resolveColored() {
	switch l.colmode {
	case COLOR_ALWAYS:
		l.colored = true
	case COLOR_NEVER:
		l.colored = false
	default:
		l.colored = writerIsTerminal(l.term) && termenv.EnvColorProfile() != termenv.Ascii
	}
}

func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
