// Package msglog renders categorized messages (plain, success, warning,
// error, info) to the terminal with configurable ANSI colors and,
// optionally, to a timestamped log file. Thread safety is an explicit
// opt-in via a reentrant guard.
package msglog

import (
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/lestrrat-go/strftime"
)

/*
types.go

Defines the core data structures used by the message logger:
 - basetype and a small set of typed aliases for clarity
 - DisplayColors / ColorPallet: the configurable color assignments
 - logSink: the optional log file handle with its open mode
 - recursiveMutex: the reentrant guard serializing shared state
 - Logger: the central state object callers thread through calls.
*/

// basetype is the underlying byte-sized representation used for enums.
type basetype byte

// Strongly-typed aliases over basetype for clarity and type-safety.
type Color basetype
type MsgCategory basetype
type TagCategory basetype
type FileMode basetype
type ColorMode basetype

// OutType is an alias for io.Writer to represent the terminal sink.
type OutType io.Writer

// DisplayColors holds the text and background colors used to style one
// run of terminal output. Value type; copied, never aliased.
type DisplayColors struct {
	Text       Color
	Background Color
}

// ColorPallet assigns DisplayColors to every message and tag category.
// Fixed arrays keyed by category, so every enumerated key always has a
// defined entry and a plain assignment copies the whole pallet.
type ColorPallet struct {
	Messages [_MSG_MAX_for_checks_only]DisplayColors
	Tags     [_TAG_MAX_for_checks_only]DisplayColors
}

// logSink owns the optional log file. At most one file is open at a time;
// reconfiguring closes any previously open file first.
type logSink struct {
	file *os.File
	mode FileMode
}

// recursiveMutex is a reentrant lock: the owning goroutine may acquire it
// multiple times and must release it the same number of times before
// another goroutine can proceed. The owner field holds the goroutine id
// (zero means unowned), depth is touched only while owning the lock.
type recursiveMutex struct {
	mu    sync.Mutex
	owner atomic.Uint64
	depth int
}

// Logger is the central state holder: the color pallet, the timestamp
// format, the terminal writer, the optional log sink and the optional
// reentrant guard. The guard is always present; `safety` decides whether
// lock/unlock actually do anything.
type Logger struct {
	guard   recursiveMutex
	safety  atomic.Bool
	pallet  ColorPallet
	timefmt string
	timecvt *strftime.Strftime // compiled from timefmt, never nil
	sink    logSink
	term    OutType
	colmode ColorMode
	colored bool // resolved from colmode and the terminal writer
}
