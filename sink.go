package msglog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"
)

/*
sink.go

The log sink manager: owns the optional log file handle. Reconfiguring
replaces the previous file (closing it first), teardown closes it for
good. Lines written to the file carry a timestamp and no color codes.
*/

// ConfigureLogFile opens path as the log file, closing any previously
// configured file first. FILE_APPEND appends to an existing file and
// falls back to truncate-create with a warning when the file does not
// exist. FILE_TRUNCATE always opens fresh. On failure the error is
// reported through the logger's own error path and returned; the sink is
// left unconfigured.
func (l *Logger) ConfigureLogFile(path string, mode FileMode) error {
	l.acquire()
	defer l.release()
	l.closeSink()
	mode = normFileMode(mode)

	var file *os.File
	var err error
	switch mode {
	case FILE_APPEND:
		file, err = os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0o644)
		if errors.Is(err, fs.ErrNotExist) {
			l.Warning(internalContext, "Could not find log file! Defaulting to write mode!")
			file, err = os.Create(path)
		}
	case FILE_TRUNCATE:
		file, err = os.Create(path)
	}
	if err != nil {
		l.Error(internalContext, "Could not create log file! Please check your system.")
		return fmt.Errorf("%w %q: %v", ErrLogFileOpen, path, err)
	}
	l.sink = logSink{file: file, mode: mode}
	return nil
}

// LogFileConfigured reports whether a log file is currently open.
func (l *Logger) LogFileConfigured() bool {
	l.acquire()
	defer l.release()
	return l.sink.file != nil
}

// writeLogLine appends one uncolored, timestamped line to the log file.
// No-op without a configured sink. Called with the guard already held by
// the emit path; file write errors are not checked (write-and-forget,
// same as the terminal sink).
func (l *Logger) writeLogLine(context, tag, body string) {
	if l.sink.file == nil {
		return
	}
	var b strings.Builder
	b.Grow(len(body) + 64)
	b.WriteByte('[')
	b.WriteString(l.timecvt.FormatString(time.Now()))
	b.WriteString("] ")
	if context != "" {
		b.WriteString(context)
		b.WriteString(": ")
	}
	if tag != "" {
		b.WriteString(tag)
		b.WriteByte(' ')
	}
	b.WriteString(body)
	if !strings.HasSuffix(body, "\n") {
		b.WriteByte('\n')
	}
	_, _ = l.sink.file.WriteString(b.String())
}

// closeSink closes and clears the log file handle. Caller holds the
// guard when thread safety is enabled.
func (l *Logger) closeSink() {
	if l.sink.file != nil {
		_ = l.sink.file.Close()
		l.sink = logSink{}
	}
}
