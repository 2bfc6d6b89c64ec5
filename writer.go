package msglog

/*********************************************************************************
io.Writer interface implementation

The Logger implements io.Writer so it can be used with fmt.Fprintf and
other formatting helpers. Bytes written this way are emitted as plain
messages without a context prefix.

This allows patterns like:
  fmt.Fprintf(logger, "disk low: %d%%", percent)
The write goes through the same guarded emit path as Message, so it is
safe to mix with the category functions when thread safety is enabled.
*/

// Write implements io.Writer. It forwards the provided bytes as a plain
// message. On success it returns n=len(p) and err==nil. A nil payload is
// treated as a zero-length write with no error.
func (l *Logger) Write(p []byte) (n int, err error) {
	if p == nil {
		return 0, nil
	}
	l.Message("", "%s", p)
	return len(p), nil
}
