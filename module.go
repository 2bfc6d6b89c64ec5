package msglog

/*
module.go

Module-style surface over a package-level default logger. These
passthroughs keep a plain function call shape available while all state
lives in the Default handle, so programs that want isolation construct
their own Logger instead.
*/

// Default is the pre-configured package-level logger: colored output to
// stdout when it is a terminal, default pallet and time format.
var Default = Init()

// ConfigureLogFile configures the default logger's log file.
func ConfigureLogFile(path string, mode FileMode) error {
	return Default.ConfigureLogFile(path, mode)
}

// EnableThreadSafety enables the default logger's reentrant guard.
func EnableThreadSafety() error {
	return Default.EnableThreadSafety()
}

// MsgColors returns the default logger's colors for a message category.
func MsgColors(category MsgCategory) DisplayColors {
	return Default.MsgColors(category)
}

// SetMsgColors assigns the default logger's colors for a message category.
func SetMsgColors(category MsgCategory, colors DisplayColors) {
	Default.SetMsgColors(category, colors)
}

// TagColors returns the default logger's colors for a tag category.
func TagColors(category TagCategory) DisplayColors {
	return Default.TagColors(category)
}

// SetTagColors assigns the default logger's colors for a tag category.
func SetTagColors(category TagCategory, colors DisplayColors) {
	Default.SetTagColors(category, colors)
}

// ResetLoggerColors restores the default logger's built-in pallet.
func ResetLoggerColors() {
	Default.ResetLoggerColors()
}

// TimeFormat returns the default logger's timestamp pattern.
func TimeFormat() string {
	return Default.TimeFormat()
}

// SetTimeFormat replaces the default logger's timestamp pattern.
func SetTimeFormat(format string) error {
	return Default.SetTimeFormat(format)
}

// ColorText switches the terminal font color via the default logger.
func ColorText(color Color) {
	Default.ColorText(color)
}

// ColorBackground switches the terminal background color via the default
// logger.
func ColorBackground(color Color) {
	Default.ColorBackground(color)
}

// ResetColors restores the terminal's default styling via the default
// logger.
func ResetColors() {
	Default.ResetColors()
}

// ResetTextColor restores the terminal's default font color.
func ResetTextColor() {
	Default.ResetTextColor()
}

// ResetBackgroundColor restores the terminal's default background color.
func ResetBackgroundColor() {
	Default.ResetBackgroundColor()
}

// Lock acquires the default logger's guard for caller-side critical
// sections.
func Lock() {
	Default.Lock()
}

// Unlock releases the default logger's guard.
func Unlock() {
	Default.Unlock()
}

// Message emits a plain message through the default logger.
func Message(context, format string, args ...any) {
	Default.Message(context, format, args...)
}

// Success emits a success message through the default logger.
func Success(context, format string, args ...any) {
	Default.Success(context, format, args...)
}

// Warning emits a warning message through the default logger.
func Warning(context, format string, args ...any) {
	Default.Warning(context, format, args...)
}

// Error emits an error message through the default logger.
func Error(context, format string, args ...any) {
	Default.Error(context, format, args...)
}

// Info emits an info message through the default logger.
func Info(context, format string, args ...any) {
	Default.Info(context, format, args...)
}

// Shutdown releases the default logger's file and guard.
func Shutdown() {
	Default.Shutdown()
}
