package msglog

import "errors"

const (
	COL_BLACK Color = iota
	COL_RED
	COL_GREEN
	COL_YELLOW
	COL_BLUE
	COL_MAGENTA
	COL_CYAN
	COL_WHITE
	COL_BRIGHT_BLACK
	COL_BRIGHT_RED
	COL_BRIGHT_GREEN
	COL_BRIGHT_YELLOW
	COL_BRIGHT_BLUE
	COL_BRIGHT_MAGENTA
	COL_BRIGHT_CYAN
	COL_BRIGHT_WHITE
	COL_DEFAULT // terminal default, no explicit color
	_COL_MAX_for_checks_only
)

const (
	MSG_DEFAULT MsgCategory = iota
	MSG_ERROR
	MSG_INFO
	MSG_SUCCESS
	MSG_WARNING
	_MSG_MAX_for_checks_only
)

const (
	TAG_CONTEXT TagCategory = iota
	TAG_ERROR
	TAG_INFO
	TAG_SUCCESS
	TAG_WARNING
	_TAG_MAX_for_checks_only
)

const (
	FILE_TRUNCATE FileMode = iota
	FILE_APPEND
	_FILE_MAX_for_checks_only
)

const (
	COLOR_AUTO ColorMode = iota
	COLOR_ALWAYS
	COLOR_NEVER
	_COLOR_MAX_for_checks_only
)

// TIME_FMT_SIZE is the maximum accepted length of a time format pattern.
const TIME_FMT_SIZE = 50

// DEFAULT_TIME_FORMAT is the strftime pattern used for log file
// timestamps until SetTimeFormat replaces it.
const DEFAULT_TIME_FORMAT = "%H:%M:%S %d-%m-%Y"

// internalContext prefixes the logger's own diagnostics, emitted through
// its own warning/error path.
const internalContext = "Logger module"

var (
	ErrFormatTooLong = errors.New("time format exceeds maximum length")
	ErrLogFileOpen   = errors.New("could not open log file")
)

// Literal tags prefixed to non-plain messages, styled with the matching
// tag colors.
var tagTexts = [_TAG_MAX_for_checks_only]string{
	TAG_CONTEXT: "", // context has no literal tag, it renders the caller string
	TAG_ERROR:   "(Error)",
	TAG_INFO:    "(Info)",
	TAG_SUCCESS: "(Success)",
	TAG_WARNING: "(Warning)",
}

// defaultPallet keeps message bodies in the terminal's default colors and
// gives every tag a bright accent over the default background.
var defaultPallet = ColorPallet{
	Messages: [_MSG_MAX_for_checks_only]DisplayColors{
		MSG_DEFAULT: {Text: COL_DEFAULT, Background: COL_DEFAULT},
		MSG_ERROR:   {Text: COL_DEFAULT, Background: COL_DEFAULT},
		MSG_INFO:    {Text: COL_DEFAULT, Background: COL_DEFAULT},
		MSG_SUCCESS: {Text: COL_DEFAULT, Background: COL_DEFAULT},
		MSG_WARNING: {Text: COL_DEFAULT, Background: COL_DEFAULT},
	},
	Tags: [_TAG_MAX_for_checks_only]DisplayColors{
		TAG_CONTEXT: {Text: COL_BRIGHT_WHITE, Background: COL_DEFAULT},
		TAG_ERROR:   {Text: COL_BRIGHT_RED, Background: COL_DEFAULT},
		TAG_INFO:    {Text: COL_BRIGHT_BLUE, Background: COL_DEFAULT},
		TAG_SUCCESS: {Text: COL_BRIGHT_GREEN, Background: COL_DEFAULT},
		TAG_WARNING: {Text: COL_BRIGHT_YELLOW, Background: COL_DEFAULT},
	},
}

func normColor(c Color) Color {
	return norm_byte(c, _COL_MAX_for_checks_only, COL_DEFAULT)
}

func normMsgCategory(c MsgCategory) MsgCategory {
	return norm_byte(c, _MSG_MAX_for_checks_only, MSG_DEFAULT)
}

func normTagCategory(c TagCategory) TagCategory {
	return norm_byte(c, _TAG_MAX_for_checks_only, TAG_CONTEXT)
}

func normFileMode(m FileMode) FileMode {
	return norm_byte(m, _FILE_MAX_for_checks_only, FILE_TRUNCATE)
}

func normColorMode(m ColorMode) ColorMode {
	return norm_byte(m, _COLOR_MAX_for_checks_only, COLOR_AUTO)
}

func norm_byte[T ~byte](val, overlimit, def T) T {
	if val < overlimit {
		return val
	} else {
		return def
	}
}
