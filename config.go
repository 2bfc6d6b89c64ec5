package msglog

import (
	"fmt"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

/*
config.go

Optional TOML configuration for the logger: pallet colors by name, the
timestamp pattern and the log file. Everything is optional; absent keys
leave the current settings untouched.

	time_format = "%H:%M:%S"

	[log_file]
	path = "app.log"
	mode = "append"        # or "truncate"

	[colors.messages]
	success = { text = "green", background = "default" }

	[colors.tags]
	error = { text = "bright_red" }
*/

// Config captures the fields the logger accepts from a TOML file.
type Config struct {
	TimeFormat string       `toml:"time_format"`
	LogFile    LogFileDef   `toml:"log_file"`
	Colors     ColorSection `toml:"colors"`
}

// LogFileDef names the log file target and its open mode.
type LogFileDef struct {
	Path string `toml:"path"`
	Mode string `toml:"mode"`
}

// ColorSection maps category names to color pairs for messages and tags.
type ColorSection struct {
	Messages map[string]ColorDef `toml:"messages"`
	Tags     map[string]ColorDef `toml:"tags"`
}

// ColorDef is one text/background color pair in a config file. Empty
// fields mean the terminal default.
type ColorDef struct {
	Text       string `toml:"text"`
	Background string `toml:"background"`
}

var colorNames = map[string]Color{
	"black":          COL_BLACK,
	"red":            COL_RED,
	"green":          COL_GREEN,
	"yellow":         COL_YELLOW,
	"blue":           COL_BLUE,
	"magenta":        COL_MAGENTA,
	"cyan":           COL_CYAN,
	"white":          COL_WHITE,
	"bright_black":   COL_BRIGHT_BLACK,
	"bright_red":     COL_BRIGHT_RED,
	"bright_green":   COL_BRIGHT_GREEN,
	"bright_yellow":  COL_BRIGHT_YELLOW,
	"bright_blue":    COL_BRIGHT_BLUE,
	"bright_magenta": COL_BRIGHT_MAGENTA,
	"bright_cyan":    COL_BRIGHT_CYAN,
	"bright_white":   COL_BRIGHT_WHITE,
	"default":        COL_DEFAULT,
}

var msgCategoryNames = map[string]MsgCategory{
	"default": MSG_DEFAULT,
	"error":   MSG_ERROR,
	"info":    MSG_INFO,
	"success": MSG_SUCCESS,
	"warning": MSG_WARNING,
}

var tagCategoryNames = map[string]TagCategory{
	"context": TAG_CONTEXT,
	"error":   TAG_ERROR,
	"info":    TAG_INFO,
	"success": TAG_SUCCESS,
	"warning": TAG_WARNING,
}

// LoadConfig parses a logger configuration from a TOML file.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// ConfigureFromFile loads a TOML file and applies it to the logger.
func (l *Logger) ConfigureFromFile(path string) error {
	cfg, err := LoadConfig(path)
	if err != nil {
		return err
	}
	return l.ApplyConfig(cfg)
}

// ApplyConfig applies a parsed configuration: colors first, then the
// time format, then the log file. All color entries are validated before
// any of them is assigned, so a bad name leaves the pallet untouched.
// The whole application runs under the guard when thread safety is
// enabled.
func (l *Logger) ApplyConfig(cfg Config) error {
	msgColors := make(map[MsgCategory]DisplayColors, len(cfg.Colors.Messages))
	for name, def := range cfg.Colors.Messages {
		category, ok := msgCategoryNames[strings.ToLower(name)]
		if !ok {
			return fmt.Errorf("unknown message category %q", name)
		}
		colors, err := def.displayColors()
		if err != nil {
			return err
		}
		msgColors[category] = colors
	}
	tagColors := make(map[TagCategory]DisplayColors, len(cfg.Colors.Tags))
	for name, def := range cfg.Colors.Tags {
		category, ok := tagCategoryNames[strings.ToLower(name)]
		if !ok {
			return fmt.Errorf("unknown tag category %q", name)
		}
		colors, err := def.displayColors()
		if err != nil {
			return err
		}
		tagColors[category] = colors
	}
	l.acquire()
	defer l.release()
	for category, colors := range msgColors {
		l.SetMsgColors(category, colors)
	}
	for category, colors := range tagColors {
		l.SetTagColors(category, colors)
	}
	if cfg.TimeFormat != "" {
		if err := l.SetTimeFormat(cfg.TimeFormat); err != nil {
			return err
		}
	}
	if cfg.LogFile.Path != "" {
		mode, err := ParseFileMode(cfg.LogFile.Mode)
		if err != nil {
			return err
		}
		if err := l.ConfigureLogFile(cfg.LogFile.Path, mode); err != nil {
			return err
		}
	}
	return nil
}

// ParseColor resolves a color name from a config file ("green",
// "bright_red", "default", ...). An empty name means the terminal
// default.
func ParseColor(name string) (Color, error) {
	if name == "" {
		return COL_DEFAULT, nil
	}
	if c, ok := colorNames[strings.ToLower(name)]; ok {
		return c, nil
	}
	return COL_DEFAULT, fmt.Errorf("unknown color %q", name)
}

// ParseFileMode resolves a log file mode name. An empty name means
// truncate.
func ParseFileMode(name string) (FileMode, error) {
	switch strings.ToLower(name) {
	case "", "truncate", "write":
		return FILE_TRUNCATE, nil
	case "append":
		return FILE_APPEND, nil
	default:
		return FILE_TRUNCATE, fmt.Errorf("unknown log file mode %q", name)
	}
}

func (d ColorDef) displayColors() (DisplayColors, error) {
	text, err := ParseColor(d.Text)
	if err != nil {
		return DisplayColors{}, err
	}
	background, err := ParseColor(d.Background)
	if err != nil {
		return DisplayColors{}, err
	}
	return DisplayColors{Text: text, Background: background}, nil
}
