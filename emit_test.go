package msglog

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_emit_plain_output(t *testing.T) {
	tests := []struct {
		name string
		emit func(l *Logger)
		want string
	}{
		{"message_no_context", func(l *Logger) { l.Message("", "hello") }, "hello\n"},
		{"message_with_context", func(l *Logger) { l.Message("Main", "hello") }, "Main: hello\n"},
		{"success", func(l *Logger) { l.Success("Main", "done") }, "Main: (Success) done\n"},
		{"warning", func(l *Logger) { l.Warning("", "careful") }, "(Warning) careful\n"},
		{"error", func(l *Logger) { l.Error("Job", "broke") }, "Job: (Error) broke\n"},
		{"info", func(l *Logger) { l.Info("", "fyi") }, "(Info) fyi\n"},
		{"formatting", func(l *Logger) { l.Info("", "value=%d", 7) }, "(Info) value=7\n"},
		{"keeps_newline", func(l *Logger) { l.Message("", "done\n") }, "done\n"},
		{"multibyte_payload", func(l *Logger) { l.Message("", "%s", testlogstr) }, testlogstr},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, out := newPlainLogger()
			tt.emit(l)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func Test_emit_colored_output(t *testing.T) {
	out := &FakeWriter{}
	l := InitWithParams(out, WithColorMode(COLOR_ALWAYS))
	l.Success("Init", "ok")

	want := "" +
		// context styled with the context tag colors (bright white on default)
		"\x1B[1;38;5;15m" + "\x1B[49m" + "\x1B[K" + "Init: " +
		// tag styled with the success tag colors (bright green on default)
		"\x1B[1;38;5;10m" + "\x1B[49m" + "\x1B[K" + "(Success) " +
		// body styled with the default message colors
		"\x1B[22;39m" + "\x1B[49m" + "\x1B[K" + "ok" +
		// reset and clear trailing colored background, then line break
		"\x1B[0m" + "\x1B[K" + "\n"
	assert.Equal(t, want, out.String())
}

func Test_emit_colored_custom_pallet(t *testing.T) {
	out := &FakeWriter{}
	l := InitWithParams(out, WithColorMode(COLOR_ALWAYS))
	l.SetMsgColors(MSG_WARNING, DisplayColors{Text: COL_BLACK, Background: COL_YELLOW})
	l.Warning("", "careful")

	assert.Contains(t, out.String(), "\x1B[22;38;5;0m\x1B[48;5;3m\x1B[Kcareful",
		"body styled with the assigned warning colors")
}

func Test_emit_no_color_on_plain_writer(t *testing.T) {
	out := &FakeWriter{}
	l := InitWithParams(out) // COLOR_AUTO, FakeWriter is not a terminal
	l.Error("ctx", "plain")
	assert.NotContains(t, out.String(), "\x1B[", "no escape codes for non-terminal writers")
}

func Test_emit_dual_sink_consistency(t *testing.T) {
	l, out := newPlainLogger()
	path := filepath.Join(t.TempDir(), "t.log")
	require.NoError(t, l.ConfigureLogFile(path, FILE_TRUNCATE))

	l.Message("ctx", "value=%d", 7)
	l.Shutdown()

	assert.Contains(t, out.String(), "value=7", "terminal body")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "value=7", "file body rendered from the same arguments")
	// The file line is the terminal line plus a timestamp prefix.
	assert.True(t, strings.HasSuffix(string(data), "ctx: value=7\n"), "got %q", string(data))
}

func Test_emit_concrete_scenario(t *testing.T) {
	// configure_log_file("t.log", Truncate); success("Init", "Started at %d", 100); shutdown()
	l, _ := newPlainLogger()
	path := filepath.Join(t.TempDir(), "t.log")
	require.NoError(t, l.ConfigureLogFile(path, FILE_TRUNCATE))
	l.Success("Init", "Started at %d", 100)
	l.Shutdown()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	// Default pattern %H:%M:%S %d-%m-%Y.
	re := regexp.MustCompile(`^\[\d{2}:\d{2}:\d{2} \d{2}-\d{2}-\d{4}\] Init: \(Success\) Started at 100\n$`)
	assert.Regexp(t, re, string(data))
}

func Test_emit_file_honors_time_format(t *testing.T) {
	l, _ := newPlainLogger()
	path := filepath.Join(t.TempDir(), "t.log")
	require.NoError(t, l.SetTimeFormat("%Y"))
	require.NoError(t, l.ConfigureLogFile(path, FILE_TRUNCATE))
	l.Info("", "dated")
	l.Shutdown()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Regexp(t, `^\[\d{4}\] \(Info\) dated\n$`, string(data))
}

func Test_styling_passthroughs(t *testing.T) {
	out := &FakeWriter{}
	l := InitWithParams(out, WithColorMode(COLOR_ALWAYS))

	l.ColorText(COL_BLUE)
	assert.Equal(t, "\x1B[22;38;5;4m", out.String())
	out.Clear()

	l.ColorBackground(COL_BRIGHT_GREEN)
	assert.Equal(t, "\x1B[48;5;10m\x1B[K", out.String())
	out.Clear()

	l.ResetColors()
	assert.Equal(t, "\x1B[0m\x1B[K", out.String())
	out.Clear()

	l.ResetTextColor()
	assert.Equal(t, "\x1B[22;39m", out.String())
	out.Clear()

	l.ResetBackgroundColor()
	assert.Equal(t, "\x1B[49m\x1B[K", out.String())
}

func Test_styling_passthroughs_no_color(t *testing.T) {
	l, out := newPlainLogger()
	l.ColorText(COL_BLUE)
	l.ColorBackground(COL_RED)
	l.ResetColors()
	assert.Empty(t, out.String(), "styling calls are silent when color is off")
}

func Test_SetOutput_redirect(t *testing.T) {
	l, first := newPlainLogger()
	l.Message("", "one")
	second := &FakeWriter{}
	l.SetOutput(second)
	l.Message("", "two")
	assert.Equal(t, "one\n", first.String())
	assert.Equal(t, "two\n", second.String())

	l.SetOutput(nil)
	assert.NotPanics(t, func() { l.Message("", "dropped") }, "nil writer discards output")
	assert.Equal(t, "two\n", second.String())
}
