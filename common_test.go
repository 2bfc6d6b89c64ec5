package msglog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testlogstr = "Test log АБВ こんにちは, 世界!`'é\"\\\x5A\n"

type FakeWriter struct {
	buffer []byte
}

func (f *FakeWriter) Write(b []byte) (int, error) {
	f.buffer = append(f.buffer, b...)
	return len(b), nil
}
func (f *FakeWriter) String() string { return string(f.buffer) }
func (f *FakeWriter) Clear()         { f.buffer = f.buffer[:0] }

// newPlainLogger returns a logger writing uncolored output to a fresh
// FakeWriter, which is what most tests want to assert against.
func newPlainLogger() (*Logger, *FakeWriter) {
	out := &FakeWriter{}
	return InitWithParams(out, WithColorMode(COLOR_NEVER)), out
}

func Test_norm_helpers(t *testing.T) {
	t.Run("color", func(t *testing.T) {
		for c := Color(0); c < _COL_MAX_for_checks_only; c++ {
			assert.Equal(t, c, normColor(c), "valid color must pass through")
		}
		assert.Equal(t, COL_DEFAULT, normColor(_COL_MAX_for_checks_only))
		assert.Equal(t, COL_DEFAULT, normColor(Color(255)))
	})
	t.Run("msg_category", func(t *testing.T) {
		for c := MsgCategory(0); c < _MSG_MAX_for_checks_only; c++ {
			assert.Equal(t, c, normMsgCategory(c))
		}
		assert.Equal(t, MSG_DEFAULT, normMsgCategory(MsgCategory(99)))
	})
	t.Run("tag_category", func(t *testing.T) {
		for c := TagCategory(0); c < _TAG_MAX_for_checks_only; c++ {
			assert.Equal(t, c, normTagCategory(c))
		}
		assert.Equal(t, TAG_CONTEXT, normTagCategory(TagCategory(99)))
	})
	t.Run("file_mode", func(t *testing.T) {
		assert.Equal(t, FILE_APPEND, normFileMode(FILE_APPEND))
		assert.Equal(t, FILE_TRUNCATE, normFileMode(FileMode(17)))
	})
	t.Run("color_mode", func(t *testing.T) {
		assert.Equal(t, COLOR_NEVER, normColorMode(COLOR_NEVER))
		assert.Equal(t, COLOR_AUTO, normColorMode(ColorMode(17)))
	})
}

func Test_defaultPallet_complete(t *testing.T) {
	// Every enumerated key has a defined entry: bright accents for tags,
	// terminal defaults for message bodies.
	for c := MsgCategory(0); c < _MSG_MAX_for_checks_only; c++ {
		assert.Equal(t, DisplayColors{Text: COL_DEFAULT, Background: COL_DEFAULT},
			defaultPallet.Messages[c], "message colors for category %d", c)
	}
	for c := TagCategory(0); c < _TAG_MAX_for_checks_only; c++ {
		assert.Equal(t, COL_DEFAULT, defaultPallet.Tags[c].Background,
			"tag background for category %d", c)
	}
	assert.Equal(t, COL_BRIGHT_WHITE, defaultPallet.Tags[TAG_CONTEXT].Text)
	assert.Equal(t, COL_BRIGHT_RED, defaultPallet.Tags[TAG_ERROR].Text)
	assert.Equal(t, COL_BRIGHT_BLUE, defaultPallet.Tags[TAG_INFO].Text)
	assert.Equal(t, COL_BRIGHT_GREEN, defaultPallet.Tags[TAG_SUCCESS].Text)
	assert.Equal(t, COL_BRIGHT_YELLOW, defaultPallet.Tags[TAG_WARNING].Text)
}

func Test_tagTexts(t *testing.T) {
	assert.Equal(t, "", tagTexts[TAG_CONTEXT], "context has no literal tag")
	assert.Equal(t, "(Error)", tagTexts[TAG_ERROR])
	assert.Equal(t, "(Info)", tagTexts[TAG_INFO])
	assert.Equal(t, "(Success)", tagTexts[TAG_SUCCESS])
	assert.Equal(t, "(Warning)", tagTexts[TAG_WARNING])
}
