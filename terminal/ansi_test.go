package terminal

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteInt(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{7, "7"},
		{42, "42"},
		{255, "255"},
		{1000, "1000"},
		{123456, "123456"},
		{-3, "0"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		w := bufio.NewWriter(&buf)
		writeInt(w, tt.n)
		w.Flush()
		assert.Equal(t, tt.want, buf.String(), "n=%d", tt.n)
	}
}

func TestWriteCursorPosIsOneIndexed(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	writeCursorPos(w, 0, 0)
	writeCursorPos(w, 9, 4)
	w.Flush()
	assert.Equal(t, "\x1b[1;1H\x1b[5;10H", buf.String())
}

func TestGlyphRune(t *testing.T) {
	assert.Equal(t, 'a', GlyphRune('a'))
	assert.Equal(t, '▓', GlyphRune(178))
	assert.Equal(t, '█', GlyphRune(219))
	assert.Equal(t, ' ', GlyphRune(0))
	assert.Equal(t, '?', GlyphRune(0x80))
}
