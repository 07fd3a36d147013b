package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/retroenv/chip8vm/internal/display"
	"github.com/retroenv/retrogolib/assert"
)

func TestRenderer_Render(t *testing.T) {
	var buf bytes.Buffer
	r, err := New(&buf, -1)
	assert.NoError(t, err)

	var frame display.Frame
	frame[0][0] = true
	frame[1][1] = true
	frame[2][2] = true
	frame[3][2] = true

	assert.NoError(t, r.Render(frame))

	lines := strings.Split(buf.String(), "\n")
	assert.Len(t, lines, display.Height/2+2)
	assert.True(t, strings.HasPrefix(lines[0], "▀▄ "))
	assert.True(t, strings.HasPrefix(lines[1], "  █ "))
	assert.Equal(t, strings.Repeat(" ", display.Width), lines[2])
	assert.Empty(t, lines[len(lines)-2])
	assert.False(t, strings.Contains(buf.String(), cursorHome))
}

func TestRenderer_Close(t *testing.T) {
	var buf bytes.Buffer
	r, err := New(&buf, -1)
	assert.NoError(t, err)

	assert.NoError(t, r.Close())
	assert.Equal(t, 0, buf.Len())
}
