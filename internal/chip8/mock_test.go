package chip8

import (
	"testing"

	"github.com/retroenv/chip8vm/internal/display"
	"github.com/retroenv/retrogolib/assert"
)

// mockDisplay records the display calls of the engine.
type mockDisplay struct {
	width, height int
	set           map[[2]int]bool
	toggles       int
	clears        int
	dirtyMarks    int
}

func newMockDisplay() *mockDisplay {
	return &mockDisplay{
		width:  display.Width,
		height: display.Height,
		set:    map[[2]int]bool{},
	}
}

func (d *mockDisplay) Width() int  { return d.width }
func (d *mockDisplay) Height() int { return d.height }

func (d *mockDisplay) Toggle(x, y int) bool {
	d.toggles++
	key := [2]int{x, y}
	wasSet := d.set[key]
	d.set[key] = !wasSet
	return wasSet
}

func (d *mockDisplay) Clear() {
	d.clears++
	d.set = map[[2]int]bool{}
}

func (d *mockDisplay) MarkDirty() {
	d.dirtyMarks++
}

// program converts opcodes to a big-endian program image.
func program(opcodes ...uint16) []byte {
	data := make([]byte, 0, len(opcodes)*OpcodeSize)
	for _, op := range opcodes {
		data = append(data, byte(op>>8), byte(op))
	}
	return data
}

// newTestMachine returns a machine drawing to a framebuffer with the given
// opcodes loaded at the program start.
func newTestMachine(t *testing.T, cfg Config, opcodes ...uint16) (*Machine, *display.Framebuffer) {
	t.Helper()

	fb := display.New()
	m := New(fb, cfg)
	assert.NoError(t, m.LoadProgram(program(opcodes...)))
	return m, fb
}

// stepN executes n instructions and fails the test on any error.
func stepN(t *testing.T, m *Machine, n int) {
	t.Helper()

	for range n {
		_, err := m.Step()
		assert.NoError(t, err)
	}
}
