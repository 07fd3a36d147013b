package host

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/retroenv/chip8vm/internal/chip8"
	"github.com/retroenv/chip8vm/internal/display"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

type fakeRenderer struct {
	frames []display.Frame
	err    error
}

func (r *fakeRenderer) Render(frame display.Frame) error {
	if r.err != nil {
		return r.err
	}
	r.frames = append(r.frames, frame)
	return nil
}

func program(opcodes ...uint16) []byte {
	data := make([]byte, 0, len(opcodes)*2)
	for _, op := range opcodes {
		data = append(data, byte(op>>8), byte(op))
	}
	return data
}

// spriteProgram draws the 8 pixel wide sprite stored at $208 at 10,10.
var spriteProgram = program(
	0x00E0, // cls
	0x600A, // ld V0, $0A
	0xA208, // ld I, $208
	0xD001, // drw V0, V0, $1
	0xFF00, // sprite data
)

func newTestDriver(t *testing.T, options Options) (*Driver, *fakeRenderer) {
	t.Helper()

	renderer := &fakeRenderer{}
	d := New(log.NewTestLogger(t), options, renderer)
	return d, renderer
}

func TestDriver_Load(t *testing.T) {
	d, renderer := newTestDriver(t, Options{Machine: chip8.DefaultConfig()})

	assert.NoError(t, d.Load(spriteProgram))
	assert.NotNil(t, d.Machine())
	assert.Equal(t, uint16(chip8.ProgramStart), d.Machine().PC())
	assert.Len(t, renderer.frames, 1)
	assert.False(t, d.Display().Dirty())
}

func TestDriver_LoadInvalidKeepsMachine(t *testing.T) {
	d, _ := newTestDriver(t, Options{Machine: chip8.DefaultConfig()})
	assert.NoError(t, d.Load(spriteProgram))
	m := d.Machine()

	err := d.Load(make([]byte, chip8.MaxProgramSize+1))
	assert.True(t, errors.Is(err, chip8.ErrProgramTooLarge))
	assert.Equal(t, m, d.Machine())
}

func TestDriver_TickRendersDirtyFrames(t *testing.T) {
	d, renderer := newTestDriver(t, Options{Machine: chip8.DefaultConfig(), Trace: true})
	assert.NoError(t, d.Load(spriteProgram))

	assert.NoError(t, d.Tick()) // cls
	assert.Len(t, renderer.frames, 2)

	assert.NoError(t, d.Tick())
	assert.NoError(t, d.Tick())
	assert.Len(t, renderer.frames, 2)

	assert.NoError(t, d.Tick()) // drw
	assert.Len(t, renderer.frames, 3)
	assert.Equal(t, uint64(4), d.Ticks())

	frame := renderer.frames[2]
	for x := range display.Width {
		assert.Equal(t, x >= 10 && x <= 17, frame[10][x])
	}
	assert.False(t, d.Display().Dirty())
}

func TestDriver_TickWithoutProgram(t *testing.T) {
	d, _ := newTestDriver(t, Options{})

	assert.ErrorContains(t, d.Tick(), "no program loaded")
	assert.ErrorContains(t, d.Reload(), "no program loaded")
}

func TestDriver_TickError(t *testing.T) {
	d, _ := newTestDriver(t, Options{Machine: chip8.DefaultConfig()})
	assert.NoError(t, d.Load(program(0x00EE)))

	err := d.Tick()
	assert.True(t, errors.Is(err, chip8.ErrStackUnderflow))
	assert.ErrorContains(t, err, "executing instruction at $0200")
}

func TestDriver_RenderError(t *testing.T) {
	d, renderer := newTestDriver(t, Options{Machine: chip8.DefaultConfig()})
	assert.NoError(t, d.Load(spriteProgram))

	renderer.err = errors.New("closed")
	err := d.Tick()
	assert.ErrorContains(t, err, "rendering frame")
}

func TestDriver_UnsupportedOpcodeIsReportedOnce(t *testing.T) {
	d, _ := newTestDriver(t, Options{Machine: chip8.DefaultConfig()})
	assert.NoError(t, d.Load(program(0xF00A, 0xF00A, 0x1200)))

	for range 6 {
		assert.NoError(t, d.Tick())
	}
	assert.True(t, d.reported.Contains(0xF00A))
	assert.Len(t, d.reported, 1)
}

func TestDriver_Reload(t *testing.T) {
	d, _ := newTestDriver(t, Options{Machine: chip8.DefaultConfig()})
	assert.NoError(t, d.Load(spriteProgram))
	for range 4 {
		assert.NoError(t, d.Tick())
	}
	assert.Equal(t, 8, d.Display().SetPixels())

	assert.NoError(t, d.Reload())
	assert.Equal(t, 0, d.Display().SetPixels())
	assert.Equal(t, uint16(chip8.ProgramStart), d.Machine().PC())
	assert.Equal(t, uint64(0), d.Ticks())
}

func TestDriver_RunTickLimit(t *testing.T) {
	d, _ := newTestDriver(t, Options{Machine: chip8.DefaultConfig()})
	assert.NoError(t, d.Load(program(0x1200)))

	err := d.Run(context.Background(), time.Microsecond, 5)
	assert.NoError(t, err)
	assert.Equal(t, uint64(5), d.Ticks())
}

func TestDriver_RunCancelled(t *testing.T) {
	d, _ := newTestDriver(t, Options{Machine: chip8.DefaultConfig()})
	assert.NoError(t, d.Load(program(0x1200)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.Run(ctx, time.Hour, 0)
	assert.True(t, errors.Is(err, context.Canceled))
}
