// Package host drives a CHIP-8 machine at a fixed tick rate and forwards
// framebuffer updates to a renderer.
package host

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/retroenv/chip8vm/internal/chip8"
	"github.com/retroenv/chip8vm/internal/display"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// DefaultInterval is the default time between two ticks.
const DefaultInterval = 3 * time.Millisecond

var errNoProgram = errors.New("no program loaded")

// Renderer presents a framebuffer snapshot.
type Renderer interface {
	Render(frame display.Frame) error
}

// Options of the driver.
type Options struct {
	Machine chip8.Config
	Trace   bool // log every executed instruction at debug level
}

// Driver owns a machine and its framebuffer and executes one instruction
// per tick. It is not safe for concurrent use.
type Driver struct {
	logger   *log.Logger
	options  Options
	renderer Renderer

	display *display.Framebuffer
	machine *chip8.Machine
	program []byte

	ticks    uint64
	reported set.Set[uint16] // unsupported opcodes that were logged already
}

// New returns a new driver, a program has to be loaded before running it.
func New(logger *log.Logger, options Options, renderer Renderer) *Driver {
	return &Driver{
		logger:   logger,
		options:  options,
		renderer: renderer,
		reported: set.New[uint16](),
	}
}

// Load replaces the current machine with a fresh machine running the given
// program. The previous machine keeps running if the program is invalid.
func (d *Driver) Load(program []byte) error {
	fb := display.New()
	m := chip8.New(fb, d.options.Machine)
	if err := m.LoadProgram(program); err != nil {
		return fmt.Errorf("loading program: %w", err)
	}

	d.display = fb
	d.machine = m
	d.program = program
	d.ticks = 0
	d.reported = set.New[uint16]()

	d.logger.Debug("Program loaded",
		log.Int("size", len(program)),
		log.Stringer("edge_mode", d.options.Machine.Edge))

	// present the cleared screen of the new program
	fb.MarkDirty()
	return d.present()
}

// Reload restarts the currently loaded program.
func (d *Driver) Reload() error {
	if d.program == nil {
		return errNoProgram
	}
	return d.Load(d.program)
}

// Tick executes a single instruction and renders the framebuffer if the
// instruction changed it.
func (d *Driver) Tick() error {
	if d.machine == nil {
		return errNoProgram
	}

	address := d.machine.PC()
	ins, err := d.machine.Step()
	if err != nil {
		return fmt.Errorf("executing instruction at $%04X: %w", address, err)
	}
	d.ticks++

	if d.options.Trace {
		d.logger.Debug("Executed instruction",
			log.Hex("address", address),
			log.Hex("opcode", ins.Opcode),
			log.String("instruction", ins.String()),
			log.Uint16("index", d.machine.Index()),
			log.Uint8("delay_timer", d.machine.DelayTimer()))
	}

	if !ins.Supported() && !d.reported.Contains(ins.Opcode) {
		d.reported.Add(ins.Opcode)
		d.logger.Warn("Unsupported opcode executed as no-op",
			log.Hex("address", address),
			log.Hex("opcode", ins.Opcode),
			log.String("instruction", ins.String()))
	}

	return d.present()
}

// Run executes ticks at the given interval until the context is cancelled,
// an error occurs or maxTicks ticks were executed. A maxTicks value of 0
// runs without limit.
func (d *Driver) Run(ctx context.Context, interval time.Duration, maxTicks uint64) error {
	if interval <= 0 {
		interval = DefaultInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for maxTicks == 0 || d.ticks < maxTicks {
		select {
		case <-ctx.Done():
			return fmt.Errorf("running program: %w", ctx.Err())
		case <-ticker.C:
		}

		if err := d.Tick(); err != nil {
			return err
		}
	}

	d.logger.Debug("Tick limit reached", log.Int("ticks", int(d.ticks)))
	return nil
}

// Ticks returns the number of ticks executed since the program was loaded.
func (d *Driver) Ticks() uint64 {
	return d.ticks
}

// Machine returns the current machine, nil if no program is loaded.
func (d *Driver) Machine() *chip8.Machine {
	return d.machine
}

// Display returns the framebuffer of the current machine.
func (d *Driver) Display() *display.Framebuffer {
	return d.display
}

func (d *Driver) present() error {
	if !d.display.Dirty() {
		return nil
	}
	if err := d.renderer.Render(d.display.Snapshot()); err != nil {
		return fmt.Errorf("rendering frame: %w", err)
	}
	d.display.ClearDirty()
	return nil
}
