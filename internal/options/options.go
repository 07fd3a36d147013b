// Package options contains the program options.
package options

import "time"

// Host names.
const (
	HostWindow   = "window"
	HostTerminal = "terminal"
)

// Parameters contains file path options.
type Parameters struct {
	Input  string // ROM file to run
	Output string // listing file for disassembly mode, stdout if empty
}

// Flags contains behavior options.
type Flags struct {
	Host     string        // window or terminal
	System   string        // system of the input file, auto-detected if empty
	Interval time.Duration // time between two ticks
	Ticks    uint64        // stop after this many ticks, 0 runs without limit
	Scale    int           // window pixels per CHIP-8 pixel
	Disasm   bool          // write a disassembly listing instead of running
	Debug    bool
	Quiet    bool
	Trace    bool // log every executed instruction
}

// MachineFlags contains the behavior choices of the virtual machine.
type MachineFlags struct {
	StackLimit   int    // maximum call depth, 0 is unlimited
	TimerDivider int    // executed instructions per delay timer decrement
	Edge         string // sprite edge mode: clip or wrap
}

// OutputFlags contains listing formatting options.
type OutputFlags struct {
	NoHexComments bool
	NoOffsets     bool
	ZeroBytes     bool
}

// Program options of the virtual machine.
type Program struct {
	Parameters
	Flags
	MachineFlags
	OutputFlags
}
