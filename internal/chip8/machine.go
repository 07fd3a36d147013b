package chip8

import (
	"fmt"
)

// CHIP-8 memory layout constants.
const (
	// MemorySize is the size of the CHIP-8 address space in bytes.
	MemorySize = 4096

	// MaxAddress is the highest valid address in CHIP-8 memory space.
	MaxAddress = MemorySize - 1

	// ProgramStart is the memory address where programs are loaded and start execution.
	ProgramStart = 0x200

	// MaxProgramSize is the largest program image that fits into memory.
	MaxProgramSize = MemorySize - ProgramStart

	// RegisterCount is the number of general purpose registers V0-VF.
	RegisterCount = 16

	// FlagRegister is the index of VF, the carry, borrow and collision flag.
	FlagRegister = 0xF

	// OpcodeSize is the size of an instruction in bytes.
	OpcodeSize = 2
)

// Display is the pixel surface the engine draws sprites on.
type Display interface {
	// Width returns the number of pixel columns.
	Width() int
	// Height returns the number of pixel rows.
	Height() int
	// Toggle flips a pixel and returns whether it was set before.
	Toggle(x, y int) bool
	// Clear resets all pixels and marks the display as changed.
	Clear()
	// MarkDirty marks the display as changed.
	MarkDirty()
}

// Machine is a CHIP-8 virtual machine. All state is owned by the instance,
// it is not safe for concurrent use.
type Machine struct {
	cfg     Config
	display Display

	memory    [MemorySize]byte
	registers [RegisterCount]byte
	index     uint16
	pc        uint16
	stack     []uint16
	opcode    uint16

	delayTimer byte
	cycles     int // executes since the last delay timer decrement
}

// New returns a new machine that draws to the given display.
func New(display Display, cfg Config) *Machine {
	m := &Machine{
		cfg:     cfg.withDefaults(),
		display: display,
	}
	m.reset()
	return m
}

// LoadProgram resets all machine state and copies the program image into
// memory starting at ProgramStart. The display is not touched.
func (m *Machine) LoadProgram(program []byte) error {
	if len(program) > MaxProgramSize {
		return fmt.Errorf("program size %d exceeds %d bytes: %w", len(program), MaxProgramSize, ErrProgramTooLarge)
	}

	m.reset()
	copy(m.memory[ProgramStart:], program)
	return nil
}

// reset sets every field except the configuration and display to its power
// on value.
func (m *Machine) reset() {
	*m = Machine{
		cfg:     m.cfg,
		display: m.display,
		pc:      ProgramStart,
	}
}

// Fetch reads the opcode at the program counter, stores it as current opcode
// and advances the program counter by 2.
func (m *Machine) Fetch() (uint16, error) {
	if int(m.pc) > MemorySize-OpcodeSize {
		return 0, &AddressError{Op: "fetch", Address: int(m.pc)}
	}

	m.opcode = uint16(m.memory[m.pc])<<8 | uint16(m.memory[m.pc+1])
	m.pc += OpcodeSize
	return m.opcode, nil
}

// Step fetches and executes a single instruction.
func (m *Machine) Step() (Instruction, error) {
	if _, err := m.Fetch(); err != nil {
		return Instruction{}, err
	}
	return m.Execute()
}

// TickTimer counts an executed instruction and decrements the delay timer
// every TimerDivider calls. The timer does not go below 0.
func (m *Machine) TickTimer() {
	m.cycles++
	if m.cycles < m.cfg.TimerDivider {
		return
	}
	m.cycles = 0
	if m.delayTimer > 0 {
		m.delayTimer--
	}
}

// PC returns the program counter.
func (m *Machine) PC() uint16 {
	return m.pc
}

// Index returns the index register I.
func (m *Machine) Index() uint16 {
	return m.index
}

// Opcode returns the most recently fetched opcode.
func (m *Machine) Opcode() uint16 {
	return m.opcode
}

// Register returns the value of register V0-VF. The index is masked to 4 bits.
func (m *Machine) Register(i uint8) byte {
	return m.registers[i&0xF]
}

// Registers returns a copy of all general purpose registers.
func (m *Machine) Registers() [RegisterCount]byte {
	return m.registers
}

// DelayTimer returns the current delay timer value.
func (m *Machine) DelayTimer() byte {
	return m.delayTimer
}

// StackDepth returns the number of return addresses on the call stack.
func (m *Machine) StackDepth() int {
	return len(m.stack)
}

// ReadMemory returns the byte at the given address.
func (m *Machine) ReadMemory(address uint16) (byte, error) {
	if int(address) > MaxAddress {
		return 0, &AddressError{Op: "read", Address: int(address)}
	}
	return m.memory[address], nil
}

// Config returns the effective machine configuration.
func (m *Machine) Config() Config {
	return m.cfg
}
