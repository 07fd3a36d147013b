package chip8

import (
	"fmt"

	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Kind identifies the operation of a decoded instruction.
type Kind int

// Instruction kinds supported by the engine.
const (
	KindUnknown Kind = iota
	KindSys          // 0nnn, native routine call, executed as no-op
	KindClear        // 00E0
	KindReturn       // 00EE
	KindJump         // 1nnn
	KindCall         // 2nnn
	KindSkipEqualByte
	KindSkipNotEqualByte
	KindSkipEqualRegister
	KindLoadByte
	KindAddByte
	KindMove // 8xy0
	KindOr
	KindAnd
	KindXor
	KindAddRegister
	KindSub
	KindShiftRight
	KindSubReverse
	KindShiftLeft
	KindSkipNotEqualRegister
	KindLoadIndex
	KindDraw
)

var kindNames = map[Kind]string{
	KindUnknown:              "unknown",
	KindSys:                  "sys",
	KindClear:                "clear",
	KindReturn:               "return",
	KindJump:                 "jump",
	KindCall:                 "call",
	KindSkipEqualByte:        "skip_equal_byte",
	KindSkipNotEqualByte:     "skip_not_equal_byte",
	KindSkipEqualRegister:    "skip_equal_register",
	KindLoadByte:             "load_byte",
	KindAddByte:              "add_byte",
	KindMove:                 "move",
	KindOr:                   "or",
	KindAnd:                  "and",
	KindXor:                  "xor",
	KindAddRegister:          "add_register",
	KindSub:                  "sub",
	KindShiftRight:           "shift_right",
	KindSubReverse:           "sub_reverse",
	KindShiftLeft:            "shift_left",
	KindSkipNotEqualRegister: "skip_not_equal_register",
	KindLoadIndex:            "load_index",
	KindDraw:                 "draw",
}

// String returns the name of the kind.
func (k Kind) String() string {
	name, ok := kindNames[k]
	if !ok {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return name
}

// mnemonics maps the supported kinds to the CHIP-8 instruction definitions.
var mnemonics = map[Kind]*chip8cpu.Instruction{
	KindClear:                chip8cpu.ClsInst,
	KindReturn:               chip8cpu.RetInst,
	KindJump:                 chip8cpu.JpInst,
	KindCall:                 chip8cpu.CallInst,
	KindSkipEqualByte:        chip8cpu.SeInst,
	KindSkipNotEqualByte:     chip8cpu.SneInst,
	KindSkipEqualRegister:    chip8cpu.SeInst,
	KindLoadByte:             chip8cpu.LdInst,
	KindAddByte:              chip8cpu.AddInst,
	KindMove:                 chip8cpu.LdInst,
	KindOr:                   chip8cpu.OrInst,
	KindAnd:                  chip8cpu.AndInst,
	KindXor:                  chip8cpu.XorInst,
	KindAddRegister:          chip8cpu.AddInst,
	KindSub:                  chip8cpu.SubInst,
	KindShiftRight:           chip8cpu.ShrInst,
	KindSubReverse:           chip8cpu.SubnInst,
	KindShiftLeft:            chip8cpu.ShlInst,
	KindSkipNotEqualRegister: chip8cpu.SneInst,
	KindLoadIndex:            chip8cpu.LdInst,
	KindDraw:                 chip8cpu.DrwInst,
}

// aluKinds maps the low nibble of an 8xyN opcode to its kind.
var aluKinds = map[uint8]Kind{
	0x0: KindMove,
	0x1: KindOr,
	0x2: KindAnd,
	0x3: KindXor,
	0x4: KindAddRegister,
	0x5: KindSub,
	0x6: KindShiftRight,
	0x7: KindSubReverse,
	0xE: KindShiftLeft,
}

// Instruction is a decoded CHIP-8 opcode.
type Instruction struct {
	Opcode uint16
	Kind   Kind

	X   uint8  // register index in bits 8-11
	Y   uint8  // register index in bits 4-7
	N   uint8  // low 4 bits
	KK  uint8  // low 8 bits
	NNN uint16 // low 12 bits, an address
}

// Decode splits an opcode into its fields and determines the instruction kind.
// It is the only place that interprets opcode bit fields.
func Decode(opcode uint16) Instruction {
	ins := Instruction{
		Opcode: opcode,
		X:      uint8((opcode & 0x0F00) >> 8),
		Y:      uint8((opcode & 0x00F0) >> 4),
		N:      uint8(opcode & 0x000F),
		KK:     uint8(opcode & 0x00FF),
		NNN:    opcode & 0x0FFF,
	}

	// full word opcodes share the family nibble with the native routine call
	switch opcode {
	case 0x00E0:
		ins.Kind = KindClear
		return ins
	case 0x00EE:
		ins.Kind = KindReturn
		return ins
	}

	switch opcode >> 12 {
	case 0x0:
		ins.Kind = KindSys
	case 0x1:
		ins.Kind = KindJump
	case 0x2:
		ins.Kind = KindCall
	case 0x3:
		ins.Kind = KindSkipEqualByte
	case 0x4:
		ins.Kind = KindSkipNotEqualByte
	case 0x5:
		ins.Kind = KindSkipEqualRegister
	case 0x6:
		ins.Kind = KindLoadByte
	case 0x7:
		ins.Kind = KindAddByte
	case 0x8:
		ins.Kind = aluKinds[ins.N] // missing sub operations stay KindUnknown
	case 0x9:
		ins.Kind = KindSkipNotEqualRegister
	case 0xA:
		ins.Kind = KindLoadIndex
	case 0xD:
		ins.Kind = KindDraw
	default:
		ins.Kind = KindUnknown
	}
	return ins
}

// Supported returns whether the engine executes the instruction.
// Unknown and native routine call instructions are executed as no-op.
func (i Instruction) Supported() bool {
	return i.Kind != KindUnknown && i.Kind != KindSys
}

// IsControlFlow returns whether the instruction can change the program
// counter beyond the regular advance of a fetch.
func (i Instruction) IsControlFlow() bool {
	switch i.Kind {
	case KindReturn, KindJump, KindCall,
		KindSkipEqualByte, KindSkipNotEqualByte,
		KindSkipEqualRegister, KindSkipNotEqualRegister:
		return true
	default:
		return false
	}
}

// Name returns the assembler mnemonic of the instruction. Instructions that
// the engine does not execute are looked up in the full CHIP-8 opcode table,
// an empty string is returned for opcodes that are not part of the
// instruction set.
func (i Instruction) Name() string {
	if ins, ok := mnemonics[i.Kind]; ok {
		return ins.Name
	}
	if op, ok := lookupOpcode(i.Opcode); ok {
		return op.Instruction.Name
	}
	return ""
}

// String returns the instruction in assembler notation.
func (i Instruction) String() string {
	name := i.Name()
	if name == "" {
		return fmt.Sprintf(".word $%04X", i.Opcode)
	}
	if params := i.formatParams(); params != "" {
		return fmt.Sprintf("%s %s", name, params)
	}
	return name
}

// lookupOpcode finds the opcode definition in the CHIP-8 opcode table that
// matches the given opcode.
func lookupOpcode(w uint16) (chip8cpu.Opcode, bool) {
	firstNibble := (w & 0xF000) >> 12
	for _, op := range chip8cpu.Opcodes[int(firstNibble)] {
		if op.Info.Mask&w == op.Info.Value && op.Instruction != nil {
			return op, true
		}
	}
	return chip8cpu.Opcode{}, false
}
