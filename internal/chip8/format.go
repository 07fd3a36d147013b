package chip8

import "fmt"

// formatParams formats the operands of the instruction in assembler notation.
func (i Instruction) formatParams() string {
	switch i.Kind {
	case KindClear, KindReturn:
		return "" // No parameters
	case KindJump, KindCall, KindSys:
		return fmt.Sprintf("$%03X", i.NNN)
	case KindSkipEqualByte, KindSkipNotEqualByte, KindLoadByte, KindAddByte:
		return fmt.Sprintf("V%X, $%02X", i.X, i.KK)
	case KindSkipEqualRegister, KindSkipNotEqualRegister, KindMove,
		KindOr, KindAnd, KindXor, KindAddRegister, KindSub, KindSubReverse:
		return fmt.Sprintf("V%X, V%X", i.X, i.Y)
	case KindShiftRight, KindShiftLeft:
		return fmt.Sprintf("V%X", i.X)
	case KindLoadIndex:
		return fmt.Sprintf("I, $%03X", i.NNN)
	case KindDraw:
		return fmt.Sprintf("V%X, V%X, $%X", i.X, i.Y, i.N)
	default:
		return i.formatUnsupportedParams()
	}
}

// formatUnsupportedParams formats the operands of instructions that are part
// of the CHIP-8 instruction set but not executed by the engine.
func (i Instruction) formatUnsupportedParams() string {
	switch i.Opcode & 0xF000 {
	case 0xB000:
		return fmt.Sprintf("V0, $%03X", i.NNN)
	case 0xC000:
		return fmt.Sprintf("V%X, $%02X", i.X, i.KK)
	case 0xE000:
		return fmt.Sprintf("V%X", i.X)
	case 0xF000:
		return i.formatMiscParams()
	}
	return ""
}

// formatMiscParams formats the Fx.. timer, key and memory instructions.
func (i Instruction) formatMiscParams() string {
	switch i.KK {
	case 0x07:
		return fmt.Sprintf("V%X, DT", i.X)
	case 0x0A:
		return fmt.Sprintf("V%X, K", i.X)
	case 0x15:
		return fmt.Sprintf("DT, V%X", i.X)
	case 0x18:
		return fmt.Sprintf("ST, V%X", i.X)
	case 0x1E:
		return fmt.Sprintf("I, V%X", i.X)
	case 0x29:
		return fmt.Sprintf("F, V%X", i.X)
	case 0x33:
		return fmt.Sprintf("B, V%X", i.X)
	case 0x55:
		return fmt.Sprintf("[I], V%X", i.X)
	case 0x65:
		return fmt.Sprintf("V%X, [I]", i.X)
	}
	return ""
}
