package chip8

// spriteWidth is the number of pixels in a sprite row.
const spriteWidth = 8

// Execute decodes the current opcode and executes it. Opcodes that are not
// supported are executed as no-op and returned with KindUnknown or KindSys.
// Every call counts as a cycle for the delay timer, even if it fails.
func (m *Machine) Execute() (Instruction, error) {
	defer m.TickTimer()

	ins := Decode(m.opcode)
	v := &m.registers

	switch ins.Kind {
	case KindClear:
		m.display.Clear()

	case KindReturn:
		if len(m.stack) == 0 {
			return ins, ErrStackUnderflow
		}
		last := len(m.stack) - 1
		m.pc = m.stack[last]
		m.stack = m.stack[:last]

	case KindJump:
		m.pc = ins.NNN

	case KindCall:
		if m.cfg.StackLimit > 0 && len(m.stack) >= m.cfg.StackLimit {
			return ins, ErrStackOverflow
		}
		m.stack = append(m.stack, m.pc)
		m.pc = ins.NNN

	case KindSkipEqualByte:
		m.skipIf(v[ins.X] == ins.KK)

	case KindSkipNotEqualByte:
		m.skipIf(v[ins.X] != ins.KK)

	case KindSkipEqualRegister:
		m.skipIf(v[ins.X] == v[ins.Y])

	case KindSkipNotEqualRegister:
		m.skipIf(v[ins.X] != v[ins.Y])

	case KindLoadByte:
		v[ins.X] = ins.KK

	case KindAddByte:
		v[ins.X] += ins.KK // wraps around, VF is not affected

	case KindMove, KindOr, KindAnd, KindXor, KindAddRegister,
		KindSub, KindShiftRight, KindSubReverse, KindShiftLeft:
		m.executeALU(ins)

	case KindLoadIndex:
		m.index = ins.NNN

	case KindDraw:
		if err := m.draw(v[ins.X], v[ins.Y], ins.N); err != nil {
			return ins, err
		}

	case KindSys, KindUnknown:
	}

	return ins, nil
}

func (m *Machine) skipIf(condition bool) {
	if condition {
		m.pc += OpcodeSize
	}
}

// executeALU executes the 8xyN register operations. The flag is computed
// from the operands and written before the result, so an operation targeting
// VF leaves the result in VF.
func (m *Machine) executeALU(ins Instruction) {
	v := &m.registers
	vx, vy := v[ins.X], v[ins.Y]

	switch ins.Kind {
	case KindMove:
		v[ins.X] = vy

	case KindOr:
		v[ins.X] = vx | vy

	case KindAnd:
		v[ins.X] = vx & vy

	case KindXor:
		v[ins.X] = vx ^ vy

	case KindAddRegister:
		sum := uint16(vx) + uint16(vy)
		v[FlagRegister] = boolToFlag(sum > 0xFF)
		v[ins.X] = byte(sum)

	case KindSub:
		v[FlagRegister] = boolToFlag(vx > vy)
		v[ins.X] = vx - vy

	case KindShiftRight:
		v[FlagRegister] = vx & 0x01
		v[ins.X] = vx >> 1

	case KindSubReverse:
		v[FlagRegister] = boolToFlag(vy > vx)
		v[ins.X] = vy - vx

	case KindShiftLeft:
		v[FlagRegister] = (vx >> 7) & 0x01
		v[ins.X] = vx << 1
	}
}

// draw blits an 8 pixel wide sprite of the given height from memory at I
// using XOR. VF is set when any set pixel gets cleared.
func (m *Machine) draw(x, y, height uint8) error {
	if end := int(m.index) + int(height) - 1; height > 0 && end > MaxAddress {
		return &AddressError{Op: "sprite read", Address: end}
	}

	width, screenHeight := m.display.Width(), m.display.Height()
	startX := int(x) % width
	startY := int(y) % screenHeight

	m.registers[FlagRegister] = 0

	for row := range int(height) {
		spriteData := m.memory[int(m.index)+row]

		for col := range spriteWidth {
			if spriteData&(0x80>>col) == 0 {
				continue
			}

			px, py, visible := m.spritePixel(startX+col, startY+row, width, screenHeight)
			if !visible {
				continue
			}
			if m.display.Toggle(px, py) {
				m.registers[FlagRegister] = 1
			}
		}
	}

	m.display.MarkDirty()
	return nil
}

// spritePixel applies the edge mode to a sprite pixel coordinate.
func (m *Machine) spritePixel(x, y, width, height int) (int, int, bool) {
	if m.cfg.Edge == EdgeWrap {
		return x % width, y % height, true
	}
	return x, y, x < width && y < height
}

func boolToFlag(b bool) byte {
	if b {
		return 1
	}
	return 0
}
