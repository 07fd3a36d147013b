// Package listing writes an assembler listing of a CHIP-8 program image.
package listing

import (
	"fmt"
	"hash/crc32"
	"io"
	"strings"

	"github.com/retroenv/chip8vm/internal/chip8"
)

const (
	dataBytesPerLine = 16

	funcNaming  = "_func_%04x"
	labelNaming = "_label_%04x"
)

// Options of the listing writer.
type Options struct {
	OffsetComments bool // prefix line comments with the memory address
	HexComments    bool // add the opcode bytes as line comments
	ZeroBytes      bool // output trailing zero bytes of the program
}

// offset is a single code word or data byte range of the program.
type offset struct {
	address uint16
	data    []byte
	code    string
	label   string
	isCode  bool
}

// Writer writes a linear sweep listing of a program image.
type Writer struct {
	options Options
	writer  io.Writer
}

// New creates a new listing writer.
func New(writer io.Writer, options Options) *Writer {
	return &Writer{
		options: options,
		writer:  writer,
	}
}

// Write decodes the program as loaded at the program start address and
// writes it as assembler listing. Words that are not part of the instruction
// set and a trailing odd byte are written as data.
func (w *Writer) Write(program []byte) error {
	if len(program) > chip8.MaxProgramSize {
		return fmt.Errorf("%w: %d bytes", chip8.ErrProgramTooLarge, len(program))
	}

	if err := w.writeHeader(program); err != nil {
		return err
	}

	offsets := parseOffsets(program)
	assignLabels(offsets)
	endIndex := w.endIndex(offsets)

	var previousLineWasCode bool
	for i := 0; i < endIndex; i++ {
		off := offsets[i]

		if err := w.writeLabel(i, off); err != nil {
			return err
		}

		// print an empty line in case of data after code and vice versa
		if i > 0 && off.label == "" && off.isCode != previousLineWasCode {
			if _, err := fmt.Fprintln(w.writer); err != nil {
				return fmt.Errorf("writing line: %w", err)
			}
		}
		previousLineWasCode = off.isCode

		if off.isCode {
			if err := w.writeCodeLine(off); err != nil {
				return err
			}
			continue
		}

		count, err := w.writeDataLines(offsets, i, endIndex)
		if err != nil {
			return err
		}
		i += count - 1
	}

	return nil
}

func (w *Writer) writeHeader(program []byte) error {
	if _, err := fmt.Fprintf(w.writer, "; CHIP-8 ROM Disassembly\n"); err != nil {
		return fmt.Errorf("writing header comment: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, "; CRC32 checksum: %08x\n", crc32.ChecksumIEEE(program)); err != nil {
		return fmt.Errorf("writing checksum: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, "; Program size: %d bytes\n\n", len(program)); err != nil {
		return fmt.Errorf("writing program size: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, ".org $%03X\n\n", chip8.ProgramStart); err != nil {
		return fmt.Errorf("writing org directive: %w", err)
	}
	return nil
}

// parseOffsets splits the program into instruction words, with every word
// that does not decode to a known instruction becoming a data offset.
func parseOffsets(program []byte) []*offset {
	offsets := make([]*offset, 0, len(program)/chip8.OpcodeSize+1)

	for i := 0; i < len(program); i += chip8.OpcodeSize {
		address := uint16(chip8.ProgramStart + i)

		if i+1 >= len(program) {
			offsets = append(offsets, &offset{address: address, data: program[i:]})
			break
		}

		opcode := uint16(program[i])<<8 | uint16(program[i+1])
		off := &offset{
			address: address,
			data:    program[i : i+chip8.OpcodeSize],
		}
		if ins := chip8.Decode(opcode); ins.Name() != "" {
			off.isCode = true
			off.code = ins.String()
		}
		offsets = append(offsets, off)
	}

	return offsets
}

// assignLabels names the code offsets that are targets of jumps and calls
// and references the labels in the jump and call instructions.
func assignLabels(offsets []*offset) {
	byAddress := make(map[uint16]*offset, len(offsets))
	for _, off := range offsets {
		byAddress[off.address] = off
	}

	for _, off := range offsets {
		if !off.isCode {
			continue
		}
		ins := chip8.Decode(uint16(off.data[0])<<8 | uint16(off.data[1]))
		if ins.Kind != chip8.KindJump && ins.Kind != chip8.KindCall {
			continue
		}

		target, ok := byAddress[ins.NNN]
		if !ok {
			continue
		}

		switch {
		case ins.Kind == chip8.KindCall:
			target.label = fmt.Sprintf(funcNaming, ins.NNN)
		case target.label == "":
			target.label = fmt.Sprintf(labelNaming, ins.NNN)
		}
	}

	// replace addresses by labels after all labels are known, a call can
	// rename a label that an earlier jump already referenced
	for _, off := range offsets {
		if !off.isCode {
			continue
		}
		ins := chip8.Decode(uint16(off.data[0])<<8 | uint16(off.data[1]))
		if ins.Kind != chip8.KindJump && ins.Kind != chip8.KindCall {
			continue
		}
		if target, ok := byAddress[ins.NNN]; ok && target.label != "" {
			off.code = fmt.Sprintf("%s %s", ins.Name(), target.label)
		}
	}
}

// endIndex returns the index after the last offset to output, trailing zero
// data is skipped unless configured otherwise.
func (w *Writer) endIndex(offsets []*offset) int {
	if w.options.ZeroBytes {
		return len(offsets)
	}

	for i := len(offsets) - 1; i >= 0; i-- {
		off := offsets[i]
		if off.label != "" {
			return i + 1
		}
		for _, b := range off.data {
			if b != 0 {
				return i + 1
			}
		}
	}
	return 0
}

func (w *Writer) writeLabel(index int, off *offset) error {
	if off.label == "" {
		return nil
	}

	if index > 0 {
		if _, err := fmt.Fprintln(w.writer); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}
	if _, err := fmt.Fprintf(w.writer, "%s:\n", off.label); err != nil {
		return fmt.Errorf("writing label %s: %w", off.label, err)
	}
	return nil
}

func (w *Writer) writeCodeLine(off *offset) error {
	comment := w.comment(off.address, off.data)

	var err error
	if comment == "" {
		_, err = fmt.Fprintf(w.writer, "  %s\n", off.code)
	} else {
		_, err = fmt.Fprintf(w.writer, "  %-30s ; %s\n", off.code, comment)
	}
	if err != nil {
		return fmt.Errorf("writing code line: %w", err)
	}
	return nil
}

// writeDataLines bundles consecutive data offsets into .byte lines and
// returns the number of offsets consumed.
func (w *Writer) writeDataLines(offsets []*offset, startIndex, endIndex int) (int, error) {
	var data []byte
	count := 0

	for i := startIndex; i < endIndex; i++ {
		off := offsets[i]
		// stop at first label or code after start index
		if off.isCode || (i > startIndex && off.label != "") {
			break
		}
		data = append(data, off.data...)
		count++
	}

	address := offsets[startIndex].address
	for len(data) > 0 {
		toWrite := min(len(data), dataBytesPerLine)

		if err := w.writeDataLine(address, data[:toWrite]); err != nil {
			return 0, err
		}

		address += uint16(toWrite)
		data = data[toWrite:]
	}

	return count, nil
}

func (w *Writer) writeDataLine(address uint16, data []byte) error {
	buf := &strings.Builder{}
	buf.WriteString(".byte ")
	for i, b := range data {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(buf, "$%02X", b)
	}

	var err error
	if w.options.OffsetComments {
		_, err = fmt.Fprintf(w.writer, "  %-30s ; $%04X\n", buf.String(), address)
	} else {
		_, err = fmt.Fprintf(w.writer, "  %s\n", buf.String())
	}
	if err != nil {
		return fmt.Errorf("writing data line: %w", err)
	}
	return nil
}

func (w *Writer) comment(address uint16, data []byte) string {
	var parts []string
	if w.options.OffsetComments {
		parts = append(parts, fmt.Sprintf("$%04X", address))
	}
	if w.options.HexComments {
		hex := make([]string, len(data))
		for i, b := range data {
			hex[i] = fmt.Sprintf("%02X", b)
		}
		parts = append(parts, strings.Join(hex, " "))
	}
	return strings.Join(parts, "  ")
}
