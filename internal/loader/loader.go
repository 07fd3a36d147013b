// Package loader handles ROM file loading operations.
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/chip8vm/internal/chip8"
)

var (
	errEmptyProgram = errors.New("program is empty")
	errNESHeader    = errors.New("file has an iNES header, NES ROMs are not supported")
)

var inesMagic = []byte{'N', 'E', 'S', 0x1A}

// Loader handles loading ROM files from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the ROM file and validates that it can be loaded into the
// program area of the machine.
func (l *Loader) Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	program, err := l.LoadFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("loading file %s: %w", path, err)
	}
	return program, nil
}

// LoadFromBytes validates a raw program image.
func (l *Loader) LoadFromBytes(data []byte) ([]byte, error) {
	switch {
	case len(data) == 0:
		return nil, errEmptyProgram
	case bytes.HasPrefix(data, inesMagic):
		return nil, errNESHeader
	case len(data) > chip8.MaxProgramSize:
		return nil, fmt.Errorf("%w: %d bytes, maximum is %d", chip8.ErrProgramTooLarge, len(data), chip8.MaxProgramSize)
	}
	return data, nil
}
