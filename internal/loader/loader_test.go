package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/chip8vm/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestLoad(t *testing.T) {
	t.Run("load CHIP8 file", func(t *testing.T) {
		tmpFile := createTempFile(t, []byte{0x00, 0xE0, 0x12, 0x00})

		program, err := New().Load(tmpFile)
		assert.NoError(t, err)
		assert.Equal(t, 4, len(program))
		assert.Equal(t, byte(0xE0), program[1])
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		_, err := New().Load("/nonexistent/file.ch8")
		assert.ErrorContains(t, err, "reading file")
	})

	t.Run("error on too large file", func(t *testing.T) {
		tmpFile := createTempFile(t, make([]byte, chip8.MaxProgramSize+1))

		_, err := New().Load(tmpFile)
		assert.True(t, errors.Is(err, chip8.ErrProgramTooLarge))
		assert.ErrorContains(t, err, tmpFile)
	})
}

func TestLoadFromBytes(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		err  error
	}{
		{"raw program", []byte{0x60, 0x0A}, nil},
		{"maximum size", make([]byte, chip8.MaxProgramSize), nil},
		{"empty", nil, errEmptyProgram},
		{"NES ROM", []byte{'N', 'E', 'S', 0x1A, 0x01}, errNESHeader},
		{"too large", make([]byte, chip8.MaxProgramSize+1), chip8.ErrProgramTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program, err := New().LoadFromBytes(tt.data)
			if tt.err != nil {
				assert.True(t, errors.Is(err, tt.err))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, len(tt.data), len(program))
		})
	}
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.ch8")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
