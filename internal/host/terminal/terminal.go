// Package terminal renders the CHIP-8 framebuffer as text using unicode
// half block characters, two framebuffer rows per text line.
package terminal

import (
	"bytes"
	"fmt"
	"io"

	"github.com/retroenv/chip8vm/internal/display"
	"golang.org/x/term"
)

const (
	cursorHome = "\x1b[H"
	clearAll   = "\x1b[2J"
	hideCursor = "\x1b[?25l"
	showCursor = "\x1b[?25h"
)

// half block characters indexed by upper pixel | lower pixel<<1
var blocks = [4]string{" ", "▀", "▄", "█"}

// Renderer writes frames to a writer. Frames to a terminal are redrawn in
// place, other writers receive every frame followed by a separator line.
type Renderer struct {
	writer      io.Writer
	interactive bool
	buf         bytes.Buffer
}

// New returns a renderer writing to the given writer. The file descriptor
// is used to detect whether the writer is a terminal that is large enough
// to show a full frame.
func New(writer io.Writer, fd int) (*Renderer, error) {
	r := &Renderer{
		writer:      writer,
		interactive: term.IsTerminal(fd),
	}
	if !r.interactive {
		return r, nil
	}

	width, height, err := term.GetSize(fd)
	if err != nil {
		return nil, fmt.Errorf("getting terminal size: %w", err)
	}
	if width < display.Width || height < display.Height/2 {
		return nil, fmt.Errorf("terminal size %dx%d is too small, %dx%d is required",
			width, height, display.Width, display.Height/2)
	}

	if _, err := io.WriteString(writer, hideCursor+clearAll); err != nil {
		return nil, fmt.Errorf("initializing terminal: %w", err)
	}
	return r, nil
}

// Render writes the frame.
func (r *Renderer) Render(frame display.Frame) error {
	r.buf.Reset()
	if r.interactive {
		r.buf.WriteString(cursorHome)
	}

	for y := 0; y < display.Height; y += 2 {
		for x := range display.Width {
			idx := 0
			if frame[y][x] {
				idx |= 1
			}
			if y+1 < display.Height && frame[y+1][x] {
				idx |= 2
			}
			r.buf.WriteString(blocks[idx])
		}
		r.buf.WriteByte('\n')
	}
	if !r.interactive {
		r.buf.WriteByte('\n')
	}

	if _, err := r.writer.Write(r.buf.Bytes()); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

// Close restores the cursor of an interactive terminal.
func (r *Renderer) Close() error {
	if !r.interactive {
		return nil
	}
	if _, err := io.WriteString(r.writer, showCursor); err != nil {
		return fmt.Errorf("restoring terminal: %w", err)
	}
	return nil
}
