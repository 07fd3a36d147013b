// Package display provides the monochrome CHIP-8 framebuffer.
package display

// Screen dimensions of the CHIP-8 display in pixels.
const (
	Width  = 64
	Height = 32
)

// Frame is a copy of the framebuffer content, indexed by row and column.
type Frame [Height][Width]bool

// Framebuffer is a fixed size binary pixel grid that is only changed by
// XOR toggling single pixels or by clearing the whole grid.
// Every change marks the framebuffer as dirty until the host consumed it.
type Framebuffer struct {
	pixels Frame
	dirty  bool
}

// New returns a cleared framebuffer.
func New() *Framebuffer {
	return &Framebuffer{}
}

// Width returns the number of pixel columns.
func (f *Framebuffer) Width() int {
	return Width
}

// Height returns the number of pixel rows.
func (f *Framebuffer) Height() int {
	return Height
}

// Pixel returns whether the pixel at the given coordinate is set.
// Coordinates outside of the screen are reported as not set.
func (f *Framebuffer) Pixel(x, y int) bool {
	if !inBounds(x, y) {
		return false
	}
	return f.pixels[y][x]
}

// Toggle flips the pixel at the given coordinate and returns whether it was
// set before the toggle. Coordinates outside of the screen are ignored.
func (f *Framebuffer) Toggle(x, y int) bool {
	if !inBounds(x, y) {
		return false
	}
	wasSet := f.pixels[y][x]
	f.pixels[y][x] = !wasSet
	return wasSet
}

// Clear resets all pixels and marks the framebuffer as dirty.
func (f *Framebuffer) Clear() {
	f.pixels = Frame{}
	f.dirty = true
}

// MarkDirty flags the framebuffer content as changed.
func (f *Framebuffer) MarkDirty() {
	f.dirty = true
}

// Dirty returns whether the framebuffer changed since the last ClearDirty call.
func (f *Framebuffer) Dirty() bool {
	return f.dirty
}

// ClearDirty resets the dirty flag after the host redrew the screen.
func (f *Framebuffer) ClearDirty() {
	f.dirty = false
}

// Snapshot returns a copy of the current pixel grid.
func (f *Framebuffer) Snapshot() Frame {
	return f.pixels
}

// SetPixels returns the number of set pixels.
func (f *Framebuffer) SetPixels() int {
	count := 0
	for y := range Height {
		for x := range Width {
			if f.pixels[y][x] {
				count++
			}
		}
	}
	return count
}

func inBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}
