// Package window runs the CHIP-8 driver inside an ebiten window with a
// status bar showing the machine registers.
package window

import "time"

const (
	defaultScale = 10
	defaultTitle = "chip8vm"
	framesPerSec = 60

	statusBarHeight = 18
)

// Options of the window host.
type Options struct {
	Scale    int           // window pixels per CHIP-8 pixel
	Title    string        // window title
	Interval time.Duration // emulated time between two ticks
	MaxTicks uint64        // stop after this many ticks, 0 runs without limit
}

func (o Options) withDefaults() Options {
	if o.Scale <= 0 {
		o.Scale = defaultScale
	}
	if o.Title == "" {
		o.Title = defaultTitle
	}
	return o
}

// ticksPerFrame returns the number of ticks to execute per rendered frame
// to approximate the tick interval, at least one tick runs per frame.
func (o Options) ticksPerFrame() int {
	if o.Interval <= 0 {
		return 1
	}
	return max(1, int(time.Second/framesPerSec/o.Interval))
}
