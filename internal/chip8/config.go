package chip8

import (
	"fmt"
	"strings"
)

// Default configuration values.
const (
	// DefaultStackLimit matches the 16 return addresses of the original interpreter.
	DefaultStackLimit = 16

	// DefaultTimerDivider is the number of executed instructions per delay timer decrement.
	DefaultTimerDivider = 16
)

// EdgeMode defines how sprite pixels beyond the screen border are handled.
type EdgeMode int

const (
	// EdgeClip wraps the sprite start coordinate into the screen and drops
	// sprite pixels that extend beyond the right or bottom border.
	EdgeClip EdgeMode = iota
	// EdgeWrap wraps every sprite pixel around the screen borders.
	EdgeWrap
)

var edgeModeNames = map[EdgeMode]string{
	EdgeClip: "clip",
	EdgeWrap: "wrap",
}

func (e EdgeMode) String() string {
	name, ok := edgeModeNames[e]
	if !ok {
		return fmt.Sprintf("edge(%d)", int(e))
	}
	return name
}

// ParseEdgeMode converts a mode name to an EdgeMode.
func ParseEdgeMode(s string) (EdgeMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for mode, name := range edgeModeNames {
		if name == s {
			return mode, nil
		}
	}
	return EdgeClip, fmt.Errorf("unsupported edge mode '%s'", s)
}

// Config defines the behavior choices of a machine.
type Config struct {
	// StackLimit is the maximum call stack depth, 0 disables the limit.
	StackLimit int
	// TimerDivider is the number of executed instructions per delay timer decrement.
	TimerDivider int
	// Edge defines the sprite clipping behavior at the screen border.
	Edge EdgeMode
}

// DefaultConfig returns the default machine configuration.
func DefaultConfig() Config {
	return Config{
		StackLimit:   DefaultStackLimit,
		TimerDivider: DefaultTimerDivider,
		Edge:         EdgeClip,
	}
}

func (c Config) withDefaults() Config {
	if c.StackLimit < 0 {
		c.StackLimit = 0
	}
	if c.TimerDivider <= 0 {
		c.TimerDivider = DefaultTimerDivider
	}
	return c
}
