package window

import (
	"testing"
	"time"

	"github.com/retroenv/retrogolib/assert"
)

func TestOptions_WithDefaults(t *testing.T) {
	opts := Options{}.withDefaults()
	assert.Equal(t, defaultScale, opts.Scale)
	assert.Equal(t, defaultTitle, opts.Title)

	opts = Options{Scale: 4, Title: "test"}.withDefaults()
	assert.Equal(t, 4, opts.Scale)
	assert.Equal(t, "test", opts.Title)
}

func TestOptions_TicksPerFrame(t *testing.T) {
	tests := []struct {
		interval time.Duration
		expected int
	}{
		{0, 1},
		{3 * time.Millisecond, 5},
		{time.Millisecond, 16},
		{time.Second, 1},
	}

	for _, tt := range tests {
		opts := Options{Interval: tt.interval}
		assert.Equal(t, tt.expected, opts.ticksPerFrame())
	}
}
