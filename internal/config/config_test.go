package config

import (
	"testing"

	"github.com/retroenv/chip8vm/internal/chip8"
	"github.com/retroenv/chip8vm/internal/listing"
	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, CreateLogger(false, false))
	assert.NotNil(t, CreateLogger(true, false))
	assert.NotNil(t, CreateLogger(false, true))
}

func TestCreateMachineConfig(t *testing.T) {
	cfg, err := CreateMachineConfig(options.MachineFlags{
		StackLimit:   4,
		TimerDivider: 8,
		Edge:         "wrap",
	})
	assert.NoError(t, err)
	assert.Equal(t, chip8.Config{StackLimit: 4, TimerDivider: 8, Edge: chip8.EdgeWrap}, cfg)

	_, err = CreateMachineConfig(options.MachineFlags{Edge: "mirror"})
	assert.ErrorContains(t, err, "parsing edge mode")
}

func TestCreateDriverOptions(t *testing.T) {
	opts := options.Program{
		Flags:        options.Flags{Trace: true},
		MachineFlags: options.MachineFlags{StackLimit: 16, TimerDivider: 16, Edge: "clip"},
	}

	driverOpts, err := CreateDriverOptions(opts)
	assert.NoError(t, err)
	assert.True(t, driverOpts.Trace)
	assert.Equal(t, chip8.DefaultConfig(), driverOpts.Machine)
}

func TestCreateListingOptions(t *testing.T) {
	tests := []struct {
		name string
		opts options.OutputFlags
		want listing.Options
	}{
		{"default flags", options.OutputFlags{}, listing.Options{HexComments: true, OffsetComments: true}},
		{"nohexcomments flag", options.OutputFlags{NoHexComments: true}, listing.Options{OffsetComments: true}},
		{"nooffsets flag", options.OutputFlags{NoOffsets: true}, listing.Options{HexComments: true}},
		{"z flag", options.OutputFlags{ZeroBytes: true},
			listing.Options{HexComments: true, OffsetComments: true, ZeroBytes: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CreateListingOptions(tt.opts))
		})
	}
}
