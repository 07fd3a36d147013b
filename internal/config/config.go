// Package config handles application configuration and setup
package config

import (
	"fmt"

	"github.com/retroenv/chip8vm/internal/chip8"
	"github.com/retroenv/chip8vm/internal/host"
	"github.com/retroenv/chip8vm/internal/listing"
	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// CreateMachineConfig converts the machine options to a machine configuration.
func CreateMachineConfig(opts options.MachineFlags) (chip8.Config, error) {
	edge, err := chip8.ParseEdgeMode(opts.Edge)
	if err != nil {
		return chip8.Config{}, fmt.Errorf("parsing edge mode: %w", err)
	}

	return chip8.Config{
		StackLimit:   opts.StackLimit,
		TimerDivider: opts.TimerDivider,
		Edge:         edge,
	}, nil
}

// CreateDriverOptions creates the tick driver options.
func CreateDriverOptions(opts options.Program) (host.Options, error) {
	cfg, err := CreateMachineConfig(opts.MachineFlags)
	if err != nil {
		return host.Options{}, err
	}

	return host.Options{
		Machine: cfg,
		Trace:   opts.Trace,
	}, nil
}

// CreateListingOptions creates the disassembly listing options.
func CreateListingOptions(opts options.OutputFlags) listing.Options {
	return listing.Options{
		HexComments:    !opts.NoHexComments,
		OffsetComments: !opts.NoOffsets,
		ZeroBytes:      opts.ZeroBytes,
	}
}
