// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/retroenv/chip8vm/internal/chip8"
	"github.com/retroenv/chip8vm/internal/host"
	"github.com/retroenv/chip8vm/internal/options"
)

const defaultScale = 10

var validHosts = []string{options.HostWindow, options.HostTerminal}

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) == 0 {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	opts.Input = args[0]
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage and the option defaults.
func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: chip8vm [options] <ROM file>\n\n")
	if e.msg != "" {
		fmt.Printf("%s\n\n", e.msg)
	}
	if e.flags != nil {
		e.flags.SetOutput(os.Stdout)
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	if len(args) > 1 {
		return &UsageError{
			msg: fmt.Sprintf("Unexpected arguments %s, only a single ROM file is supported", strings.Join(args[1:], " ")),
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Host = strings.ToLower(strings.TrimSpace(opts.Host))
	if !slices.Contains(validHosts, opts.Host) {
		return fmt.Errorf("unsupported host: %s. Valid options: %s",
			opts.Host, strings.Join(validHosts, ", "))
	}

	edge, err := chip8.ParseEdgeMode(opts.Edge)
	if err != nil {
		return fmt.Errorf("parsing edge option: %w", err)
	}
	opts.Edge = edge.String()

	switch {
	case opts.Interval <= 0:
		return fmt.Errorf("invalid tick interval %s, it has to be positive", opts.Interval)
	case opts.Scale <= 0:
		return fmt.Errorf("invalid window scale %d, it has to be positive", opts.Scale)
	case opts.StackLimit < 0:
		return fmt.Errorf("invalid stack limit %d, use 0 to disable the limit", opts.StackLimit)
	case opts.TimerDivider <= 0:
		return fmt.Errorf("invalid timer divider %d, it has to be positive", opts.TimerDivider)
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Output, "o", "", "name of the output .asm file for -disasm, printed on console if no name given")
	flags.StringVar(&opts.Host, "host", options.HostWindow, "host to run the ROM in (window/terminal)")
	flags.StringVar(&opts.System, "s", "", "system of the ROM file (chip8) - if not auto-detected from file extension")
	flags.DurationVar(&opts.Interval, "interval", host.DefaultInterval, "time between two executed instructions")
	flags.Uint64Var(&opts.Ticks, "ticks", 0, "stop after the given number of executed instructions, 0 runs until cancelled")
	flags.IntVar(&opts.Scale, "scale", defaultScale, "window pixels per CHIP-8 pixel")
	flags.BoolVar(&opts.Disasm, "disasm", false, "write a disassembly listing of the ROM instead of running it")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, requires -debug")

	flags.IntVar(&opts.StackLimit, "stack", chip8.DefaultStackLimit, "maximum call stack depth, 0 disables the limit")
	flags.IntVar(&opts.TimerDivider, "timer-divider", chip8.DefaultTimerDivider, "executed instructions per delay timer decrement")
	flags.StringVar(&opts.Edge, "edge", chip8.EdgeClip.String(), "sprite handling at the screen border (clip/wrap)")

	flags.BoolVar(&opts.NoHexComments, "nohexcomments", false, "do not output opcode bytes as hex values in comments")
	flags.BoolVar(&opts.NoOffsets, "nooffsets", false, "do not output offsets in comments")
	flags.BoolVar(&opts.ZeroBytes, "z", false, "output the trailing zero bytes of the ROM")
}
