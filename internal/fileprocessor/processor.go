// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/chip8vm/internal/config"
	"github.com/retroenv/chip8vm/internal/detector"
	"github.com/retroenv/chip8vm/internal/host"
	"github.com/retroenv/chip8vm/internal/host/terminal"
	"github.com/retroenv/chip8vm/internal/host/window"
	"github.com/retroenv/chip8vm/internal/listing"
	"github.com/retroenv/chip8vm/internal/loader"
	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile loads the ROM file and either runs it in the selected host
// or writes its disassembly listing.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program) error {
	system, err := detector.New(logger).Detect(opts)
	if err != nil {
		return fmt.Errorf("detecting system: %w", err)
	}

	program, err := loader.New().Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading program: %w", err)
	}

	printInfo(logger, opts, program)
	logger.Debug("Detected system", log.Stringer("system", system))

	if opts.Disasm {
		return writeListing(opts, program)
	}
	return runProgram(ctx, logger, opts, program)
}

// printInfo prints the information about the input file and the run mode.
func printInfo(logger *log.Logger, opts options.Program, program []byte) {
	if opts.Quiet {
		return
	}

	mode := "host"
	target := opts.Host
	if opts.Disasm {
		mode = "output"
		target = opts.Output
		if target == "" {
			target = "stdout"
		}
	}

	logger.Info("Processing CHIP-8 ROM",
		log.String("file", opts.Input),
		log.Int("size", len(program)),
		log.String(mode, target),
	)
}

func writeListing(opts options.Program, program []byte) error {
	writer, err := createWriter(opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}
	defer func() {
		if closer, ok := writer.(io.Closer); ok && writer != os.Stdout {
			_ = closer.Close()
		}
	}()

	w := listing.New(writer, config.CreateListingOptions(opts.OutputFlags))
	if err := w.Write(program); err != nil {
		return fmt.Errorf("writing listing: %w", err)
	}
	return nil
}

func runProgram(ctx context.Context, logger *log.Logger, opts options.Program, program []byte) error {
	driverOptions, err := config.CreateDriverOptions(opts)
	if err != nil {
		return fmt.Errorf("creating driver options: %w", err)
	}
	if opts.Trace && !opts.Debug {
		logger.Warn("Instruction tracing is only visible with debug logging enabled")
	}

	switch opts.Host {
	case options.HostTerminal:
		renderer, err := terminal.New(os.Stdout, int(os.Stdout.Fd()))
		if err != nil {
			return fmt.Errorf("creating terminal host: %w", err)
		}
		defer func() { _ = renderer.Close() }()

		driver := host.New(logger, driverOptions, renderer)
		if err := driver.Load(program); err != nil {
			return err
		}
		return driver.Run(ctx, opts.Interval, opts.Ticks)

	case options.HostWindow:
		w := window.New(logger, window.Options{
			Scale:    opts.Scale,
			Title:    "chip8vm - " + filepath.Base(opts.Input),
			Interval: opts.Interval,
			MaxTicks: opts.Ticks,
		})

		driver := host.New(logger, driverOptions, w)
		if err := driver.Load(program); err != nil {
			return err
		}
		return w.Run(ctx, driver)

	default:
		return fmt.Errorf("unsupported host: %s", opts.Host)
	}
}

func createWriter(opts options.Program) (io.Writer, error) {
	if opts.Output == "" {
		return os.Stdout, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("chip8vm", log.String("version", buildinfo.Version(version, commit, date)))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}
