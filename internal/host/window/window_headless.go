//go:build headless

package window

import (
	"context"
	"errors"

	"github.com/retroenv/chip8vm/internal/display"
	"github.com/retroenv/chip8vm/internal/host"
	"github.com/retroenv/retrogolib/log"
)

var errHeadless = errors.New("window host is not available in headless builds")

// Window is unavailable in headless builds.
type Window struct{}

// New returns a window host that fails to run.
func New(_ *log.Logger, _ Options) *Window {
	return &Window{}
}

// Render discards the frame.
func (w *Window) Render(_ display.Frame) error {
	return nil
}

// Run returns an error as no window can be opened.
func (w *Window) Run(_ context.Context, _ *host.Driver) error {
	return errHeadless
}
