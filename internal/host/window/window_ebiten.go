//go:build !headless

package window

import (
	"context"
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/retroenv/chip8vm/internal/display"
	"github.com/retroenv/chip8vm/internal/host"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/image/font/basicfont"
)

var (
	backgroundColor = color.RGBA{0x10, 0x10, 0x10, 0xff}
	pixelColor      = color.RGBA{0x33, 0xff, 0x66, 0xff}
	statusColor     = color.RGBA{190, 190, 190, 255}
)

// Window renders frames into an ebiten window and drives the ticks of the
// machine from the ebiten update loop.
type Window struct {
	logger  *log.Logger
	options Options

	ctx    context.Context
	driver *host.Driver
	err    error

	pixels []byte
	image  *ebiten.Image
}

// New returns a new window host.
func New(logger *log.Logger, options Options) *Window {
	w := &Window{
		logger:  logger,
		options: options.withDefaults(),
		pixels:  make([]byte, display.Width*display.Height*4),
	}
	w.fill(display.Frame{})
	return w
}

// Render converts the frame to the RGBA pixel buffer that is shown by the
// next Draw call.
func (w *Window) Render(frame display.Frame) error {
	w.fill(frame)
	return nil
}

func (w *Window) fill(frame display.Frame) {
	for y := range display.Height {
		for x := range display.Width {
			c := backgroundColor
			if frame[y][x] {
				c = pixelColor
			}
			i := (y*display.Width + x) * 4
			w.pixels[i] = c.R
			w.pixels[i+1] = c.G
			w.pixels[i+2] = c.B
			w.pixels[i+3] = c.A
		}
	}
}

// Run opens the window and executes ticks of the driver until the window is
// closed, the context is cancelled or the tick limit is reached.
func (w *Window) Run(ctx context.Context, driver *host.Driver) error {
	w.ctx = ctx
	w.driver = driver

	width, height := w.Layout(0, 0)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(w.options.Title)
	ebiten.SetRunnableOnUnfocused(true)

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return w.err
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	if err := w.ctx.Err(); err != nil {
		w.err = fmt.Errorf("running program: %w", err)
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		if err := w.driver.Reload(); err != nil {
			w.err = err
			return ebiten.Termination
		}
		w.logger.Info("Program reloaded")
	}

	for range w.options.ticksPerFrame() {
		if w.options.MaxTicks > 0 && w.driver.Ticks() >= w.options.MaxTicks {
			return ebiten.Termination
		}
		if err := w.driver.Tick(); err != nil {
			w.err = err
			return ebiten.Termination
		}
	}
	return nil
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	if w.image == nil {
		w.image = ebiten.NewImage(display.Width, display.Height)
	}
	w.image.WritePixels(w.pixels)

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(float64(w.options.Scale), float64(w.options.Scale))
	screen.DrawImage(w.image, opts)

	w.drawStatusBar(screen)
}

// Layout implements ebiten.Game.
func (w *Window) Layout(_, _ int) (int, int) {
	return display.Width * w.options.Scale, display.Height*w.options.Scale + statusBarHeight
}

func (w *Window) drawStatusBar(screen *ebiten.Image) {
	m := w.driver.Machine()
	if m == nil {
		return
	}

	status := fmt.Sprintf("PC $%04X  I $%03X  DT %3d  %s",
		m.PC(), m.Index(), m.DelayTimer(), statusText(w.err))
	baseline := display.Height*w.options.Scale + statusBarHeight - 5
	text.Draw(screen, status, basicfont.Face7x13, 4, baseline, statusColor)
}

func statusText(err error) string {
	if err == nil {
		return "F5: reload"
	}
	if errors.Is(err, context.Canceled) {
		return "stopped"
	}
	return "error"
}
