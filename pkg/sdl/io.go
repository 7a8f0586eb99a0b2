package sdl

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/log"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/mnafees/chopper/internal"
)

const (
	defaultPixelSize = 20

	screenColor = 0x1A237E
	spriteColor = 0x9FA8DA
)

// Config controls the SDL frontend.
type Config struct {
	Title     string
	PixelSize int32  // Window pixels per CHIP-8 pixel
	Keymap    Keymap // Defaults to QwertyKeymap
	Mute      bool   // Do not open an audio device
}

// IO is the input/output abstraction layer for the VM
type IO struct {
	window  *sdl.Window
	surface *sdl.Surface
	beeper  *beeper

	cfg    Config
	vm     *internal.C8VM
	logger *log.Logger
}

// NewIO returns a new I/O instance for the SDL frontend
func NewIO(vm *internal.C8VM, cfg Config, logger *log.Logger) *IO {
	if cfg.PixelSize <= 0 {
		cfg.PixelSize = defaultPixelSize
	}
	if cfg.Keymap == nil {
		cfg.Keymap = QwertyKeymap
	}
	return &IO{
		cfg:    cfg,
		vm:     vm,
		logger: logger,
	}
}

// Setup initialises the SDL window and, unless muted, the audio device
func (io *IO) Setup() error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_EVENTS); err != nil {
		return errors.Wrapf(err, "sdl.Init failed")
	}

	window, err := sdl.CreateWindow(io.cfg.Title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		internal.ScreenWidth*io.cfg.PixelSize, internal.ScreenHeight*io.cfg.PixelSize, sdl.WINDOW_SHOWN)
	if err != nil {
		return errors.Wrapf(err, "sdl.CreateWindow failed")
	}
	io.window = window

	io.surface, err = window.GetSurface()
	if err != nil {
		return errors.Wrapf(err, "window.GetSurface failed")
	}
	if err := io.surface.FillRect(nil, screenColor); err != nil {
		return errors.Wrapf(err, "surface.FillRect failed")
	}

	if !io.cfg.Mute {
		io.beeper, err = openBeeper()
		if err != nil {
			// No sound is not worth stopping for.
			io.logger.Warn("audio disabled", log.Err(err))
		}
	}
	return nil
}

// Destroy should be called before quitting the application
func (io *IO) Destroy() {
	if io.beeper != nil {
		io.beeper.close()
	}
	if io.window != nil {
		_ = io.window.Destroy()
	}
	sdl.Quit()
}

// Loop ticks the VM once per cadence until the window is closed, Escape is
// pressed, ctx is cancelled or the VM faults.
func (io *IO) Loop(ctx context.Context, cadence time.Duration) error {
	ticker := time.NewTicker(cadence)
	defer ticker.Stop()

	for {
		if !io.pollEvents() {
			io.logger.Info("window closed")
			return nil
		}

		snap, err := io.vm.Tick(io.cfg.Keymap.Keys(sdl.GetKeyboardState()))
		if err != nil {
			return err
		}

		if snap.Changed {
			if err := io.draw(&snap.Pixels); err != nil {
				return err
			}
		}

		if io.beeper != nil {
			if err := io.beeper.set(snap.Beep); err != nil {
				return err
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// pollEvents drains the SDL event queue. It returns false when the user asked to quit.
func (io *IO) pollEvents() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch t := event.(type) {
		case *sdl.KeyboardEvent:
			if t.GetType() == sdl.KEYDOWN && t.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
				return false
			}
		case *sdl.QuitEvent:
			return false
		}
	}
	return true
}

// Draws the current display contents on screen
func (io *IO) draw(pixels *internal.Framebuffer) error {
	size := io.cfg.PixelSize
	if err := io.surface.FillRect(nil, screenColor); err != nil {
		return errors.Wrapf(err, "surface.FillRect failed")
	}
	for w := int32(0); w < internal.ScreenWidth; w++ {
		for h := int32(0); h < internal.ScreenHeight; h++ {
			if !pixels.At(int(w), int(h)) {
				continue
			}
			rect := &sdl.Rect{X: w * size, Y: h * size, W: size, H: size}
			if err := io.surface.FillRect(rect, spriteColor); err != nil {
				return errors.Wrapf(err, "surface.FillRect failed")
			}
		}
	}
	return errors.Wrapf(io.window.UpdateSurface(), "window.UpdateSurface failed")
}
