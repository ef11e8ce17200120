package boxfolk

import (
	"context"
	"fmt"
	"image"
	"time"
)

// HeadlessConfig controls the no-window host.
type HeadlessConfig struct {
	// Hz is the tick rate. Defaults to 60.
	Hz int
	// Ticks stops the run after N ticks (0 = run until ctx is done or the
	// driver is stopped).
	Ticks uint64
	// Realtime paces ticks with a wall-clock ticker. When false, ticks run
	// back to back with a fixed 1/Hz step.
	Realtime bool
	// Script, when set, is stepped once per tick.
	Script *ScriptRunner
}

// RunHeadless ticks the driver and draws requested frames without opening a
// window. It returns nil when the tick budget is spent or the driver stops,
// and ctx.Err() on cancellation.
func RunHeadless(ctx context.Context, v *Viewport, d *Driver, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	step := time.Second / time.Duration(cfg.Hz)
	if step <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	dt := 1 / float64(cfg.Hz)

	var tc <-chan time.Time
	if cfg.Realtime {
		t := time.NewTicker(step)
		defer t.Stop()
		tc = t.C
	}

	var tick uint64
	for {
		if tc != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tc:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		d.Tick(dt)
		if cfg.Script != nil {
			cfg.Script.Step(v, d)
		}
		if v.FrameRequested() {
			v.DrawFrame()
		}
		if d.Stopped() {
			return nil
		}
		tick++
		if cfg.Ticks > 0 && tick >= cfg.Ticks {
			return nil
		}
	}
}

// ImageSurface keeps a copy of the last presented frame in memory.
type ImageSurface struct {
	last     *image.RGBA
	presents int
}

// Present copies frame into the surface's own image.
func (s *ImageSurface) Present(frame *image.RGBA) {
	b := frame.Bounds()
	if s.last == nil || s.last.Bounds() != b {
		s.last = image.NewRGBA(b)
	}
	copy(s.last.Pix, frame.Pix)
	s.presents++
}

// Image returns the last presented frame, or nil.
func (s *ImageSurface) Image() *image.RGBA {
	return s.last
}

// Presents returns how many frames were presented.
func (s *ImageSurface) Presents() int {
	return s.presents
}
