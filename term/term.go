// Package term presents boxfolk frames in a terminal through tcell, using
// upper half-block cells so each character holds two vertically stacked
// pixels.
package term

import (
	"context"
	"image"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/boxfolk"
)

const halfBlock = '▀'

// Surface draws frames onto a tcell screen.
type Surface struct {
	screen tcell.Screen
}

// NewSurface wraps an initialized tcell screen.
func NewSurface(screen tcell.Screen) *Surface {
	return &Surface{screen: screen}
}

// Size returns the pixel size the terminal can show: one column per pixel and
// two pixels per row.
func (s *Surface) Size() boxfolk.Size {
	cols, rows := s.screen.Size()
	return boxfolk.Size{Width: cols, Height: rows * 2}
}

// Present samples the frame (nearest neighbour) onto the terminal grid and
// shows it.
func (s *Surface) Present(frame *image.RGBA) {
	cols, rows := s.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	b := frame.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	ph := rows * 2
	for y := 0; y < rows; y++ {
		sy0 := b.Min.Y + (2*y)*b.Dy()/ph
		sy1 := b.Min.Y + (2*y+1)*b.Dy()/ph
		for x := 0; x < cols; x++ {
			sx := b.Min.X + x*b.Dx()/cols
			top := pixelColor(frame, sx, sy0)
			bottom := pixelColor(frame, sx, sy1)
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			s.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
	s.screen.Show()
}

func pixelColor(img *image.RGBA, x, y int) tcell.Color {
	i := img.PixOffset(x, y)
	p := img.Pix[i : i+3 : i+3]
	return tcell.NewRGBColor(int32(p[0]), int32(p[1]), int32(p[2]))
}

// Config controls the terminal host.
type Config struct {
	// Hz is the tick rate. Defaults to 30.
	Hz int
	// Script, when set, is stepped once per tick.
	Script *boxfolk.ScriptRunner
}

// Run ticks the driver and draws requested frames to the terminal until ctx is
// done, the driver stops, or Escape / Ctrl-C is pressed. The viewport should
// have been created with s as its surface. Terminal resizes are applied
// between ticks.
func Run(ctx context.Context, s *Surface, v *boxfolk.Viewport, d *boxfolk.Driver, cfg Config) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 30
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	events := pollEvents(ctx, s.screen)

	v.SetPixelRatio(1)
	v.OnSurfaceResize(s.Size())
	v.RequestFrame()

	t := time.NewTicker(time.Second / time.Duration(cfg.Hz))
	defer t.Stop()
	dt := 1 / float64(cfg.Hz)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return ctx.Err()
			}
			if quit := handleEvent(s, v, ev); quit {
				return nil
			}
		case <-t.C:
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
		}
	}
}

// pollEvents forwards screen events until ctx is done or the screen is
// finalized. The returned channel is closed when the reader exits.
func pollEvents(ctx context.Context, screen tcell.Screen) <-chan tcell.Event {
	events := make(chan tcell.Event, 16)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil || ctx.Err() != nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return events
}

// handleEvent applies resizes and reports whether the user asked to quit.
func handleEvent(s *Surface, v *boxfolk.Viewport, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		s.screen.Sync()
		v.OnSurfaceResize(s.Size())
		v.RequestFrame()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		}
	}
	return false
}
