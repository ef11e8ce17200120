package boxfolk

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// TPS is the tick rate. Defaults to ebiten.DefaultTPS.
	TPS int
	// PixelRatio overrides the monitor's device scale factor when > 0.
	PixelRatio float64
	// Script, when set, is stepped once per tick.
	Script *ScriptRunner
	// ShowFPS draws an FPS/TPS overlay in the top-left corner.
	ShowFPS bool
}

// ebitenSurface uploads frames into an offscreen ebiten image which is then
// drawn onto the screen each Draw.
type ebitenSurface struct {
	img *ebiten.Image
}

func (s *ebitenSurface) Present(frame *image.RGBA) {
	b := frame.Bounds()
	if s.img == nil || s.img.Bounds().Size() != b.Size() {
		if s.img != nil {
			s.img.Deallocate()
		}
		s.img = ebiten.NewImage(b.Dx(), b.Dy())
	}
	s.img.WritePixels(frame.Pix)
}

func (s *ebitenSurface) draw(screen *ebiten.Image) {
	if s.img == nil {
		return
	}
	src := s.img.Bounds()
	dst := screen.Bounds()
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(float64(dst.Dx())/float64(src.Dx()), float64(dst.Dy())/float64(src.Dy()))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(s.img, &op)
}

// game implements ebiten.Game around a Viewport and Driver.
type game struct {
	v       *Viewport
	d       *Driver
	surf    *ebitenSurface
	script  *ScriptRunner
	dt      float64
	ratio   float64
	fps     *fpsOverlay
	showFPS bool
}

func (g *game) Update() error {
	if g.d.Stopped() {
		return ebiten.Termination
	}
	g.d.Tick(g.dt)
	if g.script != nil {
		g.script.Step(g.v, g.d)
	}
	if g.showFPS {
		if g.fps == nil {
			g.fps = newFPSOverlay()
		}
		g.fps.update(g.dt, g.v)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.v.FrameRequested() {
		g.v.DrawFrame()
	}
	g.surf.draw(screen)
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	ratio := g.ratio
	if ratio <= 0 {
		ratio = ebiten.Monitor().DeviceScaleFactor()
	}
	g.v.SetPixelRatio(ratio)
	if g.v.Size() != (Size{Width: outsideWidth, Height: outsideHeight}) {
		g.v.OnSurfaceResize(Size{Width: outsideWidth, Height: outsideHeight})
		g.v.RequestFrame()
	}
	return g.v.BackingSize()
}

// Run opens a resizable window and drives the viewport until the window is
// closed or the driver is stopped. The viewport's surface is replaced by the
// window.
func Run(v *Viewport, d *Driver, cfg RunConfig) error {
	surf := &ebitenSurface{}
	v.surface = surf
	if cfg.Width <= 0 {
		cfg.Width = v.Size().Width
	}
	if cfg.Height <= 0 {
		cfg.Height = v.Size().Height
	}
	if cfg.TPS <= 0 {
		cfg.TPS = ebiten.DefaultTPS
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	g := &game{
		v:       v,
		d:       d,
		surf:    surf,
		script:  cfg.Script,
		dt:      1 / float64(cfg.TPS),
		ratio:   cfg.PixelRatio,
		showFPS: cfg.ShowFPS,
	}
	v.RequestFrame()
	return ebiten.RunGame(g)
}
