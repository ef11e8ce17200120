package boxfolk

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay draws the measured FPS/TPS and frame count in the window
// corner. The text is refreshed about twice a second.
type fpsOverlay struct {
	img     *ebiten.Image
	elapsed float64
	text    string
}

func newFPSOverlay() *fpsOverlay {
	// 140x48 is enough for three short lines of debug font.
	return &fpsOverlay{img: ebiten.NewImage(140, 48)}
}

func (o *fpsOverlay) update(dt float64, v *Viewport) {
	o.elapsed += dt
	if o.text != "" && o.elapsed < 0.5 {
		return
	}
	o.elapsed = 0
	o.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nFrames: %d", ebiten.ActualFPS(), ebiten.ActualTPS(), v.Frames())

	o.img.Clear()
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, o.text)
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	screen.DrawImage(o.img, nil)
}
