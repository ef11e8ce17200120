package boxfolk

import (
	"image"
	"time"
)

// Surface receives finished frames. The image is owned by the Viewport and
// reused for the next frame, so implementations must copy what they keep.
type Surface interface {
	Present(frame *image.RGBA)
}

// MaxPixelRatio caps the device pixel ratio used for the backing buffer.
const MaxPixelRatio = 2.0

// Viewport is the top-level render object that owns the drawable surface,
// one camera, the lights and the scene graph.
type Viewport struct {
	surface Surface
	graph   *Graph
	camera  *Camera

	Ambient AmbientLight
	Sun     DirectionalLight

	// ClearColor fills the frame before the scene is drawn.
	ClearColor Color

	size       Size
	pixelRatio float64

	fb             frameBuffer
	frameRequested bool
	frames         uint64
	debug          bool

	// ScreenshotDir is where queued screenshots are written.
	ScreenshotDir string
	// ScreenshotFormat selects the encoder: "png", "webp" or "tga".
	ScreenshotFormat string
	screenshotQueue  []string
}

// NewViewport creates a viewport drawing to surface at the given logical size.
// The camera uses a 75° vertical field of view, 0.1/1000 clip planes, and sits
// at z = 5 looking at the origin. surface may be nil, in which case frames
// are only kept in memory (see Frame).
func NewViewport(surface Surface, size Size) *Viewport {
	aspect, ok := size.Aspect()
	if !ok {
		aspect = 1
	}
	return &Viewport{
		surface:          surface,
		graph:            NewGraph(),
		camera:           newCamera(aspect),
		Ambient:          defaultAmbient,
		Sun:              defaultSun,
		ClearColor:       ColorBlack,
		size:             size,
		pixelRatio:       1,
		ScreenshotDir:    "screenshots",
		ScreenshotFormat: FormatPNG,
	}
}

// Graph returns the scene graph. Its root is the scene container.
func (v *Viewport) Graph() *Graph {
	return v.graph
}

// Camera returns the viewport's camera.
func (v *Viewport) Camera() *Camera {
	return v.camera
}

// Size returns the current logical surface size.
func (v *Viewport) Size() Size {
	return v.size
}

// OnSurfaceResize records the new logical size and recomputes the camera
// aspect. Scene content is untouched; calling it repeatedly with the same size
// is a no-op. A non-positive height keeps the previous aspect.
func (v *Viewport) OnSurfaceResize(size Size) {
	v.size = size
	if aspect, ok := size.Aspect(); ok {
		v.camera.SetAspect(aspect)
	}
}

// SetPixelRatio sets the device pixel ratio, capped at MaxPixelRatio.
// Non-positive values reset it to 1.
func (v *Viewport) SetPixelRatio(ratio float64) {
	switch {
	case ratio <= 0:
		ratio = 1
	case ratio > MaxPixelRatio:
		ratio = MaxPixelRatio
	}
	v.pixelRatio = ratio
}

// PixelRatio returns the effective device pixel ratio.
func (v *Viewport) PixelRatio() float64 {
	return v.pixelRatio
}

// BackingSize returns the framebuffer size in device pixels.
func (v *Viewport) BackingSize() (int, int) {
	w := int(float64(v.size.Width)*v.pixelRatio + 0.5)
	h := int(float64(v.size.Height)*v.pixelRatio + 0.5)
	return max(w, 1), max(h, 1)
}

// AddToScene attaches a node under the scene container.
func (v *Viewport) AddToScene(id NodeID) {
	v.graph.AddChild(v.graph.Root(), id)
}

// RequestFrame asks the host to call DrawFrame before the next present.
func (v *Viewport) RequestFrame() {
	v.frameRequested = true
}

// FrameRequested reports whether a redraw is pending.
func (v *Viewport) FrameRequested() bool {
	return v.frameRequested
}

// Frames returns how many frames have been drawn.
func (v *Viewport) Frames() uint64 {
	return v.frames
}

// Frame returns the most recently drawn frame, or nil before the first
// DrawFrame. The image is reused by later frames.
func (v *Viewport) Frame() *image.RGBA {
	return v.fb.img
}

// SetDebugMode enables or disables debug mode. When enabled, per-frame timing
// stats are logged to stderr and tree depth warnings are printed.
func (v *Viewport) SetDebugMode(enabled bool) {
	v.debug = enabled
	v.graph.debug = enabled
}

// DrawFrame resizes the backing buffer to the logical size times the capped
// pixel ratio, renders the scene through the camera, presents the result to
// the surface and writes any queued screenshots.
func (v *Viewport) DrawFrame() {
	var stats debugStats
	var t0 time.Time
	if v.debug {
		t0 = time.Now()
	}

	bw, bh := v.BackingSize()
	v.fb.resize(bw, bh)
	v.fb.clear(v.ClearColor)
	v.graph.UpdateWorldTransforms()

	if v.debug {
		stats.transformTime = time.Since(t0)
		t0 = time.Now()
	}

	lt := newLighting(&v.Ambient, &v.Sun)
	cam := v.camera
	fb := &v.fb
	v.graph.Walk(v.graph.Root(), func(n *Node) bool {
		if !n.Visible {
			return false
		}
		if n.Type == NodeTypeMesh {
			fb.drawMesh(n, cam, &lt, &stats.raster)
		}
		return true
	})

	if v.debug {
		stats.rasterTime = time.Since(t0)
		t0 = time.Now()
	}

	if v.surface != nil {
		v.surface.Present(v.fb.img)
	}
	v.flushScreenshots(v.fb.img)

	if v.debug {
		stats.presentTime = time.Since(t0)
		v.debugLog(stats)
	}

	v.frameRequested = false
	v.frames++
}
