// Package boxfolk renders blocky humanoid figures that walk in place inside a
// small 3D scene.
//
// The package is a self-contained software renderer: a [Viewport] owns a
// scene [Graph], a perspective [Camera], an ambient and a directional light,
// and a z-buffered rasterizer that draws flat-shaded triangles into an
// [image.RGBA]. Finished frames are handed to a [Surface]; hosts are provided
// for an Ebitengine window ([Run]), a headless loop ([RunHeadless]) and the
// terminal (package term).
//
// # Quick start
//
//	vp := boxfolk.NewViewport(nil, boxfolk.Size{Width: 960, Height: 540})
//	drv := boxfolk.NewDriver()
//	for _, x := range []float64{0, 4, -4} {
//		boxfolk.NewFigure(boxfolk.Params{X: x}, vp, drv, nil).Build()
//	}
//	boxfolk.Run(vp, drv, boxfolk.RunConfig{Title: "boxfolk"})
//
// # Scene graph
//
// Nodes live in an arena owned by the [Graph] and are addressed by [NodeID].
// Each node has a local position, Euler XYZ rotation and scale; world matrices
// are cached and only recomputed below nodes marked dirty.
//
//	g := vp.Graph()
//	group := g.NewGroup("pivot")
//	box := g.NewMesh("box", boxfolk.NewBoxGeometry(1, 1, 1), boxfolk.NewHSLMaterial(200, 0.5, 0.5))
//	g.AddChild(group, box)
//	vp.AddToScene(group)
//
// # Figures
//
// A [Figure] is a root group holding a body (with two legs), a head (with two
// eyes) and two arm pivots. Left and right parts are mirrored with [Sign].
// [Figure.Build] creates the parts once and starts two looping animations on
// the [Driver]: a slow 20 second turn and a half-second yoyo step that bobs
// the figure and swings its arms.
//
// # Animation
//
// A [Loop] tweens up to four float64 fields with gween easing, optionally
// repeating forever and playing back and forth. The [Driver] advances every
// registered loop once per host tick and then runs tick callbacks in
// registration order.
//
// # Screenshots and scripts
//
// [Viewport.Screenshot] queues a capture written after the next frame, as
// PNG, WebP or TGA. A [ScriptRunner] loaded from JSON sequences waits,
// resizes, screenshots and a final stop:
//
//	{"steps": [
//		{"action": "wait", "frames": 30},
//		{"action": "screenshot", "label": "idle"},
//		{"action": "resize", "width": 640, "height": 640},
//		{"action": "screenshot", "label": "square"},
//		{"action": "stop"}
//	]}
//
// # Debug mode
//
// [Viewport.SetDebugMode] logs per-frame timings and triangle counts to
// stderr and warns about unusually deep trees.
package boxfolk
