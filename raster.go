package boxfolk

import (
	"image"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// frameBuffer holds the render target as flat slices for cache locality.
type frameBuffer struct {
	width  int
	height int
	img    *image.RGBA // RGBA interleaved, straight alpha
	zbuf   []float64   // 1/viewDepth per pixel; larger is nearer, 0 is empty
}

// resize reallocates the buffers when the size changed. Returns true if it did.
func (fb *frameBuffer) resize(w, h int) bool {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if fb.img != nil && fb.width == w && fb.height == h {
		return false
	}
	fb.width, fb.height = w, h
	fb.img = image.NewRGBA(image.Rect(0, 0, w, h))
	fb.zbuf = make([]float64, w*h)
	return true
}

// clear fills color with c and resets depth. Uses copy-doubling.
func (fb *frameBuffer) clear(c Color) {
	rgba := c.toRGBA()
	pix := fb.img.Pix
	if len(pix) >= 4 {
		pix[0], pix[1], pix[2], pix[3] = rgba.R, rgba.G, rgba.B, rgba.A
		for i := 4; i < len(pix); i *= 2 {
			copy(pix[i:], pix[:i])
		}
	}
	for i := range fb.zbuf {
		fb.zbuf[i] = 0
	}
}

// screenVertex is a projected vertex: pixel coordinates plus 1/viewDepth,
// which interpolates linearly in screen space.
type screenVertex struct {
	x, y, invZ float64
}

// rasterStats counts work done during one frame.
type rasterStats struct {
	meshes    int
	triangles int
	culled    int
}

// rasterizeTriangle fills a flat-colored triangle with a depth test.
func (fb *frameBuffer) rasterizeTriangle(v0, v1, v2 screenVertex, r, g, b uint8) {
	x0, y0 := v0.x, v0.y
	x1, y1 := v1.x, v1.y
	x2, y2 := v2.x, v2.y

	minX := int(math.Floor(math.Min(math.Min(x0, x1), x2)))
	maxX := int(math.Ceil(math.Max(math.Max(x0, x1), x2)))
	minY := int(math.Floor(math.Min(math.Min(y0, y1), y2)))
	maxY := int(math.Ceil(math.Max(math.Max(y0, y1), y2)))

	if minX < 0 {
		minX = 0
	}
	if maxX > fb.width-1 {
		maxX = fb.width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY > fb.height-1 {
		maxY = fb.height - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-12 && det < 1e-12 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	pix := fb.img.Pix
	stride := fb.img.Stride

	// Pixel loop, sampling at pixel centers.
	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) + 0.5 - y2
		rowOff := sy * fb.width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) + 0.5 - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			z := w0*v0.invZ + w1*v1.invZ + w2*v2.invZ
			zIdx := rowOff + sx
			if z <= fb.zbuf[zIdx] {
				continue
			}
			fb.zbuf[zIdx] = z

			p := sy*stride + sx*4
			pix[p] = r
			pix[p+1] = g
			pix[p+2] = b
			pix[p+3] = 255
		}
	}
}

// drawMesh projects and rasterizes every front-facing triangle of a mesh node.
func (fb *frameBuffer) drawMesh(n *Node, cam *Camera, lt *lighting, stats *rasterStats) {
	geo := n.Geometry
	if geo == nil || n.Material == nil {
		return
	}
	stats.meshes++

	world := n.worldTransform
	view := cam.ViewMatrix()
	proj := cam.ProjectionMatrix()
	ar, ag, ab := n.Material.Color.colorful().LinearRgb()
	albedo := [3]float64{ar, ag, ab}

	w, h := float64(fb.width), float64(fb.height)

	for ti, tri := range geo.Triangles {
		stats.triangles++

		var wp [3]Vec3
		for k := 0; k < 3; k++ {
			wp[k] = world.MulPoint(geo.Vertices[tri[k]])
		}

		normal := world.MulDir(geo.Normals[ti]).Normalize()
		// Back-face cull against the eye direction.
		if normal.Dot(cam.Position.Sub(wp[0])) <= 0 {
			stats.culled++
			continue
		}

		var vv [3]Vec3
		for k := 0; k < 3; k++ {
			vv[k] = view.MulPoint(wp[k])
		}
		poly, np := clipNear(vv, cam.Near)
		if np < 3 {
			stats.culled++
			continue
		}
		var sv [4]screenVertex
		for k := 0; k < np; k++ {
			clip, cw := proj.MulPoint4(poly[k])
			sv[k] = screenVertex{
				x:    (clip.X/cw + 1) / 2 * w,
				y:    (1 - clip.Y/cw) / 2 * h,
				invZ: 1 / -poly[k].Z,
			}
		}

		lit := lt.shade(albedo, normal)
		r, g, b := colorful.LinearRgb(lit[0], lit[1], lit[2]).Clamped().RGB255()
		for k := 1; k+1 < np; k++ {
			fb.rasterizeTriangle(sv[0], sv[k], sv[k+1], r, g, b)
		}
	}
}

// clipNear clips a view-space triangle against the near plane z = -near and
// returns the surviving convex polygon in winding order. A triangle with one
// vertex behind the plane becomes a quad; with two behind, a smaller triangle.
func clipNear(tri [3]Vec3, near float64) (out [4]Vec3, n int) {
	for i := 0; i < 3; i++ {
		a, b := tri[i], tri[(i+1)%3]
		da, db := -a.Z-near, -b.Z-near
		if da >= 0 {
			out[n] = a
			n++
		}
		if (da >= 0) != (db >= 0) {
			t := da / (da - db)
			out[n] = a.Add(b.Sub(a).Scale(t))
			n++
		}
	}
	return out, n
}
