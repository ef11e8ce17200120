package boxfolk

import "math"

// Geometry is an indexed triangle list in local space with one outward
// normal per triangle (flat shading).
type Geometry struct {
	Name      string
	Vertices  []Vec3
	Triangles [][3]uint16
	Normals   []Vec3

	bounds      Box3
	boundsDirty bool
}

// Box3 is an axis-aligned bounding box.
type Box3 struct {
	Min, Max Vec3
}

// Size returns the extent of the box along each axis.
func (b Box3) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// NewBoxGeometry creates a box of the given width (X), height (Y) and depth
// (Z) centered on the origin.
func NewBoxGeometry(width, height, depth float64) *Geometry {
	hx, hy, hz := width/2, height/2, depth/2
	g := &Geometry{
		Name: "box",
		Vertices: []Vec3{
			{-hx, -hy, -hz}, // 0
			{hx, -hy, -hz},  // 1
			{hx, hy, -hz},   // 2
			{-hx, hy, -hz},  // 3
			{-hx, -hy, hz},  // 4
			{hx, -hy, hz},   // 5
			{hx, hy, hz},    // 6
			{-hx, hy, hz},   // 7
		},
		boundsDirty: true,
	}

	// Each face is wound counter-clockwise when viewed from outside.
	faces := []struct {
		quad   [4]uint16
		normal Vec3
	}{
		{[4]uint16{4, 5, 6, 7}, Vec3{0, 0, 1}},  // +Z
		{[4]uint16{1, 0, 3, 2}, Vec3{0, 0, -1}}, // -Z
		{[4]uint16{5, 1, 2, 6}, Vec3{1, 0, 0}},  // +X
		{[4]uint16{0, 4, 7, 3}, Vec3{-1, 0, 0}}, // -X
		{[4]uint16{7, 6, 2, 3}, Vec3{0, 1, 0}},  // +Y
		{[4]uint16{0, 1, 5, 4}, Vec3{0, -1, 0}}, // -Y
	}
	for _, f := range faces {
		q := f.quad
		g.addTriangle(q[0], q[1], q[2], f.normal)
		g.addTriangle(q[0], q[2], q[3], f.normal)
	}
	return g
}

// Segment limits for NewSphereGeometry. (maxSphereHeight-1)*maxSphereWidth+2
// vertices must stay addressable by uint16 indices.
const (
	maxSphereWidth  = 512
	maxSphereHeight = 128
)

// NewSphereGeometry creates a UV sphere of the given radius centered on the
// origin. widthSegments is clamped to [3, 512] and heightSegments to [2, 128].
func NewSphereGeometry(radius float64, widthSegments, heightSegments int) *Geometry {
	widthSegments = min(max(widthSegments, 3), maxSphereWidth)
	heightSegments = min(max(heightSegments, 2), maxSphereHeight)
	g := &Geometry{Name: "sphere", boundsDirty: true}

	top := uint16(0)
	g.Vertices = append(g.Vertices, Vec3{0, radius, 0})
	for ring := 1; ring < heightSegments; ring++ {
		theta := math.Pi * float64(ring) / float64(heightSegments)
		st, ct := math.Sincos(theta)
		for seg := 0; seg < widthSegments; seg++ {
			phi := 2 * math.Pi * float64(seg) / float64(widthSegments)
			sp, cp := math.Sincos(phi)
			g.Vertices = append(g.Vertices, Vec3{radius * st * sp, radius * ct, radius * st * cp})
		}
	}
	bottom := uint16(len(g.Vertices))
	g.Vertices = append(g.Vertices, Vec3{0, -radius, 0})

	ringStart := func(ring int) uint16 { return uint16(1 + (ring-1)*widthSegments) }
	at := func(ring, seg int) uint16 { return ringStart(ring) + uint16(seg%widthSegments) }

	for seg := 0; seg < widthSegments; seg++ {
		g.addSphereTriangle(top, at(1, seg), at(1, seg+1))
	}
	for ring := 1; ring < heightSegments-1; ring++ {
		for seg := 0; seg < widthSegments; seg++ {
			a, b := at(ring, seg), at(ring, seg+1)
			c, d := at(ring+1, seg), at(ring+1, seg+1)
			g.addSphereTriangle(a, c, d)
			g.addSphereTriangle(a, d, b)
		}
	}
	last := heightSegments - 1
	for seg := 0; seg < widthSegments; seg++ {
		g.addSphereTriangle(bottom, at(last, seg+1), at(last, seg))
	}
	return g
}

func (g *Geometry) addTriangle(a, b, c uint16, normal Vec3) {
	g.Triangles = append(g.Triangles, [3]uint16{a, b, c})
	g.Normals = append(g.Normals, normal)
}

// addSphereTriangle uses the centroid direction as the face normal, which
// points outward for any triangle on a sphere centered at the origin.
func (g *Geometry) addSphereTriangle(a, b, c uint16) {
	centroid := g.Vertices[a].Add(g.Vertices[b]).Add(g.Vertices[c])
	g.addTriangle(a, b, c, centroid.Normalize())
}

// Bounds returns the local-space bounding box, recomputing it if the
// vertices were invalidated.
func (g *Geometry) Bounds() Box3 {
	if g.boundsDirty {
		g.bounds = computeBounds(g.Vertices)
		g.boundsDirty = false
	}
	return g.bounds
}

// InvalidateBounds marks the cached bounds as needing recomputation.
// Call this after modifying Vertices.
func (g *Geometry) InvalidateBounds() {
	g.boundsDirty = true
}

func computeBounds(verts []Vec3) Box3 {
	if len(verts) == 0 {
		return Box3{}
	}
	b := Box3{Min: verts[0], Max: verts[0]}
	for _, v := range verts[1:] {
		b.Min.X = math.Min(b.Min.X, v.X)
		b.Min.Y = math.Min(b.Min.Y, v.Y)
		b.Min.Z = math.Min(b.Min.Z, v.Z)
		b.Max.X = math.Max(b.Max.X, v.X)
		b.Max.Y = math.Max(b.Max.Y, v.Y)
		b.Max.Z = math.Max(b.Max.Z, v.Z)
	}
	return b
}
