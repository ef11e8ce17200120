package boxfolk

import "math"

// Mat4 is a 4x4 matrix stored row-major. Points are column vectors, so a
// point p transforms as M * p.
type Mat4 [16]float64

// identityTransform is the identity matrix.
var identityTransform = Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// Mul returns a * b.
func (a Mat4) Mul(b Mat4) Mat4 {
	var m Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[r*4+c] = a[r*4+0]*b[0*4+c] + a[r*4+1]*b[1*4+c] +
				a[r*4+2]*b[2*4+c] + a[r*4+3]*b[3*4+c]
		}
	}
	return m
}

// MulPoint transforms a point (w=1), ignoring the projective row.
func (m Mat4) MulPoint(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3],
		m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7],
		m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11],
	}
}

// MulPoint4 transforms a point (w=1) and also returns the resulting w.
func (m Mat4) MulPoint4(v Vec3) (Vec3, float64) {
	w := m[12]*v.X + m[13]*v.Y + m[14]*v.Z + m[15]
	return m.MulPoint(v), w
}

// MulDir transforms a direction (w=0).
func (m Mat4) MulDir(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		m[4]*v.X + m[5]*v.Y + m[6]*v.Z,
		m[8]*v.X + m[9]*v.Y + m[10]*v.Z,
	}
}

// Translation returns the translation column of m.
func (m Mat4) Translation() Vec3 {
	return Vec3{m[3], m[7], m[11]}
}

// composeTRS builds Translate(pos) * RotateX * RotateY * RotateZ * Scale.
// The rotation order matches an intrinsic XYZ Euler convention.
func composeTRS(pos, rot, scale Vec3) Mat4 {
	sx, cx := math.Sincos(rot.X)
	sy, cy := math.Sincos(rot.Y)
	sz, cz := math.Sincos(rot.Z)

	// R = Rx * Ry * Rz
	r00 := cy * cz
	r01 := -cy * sz
	r02 := sy
	r10 := cx*sz + sx*sy*cz
	r11 := cx*cz - sx*sy*sz
	r12 := -sx * cy
	r20 := sx*sz - cx*sy*cz
	r21 := sx*cz + cx*sy*sz
	r22 := cx * cy

	return Mat4{
		r00 * scale.X, r01 * scale.Y, r02 * scale.Z, pos.X,
		r10 * scale.X, r11 * scale.Y, r12 * scale.Z, pos.Y,
		r20 * scale.X, r21 * scale.Y, r22 * scale.Z, pos.Z,
		0, 0, 0, 1,
	}
}

// computeLocalTransform computes the local matrix from the node's transform
// properties.
func computeLocalTransform(n *Node) Mat4 {
	return composeTRS(n.Position, n.Rotation, n.Scale)
}

// updateWorldTransform recomputes world matrices below id.
// parentRecomputed indicates whether the parent was recomputed this frame,
// which forces recomputation of this node even if it's not dirty.
func (g *Graph) updateWorldTransform(id NodeID, parent Mat4, parentRecomputed bool) {
	n := &g.nodes[id]
	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.worldTransform = parent.Mul(computeLocalTransform(n))
		n.transformDirty = false
	}
	world := n.worldTransform
	for _, child := range n.children {
		g.updateWorldTransform(child, world, recompute)
	}
}

// UpdateWorldTransforms refreshes every cached world matrix that is stale.
func (g *Graph) UpdateWorldTransforms() {
	g.updateWorldTransform(g.root, identityTransform, false)
}

// --- Transform property setters ---

// SetPosition sets the node's local position and marks it dirty.
func (n *Node) SetPosition(x, y, z float64) {
	n.Position = Vec3{x, y, z}
	n.transformDirty = true
}

// SetRotation sets the node's Euler rotation (radians, XYZ order) and marks
// it dirty.
func (n *Node) SetRotation(x, y, z float64) {
	n.Rotation = Vec3{x, y, z}
	n.transformDirty = true
}

// SetScale sets the node's scale and marks it dirty.
func (n *Node) SetScale(x, y, z float64) {
	n.Scale = Vec3{x, y, z}
	n.transformDirty = true
}

// MarkDirty marks the node's transform as dirty, forcing recomputation
// on the next frame. Useful after bulk-setting fields directly.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// WorldTransform returns the cached world matrix. It is current after
// Graph.UpdateWorldTransforms.
func (n *Node) WorldTransform() Mat4 {
	return n.worldTransform
}

// LocalToWorld converts a local-space point to world space using the cached
// world matrix.
func (n *Node) LocalToWorld(p Vec3) Vec3 {
	return n.worldTransform.MulPoint(p)
}
