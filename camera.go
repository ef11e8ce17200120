package boxfolk

import "math"

// Default camera parameters.
const (
	DefaultFOV     = 75.0
	DefaultNear    = 0.1
	DefaultFar     = 1000.0
	DefaultCameraZ = 5.0
)

// Camera is a perspective camera looking down its local -Z axis with +Y up.
type Camera struct {
	// FOV is the vertical field of view in degrees.
	FOV float64
	// Aspect is the viewport width divided by its height.
	Aspect float64
	// Near and Far are the clip plane distances.
	Near, Far float64
	// Position is the world-space camera position.
	Position Vec3
	// Rotation is the camera orientation as Euler XYZ radians.
	Rotation Vec3

	projection Mat4
	view       Mat4
	dirty      bool
}

// newCamera creates a Camera with default clip planes and the given aspect.
func newCamera(aspect float64) *Camera {
	return &Camera{
		FOV:      DefaultFOV,
		Aspect:   aspect,
		Near:     DefaultNear,
		Far:      DefaultFar,
		Position: Vec3{0, 0, DefaultCameraZ},
		dirty:    true,
	}
}

// SetAspect updates the aspect ratio and marks the matrices dirty.
func (c *Camera) SetAspect(aspect float64) {
	if c.Aspect == aspect {
		return
	}
	c.Aspect = aspect
	c.dirty = true
}

// MarkDirty forces a recomputation of the projection and view matrices.
// Call this after modifying fields directly.
func (c *Camera) MarkDirty() {
	c.dirty = true
}

// update recomputes the cached matrices if dirty.
func (c *Camera) update() {
	if !c.dirty {
		return
	}
	c.dirty = false

	f := 1 / math.Tan(DegreesToRadians(c.FOV)/2)
	n, fa := c.Near, c.Far
	c.projection = Mat4{
		f / c.Aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (fa + n) / (n - fa), 2 * fa * n / (n - fa),
		0, 0, -1, 0,
	}
	c.view = invertRigid(composeTRS(c.Position, c.Rotation, Vec3{1, 1, 1}))
}

// ProjectionMatrix returns the cached perspective projection matrix.
func (c *Camera) ProjectionMatrix() Mat4 {
	c.update()
	return c.projection
}

// ViewMatrix returns the cached world-to-camera matrix.
func (c *Camera) ViewMatrix() Mat4 {
	c.update()
	return c.view
}

// invertRigid inverts a rotation+translation matrix.
func invertRigid(m Mat4) Mat4 {
	// R^T and -R^T * t
	t := m.Translation()
	inv := Mat4{
		m[0], m[4], m[8], 0,
		m[1], m[5], m[9], 0,
		m[2], m[6], m[10], 0,
		0, 0, 0, 1,
	}
	it := inv.MulDir(t)
	inv[3], inv[7], inv[11] = -it.X, -it.Y, -it.Z
	return inv
}

// WorldToScreen projects a world-space point into pixel coordinates for a
// surface of the given size. ok is false for points behind the near plane.
func (c *Camera) WorldToScreen(p Vec3, width, height int) (sx, sy, depth float64, ok bool) {
	vp := c.ViewMatrix().MulPoint(p)
	if -vp.Z < c.Near {
		return 0, 0, 0, false
	}
	clip, w := c.ProjectionMatrix().MulPoint4(vp)
	nx, ny := clip.X/w, clip.Y/w
	sx = (nx + 1) / 2 * float64(width)
	sy = (1 - ny) / 2 * float64(height)
	return sx, sy, 1 / -vp.Z, true
}
