package boxfolk

import (
	"math"
	"testing"
)

func TestCameraDefaults(t *testing.T) {
	c := newCamera(16.0 / 9.0)
	assertNear(t, "fov", c.FOV, 75)
	assertNear(t, "near", c.Near, 0.1)
	assertNear(t, "far", c.Far, 1000)
	assertVec(t, "position", c.Position, Vec3{0, 0, 5})
}

func TestCameraWorldToScreenCenter(t *testing.T) {
	c := newCamera(960.0 / 540.0)
	sx, sy, depth, ok := c.WorldToScreen(Vec3{}, 960, 540)
	if !ok {
		t.Fatal("origin should be visible")
	}
	assertNear(t, "sx", sx, 480)
	assertNear(t, "sy", sy, 270)
	assertNear(t, "depth", depth, 0.2)
}

func TestCameraWorldToScreenAxes(t *testing.T) {
	c := newCamera(1)
	sx, sy, _, ok := c.WorldToScreen(Vec3{1, 1, 0}, 100, 100)
	if !ok {
		t.Fatal("point should be visible")
	}
	if sx <= 50 {
		t.Errorf("+X should land right of center, got sx=%v", sx)
	}
	if sy >= 50 {
		t.Errorf("+Y should land above center, got sy=%v", sy)
	}

	// The top edge of the frustum at distance 5 maps to row 0.
	top := 5 * math.Tan(DegreesToRadians(DefaultFOV)/2)
	_, sy, _, _ = c.WorldToScreen(Vec3{0, top, 0}, 100, 100)
	if math.Abs(sy) > 1e-9 {
		t.Errorf("frustum top sy = %v, want 0", sy)
	}
}

func TestCameraBehindNearPlane(t *testing.T) {
	c := newCamera(1)
	if _, _, _, ok := c.WorldToScreen(Vec3{0, 0, 6}, 100, 100); ok {
		t.Error("point behind the camera should not project")
	}
}

func TestCameraSetAspectDirty(t *testing.T) {
	c := newCamera(1)
	p1 := c.ProjectionMatrix()
	c.SetAspect(2)
	p2 := c.ProjectionMatrix()
	assertNear(t, "x scale", p2[0], p1[0]/2)
	assertNear(t, "y scale", p2[5], p1[5])
}

func TestCameraDepthOrdering(t *testing.T) {
	c := newCamera(1)
	_, _, near, _ := c.WorldToScreen(Vec3{0, 0, 1}, 100, 100)
	_, _, far, _ := c.WorldToScreen(Vec3{0, 0, -3}, 100, 100)
	if near <= far {
		t.Errorf("nearer point should have larger depth: near=%v far=%v", near, far)
	}
}
