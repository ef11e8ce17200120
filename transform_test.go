package boxfolk

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertVec(t *testing.T, name string, got, want Vec3) {
	t.Helper()
	if math.Abs(got.X-want.X) > 1e-6 || math.Abs(got.Y-want.Y) > 1e-6 || math.Abs(got.Z-want.Z) > 1e-6 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want Mat4) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

// --- computeLocalTransform ---

func TestLocalTransformIdentity(t *testing.T) {
	g := NewGraph()
	n := g.Node(g.NewGroup("test"))
	assertMatrix(t, "identity", computeLocalTransform(n), identityTransform)
}

func TestLocalTransformTranslation(t *testing.T) {
	g := NewGraph()
	n := g.Node(g.NewGroup("test"))
	n.SetPosition(1, 2, 3)
	assertVec(t, "translation", computeLocalTransform(n).Translation(), Vec3{1, 2, 3})
}

func TestLocalTransformScale(t *testing.T) {
	g := NewGraph()
	n := g.Node(g.NewGroup("test"))
	n.SetScale(2, 3, 4)
	assertVec(t, "scaled point", computeLocalTransform(n).MulPoint(Vec3{1, 1, 1}), Vec3{2, 3, 4})
}

func TestLocalTransformRotationY90(t *testing.T) {
	g := NewGraph()
	n := g.Node(g.NewGroup("test"))
	n.SetRotation(0, math.Pi/2, 0)
	// +X turns toward -Z about +Y.
	assertVec(t, "x axis", computeLocalTransform(n).MulDir(Vec3{1, 0, 0}), Vec3{0, 0, -1})
	assertVec(t, "z axis", computeLocalTransform(n).MulDir(Vec3{0, 0, 1}), Vec3{1, 0, 0})
}

func TestLocalTransformRotationZ90(t *testing.T) {
	g := NewGraph()
	n := g.Node(g.NewGroup("test"))
	n.SetRotation(0, 0, math.Pi/2)
	assertVec(t, "x axis", computeLocalTransform(n).MulDir(Vec3{1, 0, 0}), Vec3{0, 1, 0})
	assertVec(t, "down", computeLocalTransform(n).MulDir(Vec3{0, -1, 0}), Vec3{1, 0, 0})
}

func TestComposeMatchesRotationOrder(t *testing.T) {
	rx := composeTRS(Vec3{}, Vec3{X: 0.3}, Vec3{1, 1, 1})
	ry := composeTRS(Vec3{}, Vec3{Y: -0.7}, Vec3{1, 1, 1})
	rz := composeTRS(Vec3{}, Vec3{Z: 1.1}, Vec3{1, 1, 1})
	got := composeTRS(Vec3{}, Vec3{0.3, -0.7, 1.1}, Vec3{1, 1, 1})
	assertMatrix(t, "Rx*Ry*Rz", got, rx.Mul(ry).Mul(rz))
}

func TestMulIdentity(t *testing.T) {
	m := composeTRS(Vec3{1, 2, 3}, Vec3{0.1, 0.2, 0.3}, Vec3{2, 2, 2})
	assertMatrix(t, "m*I", m.Mul(identityTransform), m)
	assertMatrix(t, "I*m", identityTransform.Mul(m), m)
}

func TestInvertRigid(t *testing.T) {
	m := composeTRS(Vec3{4, -1, 2}, Vec3{0.5, 1.0, -0.25}, Vec3{1, 1, 1})
	assertMatrix(t, "m*inv", m.Mul(invertRigid(m)), identityTransform)
}

// --- World transforms ---

func TestWorldTransformParentChild(t *testing.T) {
	g := NewGraph()
	parent := g.NewGroup("parent")
	child := g.NewGroup("child")
	g.AddChild(g.Root(), parent)
	g.AddChild(parent, child)
	g.Node(parent).SetPosition(4, 0, 0)
	g.Node(parent).SetRotation(0, math.Pi/2, 0)
	g.Node(child).SetPosition(0, 0, 1)

	g.UpdateWorldTransforms()

	// Child's +1 Z offset is rotated onto +X.
	assertVec(t, "child origin", g.Node(child).LocalToWorld(Vec3{}), Vec3{5, 0, 0})
}

func TestDirtyFlagSkipsClean(t *testing.T) {
	g := NewGraph()
	id := g.NewGroup("n")
	g.AddChild(g.Root(), id)
	g.Node(id).SetPosition(1, 0, 0)
	g.UpdateWorldTransforms()

	// Writing the field without marking dirty is not picked up.
	g.Node(id).Position.X = 99
	g.UpdateWorldTransforms()
	assertNear(t, "x", g.Node(id).WorldTransform().Translation().X, 1)

	g.Node(id).MarkDirty()
	g.UpdateWorldTransforms()
	assertNear(t, "x", g.Node(id).WorldTransform().Translation().X, 99)
}

func TestParentRecomputedPropagates(t *testing.T) {
	g := NewGraph()
	parent := g.NewGroup("parent")
	child := g.NewGroup("child")
	g.AddChild(g.Root(), parent)
	g.AddChild(parent, child)
	g.Node(child).SetPosition(0, 1, 0)
	g.UpdateWorldTransforms()

	g.Node(parent).SetPosition(0, 10, 0)
	g.UpdateWorldTransforms()
	assertNear(t, "child y", g.Node(child).WorldTransform().Translation().Y, 11)
}

func TestDeepHierarchy(t *testing.T) {
	g := NewGraph()
	prev := g.Root()
	var last NodeID
	for i := 0; i < 10; i++ {
		id := g.NewGroup("n")
		g.Node(id).SetPosition(1, 0, 0)
		g.AddChild(prev, id)
		prev, last = id, id
	}
	g.UpdateWorldTransforms()
	assertNear(t, "x", g.Node(last).WorldTransform().Translation().X, 10)
}

func TestSettersDirty(t *testing.T) {
	g := NewGraph()
	n := g.Node(g.NewGroup("n"))
	setters := map[string]func(){
		"SetPosition": func() { n.SetPosition(1, 1, 1) },
		"SetRotation": func() { n.SetRotation(1, 1, 1) },
		"SetScale":    func() { n.SetScale(2, 2, 2) },
		"MarkDirty":   func() { n.MarkDirty() },
	}
	for name, set := range setters {
		n.transformDirty = false
		set()
		if !n.transformDirty {
			t.Errorf("%s did not mark the node dirty", name)
		}
	}
}

func BenchmarkUpdateWorldTransform1k(b *testing.B) {
	g := NewGraph()
	for i := 0; i < 1000; i++ {
		id := g.NewGroup("n")
		g.AddChild(g.Root(), id)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Node(g.Root()).MarkDirty()
		g.UpdateWorldTransforms()
	}
}
