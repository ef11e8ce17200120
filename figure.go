package boxfolk

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/tanema/gween/ease"
)

// Params are a figure's animation variables. The zero value is the default.
type Params struct {
	X, Y, Z     float64
	RY          float64 // yaw of the whole figure, radians
	ArmRotation float64 // arm swing about the depth axis, radians
}

// Figure dimensions and animation constants.
const (
	restY        = -1.5
	yawDuration  = 20.0
	stepDuration = 0.5

	bodyW, bodyH, bodyD = 1, 1.5, 1
	legW, legH          = 0.25, 0.4
	legOffsetX          = 0.22
	legsY               = -1.15
	headSize            = 1.4
	headY               = 1.65
	eyeRadius           = 0.15
	eyeOffsetX          = 0.36
	eyesY, eyesZ        = -0.1, 0.7
	armW, armH          = 0.25, 0.85
	armOffsetX          = 0.8
	armY                = 0.6
	armRestDeg          = 30.0
	eyeColor            = 0x44445c
)

var (
	yawTarget   = 2 * math.Pi
	swingTarget = math.Pi / 2
)

// Sign returns the mirroring factor for part index i: +1 for even, -1 for odd.
func Sign(i int) float64 {
	if i%2 == 0 {
		return 1
	}
	return -1
}

// Parts lists the node IDs of a built figure.
type Parts struct {
	Body     NodeID
	BodyMesh NodeID
	Legs     NodeID
	LegMesh  [2]NodeID
	Head     NodeID
	HeadMesh NodeID
	Eyes     NodeID
	EyeMesh  [2]NodeID
	Arms     [2]NodeID
	ArmMesh  [2]NodeID
}

// Figure is a blocky humanoid assembled from boxes and spheres under one root
// group. Its pose is driven by Params.
type Figure struct {
	params Params

	vp    *Viewport
	drv   *Driver
	graph *Graph
	root  NodeID
	parts Parts
	built bool

	headMaterial *Material
	bodyMaterial *Material
	loops        []*Loop
}

// NewFigure creates a figure, attaches its root to the viewport's scene at
// (params.X, params.Y, params.Z) and draws its two materials from rng. A nil
// rng uses a time-seeded generator. Call Build to create the parts.
func NewFigure(params Params, vp *Viewport, drv *Driver, rng *rand.Rand) *Figure {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	g := vp.Graph()
	f := &Figure{
		params:       params,
		vp:           vp,
		drv:          drv,
		graph:        g,
		root:         g.NewGroup("figure"),
		headMaterial: RandomHeadMaterial(rng),
		bodyMaterial: RandomBodyMaterial(rng),
	}
	vp.AddToScene(f.root)
	g.Node(f.root).SetPosition(params.X, params.Y, params.Z)
	return f
}

// Params returns the figure's live animation variables.
func (f *Figure) Params() *Params {
	return &f.params
}

// Root returns the figure's root group.
func (f *Figure) Root() NodeID {
	return f.root
}

// Parts returns the part node IDs. Only meaningful after Build.
func (f *Figure) Parts() Parts {
	return f.parts
}

// Built reports whether Build has run.
func (f *Figure) Built() bool {
	return f.built
}

// HeadMaterial returns the tone shared by head, arms and legs.
func (f *Figure) HeadMaterial() *Material {
	return f.headMaterial
}

// BodyMaterial returns the body tone.
func (f *Figure) BodyMaterial() *Material {
	return f.bodyMaterial
}

// Loops returns the figure's running animation loops.
func (f *Figure) Loops() []*Loop {
	return f.loops
}

// Build creates the body (with legs), the head (with eyes) and the arms, then
// starts the animation. Calling it again does nothing.
func (f *Figure) Build() {
	if f.built {
		return
	}
	f.built = true
	f.createBody()
	f.createHead()
	f.createArms()
	f.startAnimation()
}

func (f *Figure) createBody() {
	g := f.graph
	f.parts.Body = g.NewGroup("body")
	f.parts.BodyMesh = g.NewMesh("body_main", NewBoxGeometry(bodyW, bodyH, bodyD), f.bodyMaterial)
	g.AddChild(f.parts.Body, f.parts.BodyMesh)
	g.AddChild(f.root, f.parts.Body)

	f.createLegs()
}

func (f *Figure) createLegs() {
	g := f.graph
	legs := g.NewGroup("legs")
	geo := NewBoxGeometry(legW, legH, legW)
	for i := range f.parts.LegMesh {
		leg := g.NewMesh("leg", geo, f.headMaterial)
		g.Node(leg).SetPosition(Sign(i)*legOffsetX, 0, 0)
		g.AddChild(legs, leg)
		f.parts.LegMesh[i] = leg
	}
	g.Node(legs).SetPosition(0, legsY, 0)
	g.AddChild(f.parts.Body, legs)
	f.parts.Legs = legs
}

func (f *Figure) createHead() {
	g := f.graph
	f.parts.Head = g.NewGroup("head")
	f.parts.HeadMesh = g.NewMesh("head_main", NewBoxGeometry(headSize, headSize, headSize), f.headMaterial)
	g.AddChild(f.parts.Head, f.parts.HeadMesh)
	g.AddChild(f.root, f.parts.Head)
	g.Node(f.parts.Head).SetPosition(0, headY, 0)

	f.createEyes()
}

func (f *Figure) createEyes() {
	g := f.graph
	eyes := g.NewGroup("eyes")
	geo := NewSphereGeometry(eyeRadius, 12, 8)
	mat := NewColorMaterial(ColorHex(eyeColor))
	for i := range f.parts.EyeMesh {
		eye := g.NewMesh("eye", geo, mat)
		g.AddChild(eyes, eye)
		g.Node(eye).SetPosition(eyeOffsetX*Sign(i), 0, 0)
		f.parts.EyeMesh[i] = eye
	}
	g.AddChild(f.parts.Head, eyes)
	g.Node(eyes).SetPosition(0, eyesY, eyesZ)
	f.parts.Eyes = eyes
}

// createArms wraps each arm mesh in its own group and shifts the mesh down by
// half its length, so rotating the group pivots at the shoulder.
func (f *Figure) createArms() {
	g := f.graph
	geo := NewBoxGeometry(armW, armH, armW)
	for i := range f.parts.Arms {
		m := Sign(i)
		group := g.NewGroup("arm")
		arm := g.NewMesh("arm_main", geo, f.headMaterial)
		g.AddChild(group, arm)
		g.AddChild(f.parts.Body, group)

		g.Node(arm).SetPosition(0, armH*-0.5, 0)
		gn := g.Node(group)
		gn.SetPosition(m*armOffsetX, armY, 0)
		gn.SetRotation(0, 0, DegreesToRadians(armRestDeg*m))

		f.parts.Arms[i] = group
		f.parts.ArmMesh[i] = arm
	}
}

// startAnimation moves the figure to its resting height and starts the turn
// and the step loops, then registers the per-tick pose update. The arms keep
// their resting angle until the first tick.
func (f *Figure) startAnimation() {
	f.params.Y = restY
	root := f.graph.Node(f.root)
	root.Position.Y = restY
	root.MarkDirty()

	turn := NewLoop(yawDuration, RepeatForever, false).
		Tween(&f.params.RY, yawTarget, ease.OutQuad)
	step := NewLoop(stepDuration, RepeatForever, true).
		Tween(&f.params.Y, 0, ease.OutQuad).
		Tween(&f.params.ArmRotation, swingTarget, ease.OutQuad)
	f.loops = []*Loop{turn, step}

	if f.drv == nil {
		return
	}
	f.drv.Animate(turn)
	f.drv.Animate(step)
	f.drv.OnTick(func(float64) {
		f.UpdatePose()
		f.vp.RequestFrame()
	})
}

// UpdatePose copies the animation variables onto the node transforms: yaw and
// height on the root, mirrored swing on each arm.
func (f *Figure) UpdatePose() {
	g := f.graph
	root := g.Node(f.root)
	root.Rotation.Y = f.params.RY
	root.Position.Y = f.params.Y
	root.MarkDirty()

	if !f.built {
		return
	}
	for i, arm := range f.parts.Arms {
		n := g.Node(arm)
		n.Rotation.Z = f.params.ArmRotation * Sign(i)
		n.MarkDirty()
	}
}
