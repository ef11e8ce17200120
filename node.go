package boxfolk

// NodeID addresses a node inside its Graph. IDs are indices into the graph's
// arena and stay valid for the graph's lifetime.
type NodeID int32

// NoNode is the Parent of a node that is not attached anywhere.
const NoNode NodeID = -1

// Node is the fundamental scene graph element. A single flat struct is used for
// all node types to avoid interface dispatch on the hot path.
type Node struct {
	// Identity
	ID   NodeID
	Name string
	Type NodeType

	// Hierarchy
	Parent   NodeID
	children []NodeID

	// Transform (local)
	Position Vec3
	Rotation Vec3
	Scale    Vec3

	// Computed (unexported, updated by UpdateWorldTransforms)
	worldTransform Mat4
	transformDirty bool

	Visible bool

	// Mesh fields (NodeTypeMesh)
	Geometry *Geometry
	Material *Material
}

// Graph is an arena of nodes with explicit parent indices. Node 0 is the
// root container created by NewGraph.
//
// Pointers returned by Node are only valid until the next node is created,
// since the arena may grow. Hold NodeIDs instead.
type Graph struct {
	nodes []Node
	root  NodeID
	debug bool
}

const defaultGraphCap = 64

// NewGraph creates a graph with a pre-created root container.
func NewGraph() *Graph {
	g := &Graph{nodes: make([]Node, 0, defaultGraphCap)}
	g.root = g.newNode("root", NodeTypeGroup)
	return g
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.Parent = NoNode
	n.Scale = Vec3{1, 1, 1}
	n.Visible = true
	n.transformDirty = true
	n.worldTransform = identityTransform
}

func (g *Graph) newNode(name string, typ NodeType) NodeID {
	id := NodeID(len(g.nodes))
	n := Node{ID: id, Name: name, Type: typ}
	nodeDefaults(&n)
	g.nodes = append(g.nodes, n)
	return id
}

// Root returns the graph's root container.
func (g *Graph) Root() NodeID {
	return g.root
}

// Len returns the number of nodes in the arena, root included.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// NewGroup creates a detached group node with no visual representation.
func (g *Graph) NewGroup(name string) NodeID {
	return g.newNode(name, NodeTypeGroup)
}

// NewMesh creates a detached mesh node drawing geo with mat.
func (g *Graph) NewMesh(name string, geo *Geometry, mat *Material) NodeID {
	id := g.newNode(name, NodeTypeMesh)
	n := &g.nodes[id]
	n.Geometry = geo
	n.Material = mat
	return id
}

// Node returns the node stored at id. Panics if id is out of range.
func (g *Graph) Node(id NodeID) *Node {
	g.checkID(id, "Node")
	return &g.nodes[id]
}

// --- Tree manipulation ---

// AddChild appends child to parent's children.
// If child already has a parent, it is removed from that parent first.
// Panics if either ID is invalid or child is an ancestor of parent (cycle).
func (g *Graph) AddChild(parent, child NodeID) {
	g.checkID(parent, "AddChild (parent)")
	g.checkID(child, "AddChild (child)")
	if g.isAncestor(child, parent) {
		panic("boxfolk: adding child would create a cycle")
	}
	if old := g.nodes[child].Parent; old != NoNode {
		g.removeChildByID(old, child)
	}
	g.nodes[child].Parent = parent
	p := &g.nodes[parent]
	p.children = append(p.children, child)
	g.markSubtreeDirty(child)
	if g.debug {
		g.debugCheckTreeDepth(child)
	}
}

// RemoveChild detaches child from parent.
// Panics if child's parent is not parent.
func (g *Graph) RemoveChild(parent, child NodeID) {
	g.checkID(parent, "RemoveChild (parent)")
	g.checkID(child, "RemoveChild (child)")
	if g.nodes[child].Parent != parent {
		panic("boxfolk: child's parent is not this node")
	}
	g.removeChildByID(parent, child)
	g.nodes[child].Parent = NoNode
	g.markSubtreeDirty(child)
}

// Children returns the child list of id. The returned slice MUST NOT be
// mutated by the caller.
func (g *Graph) Children(id NodeID) []NodeID {
	g.checkID(id, "Children")
	return g.nodes[id].children
}

// NumChildren returns the number of children of id.
func (g *Graph) NumChildren(id NodeID) int {
	return len(g.Children(id))
}

// Walk visits id and its descendants depth-first in child order. Returning
// false from fn skips the node's subtree.
func (g *Graph) Walk(id NodeID, fn func(n *Node) bool) {
	g.checkID(id, "Walk")
	if !fn(&g.nodes[id]) {
		return
	}
	for _, child := range g.nodes[id].children {
		g.Walk(child, fn)
	}
}

// --- Helpers ---

func (g *Graph) checkID(id NodeID, op string) {
	if id < 0 || int(id) >= len(g.nodes) {
		panic("boxfolk: " + op + ": node id out of range")
	}
}

// isAncestor reports whether candidate is node itself or one of its ancestors.
func (g *Graph) isAncestor(candidate, node NodeID) bool {
	for p := node; p != NoNode; p = g.nodes[p].Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByID removes child from parent's children without clearing
// child's Parent.
func (g *Graph) removeChildByID(parent, child NodeID) {
	p := &g.nodes[parent]
	for i, c := range p.children {
		if c == child {
			copy(p.children[i:], p.children[i+1:])
			p.children = p.children[:len(p.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on id and all its descendants.
func (g *Graph) markSubtreeDirty(id NodeID) {
	g.nodes[id].transformDirty = true
	for _, child := range g.nodes[id].children {
		g.markSubtreeDirty(child)
	}
}
