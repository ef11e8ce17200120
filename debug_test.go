package boxfolk

import "testing"

func TestSetDebugModePropagates(t *testing.T) {
	v := NewViewport(nil, Size{Width: 10, Height: 10})
	v.SetDebugMode(true)
	if !v.debug || !v.graph.debug {
		t.Error("debug mode should reach the graph")
	}
	v.SetDebugMode(false)
	if v.debug || v.graph.debug {
		t.Error("debug mode should be cleared")
	}
}

func TestDebugDeepTreeDoesNotPanic(t *testing.T) {
	v := NewViewport(nil, Size{Width: 10, Height: 10})
	v.SetDebugMode(true)
	g := v.Graph()
	prev := g.Root()
	for i := 0; i < debugMaxTreeDepth+2; i++ {
		id := g.NewGroup("deep")
		g.AddChild(prev, id)
		prev = id
	}
	v.DrawFrame()
	if v.Frames() != 1 {
		t.Errorf("Frames = %d, want 1", v.Frames())
	}
}
