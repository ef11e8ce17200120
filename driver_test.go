package boxfolk

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestDriverCallbackOrder(t *testing.T) {
	d := NewDriver()
	var order []int
	for i := 0; i < 3; i++ {
		i := i
		if got := d.OnTick(func(float64) { order = append(order, i) }); got != i {
			t.Errorf("OnTick index = %d, want %d", got, i)
		}
	}
	d.Tick(1.0 / 60)
	if len(order) != 3 || order[0] != 0 || order[1] != 1 || order[2] != 2 {
		t.Errorf("order = %v, want [0 1 2]", order)
	}
	if d.Ticks() != 1 {
		t.Errorf("Ticks = %d, want 1", d.Ticks())
	}
}

func TestDriverLoopsAdvanceBeforeCallbacks(t *testing.T) {
	d := NewDriver()
	x := 0.0
	d.Animate(NewLoop(1, RepeatForever, false).Tween(&x, 1, ease.Linear))
	var seen float64
	d.OnTick(func(float64) { seen = x })
	d.Tick(0.5)
	assertApprox(t, "seen", seen, 0.5)
}

func TestDriverDropsFinishedLoops(t *testing.T) {
	d := NewDriver()
	x, y := 0.0, 0.0
	d.Animate(NewLoop(0.5, 0, false).Tween(&x, 1, nil))
	d.Animate(NewLoop(1, RepeatForever, false).Tween(&y, 1, nil))
	d.Tick(0.5)
	if d.NumLoops() != 1 {
		t.Errorf("NumLoops = %d, want 1", d.NumLoops())
	}
}

func TestDriverStop(t *testing.T) {
	d := NewDriver()
	x := 0.0
	l := NewLoop(1, RepeatForever, false).Tween(&x, 1, ease.Linear)
	d.Animate(l)
	calls := 0
	d.OnTick(func(float64) { calls++ })
	d.Tick(0.25)
	d.Stop()

	if !d.Stopped() || !l.Done {
		t.Fatal("Stop should end the driver and its loops")
	}
	before := x
	d.Tick(0.25)
	if calls != 1 || x != before || d.Ticks() != 1 {
		t.Errorf("tick after Stop ran: calls=%d x=%v ticks=%d", calls, x, d.Ticks())
	}
}
