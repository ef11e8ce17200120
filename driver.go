package boxfolk

// TickFunc is called once per tick after all loops have advanced.
type TickFunc func(dt float64)

// Driver advances registered loops and runs tick callbacks in registration
// order. It replaces any global ticker: hosts call Tick once per display
// refresh.
type Driver struct {
	loops     []*Loop
	callbacks []TickFunc
	ticks     uint64
	stopped   bool
}

// NewDriver creates an empty driver.
func NewDriver() *Driver {
	return &Driver{}
}

// Animate registers a loop to be advanced every tick. Finished loops are
// dropped on the next tick.
func (d *Driver) Animate(l *Loop) {
	d.loops = append(d.loops, l)
}

// OnTick appends fn to the ordered callback list and returns its position.
func (d *Driver) OnTick(fn TickFunc) int {
	d.callbacks = append(d.callbacks, fn)
	return len(d.callbacks) - 1
}

// Tick advances every loop by dt seconds, then invokes the callbacks in the
// order they were registered. No-op once stopped.
func (d *Driver) Tick(dt float64) {
	if d.stopped {
		return
	}
	live := d.loops[:0]
	for _, l := range d.loops {
		l.Update(float32(dt))
		if !l.Done {
			live = append(live, l)
		}
	}
	for i := len(live); i < len(d.loops); i++ {
		d.loops[i] = nil
	}
	d.loops = live

	for _, fn := range d.callbacks {
		fn(dt)
	}
	d.ticks++
}

// Stop halts every loop and makes further Tick calls no-ops.
func (d *Driver) Stop() {
	for _, l := range d.loops {
		l.Stop()
	}
	d.loops = nil
	d.stopped = true
}

// Stopped reports whether Stop was called.
func (d *Driver) Stopped() bool {
	return d.stopped
}

// Ticks returns the number of completed ticks.
func (d *Driver) Ticks() uint64 {
	return d.ticks
}

// NumLoops returns the number of loops still running.
func (d *Driver) NumLoops() int {
	return len(d.loops)
}
