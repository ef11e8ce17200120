package boxfolk

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// RepeatForever makes a Loop run until stopped.
const RepeatForever = -1

// Loop animates up to 4 float64 fields simultaneously, optionally repeating
// and playing back and forth (yoyo). Create one with NewLoop, add fields with
// Tween, and call Update(dt) each tick (or register it with a Driver).
//
// One iteration lasts Duration seconds. With Yoyo set, odd iterations play in
// reverse, so a full there-and-back cycle lasts twice Duration. Phase is
// derived from the elapsed time of the current cycle, so completing a cycle
// lands exactly on the start values.
type Loop struct {
	tweens [4]*gween.Tween
	fields [4]*float64
	count  int

	duration float64
	elapsed  float64
	// Repeat is the number of extra iterations; RepeatForever never ends.
	Repeat int
	// Yoyo reverses every odd iteration.
	Yoyo bool
	// Done is set once the last iteration finished or Stop was called.
	Done bool
}

// NewLoop creates a Loop with the given iteration duration in seconds,
// repeat count and yoyo mode.
func NewLoop(duration float64, repeat int, yoyo bool) *Loop {
	return &Loop{duration: duration, Repeat: repeat, Yoyo: yoyo}
}

// Tween adds a field animated from its current value to `to`.
// Panics if more than 4 fields are added.
func (l *Loop) Tween(field *float64, to float64, fn ease.TweenFunc) *Loop {
	if l.count == len(l.tweens) {
		panic("boxfolk: loop animates at most 4 fields")
	}
	if fn == nil {
		fn = ease.OutQuad
	}
	l.tweens[l.count] = gween.New(float32(*field), float32(to), float32(l.duration), fn)
	l.fields[l.count] = field
	l.count++
	return l
}

// Duration returns the length of one iteration in seconds.
func (l *Loop) Duration() float64 {
	return l.duration
}

// Stop ends the loop immediately, leaving the fields at their current values.
func (l *Loop) Stop() {
	l.Done = true
}

// cycle returns the length of one full repeat cycle.
func (l *Loop) cycle() float64 {
	if l.Yoyo {
		return 2 * l.duration
	}
	return l.duration
}

// Update advances the loop by dt seconds and writes the interpolated values
// to the target fields.
func (l *Loop) Update(dt float32) {
	if l.Done || l.count == 0 {
		return
	}
	if l.duration <= 0 {
		// Zero-length loops snap to their end values.
		l.apply(1)
		l.Done = true
		return
	}

	l.elapsed += float64(dt)

	if l.Repeat != RepeatForever {
		total := l.duration * float64(l.Repeat+1)
		if l.elapsed >= total {
			l.elapsed = total
			l.Done = true
		}
	} else if c := l.cycle(); l.elapsed >= c {
		l.elapsed = math.Mod(l.elapsed, c)
	}

	iter := math.Floor(l.elapsed / l.duration)
	local := l.elapsed - iter*l.duration
	if l.Done {
		// Finished exactly at the end of the final iteration.
		iter--
		local = l.duration
	}
	if l.Yoyo && int(iter)%2 == 1 {
		local = l.duration - local
	}
	l.apply(float32(local))
}

func (l *Loop) apply(t float32) {
	for i := 0; i < l.count; i++ {
		val, _ := l.tweens[i].Set(t)
		*l.fields[i] = float64(val)
	}
}
