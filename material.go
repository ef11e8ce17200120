package boxfolk

import (
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
)

// Material is a diffuse (Lambert) surface description. When built from HSL,
// the HSL components are kept alongside the resolved color so callers can
// read back what was requested.
type Material struct {
	// Hue in degrees [0, 360).
	Hue float64
	// Saturation in [0, 1].
	Saturation float64
	// Lightness in [0, 1].
	Lightness float64

	Color Color
}

// NewHSLMaterial creates a Lambert material from hue (degrees), saturation
// and lightness (both in [0, 1]).
func NewHSLMaterial(hue, saturation, lightness float64) *Material {
	c := colorful.Hsl(hue, saturation, lightness)
	return &Material{
		Hue:        hue,
		Saturation: saturation,
		Lightness:  lightness,
		Color:      Color{R: c.R, G: c.G, B: c.B, A: 1},
	}
}

// NewColorMaterial creates a Lambert material with a fixed color.
func NewColorMaterial(c Color) *Material {
	h, s, l := c.colorful().Hsl()
	return &Material{Hue: h, Saturation: s, Lightness: l, Color: c}
}

const (
	headSaturation = 0.30
	headLightMin   = 0.40
	headLightMax   = 0.65
	bodySaturation = 0.85
	bodyLightness  = 0.50
)

// randomRange returns a uniform value in [lo, hi).
func randomRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// RandomHeadMaterial draws the skin-like tone used for heads, arms and legs:
// random hue, 30% saturation, lightness in [40%, 65%).
func RandomHeadMaterial(rng *rand.Rand) *Material {
	hue := randomRange(rng, 0, 360)
	light := randomRange(rng, headLightMin, headLightMax)
	return NewHSLMaterial(hue, headSaturation, light)
}

// RandomBodyMaterial draws the saturated shirt tone used for bodies:
// random hue, 85% saturation, 50% lightness.
func RandomBodyMaterial(rng *rand.Rand) *Material {
	return NewHSLMaterial(randomRange(rng, 0, 360), bodySaturation, bodyLightness)
}
