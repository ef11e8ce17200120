package boxfolk

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestHSLMaterialKeepsComponents(t *testing.T) {
	m := NewHSLMaterial(120, 0.5, 0.25)
	assertNear(t, "hue", m.Hue, 120)
	assertNear(t, "saturation", m.Saturation, 0.5)
	assertNear(t, "lightness", m.Lightness, 0.25)
	// hsl(120, 50%, 25%) = rgb(0.125, 0.375, 0.125)
	assertNear(t, "r", m.Color.R, 0.125)
	assertNear(t, "g", m.Color.G, 0.375)
	assertNear(t, "b", m.Color.B, 0.125)
	assertNear(t, "a", m.Color.A, 1)
}

func TestColorMaterialRoundTrip(t *testing.T) {
	m := NewColorMaterial(ColorHex(0xff0000))
	if math.Abs(m.Hue) > 1e-6 || math.Abs(m.Saturation-1) > 1e-6 || math.Abs(m.Lightness-0.5) > 1e-6 {
		t.Errorf("hsl = %v/%v/%v, want 0/1/0.5", m.Hue, m.Saturation, m.Lightness)
	}
}

func TestRandomHeadMaterialRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 200; i++ {
		m := RandomHeadMaterial(rng)
		if m.Hue < 0 || m.Hue >= 360 {
			t.Fatalf("hue %v out of range", m.Hue)
		}
		if m.Saturation != 0.30 {
			t.Fatalf("saturation = %v, want 0.30", m.Saturation)
		}
		if m.Lightness < 0.40 || m.Lightness >= 0.65 {
			t.Fatalf("lightness %v out of [0.40, 0.65)", m.Lightness)
		}
	}
}

func TestRandomBodyMaterialRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 200; i++ {
		m := RandomBodyMaterial(rng)
		if m.Hue < 0 || m.Hue >= 360 {
			t.Fatalf("hue %v out of range", m.Hue)
		}
		if m.Saturation != 0.85 || m.Lightness != 0.50 {
			t.Fatalf("s/l = %v/%v, want 0.85/0.50", m.Saturation, m.Lightness)
		}
	}
}

func TestRandomMaterialsSeeded(t *testing.T) {
	a := RandomHeadMaterial(rand.New(rand.NewPCG(7, 7)))
	b := RandomHeadMaterial(rand.New(rand.NewPCG(7, 7)))
	if a.Hue != b.Hue || a.Lightness != b.Lightness {
		t.Error("same seed should draw the same tone")
	}
}

func TestColorHex(t *testing.T) {
	c := ColorHex(0x9eaeff)
	assertNear(t, "r", c.R, float64(0x9e)/255)
	assertNear(t, "g", c.G, float64(0xae)/255)
	assertNear(t, "b", c.B, 1)
	if got := c.toRGBA(); got.R != 0x9e || got.G != 0xae || got.B != 0xff || got.A != 0xff {
		t.Errorf("toRGBA = %v", got)
	}
}
