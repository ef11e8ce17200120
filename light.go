package boxfolk

// AmbientLight illuminates every surface uniformly.
type AmbientLight struct {
	Color     Color
	Intensity float64
}

// DirectionalLight shines from Position toward Target with no attenuation,
// like the sun. Only the direction matters.
type DirectionalLight struct {
	Color     Color
	Intensity float64
	Position  Vec3
	Target    Vec3
}

// Direction returns the unit vector pointing from the surface toward the
// light.
func (l *DirectionalLight) Direction() Vec3 {
	return l.Position.Sub(l.Target).Normalize()
}

// Default lights: a dim cool fill and a brighter white key light.
var (
	defaultAmbient = AmbientLight{Color: ColorHex(0x9eaeff), Intensity: 0.5}
	defaultSun     = DirectionalLight{Color: ColorHex(0xffffff), Intensity: 0.8, Position: Vec3{5, 5, 5}}
)

// lighting holds per-frame light terms in linear RGB.
type lighting struct {
	ambient [3]float64
	direct  [3]float64
	dir     Vec3
}

func newLighting(amb *AmbientLight, sun *DirectionalLight) lighting {
	ar, ag, ab := amb.Color.colorful().LinearRgb()
	dr, dg, db := sun.Color.colorful().LinearRgb()
	return lighting{
		ambient: [3]float64{ar * amb.Intensity, ag * amb.Intensity, ab * amb.Intensity},
		direct:  [3]float64{dr * sun.Intensity, dg * sun.Intensity, db * sun.Intensity},
		dir:     sun.Direction(),
	}
}

// shade returns the lit linear RGB for a surface with the given linear albedo
// and world-space unit normal.
func (l *lighting) shade(albedo [3]float64, normal Vec3) [3]float64 {
	ndl := normal.Dot(l.dir)
	if ndl < 0 {
		ndl = 0
	}
	var out [3]float64
	for i := range out {
		out[i] = albedo[i] * (l.ambient[i] + l.direct[i]*ndl)
	}
	return out
}
