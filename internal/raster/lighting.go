package raster

import (
	"math"

	"ies-solid-renderer/internal/mathutil"
)

// gamma of the sRGB approximation used for palette decode and output.
const gamma = 2.2

// LightConfig is a three-light rig in view space (Y up, camera looking
// down -Z): a key light, a rim light behind the solid and a hemisphere
// fill that brightens faces pointing sideways.
type LightConfig struct {
	Key  mathutil.Vec3
	Rim  mathutil.Vec3
	half mathutil.Vec3 // Blinn-Phong half vector of Key and the view ray

	Ambient  float64
	Fill     float64
	KeyGain  float64
	RimGain  float64
	Specular float64
	Shine    float64
	Exposure float64
}

// DefaultLightConfig returns the rig used for previews.
func DefaultLightConfig() LightConfig {
	return newLightConfig(
		mathutil.Vec3{180, 260, 140},
		mathutil.Vec3{-160, 130, -210},
	)
}

// newLightConfig builds a rig from unnormalised key and rim directions
// with the default gains.
func newLightConfig(key, rim mathutil.Vec3) LightConfig {
	key = key.Normalize()
	view := mathutil.Vec3{0, -110, -400}.Normalize()
	return LightConfig{
		Key:      key,
		Rim:      rim.Normalize(),
		half:     key.Sub(view).Normalize(),
		Ambient:  0.35,
		Fill:     0.40,
		KeyGain:  1.10,
		RimGain:  0.45,
		Specular: 0.35,
		Shine:    16,
		Exposure: 1,
	}
}

// ComputeShade returns the lighting scalar for a unit view-space normal.
// Diffuse terms use |n·l| so inward-wound faces light the same as
// outward ones.
func (lc *LightConfig) ComputeShade(n mathutil.Vec3) float64 {
	diffuse := math.Abs(n.Dot(lc.Key))*lc.KeyGain + math.Abs(n.Dot(lc.Rim))*lc.RimGain
	fill := ((1-math.Abs(n[1]))*0.5 + 0.5) * lc.Fill
	spec := math.Pow(math.Max(n.Dot(lc.half), 0), lc.Shine) * lc.Specular
	return lc.Ambient + fill + diffuse + spec
}

// encode tone maps a lit linear channel to 8-bit sRGB.
func (lc *LightConfig) encode(linear float64) uint8 {
	t := ACESTonemap(linear * lc.Exposure)
	return clamp255(math.Pow(t, 1/gamma) * 255)
}

// srgbToLinear decodes 8-bit palette channels.
var srgbToLinear = func() (lut [256]float64) {
	for i := range lut {
		lut[i] = math.Pow(float64(i)/255, gamma)
	}
	return lut
}()

// ACESTonemap is the Narkowicz fit of the ACES filmic curve.
func ACESTonemap(x float64) float64 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
