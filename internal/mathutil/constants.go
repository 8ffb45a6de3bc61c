package mathutil

import "math"

// Camera presets for previews of a photometric solid. Y is the luminaire's
// vertical axis (vertical angle 0°).
var (
	// ViewIso looks at the solid from 30° around and 25° off the horizon.
	ViewIso = Mat3Mul(RotX(Deg2Rad(-25)), RotY(Deg2Rad(30)))

	// ViewFront looks along -Z.
	ViewFront = Mat3Identity()

	// ViewSide looks along -X.
	ViewSide = RotY(math.Pi / 2)

	// ViewTop looks straight down the vertical axis.
	ViewTop = RotX(math.Pi / 2)
)

// AngleDist returns the shortest angular distance between two angles in degrees (0–180).
func AngleDist(a, b float64) float64 {
	d := math.Mod(a-b, 360)
	if d < 0 {
		d += 360
	}
	if d > 180 {
		return 360 - d
	}
	return d
}
