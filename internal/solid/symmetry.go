package solid

import (
	"ies-solid-renderer/internal/ies"
	"ies-solid-renderer/internal/mathutil"

	"gonum.org/v1/gonum/floats/scalar"
)

// DefaultSweepSteps is the number of rotation steps used to turn a single
// vertical profile into a solid of revolution.
const DefaultSweepSteps = 36

const angleTol = 1e-6

// FlipLeft mirrors g across the plane holding the vertical axis and the
// 90° horizontal direction (x → -x, horizontal angle h → 180-h). The
// mirrored rows are prepended in reverse order.
func FlipLeft(g Grid) Grid {
	return mirror(g, 0)
}

// FlipBack mirrors g across the plane holding the vertical axis and the
// 0° horizontal direction (z → -z, horizontal angle h → -h). The mirrored
// rows are prepended in reverse order.
func FlipBack(g Grid) Grid {
	return mirror(g, 2)
}

func mirror(g Grid, axis int) Grid {
	out := make(Grid, 0, 2*len(g))
	for r := len(g) - 1; r >= 0; r-- {
		row := make([]mathutil.Vec3, len(g[r]))
		for c, p := range g[r] {
			p[axis] = -p[axis]
			row[c] = p
		}
		out = append(out, row)
	}
	return append(out, g...)
}

// Sweep rotates a single vertical profile about the Y axis through 360° in
// steps increments. The first and last rows coincide so the surface closes.
func Sweep(profile []mathutil.Vec3, steps int) Grid {
	if steps < 3 {
		steps = DefaultSweepSteps
	}
	g := make(Grid, steps+1)
	for r := range g {
		rot := mathutil.RotY(mathutil.Deg2Rad(360 * float64(r) / float64(steps)))
		row := make([]mathutil.Vec3, len(profile))
		for c, p := range profile {
			row[c] = rot.MulVec3(p)
		}
		g[r] = row
	}
	return g
}

// spans reports whether the horizontal angles run from lo to hi.
func spans(horizontal []float64, lo, hi float64) bool {
	return len(horizontal) > 1 &&
		scalar.EqualWithinAbs(horizontal[0], lo, angleTol) &&
		scalar.EqualWithinAbs(horizontal[len(horizontal)-1], hi, angleTol)
}

// Symmetrize reconstructs the full horizontal sweep of a luminaire that was
// measured over part of it. horizontal holds the measured angles in row
// order. When both mirrors apply, FlipBack runs first so the rows of the
// result stay in angular order.
func Symmetrize(g Grid, typ ies.PhotometricType, horizontal []float64, sweepSteps int) Grid {
	switch typ {
	case ies.TypeA, ies.TypeB:
		switch {
		case spans(horizontal, 0, 90):
			return FlipLeft(FlipBack(g))
		case spans(horizontal, -90, 90):
			return FlipLeft(g)
		}
	case ies.TypeC:
		switch {
		case len(horizontal) == 1 && scalar.EqualWithinAbs(horizontal[0], 0, angleTol):
			return Sweep(g[0], sweepSteps)
		case spans(horizontal, 0, 90):
			return FlipLeft(FlipBack(g))
		case spans(horizontal, 0, 180):
			return FlipBack(g)
		case spans(horizontal, 90, 270):
			return FlipLeft(g)
		}
	}
	return g
}
