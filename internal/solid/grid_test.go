package solid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"ies-solid-renderer/internal/mathutil"
)

func span(from, to, step float64) []float64 {
	var out []float64
	for a := from; a <= to+1e-9; a += step {
		out = append(out, a)
	}
	return out
}

func uniform(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func assertVec(t *testing.T, want, got mathutil.Vec3, tol float64) {
	t.Helper()
	assert.True(t, floats.EqualApprox(want[:], got[:], tol), "want %v, got %v", want, got)
}

func TestDirections_UnitLength(t *testing.T) {
	t.Parallel()
	g := Directions(span(0, 180, 7.5), span(0, 360, 22.5))
	require.Equal(t, 17, g.Rows())
	require.Equal(t, 25, g.Cols())
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			assert.InDelta(t, 1, g.At(r, c).Len(), 1e-5)
		}
	}
}

func TestDirections_Axes(t *testing.T) {
	t.Parallel()
	g := Directions([]float64{0, 90, 180}, []float64{0, 90})
	assertVec(t, mathutil.Vec3{0, 1, 0}, g.At(0, 0), 1e-12)
	assertVec(t, mathutil.Vec3{1, 0, 0}, g.At(0, 1), 1e-12)
	assertVec(t, mathutil.Vec3{0, -1, 0}, g.At(0, 2), 1e-12)
	assertVec(t, mathutil.Vec3{0, 0, -1}, g.At(1, 1), 1e-12)
}

func TestScale(t *testing.T) {
	t.Parallel()
	dirs := Directions([]float64{0, 90}, []float64{0, 90})
	g := Scale(dirs, []float64{10, 20, 30, 40})
	assertVec(t, mathutil.Vec3{0, 10, 0}, g.At(0, 0), 1e-9)
	assertVec(t, mathutil.Vec3{20, 0, 0}, g.At(0, 1), 1e-9)
	assertVec(t, mathutil.Vec3{0, 30, 0}, g.At(1, 0), 1e-9)
	assertVec(t, mathutil.Vec3{0, 0, -40}, g.At(1, 1), 1e-9)
}

func TestGrid_Empty(t *testing.T) {
	t.Parallel()
	var g Grid
	assert.Zero(t, g.Rows())
	assert.Zero(t, g.Cols())
}
