package viewmatrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ies-solid-renderer/internal/mathutil"
	"ies-solid-renderer/internal/solid"
)

func square() solid.Mesh {
	g := solid.Grid{
		{{-1, -1, 0}, {1, -1, 0}},
		{{-1, 1, 0}, {1, 1, 0}},
	}
	return solid.Assemble(g)
}

func TestPreset(t *testing.T) {
	t.Parallel()
	m, err := Preset("")
	require.NoError(t, err)
	assert.Equal(t, mathutil.ViewIso, m)

	m, err = Preset("FRONT")
	require.NoError(t, err)
	assert.Equal(t, mathutil.Mat3Identity(), m)

	_, err = Preset("bottom")
	assert.ErrorContains(t, err, "front, iso, side, top")
	assert.Equal(t, []string{"front", "iso", "side", "top"}, PresetNames())
}

func TestFitAndProject(t *testing.T) {
	t.Parallel()
	m := square()
	cam := Camera{View: mathutil.ViewFront}
	f := Fit(m, cam.View, 100, 10)
	assert.InDelta(t, 40, f.Scale, 1e-9)
	assert.Equal(t, [3]float64{}, f.Center)

	px, py, pz := ProjectVertices(m, cam, f)
	require.Len(t, px, 4)
	// (-1,-1) is bottom-left on screen; screen Y grows downward.
	assert.InDelta(t, 10, px[0], 1e-9)
	assert.InDelta(t, 90, py[0], 1e-9)
	assert.InDelta(t, 90, px[3], 1e-9)
	assert.InDelta(t, 10, py[3], 1e-9)
	assert.InDelta(t, 0, pz[0], 1e-9)
}

func TestProject_PerspectiveKeepsCentre(t *testing.T) {
	t.Parallel()
	g := solid.Grid{
		{{0, 0, -1}, {0, 0, 1}},
		{{1, 0, -1}, {1, 0, 1}},
	}
	m := solid.Assemble(g)
	cam := Camera{View: mathutil.ViewFront, Perspective: true}
	f := Fit(m, cam.View, 200, 0)
	px, _, _ := ProjectVertices(m, cam, f)
	// The nearer point (larger z) is pushed further from the centre.
	assert.Greater(t, px[3], px[2])
}

func TestFit_Empty(t *testing.T) {
	t.Parallel()
	f := Fit(solid.Mesh{}, mathutil.ViewIso, 64, 4)
	assert.Equal(t, 64, f.Size)
	assert.Equal(t, [3]float64{}, f.Center)
}
