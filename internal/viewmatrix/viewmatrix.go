package viewmatrix

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"ies-solid-renderer/internal/mathutil"
	"ies-solid-renderer/internal/solid"
)

// DefaultFOV is the field of view used for perspective projection.
const DefaultFOV = 45.0

var presets = map[string]mathutil.Mat3{
	"iso":   mathutil.ViewIso,
	"front": mathutil.ViewFront,
	"side":  mathutil.ViewSide,
	"top":   mathutil.ViewTop,
}

// Preset returns the view matrix for a named camera. Names are case
// insensitive; "" selects iso.
func Preset(name string) (mathutil.Mat3, error) {
	if name == "" {
		name = "iso"
	}
	m, ok := presets[strings.ToLower(name)]
	if !ok {
		return mathutil.Mat3{}, fmt.Errorf("viewmatrix: unknown view %q (want one of %s)", name, strings.Join(PresetNames(), ", "))
	}
	return m, nil
}

// PresetNames lists the camera names Preset accepts.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Camera describes how a mesh is placed on screen.
type Camera struct {
	View        mathutil.Mat3
	Perspective bool
	FOV         float64 // degrees; 0 means DefaultFOV
}

// Frame is the screen placement computed by Fit.
type Frame struct {
	Center [3]float64 // view-space centre of the mesh
	Scale  float64    // view units to pixels
	Size   int        // square viewport in pixels
}

// Fit centres the mesh and scales it so its larger screen extent fills
// size minus margin pixels on each side.
func Fit(m solid.Mesh, view mathutil.Mat3, size, margin int) Frame {
	lo := [3]float64{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi := [3]float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	n := m.VertexCount()
	for i := 0; i < n; i++ {
		t := view.MulVec3(m.Position(i))
		for k := 0; k < 3; k++ {
			lo[k] = math.Min(lo[k], t[k])
			hi[k] = math.Max(hi[k], t[k])
		}
	}
	if n == 0 {
		lo, hi = [3]float64{}, [3]float64{}
	}

	center := [3]float64{
		(lo[0] + hi[0]) / 2,
		(lo[1] + hi[1]) / 2,
		(lo[2] + hi[2]) / 2,
	}
	span := math.Max(hi[0]-lo[0], hi[1]-lo[1])
	if span < 0.001 {
		span = 0.001
	}
	return Frame{
		Center: center,
		Scale:  float64(size-2*margin) / span,
		Size:   size,
	}
}

// ProjectVertices transforms mesh vertices to screen coordinates.
// Returns px, py, pz slices (screen X, screen Y, depth).
func ProjectVertices(m solid.Mesh, cam Camera, f Frame) ([]float64, []float64, []float64) {
	n := m.VertexCount()
	px := make([]float64, n)
	py := make([]float64, n)
	pz := make([]float64, n)

	half := float64(f.Size) / 2
	R := cam.View

	var camDist, zCenter float64
	if cam.Perspective {
		fov := cam.FOV
		if fov == 0 {
			fov = DefaultFOV
		}
		halfFOV := mathutil.Deg2Rad(fov / 2)

		zMin, zMax, xyMax := math.Inf(1), math.Inf(-1), 0.0
		for i := 0; i < n; i++ {
			t := R.MulVec3(m.Position(i))
			zMin = math.Min(zMin, t[2])
			zMax = math.Max(zMax, t[2])
			for k := 0; k < 2; k++ {
				xyMax = math.Max(xyMax, math.Abs(t[k]-f.Center[k]))
			}
		}
		zCenter = (zMin + zMax) / 2
		if xyMax < 0.001 {
			xyMax = 0.001
		}
		camDist = xyMax / math.Tan(halfFOV)
	}

	for i := 0; i < n; i++ {
		t := R.MulVec3(m.Position(i))

		if cam.Perspective {
			depth := math.Max(camDist-(t[2]-zCenter), 0.1)
			factor := camDist / depth
			t[0] = (t[0]-f.Center[0])*factor + f.Center[0]
			t[1] = (t[1]-f.Center[1])*factor + f.Center[1]
		}

		px[i] = (t[0]-f.Center[0])*f.Scale + half
		py[i] = -(t[1]-f.Center[1])*f.Scale + half
		pz[i] = t[2]
	}
	return px, py, pz
}
