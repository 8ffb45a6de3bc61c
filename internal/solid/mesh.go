package solid

import (
	"fmt"
	"math"

	"ies-solid-renderer/internal/ies"
	"ies-solid-renderer/internal/mathutil"
)

// FloatsPerVertex is the stride of Mesh.Vertices: position xyz then normal xyz.
const FloatsPerVertex = 6

// Mesh is an indexed triangle list ready for upload or export.
type Mesh struct {
	Vertices []float32
	Indices  []uint32
}

// Options tunes Build.
type Options struct {
	// InterpolationPoints is the number of points inserted between
	// neighbouring measurements in both directions. 0 disables it.
	InterpolationPoints int
	// SweepSteps is the number of rotations used for rotationally
	// symmetric files. 0 selects DefaultSweepSteps.
	SweepSteps int
}

// Build runs the full pipeline: directions, intensity scaling, optional
// interpolation, symmetry completion, triangulation and normals.
func Build(a ies.PhotometricAngles, opts Options) (Mesh, error) {
	nv, nh := len(a.Vertical), len(a.Horizontal)
	if nv == 0 || nh == 0 || len(a.Candelas) != nv*nh {
		return Mesh{}, fmt.Errorf("solid: %w: %d candelas for %dx%d angles",
			ies.ErrGridShapeInvariantViolated, len(a.Candelas), nv, nh)
	}
	if opts.InterpolationPoints < 0 {
		return Mesh{}, fmt.Errorf("solid: negative interpolation points %d", opts.InterpolationPoints)
	}
	steps := opts.SweepSteps
	if steps == 0 {
		steps = DefaultSweepSteps
	}

	dirs := Directions(a.Vertical, a.Horizontal)
	pos := Scale(dirs, a.Candelas)
	if opts.InterpolationPoints > 0 {
		_, pos = Interpolate(dirs, pos, opts.InterpolationPoints)
	}
	pos = Symmetrize(pos, a.Type, a.Horizontal, steps)
	return Assemble(pos), nil
}

// Assemble triangulates g and interleaves positions with their normals.
func Assemble(g Grid) Mesh {
	normals := Normals(g)
	verts := make([]float32, 0, len(normals)*FloatsPerVertex)
	i := 0
	for _, row := range g {
		for _, p := range row {
			pf, nf := p.Float32(), normals[i].Float32()
			verts = append(verts, pf[0], pf[1], pf[2], nf[0], nf[1], nf[2])
			i++
		}
	}
	return Mesh{
		Vertices: verts,
		Indices:  Triangulate(g.Rows(), g.Cols()),
	}
}

func (m Mesh) VertexCount() int { return len(m.Vertices) / FloatsPerVertex }

func (m Mesh) TriangleCount() int { return len(m.Indices) / 3 }

// Position returns the position of vertex i.
func (m Mesh) Position(i int) mathutil.Vec3 {
	v := m.Vertices[i*FloatsPerVertex:]
	return mathutil.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}

// Normal returns the normal of vertex i.
func (m Mesh) Normal(i int) mathutil.Vec3 {
	v := m.Vertices[i*FloatsPerVertex+3:]
	return mathutil.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}

// Bounds returns the axis-aligned box around all vertices. An empty mesh
// yields two zero vectors.
func (m Mesh) Bounds() (lo, hi mathutil.Vec3) {
	n := m.VertexCount()
	if n == 0 {
		return
	}
	lo = mathutil.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi = mathutil.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for i := 0; i < n; i++ {
		p := m.Position(i)
		for k := 0; k < 3; k++ {
			lo[k] = math.Min(lo[k], p[k])
			hi[k] = math.Max(hi[k], p[k])
		}
	}
	return lo, hi
}

// Radius returns the largest vertex distance from the origin, which is the
// peak intensity the mesh represents.
func (m Mesh) Radius() float64 {
	var r float64
	for i := 0; i < m.VertexCount(); i++ {
		r = math.Max(r, m.Position(i).Len())
	}
	return r
}

// Intensities returns each vertex's distance from the origin divided by
// Radius, in [0, 1]. A mesh collapsed onto the origin returns zeros.
func (m Mesh) Intensities() []float64 {
	out := make([]float64, m.VertexCount())
	r := m.Radius()
	if r == 0 {
		return out
	}
	for i := range out {
		out[i] = m.Position(i).Len() / r
	}
	return out
}
