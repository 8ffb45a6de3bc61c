package raster

import (
	"image"
	"image/color"

	"ies-solid-renderer/internal/mathutil"
	"ies-solid-renderer/internal/palette"
	"ies-solid-renderer/internal/solid"
	"ies-solid-renderer/internal/viewmatrix"
)

// Options controls RenderSolid.
type Options struct {
	Size        int // output edge length in pixels
	Supersample int // render at Size*Supersample; callers downsample
	Margin      int // empty border at output resolution
	Camera      viewmatrix.Camera
	Ramp        *palette.Ramp // nil selects palette.Default
	Light       *LightConfig  // nil selects DefaultLightConfig
}

// RenderSolid rasterises a photometric solid to a square NRGBA image of
// Size*Supersample pixels. Each vertex is coloured from the ramp by its
// intensity relative to the brightest direction.
func RenderSolid(m solid.Mesh, opts Options) *image.NRGBA {
	ss := max(opts.Supersample, 1)
	renderSize := opts.Size * ss
	fb := NewFrameBuffer(renderSize, renderSize)
	if m.TriangleCount() == 0 {
		return fb.Image()
	}

	lc := DefaultLightConfig()
	if opts.Light != nil {
		lc = *opts.Light
	}
	ramp := opts.Ramp
	if ramp == nil {
		ramp = palette.Default()
	}

	frame := viewmatrix.Fit(m, opts.Camera.View, renderSize, opts.Margin*ss)
	px, py, pz := viewmatrix.ProjectVertices(m, opts.Camera, frame)
	verts, lit := shadeVertices(m, opts.Camera.View, px, py, pz, ramp, &lc)

	for t := 0; t < m.TriangleCount(); t++ {
		var tri [3]Vertex
		flat := false
		for k := 0; k < 3; k++ {
			i := int(m.Indices[3*t+k])
			tri[k] = verts[i]
			flat = flat || !lit[i]
		}
		if flat {
			s := lc.ComputeShade(faceNormal(m, opts.Camera.View, m.Indices[3*t:3*t+3]))
			for k := range tri {
				tri[k].Shade = s
			}
		}
		RasterizeTriangle(fb, tri, &lc)
	}
	return fb.Image()
}

// shadeVertices projects, colours and lights every vertex. lit[i] is false
// for vertices without a usable normal; their triangles are flat shaded.
func shadeVertices(m solid.Mesh, view mathutil.Mat3, px, py, pz []float64, ramp *palette.Ramp, lc *LightConfig) ([]Vertex, []bool) {
	intensity := m.Intensities()
	verts := make([]Vertex, len(px))
	lit := make([]bool, len(px))
	for i := range verts {
		c := ramp.At(intensity[i])
		verts[i] = Vertex{
			X:     px[i],
			Y:     py[i],
			Z:     pz[i],
			Color: linear(c),
			Alpha: c.A,
		}
		n := m.Normal(i)
		if n.Len() < 0.5 {
			continue
		}
		verts[i].Shade = lc.ComputeShade(view.MulVec3(n))
		lit[i] = true
	}
	return verts, lit
}

// faceNormal returns the view-space normal of a triangle, or the zero
// vector when it is degenerate.
func faceNormal(m solid.Mesh, view mathutil.Mat3, idx []uint32) mathutil.Vec3 {
	p0 := view.MulVec3(m.Position(int(idx[0])))
	p1 := view.MulVec3(m.Position(int(idx[1])))
	p2 := view.MulVec3(m.Position(int(idx[2])))
	return p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
}

func linear(c color.NRGBA) [3]float64 {
	return [3]float64{srgbToLinear[c.R], srgbToLinear[c.G], srgbToLinear[c.B]}
}
