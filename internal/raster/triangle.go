package raster

import "math"

// Vertex is a projected vertex ready for rasterisation.
type Vertex struct {
	X, Y, Z float64    // screen position and view depth
	Color   [3]float64 // linear base colour
	Alpha   uint8
	Shade   float64 // lighting scalar from ComputeShade
}

// RasterizeTriangle fills one triangle with z-buffering, interpolating the
// lit linear colour of its corners across the face (Gouraud shading),
// then tone mapping and sRGB encoding each pixel.
//
// This is the hot path; the pixel loop does not allocate.
func RasterizeTriangle(fb *FrameBuffer, v [3]Vertex, lc *LightConfig) {
	x0, y0, z0 := v[0].X, v[0].Y, v[0].Z
	x1, y1, z1 := v[1].X, v[1].Y, v[1].Z
	x2, y2, z2 := v[2].X, v[2].Y, v[2].Z

	minX := max(int(math.Min(math.Min(x0, x1), x2)), 0)
	maxX := min(int(math.Max(math.Max(x0, x1), x2))+1, fb.Width-1)
	minY := max(int(math.Min(math.Min(y0, y1), y2)), 0)
	maxY := min(int(math.Max(math.Max(y0, y1), y2))+1, fb.Height-1)
	if minX > maxX || minY > maxY {
		return
	}

	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	var lit [3][3]float64
	for i := range v {
		for k := 0; k < 3; k++ {
			lit[i][k] = v[i].Color[k] * v[i].Shade
		}
	}
	a0, a1, a2 := float64(v[0].Alpha), float64(v[1].Alpha), float64(v[2].Alpha)

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) - y2
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + sx
			if z <= fb.ZBuf[zIdx] {
				continue
			}

			a := clamp255(w0*a0 + w1*a1 + w2*a2)
			if a < 8 {
				continue
			}
			fb.ZBuf[zIdx] = z

			pxIdx := zIdx * 4
			for k := 0; k < 3; k++ {
				fb.Color[pxIdx+k] = lc.encode(w0*lit[0][k] + w1*lit[1][k] + w2*lit[2][k])
			}
			fb.Color[pxIdx+3] = a
		}
	}
}
