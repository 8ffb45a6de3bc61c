package solid

import (
	"math"

	"ies-solid-renderer/internal/mathutil"
)

const (
	degenerate = 1e-12
	weldTol    = 1e-6 // relative to the largest radius
)

// fan lists the neighbours of a grid point in the order the triangles
// emitted by Triangulate wind around it: top, top-right, right, bottom,
// bottom-left, left. The list wraps from left back to top.
var fan = [...][2]int{
	{1, 0},
	{1, 1},
	{0, 1},
	{-1, 0},
	{-1, -1},
	{0, -1},
}

// Normals returns a unit normal per point of g in row-major order. Each
// normal averages the face normals of the neighbouring triangles that are
// present; degenerate faces are skipped and a point with none gets the
// zero vector. Points that coincide, such as the seam rows left by
// mirroring and sweeping or the points at a pole, share the average of
// their normals.
func Normals(g Grid) []mathutil.Vec3 {
	rows, cols := g.Rows(), g.Cols()
	out := make([]mathutil.Vec3, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out = append(out, pointNormal(g, r, c))
		}
	}
	weld(g, out)
	return out
}

// weld groups coincident points of g and replaces their normals with the
// group average. Points at the origin are left alone.
func weld(g Grid, normals []mathutil.Vec3) {
	var radius float64
	for _, row := range g {
		for _, p := range row {
			radius = math.Max(radius, p.Len())
		}
	}
	if radius < degenerate {
		return
	}
	cell := radius * weldTol

	groups := make(map[[3]int64][]int)
	for r, row := range g {
		for c, p := range row {
			if p.Len() < cell {
				continue
			}
			key := [3]int64{
				int64(math.Round(p[0] / cell)),
				int64(math.Round(p[1] / cell)),
				int64(math.Round(p[2] / cell)),
			}
			groups[key] = append(groups[key], r*len(row)+c)
		}
	}
	for _, idx := range groups {
		if len(idx) < 2 {
			continue
		}
		var sum mathutil.Vec3
		for _, i := range idx {
			sum = sum.Add(normals[i])
		}
		n := sum.Normalize()
		for _, i := range idx {
			normals[i] = n
		}
	}
}

func pointNormal(g Grid, r, c int) mathutil.Vec3 {
	p := g[r][c]
	var edges [len(fan)]mathutil.Vec3
	var ok [len(fan)]bool
	for i, d := range fan {
		nr, nc := r+d[0], c+d[1]
		if nr < 0 || nr >= g.Rows() || nc < 0 || nc >= g.Cols() {
			continue
		}
		edges[i] = g[nr][nc].Sub(p)
		ok[i] = true
	}

	var sum mathutil.Vec3
	n := 0
	for i := range fan {
		j := (i + 1) % len(fan)
		if !ok[i] || !ok[j] {
			continue
		}
		a, b := edges[i], edges[j]
		if a == b || a.Len() < degenerate || b.Len() < degenerate {
			continue
		}
		face := b.Cross(a)
		if face.Len() < degenerate {
			continue
		}
		sum = sum.Add(face.Normalize())
		n++
	}
	if n == 0 {
		return mathutil.Vec3{}
	}
	return sum.Scale(1 / float64(n)).Normalize()
}
