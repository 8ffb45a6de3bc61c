// Package solid turns a photometric angle grid into a triangle mesh of the
// photometric solid: the surface whose distance from the origin in each
// direction is the luminous intensity in that direction.
package solid

import (
	"math"

	"ies-solid-renderer/internal/mathutil"
)

// Grid is a lattice of points. Rows follow horizontal angles and columns
// follow vertical angles.
type Grid [][]mathutil.Vec3

// Rows returns the number of rows.
func (g Grid) Rows() int { return len(g) }

// Cols returns the number of columns, or 0 for an empty grid.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// At returns the point at row r, column c.
func (g Grid) At(r, c int) mathutil.Vec3 { return g[r][c] }

// Directions returns the unit vector for every (horizontal, vertical) pair.
// Vertical angle V gives (sin V, cos V, 0), which is then rotated by the
// horizontal angle about the Y axis. Angles are in degrees.
func Directions(vertical, horizontal []float64) Grid {
	g := make(Grid, len(horizontal))
	for r, h := range horizontal {
		rot := mathutil.RotY(mathutil.Deg2Rad(h))
		row := make([]mathutil.Vec3, len(vertical))
		for c, v := range vertical {
			rad := mathutil.Deg2Rad(v)
			row[c] = rot.MulVec3(mathutil.Vec3{math.Sin(rad), math.Cos(rad), 0})
		}
		g[r] = row
	}
	return g
}

// Scale multiplies each direction by its candela value. candelas is read
// row-major, one row of len(dirs[0]) values per direction row.
func Scale(dirs Grid, candelas []float64) Grid {
	cols := dirs.Cols()
	g := make(Grid, len(dirs))
	for r, row := range dirs {
		out := make([]mathutil.Vec3, len(row))
		for c, d := range row {
			out[c] = d.Scale(candelas[r*cols+c])
		}
		g[r] = out
	}
	return g
}
