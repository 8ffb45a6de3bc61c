package solid

import "ies-solid-renderer/internal/mathutil"

// Interpolate inserts n points between every pair of neighbouring grid
// points in both directions, so a rows×cols grid becomes
// ((rows-1)(n+1)+1)×((cols-1)(n+1)+1). dirs and pos must have the same
// shape. New directions are the normalized bilinear blend of the cell's
// corner directions and new lengths are the bilinear blend of the corner
// intensities, which keeps inserted points on the curved solid rather
// than on the flat quad between corners.
func Interpolate(dirs, pos Grid, n int) (Grid, Grid) {
	if n <= 0 || pos.Rows() == 0 || pos.Cols() == 0 {
		return dirs, pos
	}
	step := n + 1
	rows := (pos.Rows()-1)*step + 1
	cols := (pos.Cols()-1)*step + 1

	outDirs := make(Grid, rows)
	outPos := make(Grid, rows)
	for r := 0; r < rows; r++ {
		r0, r1, tr := cellCoord(r, step, pos.Rows())
		dRow := make([]mathutil.Vec3, cols)
		pRow := make([]mathutil.Vec3, cols)
		for c := 0; c < cols; c++ {
			c0, c1, tc := cellCoord(c, step, pos.Cols())

			d := bilerp(dirs[r0][c0], dirs[r0][c1], dirs[r1][c0], dirs[r1][c1], tr, tc)
			mag := lerp(
				lerp(pos[r0][c0].Len(), pos[r0][c1].Len(), tc),
				lerp(pos[r1][c0].Len(), pos[r1][c1].Len(), tc),
				tr,
			)
			if d.Len() < degenerate {
				// Opposing corner directions; fall back to the flat blend.
				dRow[c] = d
				pRow[c] = bilerp(pos[r0][c0], pos[r0][c1], pos[r1][c0], pos[r1][c1], tr, tc)
				continue
			}
			d = d.Normalize()
			dRow[c] = d
			pRow[c] = d.Scale(mag)
		}
		outDirs[r] = dRow
		outPos[r] = pRow
	}
	return outDirs, outPos
}

// InterpolateAngles subdivides a sorted angle list the same way Interpolate
// subdivides grid rows or columns.
func InterpolateAngles(angles []float64, n int) []float64 {
	if n <= 0 || len(angles) < 2 {
		return append([]float64(nil), angles...)
	}
	step := n + 1
	out := make([]float64, (len(angles)-1)*step+1)
	for i := range out {
		i0, i1, t := cellCoord(i, step, len(angles))
		out[i] = lerp(angles[i0], angles[i1], t)
	}
	return out
}

// cellCoord maps output index i onto the source cell (i0, i1) and the
// fraction t between them. The last output index lands on the last source
// point with t = 0.
func cellCoord(i, step, size int) (int, int, float64) {
	i0 := i / step
	t := float64(i%step) / float64(step)
	if i0 >= size-1 {
		return size - 1, size - 1, 0
	}
	return i0, i0 + 1, t
}

func bilerp(p00, p01, p10, p11 mathutil.Vec3, tr, tc float64) mathutil.Vec3 {
	return p00.Lerp(p01, tc).Lerp(p10.Lerp(p11, tc), tr)
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }
