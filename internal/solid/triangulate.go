package solid

// Triangulate returns index triples covering a rows×cols grid whose points
// are numbered r*cols+c. Each cell (r, c) yields the triangles
// (r,c)-(r+1,c+1)-(r+1,c) and (r,c)-(r,c+1)-(r+1,c+1).
func Triangulate(rows, cols int) []uint32 {
	if rows < 2 || cols < 2 {
		return nil
	}
	idx := make([]uint32, 0, 6*(rows-1)*(cols-1))
	for r := 0; r < rows-1; r++ {
		for c := 0; c < cols-1; c++ {
			i := uint32(r*cols + c)
			right := i + 1
			down := i + uint32(cols)
			diag := down + 1
			idx = append(idx, i, diag, down, i, right, diag)
		}
	}
	return idx
}
