package ies

// headerLayout is a revision's numeric schema: the position of every field
// among the values that follow the tilt data, from the lamp count through
// the input watts. Each strategy declares its own so revisions can diverge
// without touching the others.
type headerLayout struct {
	fields int

	lampCount       int
	lumensPerLamp   int
	multiplier      int
	verticalCount   int
	horizontalCount int
	photometricType int
	units           int
	width           int
	length          int
	height          int
	ballast         int
	ballastLamp     int
	inputWatts      int
}

// rawSection is the numeric part of a file read token by token. Field
// meaning comes from layout.
type rawSection struct {
	layout     headerLayout
	tilt       Tilt
	headerLine int
	header     []float64
	vertical   []float64
	horiz      []float64
	candelas   []float64 // unscaled
}

func (r rawSection) field(pos int) float64 { return r.header[pos] }

// readRawSection reads from the TILT line at index tilt to the end of the
// candela grid.
func readRawSection(filename string, lines []string, tilt int, layout headerLayout) (rawSection, error) {
	raw := rawSection{layout: layout}
	sc := NewScanner(lines)
	sc.Seek(tilt + 1)

	t, err := readTilt(lines[tilt], sc)
	if err != nil {
		return raw, newParseError(filename, sc.Line(), ErrMalformedHeader, err)
	}
	raw.tilt = t

	sc.skip()
	raw.headerLine = sc.Line()
	if raw.header, err = sc.Floats(layout.fields); err != nil {
		return raw, newParseError(filename, sc.Line(), ErrMalformedHeader, err)
	}

	counts, err := integral(raw.field(layout.verticalCount), raw.field(layout.horizontalCount))
	if err != nil {
		return raw, newParseError(filename, raw.headerLine, ErrMalformedHeader, err)
	}
	nv, nh := counts[0], counts[1]
	if err := checkCounts(nv, nh); err != nil {
		return raw, newParseError(filename, raw.headerLine, ErrMalformedHeader, err)
	}

	if raw.vertical, raw.horiz, raw.candelas, err = readAngleBlock(sc, nv, nh); err != nil {
		return raw, newParseError(filename, sc.Line(), ErrIncompleteAngleData, err)
	}
	return raw, nil
}

// scale multiplies the candela grid in place.
func (r *rawSection) scale(f float64) {
	for i := range r.candelas {
		r.candelas[i] *= f
	}
}
