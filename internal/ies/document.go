package ies

// Standard identifies the LM-63 revision a file was written against.
type Standard int

const (
	LM63_2002 Standard = iota
	LM63_1995
	LM63_1991
	LM63_1986
)

func (s Standard) String() string {
	switch s {
	case LM63_2002:
		return "LM-63-2002"
	case LM63_1995:
		return "LM-63-1995"
	case LM63_1991:
		return "LM-63-1991"
	case LM63_1986:
		return "LM-63-1986"
	}
	return "unknown"
}

// TiltOrientation is the lamp-to-luminaire geometry of a tilt table.
type TiltOrientation int

const (
	TiltNone TiltOrientation = iota
	TiltVertical
	TiltHorizontal
	TiltHorizontalFixed // horizontal, lamp does not rotate with the luminaire
)

func (o TiltOrientation) String() string {
	switch o {
	case TiltVertical:
		return "vertical"
	case TiltHorizontal:
		return "horizontal"
	case TiltHorizontalFixed:
		return "horizontal (non-rotating)"
	}
	return "none"
}

// Tilt is the candela multiplier table for tilted mountings. The zero
// value means the file declares no tilt data.
type Tilt struct {
	Orientation TiltOrientation
	Count       int
	Angles      []float64
	Multipliers []float64
	File        string // TILT=<file>: table lives in a separate file
}

// Included reports whether the tilt table was read from the file itself.
func (t Tilt) Included() bool { return t.Orientation != TiltNone }

// UnitType is the unit of the luminous opening dimensions.
type UnitType int

const (
	Feet   UnitType = 1
	Meters UnitType = 2
)

func (u UnitType) String() string {
	switch u {
	case Feet:
		return "feet"
	case Meters:
		return "meters"
	}
	return "unknown"
}

// Luminaire holds the lamp and luminous opening parameters.
type Luminaire struct {
	Units         UnitType
	Width         float64
	Length        float64
	Height        float64
	LampCount     int
	LumensPerLamp float64 // -1 for absolute photometry
	InputWatts    float64
}

// Ballast holds the candela correction factors.
type Ballast struct {
	Factor     float64
	LampFactor float64
}

// PhotometricType is the goniometer coordinate convention.
type PhotometricType int

const (
	TypeC PhotometricType = 1
	TypeB PhotometricType = 2
	TypeA PhotometricType = 3
)

func (t PhotometricType) String() string {
	switch t {
	case TypeC:
		return "C"
	case TypeB:
		return "B"
	case TypeA:
		return "A"
	}
	return "?"
}

// PhotometricAngles is the measured intensity grid. Candelas holds one row
// of len(Vertical) values per horizontal angle, already scaled by the
// candela multiplier and both ballast factors.
type PhotometricAngles struct {
	Type       PhotometricType
	Multiplier float64
	Vertical   []float64
	Horizontal []float64
	Candelas   []float64
}

// At returns the candela value at horizontal index h and vertical index v.
func (a PhotometricAngles) At(h, v int) float64 {
	return a.Candelas[h*len(a.Vertical)+v]
}

// MaxCandela returns the largest value in the grid.
func (a PhotometricAngles) MaxCandela() float64 {
	var m float64
	for _, c := range a.Candelas {
		if c > m {
			m = c
		}
	}
	return m
}

// Document is the parsed content of one photometric file.
type Document struct {
	Standard  Standard
	Filename  string
	Source    string
	Labels    Labels
	Tilt      Tilt
	Luminaire Luminaire
	Ballast   Ballast
	Angles    PhotometricAngles
}
