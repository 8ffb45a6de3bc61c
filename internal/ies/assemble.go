package ies

import "errors"

var errNoTilt = errors.New("no TILT line")

// assemble turns the labels and numeric section of a file into a Document.
func assemble(std Standard, filename, content string, labels Labels, raw rawSection) (*Document, error) {
	l := raw.layout
	enums, err := integral(raw.field(l.lampCount), raw.field(l.photometricType), raw.field(l.units))
	if err != nil {
		return nil, newParseError(filename, raw.headerLine, ErrMalformedHeader, err)
	}
	if err := checkEnums(enums[1], enums[2]); err != nil {
		return nil, newParseError(filename, raw.headerLine, ErrMalformedHeader, err)
	}

	multiplier := raw.field(l.multiplier)
	ballast := Ballast{Factor: raw.field(l.ballast), LampFactor: raw.field(l.ballastLamp)}
	raw.scale(multiplier * ballast.Factor * ballast.LampFactor)

	doc := &Document{
		Standard: std,
		Filename: filename,
		Source:   content,
		Labels:   labels,
		Tilt:     raw.tilt,
		Luminaire: Luminaire{
			Units:         UnitType(enums[2]),
			Width:         raw.field(l.width),
			Length:        raw.field(l.length),
			Height:        raw.field(l.height),
			LampCount:     enums[0],
			LumensPerLamp: raw.field(l.lumensPerLamp),
			InputWatts:    raw.field(l.inputWatts),
		},
		Ballast: ballast,
		Angles: PhotometricAngles{
			Type:       PhotometricType(enums[1]),
			Multiplier: multiplier,
			Vertical:   raw.vertical,
			Horizontal: raw.horiz,
			Candelas:   raw.candelas,
		},
	}
	if err := checkGrid(doc); err != nil {
		return nil, err
	}
	return doc, nil
}
