package ies

import "strings"

// Signature1995 starts the first line of an LM-63-1995 file.
const Signature1995 = "IESNA:LM-63-1995"

// Parser1995 reads IESNA LM-63-1995 files: bracketed keywords with [MORE]
// continuations.
type Parser1995 struct{}

// layout1995 has the same positions as the 2002 revision.
var layout1995 = headerLayout{
	fields:          13,
	lampCount:       0,
	lumensPerLamp:   1,
	multiplier:      2,
	verticalCount:   3,
	horizontalCount: 4,
	photometricType: 5,
	units:           6,
	width:           7,
	length:          8,
	height:          9,
	ballast:         10,
	ballastLamp:     11,
	inputWatts:      12,
}

func (Parser1995) Standard() Standard { return LM63_1995 }

func (Parser1995) Matches(firstLine string) bool {
	return strings.HasPrefix(firstLine, Signature1995)
}

func (Parser1995) Parse(filename, content string) (*Document, error) {
	lines := SplitLines(content, '\n')
	tilt, ok := findTilt(lines, 1)
	if !ok {
		return nil, newParseError(filename, len(lines), ErrMalformedHeader, errNoTilt)
	}

	b := newLabelBuilder()
	if at, err := bracketSyntax.parse(b, lines, 1, tilt); err != nil {
		return nil, newParseError(filename, at+1, ErrLabelSectionUnparseable, err)
	}

	raw, err := readRawSection(filename, lines, tilt, layout1995)
	if err != nil {
		return nil, err
	}
	return assemble(LM63_1995, filename, content, b.build(), raw)
}
