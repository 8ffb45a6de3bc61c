package ies

import "strings"

// Signature2002 starts the first line of an LM-63-2002 file.
const Signature2002 = "IESNA:LM-63-2002"

// Parser2002 reads IESNA LM-63-2002 files: bracketed keywords with [MORE]
// continuations.
type Parser2002 struct{}

// layout2002 is the numeric section of a 2002 file: ten header values,
// then ballast factor, ballast-lamp factor and input watts.
var layout2002 = headerLayout{
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

func (Parser2002) Standard() Standard { return LM63_2002 }

func (Parser2002) Matches(firstLine string) bool {
	return strings.HasPrefix(firstLine, Signature2002)
}

func (Parser2002) Parse(filename, content string) (*Document, error) {
	lines := SplitLines(content, '\n')
	tilt, ok := findTilt(lines, 1)
	if !ok {
		return nil, newParseError(filename, len(lines), ErrMalformedHeader, errNoTilt)
	}

	b := newLabelBuilder()
	if at, err := bracketSyntax.parse(b, lines, 1, tilt); err != nil {
		return nil, newParseError(filename, at+1, ErrLabelSectionUnparseable, err)
	}

	raw, err := readRawSection(filename, lines, tilt, layout2002)
	if err != nil {
		return nil, err
	}
	return assemble(LM63_2002, filename, content, b.build(), raw)
}
