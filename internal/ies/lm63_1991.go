package ies

import "strings"

// Signature1991 starts the first line of an LM-63-1991 file.
const Signature1991 = "IESNA91"

// bracketSyntax91 has no [MORE] keyword; a repeated keyword or an
// unbracketed line continues the previous value instead.
var bracketSyntax91 = labelSyntax{
	isKey: bracketSyntax.isKey,
	split: bracketSyntax.split,
}

// Parser1991 reads IESNA LM-63-1991 files.
type Parser1991 struct{}

// layout1991 fields.
var layout1991 = headerLayout{
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

func (Parser1991) Standard() Standard { return LM63_1991 }

func (Parser1991) Matches(firstLine string) bool {
	return strings.HasPrefix(firstLine, Signature1991)
}

func (Parser1991) Parse(filename, content string) (*Document, error) {
	lines := SplitLines(content, '\n')
	tilt, ok := findTilt(lines, 1)
	if !ok {
		return nil, newParseError(filename, len(lines), ErrMalformedHeader, errNoTilt)
	}

	b := newLabelBuilder()
	if at, err := bracketSyntax91.parse(b, lines, 1, tilt); err != nil {
		return nil, newParseError(filename, at+1, ErrLabelSectionUnparseable, err)
	}

	raw, err := readRawSection(filename, lines, tilt, layout1991)
	if err != nil {
		return nil, err
	}
	return assemble(LM63_1991, filename, content, b.build(), raw)
}
