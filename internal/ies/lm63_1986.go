package ies

import "strings"

// FamilyPrefix starts the first line of every revision after 1986.
const FamilyPrefix = "IESNA"

// ParserLegacy reads pre-1991 files, which carry no signature. Labels are
// "KEY: value" lines, and the first line packs a test identifier and a
// "DATE:" field together.
type ParserLegacy struct{}

// layoutLegacy is the pre-1991 numeric section. Early files already
// carry the ten-value header and the ballast line.
var layoutLegacy = headerLayout{
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

func (ParserLegacy) Standard() Standard { return LM63_1986 }

// Matches accepts anything outside the IESNA family, so it must be tried
// last.
func (ParserLegacy) Matches(firstLine string) bool {
	return !strings.HasPrefix(firstLine, FamilyPrefix)
}

func (ParserLegacy) Parse(filename, content string) (*Document, error) {
	lines := SplitLines(content, '\n')
	tilt, ok := findTilt(lines, 0)
	if !ok {
		return nil, newParseError(filename, len(lines), ErrMalformedHeader, errNoTilt)
	}

	b := newLabelBuilder()
	if tilt > 0 {
		splitFirstLine(b, lines[0])
		if at, err := colonSyntax.parse(b, lines, 1, tilt); err != nil {
			return nil, newParseError(filename, at+1, ErrLabelSectionUnparseable, err)
		}
	}

	raw, err := readRawSection(filename, lines, tilt, layoutLegacy)
	if err != nil {
		return nil, err
	}
	return assemble(LM63_1986, filename, content, b.build(), raw)
}

// splitFirstLine separates the leading test field from a trailing DATE:
// field. Text without a keyword of its own is stored under TEST.
func splitFirstLine(b *labelBuilder, line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	head, date, found := strings.Cut(line, "DATE:")
	head = strings.TrimSpace(head)
	if head != "" {
		if colonSyntax.isKey(head) {
			key, value, _ := colonSyntax.split(head)
			b.insert(key, value)
		} else {
			b.insert("TEST", head)
		}
	}
	if found {
		b.insert("DATE", strings.TrimSpace(date))
	}
}
