package ies

import (
	"fmt"
	"math"
	"math/bits"
	"strings"
)

// labelSyntax describes how one revision writes its keyword lines.
// isKey is the stop predicate that ends a multi-line value; split breaks a
// key line into keyword and value.
type labelSyntax struct {
	isKey func(line string) bool
	split func(line string) (key, value string, err error)
	more  string // keyword that continues the previous value, if any
}

var bracketSyntax = labelSyntax{
	isKey: func(line string) bool { return strings.HasPrefix(line, "[") },
	split: func(line string) (string, string, error) {
		end := strings.IndexByte(line, ']')
		if end < 0 {
			return "", "", fmt.Errorf("keyword line %q has no closing bracket", line)
		}
		key := strings.TrimSpace(line[1:end])
		if key == "" {
			return "", "", fmt.Errorf("empty keyword in %q", line)
		}
		return key, strings.TrimSpace(line[end+1:]), nil
	},
	more: "MORE",
}

var colonSyntax = labelSyntax{
	isKey: func(line string) bool {
		i := strings.IndexByte(line, ':')
		return i > 0 && !strings.ContainsAny(line[:i], " \t")
	},
	split: func(line string) (string, string, error) {
		i := strings.IndexByte(line, ':')
		if i <= 0 {
			return "", "", fmt.Errorf("label line %q has no colon", line)
		}
		return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:]), nil
	},
}

// parse reads lines[from:to] into b. Lines that are not key lines extend
// the previous key. It returns the 0-based index of an offending line.
func (ls labelSyntax) parse(b *labelBuilder, lines []string, from, to int) (int, error) {
	for i := from; i < to; i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		if !ls.isKey(line) {
			if !b.extend(line) {
				return i, fmt.Errorf("text %q before any keyword", line)
			}
			continue
		}
		key, value, err := ls.split(line)
		if err != nil {
			return i, err
		}
		if ls.more != "" && key == ls.more {
			if !b.extend(value) {
				return i, fmt.Errorf("[%s] before any keyword", ls.more)
			}
			continue
		}
		b.insert(key, value)
	}
	return 0, nil
}

// findTilt returns the index of the first line at or after from that
// starts with "TILT". It always ends the label section.
func findTilt(lines []string, from int) (int, bool) {
	for i := from; i < len(lines); i++ {
		if strings.HasPrefix(lines[i], "TILT") {
			return i, true
		}
	}
	return 0, false
}

// readTilt interprets the TILT line and, for TILT=INCLUDE, reads the
// orientation, count, angles and multipliers from sc.
func readTilt(line string, sc *Scanner) (Tilt, error) {
	if strings.Contains(line, "=INCLUDE") {
		orientation, err := sc.Int()
		if err != nil {
			return Tilt{}, fmt.Errorf("tilt orientation: %w", err)
		}
		if orientation < int(TiltVertical) || orientation > int(TiltHorizontalFixed) {
			return Tilt{}, fmt.Errorf("tilt orientation %d out of range", orientation)
		}
		count, err := sc.Int()
		if err != nil {
			return Tilt{}, fmt.Errorf("tilt angle count: %w", err)
		}
		if count < 0 {
			return Tilt{}, fmt.Errorf("tilt angle count %d", count)
		}
		angles, err := sc.Floats(count)
		if err != nil {
			return Tilt{}, fmt.Errorf("tilt angles: %w", err)
		}
		mults, err := sc.Floats(count)
		if err != nil {
			return Tilt{}, fmt.Errorf("tilt multipliers: %w", err)
		}
		return Tilt{
			Orientation: TiltOrientation(orientation),
			Count:       count,
			Angles:      angles,
			Multipliers: mults,
		}, nil
	}

	_, value, ok := strings.Cut(line, "=")
	value = strings.TrimSpace(value)
	if !ok || value == "" {
		return Tilt{}, fmt.Errorf("tilt line %q has no value", line)
	}
	if value == "NONE" {
		return Tilt{}, nil
	}
	return Tilt{File: value}, nil
}

// readAngleBlock reads nv vertical angles, nh horizontal angles and the
// nv*nh candela grid.
func readAngleBlock(sc *Scanner, nv, nh int) ([]float64, []float64, []float64, error) {
	vals, err := sc.Floats(nv + nh + nv*nh)
	if err != nil {
		return nil, nil, nil, err
	}
	return vals[:nv:nv], vals[nv : nv+nh : nv+nh], vals[nv+nh:], nil
}

// checkCounts rejects non-positive angle counts and counts whose angle
// block, nv + nh + nv*nh = (nv+1)(nh+1) - 1 values, overflows an int.
func checkCounts(nv, nh int) error {
	switch {
	case nv < 1:
		return fmt.Errorf("vertical angle count %d", nv)
	case nh < 1:
		return fmt.Errorf("horizontal angle count %d", nh)
	}
	hi, lo := bits.Mul64(uint64(nv)+1, uint64(nh)+1)
	if hi != 0 || lo > math.MaxInt {
		return fmt.Errorf("%dx%d angles overflow the candela grid", nv, nh)
	}
	return nil
}

func checkEnums(ptype, units int) error {
	switch {
	case ptype < int(TypeC) || ptype > int(TypeA):
		return fmt.Errorf("photometric type %d out of range", ptype)
	case units != int(Feet) && units != int(Meters):
		return fmt.Errorf("unit type %d out of range", units)
	}
	return nil
}

// checkGrid enforces len(candelas) == len(vertical) * len(horizontal).
func checkGrid(doc *Document) error {
	a := doc.Angles
	if len(a.Candelas) != len(a.Vertical)*len(a.Horizontal) {
		return newParseError(doc.Filename, 0, ErrGridShapeInvariantViolated,
			fmt.Errorf("%d candelas for %dx%d angles", len(a.Candelas), len(a.Vertical), len(a.Horizontal)))
	}
	return nil
}

// integral converts header values that must be whole numbers and fit an
// int.
func integral(vals ...float64) ([]int, error) {
	out := make([]int, len(vals))
	for i, v := range vals {
		if math.Abs(v) >= math.MaxInt64 {
			return nil, fmt.Errorf("value %v out of range", v)
		}
		if v != math.Trunc(v) {
			return nil, fmt.Errorf("expected an integer, got %v", v)
		}
		out[i] = int(v)
	}
	return out, nil
}
