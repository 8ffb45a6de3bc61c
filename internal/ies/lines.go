package ies

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// SplitLines splits content on delim. The returned lines share memory with
// content. A trailing carriage return is dropped from every line, and the
// last line is kept even when content does not end with delim.
func SplitLines(content string, delim byte) []string {
	if content == "" {
		return nil
	}
	lines := make([]string, 0, strings.Count(content, string(delim))+1)
	for len(content) > 0 {
		i := strings.IndexByte(content, delim)
		if i < 0 {
			lines = append(lines, strings.TrimSuffix(content, "\r"))
			break
		}
		lines = append(lines, strings.TrimSuffix(content[:i], "\r"))
		content = content[i+1:]
	}
	return lines
}

// Scanner reads whitespace or comma separated tokens from a slice of lines.
// A read that exhausts the current line continues on the next one, so a
// logical field may wrap across any number of physical lines.
type Scanner struct {
	lines []string
	line  int
	col   int
}

// NewScanner returns a scanner positioned at the start of the first line.
func NewScanner(lines []string) *Scanner {
	return &Scanner{lines: lines}
}

// Seek moves the scanner to the start of line i (0-based).
func (s *Scanner) Seek(i int) {
	s.line = i
	s.col = 0
}

// Line returns the 1-based number of the line the scanner is on.
func (s *Scanner) Line() int {
	if s.line >= len(s.lines) {
		return len(s.lines)
	}
	return s.line + 1
}

func isSeparator(c byte) bool {
	return c == ' ' || c == '\t' || c == ',' || c == '\r' || c == '\f' || c == '\v'
}

// skip moves to the start of the next token. It reports false at the end
// of input.
func (s *Scanner) skip() bool {
	for s.line < len(s.lines) {
		l := s.lines[s.line]
		for s.col < len(l) && isSeparator(l[s.col]) {
			s.col++
		}
		if s.col < len(l) {
			return true
		}
		s.line++
		s.col = 0
	}
	return false
}

// next returns the next token, moving to later lines as needed.
func (s *Scanner) next() (string, bool) {
	if !s.skip() {
		return "", false
	}
	l := s.lines[s.line]
	start := s.col
	for s.col < len(l) && !isSeparator(l[s.col]) {
		s.col++
	}
	return l[start:s.col], true
}

// prealloc bounds the capacity reserved up front. Counts come from the
// file and are not trusted until the tokens have been read.
func prealloc(n int) int {
	return max(min(n, 4096), 0)
}

// Words reads n raw tokens.
func (s *Scanner) Words(n int) ([]string, error) {
	out := make([]string, 0, prealloc(n))
	for len(out) < n {
		tok, ok := s.next()
		if !ok {
			return out, fmt.Errorf("want %d values, got %d: %w", n, len(out), io.ErrUnexpectedEOF)
		}
		out = append(out, tok)
	}
	return out, nil
}

// Floats reads n numeric tokens.
func (s *Scanner) Floats(n int) ([]float64, error) {
	out := make([]float64, 0, prealloc(n))
	for len(out) < n {
		tok, ok := s.next()
		if !ok {
			return out, fmt.Errorf("want %d values, got %d: %w", n, len(out), io.ErrUnexpectedEOF)
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return out, fmt.Errorf("value %d of %d: %w", len(out)+1, n, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Ints reads n integer tokens. Integral values written with a decimal
// point ("2.0") are accepted.
func (s *Scanner) Ints(n int) ([]int, error) {
	fs, err := s.Floats(n)
	out := make([]int, len(fs))
	for i, f := range fs {
		if f != math.Trunc(f) || math.Abs(f) >= math.MaxInt64 {
			return out[:i], fmt.Errorf("value %d of %d: %v is not an integer", i+1, n, f)
		}
		out[i] = int(f)
	}
	return out, err
}

// Float reads a single numeric token.
func (s *Scanner) Float() (float64, error) {
	v, err := s.Floats(1)
	if err != nil {
		return 0, err
	}
	return v[0], nil
}

// Int reads a single integer token.
func (s *Scanner) Int() (int, error) {
	v, err := s.Ints(1)
	if err != nil {
		return 0, err
	}
	return v[0], nil
}
