package ies

import (
	"fmt"
	"strings"
)

// Strategy parses one revision of the format.
type Strategy interface {
	Standard() Standard
	// Matches reports whether the strategy should attempt a file whose
	// first line is firstLine.
	Matches(firstLine string) bool
	Parse(filename, content string) (*Document, error)
}

// Chain tries strategies in order. The first strategy whose Matches
// accepts the file parses it, and its result is final.
type Chain []Strategy

// DefaultChain lists the revisions newest first with the legacy catch-all
// last.
func DefaultChain() Chain {
	return Chain{Parser2002{}, Parser1995{}, Parser1991{}, ParserLegacy{}}
}

// Parse dispatches content to the first matching strategy.
func (c Chain) Parse(filename, content string) (*Document, error) {
	first := firstLine(content)
	for _, s := range c {
		if s.Matches(first) {
			return s.Parse(filename, content)
		}
	}
	if len(first) > 40 {
		first = first[:40] + "..."
	}
	return nil, newParseError(filename, 1, ErrFormatUnrecognized, fmt.Errorf("first line %q", first))
}

// Parse parses content with DefaultChain.
func Parse(filename, content string) (*Document, error) {
	return DefaultChain().Parse(filename, content)
}

func firstLine(content string) string {
	line, _, _ := strings.Cut(content, "\n")
	return strings.TrimSuffix(line, "\r")
}
