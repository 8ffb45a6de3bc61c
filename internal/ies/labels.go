package ies

import (
	"fmt"
	"strings"
)

// Labels is the ordered keyword section of a photometric file. A keyword
// may carry several values when its text spans several lines. Labels is
// read-only once the parse that built it returns.
type Labels struct {
	keys   []string
	values map[string][]string
}

// Values returns the values stored under key, in file order.
func (l Labels) Values(key string) ([]string, error) {
	v, ok := l.values[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrLabelNotFound, key)
	}
	out := make([]string, len(v))
	copy(out, v)
	return out, nil
}

// Joined returns the values stored under key separated by single spaces.
func (l Labels) Joined(key string) (string, error) {
	v, ok := l.values[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrLabelNotFound, key)
	}
	return strings.Join(v, " "), nil
}

// Get returns the joined value for key, or "" when it is absent.
func (l Labels) Get(key string) string {
	s, _ := l.Joined(key)
	return s
}

// Keys returns the keywords in insertion order.
func (l Labels) Keys() []string {
	out := make([]string, len(l.keys))
	copy(out, l.keys)
	return out
}

// Len returns the number of distinct keywords.
func (l Labels) Len() int { return len(l.keys) }

// labelBuilder accumulates labels while a strategy walks the label section.
type labelBuilder struct {
	labels Labels
	last   string
}

func newLabelBuilder() *labelBuilder {
	return &labelBuilder{labels: Labels{values: make(map[string][]string)}}
}

// insert stores values under key. Inserting an existing key appends.
func (b *labelBuilder) insert(key string, values ...string) {
	if _, ok := b.labels.values[key]; !ok {
		b.labels.keys = append(b.labels.keys, key)
	}
	b.labels.values[key] = append(b.labels.values[key], values...)
	b.last = key
}

// extend appends a continuation value to the most recent key.
// It reports false when no key has been inserted yet.
func (b *labelBuilder) extend(value string) bool {
	if b.last == "" {
		return false
	}
	b.labels.values[b.last] = append(b.labels.values[b.last], value)
	return true
}

func (b *labelBuilder) build() Labels {
	return b.labels
}
