package ies

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Decode converts raw file bytes to a string. Valid UTF-8 (and therefore
// plain ASCII) is used as is; anything else is read as ISO-8859-1.
func Decode(raw []byte) (string, error) {
	if utf8.Valid(raw) {
		return strings.TrimPrefix(string(raw), "\ufeff"), nil
	}
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("ies: decode latin-1: %w", err)
	}
	return string(out), nil
}

// ReadFile reads, decodes and parses the file at path.
func ReadFile(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ies: read %s: %w", path, err)
	}
	content, err := Decode(raw)
	if err != nil {
		return nil, err
	}
	return Parse(path, content)
}
