package palette

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// Index maps lowercase palette names (file stems) to paths. A PNG or TGA
// wins over a JPEG with the same stem.
type Index struct {
	entries map[string]string
}

var extRank = map[string]int{".jpg": 1, ".jpeg": 1, ".tga": 2, ".png": 2}

// BuildIndex scans dir recursively for palette images. A missing or
// unreadable directory yields an empty index.
func BuildIndex(dir string) *Index {
	idx := &Index{entries: make(map[string]string)}
	if dir == "" {
		return idx
	}
	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		rank, ok := extRank[ext]
		if !ok {
			return nil
		}
		stem := strings.ToLower(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
		if existing, exists := idx.entries[stem]; !exists || rank > extRank[strings.ToLower(filepath.Ext(existing))] {
			idx.entries[stem] = path
		}
		return nil
	})
	return idx
}

// ResolvePath returns the file for a palette name. The name may carry a
// directory or an extension; only its stem is matched.
func (idx *Index) ResolvePath(name string) (string, bool) {
	base := filepath.Base(filepath.ToSlash(name))
	stem := strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
	path, ok := idx.entries[stem]
	return path, ok
}

// Len returns the number of indexed palettes.
func (idx *Index) Len() int {
	return len(idx.entries)
}
