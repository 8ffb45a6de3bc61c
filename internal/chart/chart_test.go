package chart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ies-solid-renderer/internal/ies"
)

const sample = `IESNA:LM-63-2002
[MANUFAC] Example Lighting
[LUMCAT] DL-100
TILT=NONE
1 1000 1 3 2 1 2 0 0 0
1 1 20
0 45 90
0 90
500 300 0
450 250 0
`

func parse(t *testing.T) *ies.Document {
	t.Helper()
	doc, err := ies.Parse("dl.ies", sample)
	require.NoError(t, err)
	return doc
}

func TestPlanes(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []int{0, 1, 2}, Planes([]float64{0, 45, 90}))

	var many []float64
	for h := 0.0; h <= 360; h += 15 {
		many = append(many, h)
	}
	// 0° and 360° are the same plane; the first wins.
	assert.Equal(t, []int{0, 6, 12, 18}, Planes(many))
}

func TestTitle(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Example Lighting / DL-100", Title(parse(t)))
	assert.Equal(t, "Candela distribution", Title(&ies.Document{}))
}

func TestCandelaPlot(t *testing.T) {
	t.Parallel()
	p, err := CandelaPlot(parse(t), nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.X.Min)
	assert.Equal(t, 90.0, p.X.Max)
	assert.InDelta(t, 525, p.Y.Max, 1e-9)

	_, err = CandelaPlot(&ies.Document{Filename: "empty.ies"}, nil)
	assert.ErrorContains(t, err, "no candela data")
}

func TestWriteCandelaPlot(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	for _, name := range []string{"dl.png", "dl.svg"} {
		path := filepath.Join(dir, name)
		require.NoError(t, WriteCandelaPlot(path, parse(t), nil))
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}
