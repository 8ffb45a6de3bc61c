package export

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ies-solid-renderer/internal/ies"
	"ies-solid-renderer/internal/palette"
	"ies-solid-renderer/internal/solid"
)

func quarter(t *testing.T) solid.Mesh {
	t.Helper()
	m, err := solid.Build(ies.PhotometricAngles{
		Type:       ies.TypeC,
		Vertical:   []float64{0, 45, 90},
		Horizontal: []float64{0, 90},
		Candelas:   []float64{100, 80, 40, 100, 60, 20},
	}, solid.Options{})
	require.NoError(t, err)
	return m
}

func TestWriteGLB(t *testing.T) {
	t.Parallel()
	m := quarter(t)
	path := filepath.Join(t.TempDir(), "solid.glb")
	require.NoError(t, WriteGLB(path, m, Options{
		Name:      "downlight",
		Colors:    Colors(m, palette.Default()),
		Normalize: true,
	}))

	doc, err := gltf.Open(path)
	require.NoError(t, err)
	require.Len(t, doc.Meshes, 1)
	assert.Equal(t, "downlight", doc.Meshes[0].Name)

	prim := doc.Meshes[0].Primitives[0]
	for _, attr := range []string{gltf.POSITION, gltf.NORMAL, gltf.COLOR_0} {
		idx, ok := prim.Attributes[attr]
		require.True(t, ok, attr)
		assert.Equal(t, m.VertexCount(), int(doc.Accessors[idx].Count), attr)
	}
	require.NotNil(t, prim.Indices)
	assert.Equal(t, len(m.Indices), int(doc.Accessors[*prim.Indices].Count))
	assert.Equal(t, gltf.AlphaOpaque, doc.Materials[0].AlphaMode)
}

func TestWriteGLB_Errors(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	assert.ErrorContains(t, WriteGLB(filepath.Join(dir, "a.glb"), solid.Mesh{}, Options{}), "empty mesh")

	m := quarter(t)
	err := WriteGLB(filepath.Join(dir, "b.glb"), m, Options{Colors: make([]color.NRGBA, 2)})
	assert.ErrorContains(t, err, "colours")

	err = WriteGLB(filepath.Join(dir, "missing", "c.glb"), m, Options{})
	assert.ErrorContains(t, err, "export: write")
}

func TestColors(t *testing.T) {
	t.Parallel()
	m := quarter(t)
	cols := Colors(m, palette.Default())
	require.Len(t, cols, m.VertexCount())
	// The brightest vertex takes the top of the ramp.
	assert.Contains(t, cols, palette.Default().At(1))
}
