package palette

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ftrvxmtrx/tga"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRamp(t *testing.T, path string, encode func(io.Writer, image.Image) error, cols ...color.NRGBA) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, len(cols), 3))
	for y := 0; y < 3; y++ {
		for x, c := range cols {
			img.SetNRGBA(x, y, c)
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, encode(f, img))
}

func writePNG(t *testing.T, path string, cols ...color.NRGBA) {
	t.Helper()
	writeRamp(t, path, png.Encode, cols...)
}

func encodeJPEG(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
}

var (
	black = color.NRGBA{A: 255}
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

func TestRamp_At(t *testing.T) {
	t.Parallel()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, black)
	img.SetNRGBA(1, 0, white)
	r, err := NewRamp(img)
	require.NoError(t, err)

	assert.Equal(t, black, r.At(0))
	assert.Equal(t, white, r.At(1))
	assert.Equal(t, color.NRGBA{R: 128, G: 128, B: 128, A: 255}, r.At(0.5))
	assert.Equal(t, black, r.At(-3))
	assert.Equal(t, white, r.At(7))
}

func TestNewRamp_Empty(t *testing.T) {
	t.Parallel()
	_, err := NewRamp(nil)
	assert.Error(t, err)
	_, err = NewRamp(image.NewNRGBA(image.Rectangle{}))
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	t.Parallel()
	r := Default()
	assert.Equal(t, len(defaultStops), r.Width())
	assert.Equal(t, defaultStops[0], r.At(0))
	assert.Equal(t, defaultStops[len(defaultStops)-1], r.At(1))
}

func TestLoad(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "gray.png")
	writePNG(t, path, black, white)

	r, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Width())
	assert.Equal(t, white, r.At(1))

	_, err = Load(filepath.Join(dir, "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("not an image"), 0o644))
	_, err = Load(bad)
	assert.ErrorContains(t, err, "palette: decode")

	_, err = Load(filepath.Join(dir, "ramp.bmp"))
	assert.ErrorContains(t, err, "unsupported format")
}

func TestLoad_Formats(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	orange := color.NRGBA{R: 250, G: 120, B: 10, A: 255}

	tests := []struct {
		name   string
		encode func(io.Writer, image.Image) error
		exact  bool
	}{
		{"ramp.png", png.Encode, true},
		{"ramp.tga", tga.Encode, true},
		{"ramp.JPG", encodeJPEG, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name)
			writeRamp(t, path, tt.encode, orange, orange, orange, orange)

			r, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, 4, r.Width())
			got := r.At(0.5)
			if tt.exact {
				assert.Equal(t, orange, got)
				return
			}
			assert.InDelta(t, orange.R, got.R, 6)
			assert.InDelta(t, orange.G, got.G, 6)
			assert.InDelta(t, orange.B, got.B, 6)
		})
	}
}

func TestIndex(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	writePNG(t, filepath.Join(dir, "sub", "Heat.png"), black, white)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "heat.jpg"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o644))

	idx := BuildIndex(dir)
	assert.Equal(t, 1, idx.Len())

	path, ok := idx.ResolvePath("palettes/HEAT.jpg")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "sub", "Heat.png"), path)

	_, ok = idx.ResolvePath("cool")
	assert.False(t, ok)

	assert.Zero(t, BuildIndex("").Len())
}

func TestCache_Resolve(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "gray.png"), black, white)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.png"), []byte("x"), 0o644))

	c := NewCache(BuildIndex(dir))
	first := c.Resolve("gray")
	require.NotNil(t, first)
	assert.Same(t, first, c.Resolve("GRAY"))
	assert.Equal(t, white, first.At(1))

	assert.Same(t, c.fallback, c.Resolve("missing"))
	assert.Same(t, c.fallback, c.Resolve("broken"))

	var _ Resolver = c
}
