package batch

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ies-solid-renderer/internal/ies"
	"ies-solid-renderer/internal/mathutil"
	"ies-solid-renderer/internal/viewmatrix"
)

const downlight = `IESNA:LM-63-2002
[MANUFAC] Example Lighting
[LUMCAT] DL-100
TILT=NONE
1 1000 1 5 1 1 2 0 0 0
1 1 20
0 22.5 45 67.5 90
0
800 700 500 200 0
`

func setup(t *testing.T) (string, string) {
	t.Helper()
	in, out := t.TempDir(), t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(in, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(in, "dl.ies"), []byte(downlight), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(in, "sub", "WALL.IES"), []byte(downlight), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(in, "bad.ies"), []byte("IESNA:LM-63-2019\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(in, "notes.txt"), []byte("x"), 0o644))
	return in, out
}

func testConfig(in, out string) Config {
	return Config{
		InputDir:    in,
		OutputDir:   out,
		Camera:      viewmatrix.Camera{View: mathutil.ViewIso},
		RenderSize:  48,
		Supersample: 2,
		FillRatio:   0.9,
		WebP:        true,
		GLB:         true,
		Plot:        true,
		Workers:     2,
	}
}

func TestDiscover(t *testing.T) {
	t.Parallel()
	in, _ := setup(t)
	files, err := Discover(in)
	require.NoError(t, err)
	assert.Equal(t, []string{"bad.ies", "dl.ies", filepath.Join("sub", "WALL.IES")}, files)

	_, err = Discover(filepath.Join(in, "missing"))
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	t.Parallel()
	in, out := setup(t)
	files, err := Discover(in)
	require.NoError(t, err)

	results := Run(context.Background(), testConfig(in, out), files)
	require.Len(t, results, 3)

	bad := results[0]
	assert.False(t, bad.Success)
	assert.Contains(t, bad.Error, ies.ErrFormatUnrecognized.Error())

	good := results[1]
	require.True(t, good.Success, good.Error)
	assert.Equal(t, "LM-63-2002", good.Standard)
	assert.Equal(t, "Example Lighting", good.Manufacturer)
	assert.Equal(t, "DL-100", good.Catalog)
	assert.Equal(t, 800.0, good.MaxCandela)
	assert.Equal(t, 37*5, good.Vertices)
	assert.Equal(t, []string{"dl.webp", "dl.glb", "dl.png"}, good.Outputs)
	for _, o := range good.Outputs {
		info, err := os.Stat(filepath.Join(out, o))
		require.NoError(t, err, o)
		assert.Positive(t, info.Size(), o)
	}

	nested := results[2]
	require.True(t, nested.Success, nested.Error)
	assert.FileExists(t, filepath.Join(out, "sub", "WALL.webp"))
}

func TestRun_Cancelled(t *testing.T) {
	t.Parallel()
	in, out := setup(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := Run(ctx, testConfig(in, out), []string{"dl.ies"})
	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
	assert.Equal(t, context.Canceled.Error(), results[0].Error)
}

func TestWriteManifest(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "manifest.json")
	results := []Result{
		{Name: "a.ies", Success: true, Outputs: []string{"a.webp"}},
		{Name: "b.ies", Error: "boom"},
	}
	require.NoError(t, WriteManifest(path, "2026-10-18T00:00:00Z", results))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var m Manifest
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, 2, m.Total)
	assert.Equal(t, 1, m.Succeeded)
	assert.Equal(t, results, m.Files)

	assert.Error(t, WriteManifest(filepath.Join(t.TempDir(), "no", "m.json"), "", results))
}
