package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_JSON(t *testing.T) {
	t.Parallel()
	path := write(t, "config.json", `{"input_dir": "ies", "render_size": 512, "outputs": ["webp", "glb"]}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ies", cfg.InputDir)
	assert.Equal(t, 512, cfg.RenderSize)
	assert.Equal(t, []string{"webp", "glb"}, cfg.Outputs)
}

func TestLoad_YAML(t *testing.T) {
	t.Parallel()
	path := write(t, "config.yaml", `
input_dir: /data/ies
view: top
perspective: true
interpolation_points: 2
outputs: [plot]
log_format: json
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/ies", cfg.InputDir)
	assert.Equal(t, "top", cfg.View)
	assert.True(t, cfg.Perspective)
	assert.Equal(t, 2, cfg.InterpolationPoints)
	assert.Equal(t, []string{"plot"}, cfg.Outputs)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(write(t, "bad.json", `{"render_size": "big"}`))
	assert.ErrorContains(t, err, "config: parse")

	_, err = Load(write(t, "bad.yml", "render_size: [1, 2"))
	assert.ErrorContains(t, err, "config: parse")
}

func TestResolve_Defaults(t *testing.T) {
	t.Parallel()
	cfg := Config{BaseDir: "/work"}
	cfg.Resolve(Flags{})

	assert.Equal(t, "/work", cfg.InputDir)
	assert.Equal(t, filepath.Join("/work", "renders"), cfg.OutputDir)
	assert.Equal(t, filepath.Join("/work", "palettes"), cfg.PaletteDir)
	assert.Equal(t, 256, cfg.RenderSize)
	assert.Equal(t, 2, cfg.Supersample)
	assert.Equal(t, 0.9, cfg.FillRatio)
	assert.Equal(t, "iso", cfg.View)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
	assert.Equal(t, []string{OutputWebP}, cfg.Outputs)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.NoError(t, cfg.Validate())
}

func TestResolve_FlagsOverride(t *testing.T) {
	t.Parallel()
	cfg := Config{BaseDir: "/work", InputDir: "in", OutputDir: "/abs/out", Workers: 3}
	cfg.Resolve(Flags{
		InputDir: "other",
		Outputs:  "WebP, glb,,plot",
		Workers:  8,
		View:     "side",
	})

	assert.Equal(t, filepath.Join("/work", "other"), cfg.InputDir)
	assert.Equal(t, "/abs/out", cfg.OutputDir)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "side", cfg.View)
	assert.Equal(t, []string{"webp", "glb", "plot"}, cfg.Outputs)
	assert.True(t, cfg.Wants(OutputGLB))
}

func TestValidate(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		edit func(*Config)
		msg  string
	}{
		{"unknown output", func(c *Config) { c.Outputs = []string{"gif"} }, `unknown output "gif"`},
		{"fill ratio", func(c *Config) { c.FillRatio = 1.5 }, "fill_ratio"},
		{"interpolation", func(c *Config) { c.InterpolationPoints = -1 }, "interpolation_points"},
		{"sweep", func(c *Config) { c.SweepSteps = -2 }, "sweep_steps"},
		{"log format", func(c *Config) { c.LogFormat = "xml" }, "log_format"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Config{BaseDir: "/work"}
			cfg.Resolve(Flags{})
			tc.edit(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tc.msg)
		})
	}
}
