package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output kinds a batch run can write per photometric file.
const (
	OutputWebP = "webp"
	OutputGLB  = "glb"
	OutputPlot = "plot"
)

var knownOutputs = []string{OutputWebP, OutputGLB, OutputPlot}

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	BaseDir    string `json:"base_dir" yaml:"base_dir"`
	InputDir   string `json:"input_dir" yaml:"input_dir"`
	OutputDir  string `json:"output_dir" yaml:"output_dir"`
	PaletteDir string `json:"palette_dir" yaml:"palette_dir"`
	Palette    string `json:"palette" yaml:"palette"`

	// Render settings
	RenderSize  int     `json:"render_size" yaml:"render_size"`
	Supersample int     `json:"supersample" yaml:"supersample"`
	FillRatio   float64 `json:"fill_ratio" yaml:"fill_ratio"`
	View        string  `json:"view" yaml:"view"`
	Perspective bool    `json:"perspective" yaml:"perspective"`
	Workers     int     `json:"workers" yaml:"workers"`

	// Geometry
	InterpolationPoints int `json:"interpolation_points" yaml:"interpolation_points"`
	SweepSteps          int `json:"sweep_steps" yaml:"sweep_steps"`

	Outputs []string `json:"outputs" yaml:"outputs"`

	LogLevel  string `json:"log_level" yaml:"log_level"`
	LogFormat string `json:"log_format" yaml:"log_format"`
}

// Load reads a JSON or YAML config file, chosen by extension.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	BaseDir             string
	InputDir            string
	OutputDir           string
	Palette             string
	View                string
	Outputs             string // comma separated
	Workers             int
	InterpolationPoints int
	LogLevel            string
	LogFormat           string
}

// Resolve applies flags and fills any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty. Relative paths are
// resolved against BaseDir, which defaults to the working directory.
func (c *Config) Resolve(flags Flags) {
	override(&c.BaseDir, flags.BaseDir)
	override(&c.InputDir, flags.InputDir)
	override(&c.OutputDir, flags.OutputDir)
	override(&c.Palette, flags.Palette)
	override(&c.View, flags.View)
	override(&c.LogLevel, flags.LogLevel)
	override(&c.LogFormat, flags.LogFormat)
	if flags.Outputs != "" {
		c.Outputs = splitList(flags.Outputs)
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.InterpolationPoints > 0 {
		c.InterpolationPoints = flags.InterpolationPoints
	}

	if c.BaseDir == "" {
		c.BaseDir, _ = os.Getwd()
	}
	c.InputDir = c.under(c.InputDir, "")
	c.OutputDir = c.under(c.OutputDir, "renders")
	c.PaletteDir = c.under(c.PaletteDir, "palettes")

	if c.RenderSize <= 0 {
		c.RenderSize = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.FillRatio <= 0 {
		c.FillRatio = 0.9
	}
	if c.View == "" {
		c.View = "iso"
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if len(c.Outputs) == 0 {
		c.Outputs = []string{OutputWebP}
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "text"
	}
}

// Validate reports settings Resolve cannot repair.
func (c *Config) Validate() error {
	for _, o := range c.Outputs {
		if !slices.Contains(knownOutputs, o) {
			return fmt.Errorf("config: unknown output %q (want %s)", o, strings.Join(knownOutputs, ", "))
		}
	}
	switch {
	case c.FillRatio > 1:
		return fmt.Errorf("config: fill_ratio %v above 1", c.FillRatio)
	case c.InterpolationPoints < 0:
		return fmt.Errorf("config: negative interpolation_points %d", c.InterpolationPoints)
	case c.SweepSteps < 0:
		return fmt.Errorf("config: negative sweep_steps %d", c.SweepSteps)
	case c.LogFormat != "text" && c.LogFormat != "json":
		return fmt.Errorf("config: log_format %q (want text or json)", c.LogFormat)
	}
	return nil
}

// Wants reports whether output kind o is enabled.
func (c *Config) Wants(o string) bool {
	return slices.Contains(c.Outputs, o)
}

// under resolves p against BaseDir, using BaseDir/def when p is empty.
func (c *Config) under(p, def string) string {
	if p == "" {
		p = def
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.BaseDir, p)
}

func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(strings.ToLower(part)); part != "" {
			out = append(out, part)
		}
	}
	return out
}
