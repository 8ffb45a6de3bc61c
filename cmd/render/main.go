package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"ies-solid-renderer/internal/batch"
	"ies-solid-renderer/internal/config"
	"ies-solid-renderer/internal/palette"
	"ies-solid-renderer/internal/solid"
	"ies-solid-renderer/internal/viewmatrix"
)

func main() {
	configFile := flag.String("config", "", "Path to config file (.json, .yaml)")
	baseDir := flag.String("base", "", "Base directory for relative paths (default: working directory)")
	inputDir := flag.String("input", "", "Directory scanned for .ies files (default: base directory)")
	outputDir := flag.String("output", "", "Output directory (default: <base>/renders)")
	paletteName := flag.String("palette", "", "Palette name from the palette directory")
	view := flag.String("view", "", "Camera view: front, iso, side, top (default: iso)")
	outputs := flag.String("outputs", "", "Comma separated outputs: webp, glb, plot (default: webp)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	interp := flag.Int("interpolate", 0, "Points inserted between measured angles")
	testN := flag.Int("test", 0, "Process only the first N files")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")
	logFormat := flag.String("log-format", "", "Log format: text, json")
	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	cfg.Resolve(config.Flags{
		BaseDir:             *baseDir,
		InputDir:            *inputDir,
		OutputDir:           *outputDir,
		Palette:             *paletteName,
		View:                *view,
		Outputs:             *outputs,
		Workers:             *workers,
		InterpolationPoints: *interp,
		LogLevel:            *logLevel,
		LogFormat:           *logFormat,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log := newLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	viewMat, err := viewmatrix.Preset(cfg.View)
	if err != nil {
		log.Error("bad view", "error", err)
		os.Exit(1)
	}

	files, err := batch.Discover(cfg.InputDir)
	if err != nil {
		log.Error("scan input", "error", err)
		os.Exit(1)
	}
	if *testN > 0 && *testN < len(files) {
		files = files[:*testN]
	}
	if len(files) == 0 {
		fmt.Println("No .ies files to process.")
		os.Exit(0)
	}

	palIndex := palette.BuildIndex(cfg.PaletteDir)
	ramp := palette.NewCache(palIndex).Resolve(cfg.Palette)
	log.Info("palettes indexed", "dir", cfg.PaletteDir, "count", palIndex.Len(), "selected", cfg.Palette)

	log.Info("starting",
		"files", len(files),
		"workers", cfg.Workers,
		"outputs", cfg.Outputs,
		"output_dir", cfg.OutputDir,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results := batch.Run(ctx, batch.Config{
		InputDir:  cfg.InputDir,
		OutputDir: cfg.OutputDir,
		Ramp:      ramp,
		Camera: viewmatrix.Camera{
			View:        viewMat,
			Perspective: cfg.Perspective,
		},
		Mesh: solid.Options{
			InterpolationPoints: cfg.InterpolationPoints,
			SweepSteps:          cfg.SweepSteps,
		},
		RenderSize:  cfg.RenderSize,
		Supersample: cfg.Supersample,
		FillRatio:   cfg.FillRatio,
		WebP:        cfg.Wants(config.OutputWebP),
		GLB:         cfg.Wants(config.OutputGLB),
		Plot:        cfg.Wants(config.OutputPlot),
		Workers:     cfg.Workers,
		Logger:      log,
	}, files)

	var failed []batch.Result
	for _, r := range results {
		if !r.Success {
			failed = append(failed, r)
		}
	}
	fmt.Printf("Processed %d/%d in %.1fs\n", len(results)-len(failed), len(results), time.Since(start).Seconds())

	if len(failed) > 0 {
		fmt.Printf("\nFailed (%d):\n", len(failed))
		for _, r := range failed[:min(len(failed), 20)] {
			fmt.Printf("  %s: %s\n", r.Name, r.Error)
		}
	}

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		log.Warn("manifest dir", "error", err)
	} else if err := batch.WriteManifest(manifestPath, start.UTC().Format(time.RFC3339), results); err != nil {
		log.Warn("manifest write failed", "error", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if len(failed) > 0 {
		os.Exit(1)
	}
}
