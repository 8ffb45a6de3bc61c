package batch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"

	"ies-solid-renderer/internal/chart"
	"ies-solid-renderer/internal/export"
	"ies-solid-renderer/internal/ies"
	"ies-solid-renderer/internal/palette"
	"ies-solid-renderer/internal/postprocess"
	"ies-solid-renderer/internal/raster"
	"ies-solid-renderer/internal/solid"
	"ies-solid-renderer/internal/viewmatrix"
)

// Config holds all shared resources for a batch run.
type Config struct {
	InputDir    string
	OutputDir   string
	Chain       ies.Chain // nil selects ies.DefaultChain
	Ramp        *palette.Ramp
	Camera      viewmatrix.Camera
	Mesh        solid.Options
	RenderSize  int
	Supersample int
	FillRatio   float64
	WebP        bool
	GLB         bool
	Plot        bool
	Workers     int
	Logger      *slog.Logger
}

// Result holds the outcome of processing one file.
type Result struct {
	Name         string   `json:"name"`
	Standard     string   `json:"standard,omitempty"`
	Manufacturer string   `json:"manufacturer,omitempty"`
	Catalog      string   `json:"catalog,omitempty"`
	MaxCandela   float64  `json:"max_candela,omitempty"`
	Vertices     int      `json:"vertices,omitempty"`
	Triangles    int      `json:"triangles,omitempty"`
	Outputs      []string `json:"outputs,omitempty"`
	Success      bool     `json:"success"`
	Error        string   `json:"error,omitempty"`
}

// Discover returns the photometric files under dir relative to it, sorted.
// The extension match is case insensitive.
func Discover(dir string) ([]string, error) {
	var names []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".ies") {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		names = append(names, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("batch: scan %s: %w", dir, err)
	}
	sort.Strings(names)
	return names, nil
}

// Run processes all files using a worker pool. Files not yet started when
// ctx is cancelled are reported as failed with the context error.
func Run(ctx context.Context, cfg Config, files []string) []Result {
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if cfg.Chain == nil {
		cfg.Chain = ies.DefaultChain()
	}
	if cfg.Ramp == nil {
		cfg.Ramp = palette.Default()
	}
	workers := max(cfg.Workers, 1)

	total := len(files)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if p := processed.Load(); p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					log.Info("progress", "done", p, "total", total, "files_per_sec", fmt.Sprintf("%.1f", rate))
				}
			}
		}
	}()

	jobs := make(chan int, workers*2)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if err := ctx.Err(); err != nil {
					results[idx] = Result{Name: files[idx], Error: err.Error()}
				} else {
					results[idx] = processFile(cfg, files[idx])
				}
				if r := results[idx]; !r.Success {
					log.Warn("file failed", "file", r.Name, "error", r.Error)
				} else {
					log.Debug("file done", "file", r.Name, "vertices", r.Vertices, "triangles", r.Triangles)
				}
				processed.Add(1)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	close(done)

	return results
}

func processFile(cfg Config, name string) Result {
	res := Result{Name: name}
	fail := func(err error) Result {
		res.Error = err.Error()
		return res
	}

	path := filepath.Join(cfg.InputDir, name)
	raw, err := os.ReadFile(path)
	if err != nil {
		return fail(fmt.Errorf("batch: read %s: %w", path, err))
	}
	content, err := ies.Decode(raw)
	if err != nil {
		return fail(err)
	}
	doc, err := cfg.Chain.Parse(path, content)
	if err != nil {
		return fail(err)
	}
	res.Standard = doc.Standard.String()
	res.Manufacturer = doc.Labels.Get("MANUFAC")
	res.Catalog = doc.Labels.Get("LUMCAT")
	res.MaxCandela = doc.Angles.MaxCandela()

	mesh, err := solid.Build(doc.Angles, cfg.Mesh)
	if err != nil {
		return fail(err)
	}
	res.Vertices = mesh.VertexCount()
	res.Triangles = mesh.TriangleCount()

	stem := strings.TrimSuffix(name, filepath.Ext(name))
	out := func(ext string) (string, error) {
		p := filepath.Join(cfg.OutputDir, stem+ext)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return "", fmt.Errorf("batch: %w", err)
		}
		res.Outputs = append(res.Outputs, filepath.ToSlash(stem+ext))
		return p, nil
	}

	if cfg.WebP {
		p, err := out(".webp")
		if err != nil {
			return fail(err)
		}
		if err := writePreview(cfg, mesh, p); err != nil {
			return fail(err)
		}
	}
	if cfg.GLB {
		p, err := out(".glb")
		if err != nil {
			return fail(err)
		}
		err = export.WriteGLB(p, mesh, export.Options{
			Name:      filepath.Base(stem),
			Colors:    export.Colors(mesh, cfg.Ramp),
			Normalize: true,
		})
		if err != nil {
			return fail(err)
		}
	}
	if cfg.Plot {
		p, err := out(".png")
		if err != nil {
			return fail(err)
		}
		if err := chart.WriteCandelaPlot(p, doc, cfg.Ramp); err != nil {
			return fail(err)
		}
	}

	res.Success = true
	return res
}

func writePreview(cfg Config, mesh solid.Mesh, path string) error {
	img := raster.RenderSolid(mesh, raster.Options{
		Size:        cfg.RenderSize,
		Supersample: cfg.Supersample,
		Margin:      4,
		Camera:      cfg.Camera,
		Ramp:        cfg.Ramp,
	})
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.RenderSize)
	}
	img = postprocess.CropAndCenter(img, cfg.RenderSize, cfg.FillRatio)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("batch: %w", err)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fmt.Errorf("batch: webp encode %s: %w", path, err)
	}
	return f.Close()
}
