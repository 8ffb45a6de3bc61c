package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/floats"

	"ies-solid-renderer/internal/ies"
	"ies-solid-renderer/internal/solid"
)

func main() {
	interp := flag.Int("interpolate", 0, "Points inserted between measured angles")
	sweep := flag.Int("sweep", 0, "Rotation steps for rotationally symmetric files (default 36)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: inspect [flags] file.ies...\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	status := 0
	for _, path := range flag.Args() {
		doc, err := ies.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			status = 1
			continue
		}
		mesh, err := solid.Build(doc.Angles, solid.Options{InterpolationPoints: *interp, SweepSteps: *sweep})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", path, err)
			status = 1
			continue
		}
		printReport(os.Stdout, doc, mesh)
	}
	os.Exit(status)
}

func printReport(w io.Writer, doc *ies.Document, mesh solid.Mesh) {
	fmt.Fprintf(w, "File:      %s\n", doc.Filename)
	fmt.Fprintf(w, "Standard:  %s\n", doc.Standard)

	fmt.Fprintf(w, "Labels:    %d\n", doc.Labels.Len())
	for _, k := range doc.Labels.Keys() {
		fmt.Fprintf(w, "  [%s] %s\n", k, doc.Labels.Get(k))
	}

	t := doc.Tilt
	switch {
	case t.Included():
		fmt.Fprintf(w, "Tilt:      %s, %d angles\n", t.Orientation, t.Count)
	case t.File != "":
		fmt.Fprintf(w, "Tilt:      file %s\n", t.File)
	default:
		fmt.Fprintf(w, "Tilt:      none\n")
	}

	l := doc.Luminaire
	fmt.Fprintf(w, "Lamps:     %d x %g lm, %g W\n", l.LampCount, l.LumensPerLamp, l.InputWatts)
	fmt.Fprintf(w, "Opening:   %g x %g x %g %s\n", l.Width, l.Length, l.Height, l.Units)
	fmt.Fprintf(w, "Ballast:   %g (lamp %g)\n", doc.Ballast.Factor, doc.Ballast.LampFactor)

	a := doc.Angles
	fmt.Fprintf(w, "Type:      %s, multiplier %g\n", a.Type, a.Multiplier)
	fmt.Fprintf(w, "Vertical:  %d angles [%g, %g]\n", len(a.Vertical), floats.Min(a.Vertical), floats.Max(a.Vertical))
	fmt.Fprintf(w, "Horiz:     %d angles [%g, %g]\n", len(a.Horizontal), floats.Min(a.Horizontal), floats.Max(a.Horizontal))
	fmt.Fprintf(w, "Candela:   max %g, sum %g\n", a.MaxCandela(), floats.Sum(a.Candelas))

	lo, hi := mesh.Bounds()
	fmt.Fprintf(w, "Mesh:      %d vertices, %d triangles\n", mesh.VertexCount(), mesh.TriangleCount())
	fmt.Fprintf(w, "  BBox:    X[%.1f, %.1f] Y[%.1f, %.1f] Z[%.1f, %.1f]\n", lo[0], hi[0], lo[1], hi[1], lo[2], hi[2])
}
