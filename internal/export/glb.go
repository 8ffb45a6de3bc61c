// Package export writes photometric solids to interchange formats.
package export

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"ies-solid-renderer/internal/mathutil"
	"ies-solid-renderer/internal/palette"
	"ies-solid-renderer/internal/solid"
)

// Options controls WriteGLB.
type Options struct {
	Name string
	// Colors holds one colour per vertex. nil writes white.
	Colors []color.NRGBA
	// Normalize scales the solid so its farthest vertex sits at distance 1.
	Normalize bool
}

// Colors samples ramp at each vertex's relative intensity.
func Colors(m solid.Mesh, ramp *palette.Ramp) []color.NRGBA {
	in := m.Intensities()
	out := make([]color.NRGBA, len(in))
	for i, t := range in {
		out[i] = ramp.At(t)
	}
	return out
}

// WriteGLB writes m as a single-mesh binary glTF file.
func WriteGLB(path string, m solid.Mesh, opts Options) error {
	n := m.VertexCount()
	if n == 0 || m.TriangleCount() == 0 {
		return errors.New("export: empty mesh")
	}
	if opts.Colors != nil && len(opts.Colors) != n {
		return fmt.Errorf("export: %d colours for %d vertices", len(opts.Colors), n)
	}

	scale := 1.0
	if r := m.Radius(); opts.Normalize && r > 0 {
		scale = 1 / r
	}

	positions := make([][3]float32, n)
	normals := make([][3]float32, n)
	colors := make([][4]float32, n)
	hasAlpha := false
	for i := 0; i < n; i++ {
		p := m.Position(i)
		positions[i] = p.Scale(scale).Float32()

		// glTF requires unit normals; fall back to the radial direction.
		nv := m.Normal(i)
		if nv.Len() < 0.5 {
			nv = p.Normalize()
			if nv.Len() < 0.5 {
				nv = mathutil.Vec3{0, 1, 0}
			}
		}
		normals[i] = nv.Float32()

		colors[i] = [4]float32{1, 1, 1, 1}
		if opts.Colors != nil {
			c := opts.Colors[i]
			colors[i] = [4]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}
			hasAlpha = hasAlpha || c.A < 255
		}
	}

	doc := gltf.NewDocument()
	doc.Asset.Generator = "ies-solid-renderer"

	posAccessor := modeler.WritePosition(doc, positions)
	normalAccessor := modeler.WriteNormal(doc, normals)
	colorAccessor := modeler.WriteColor(doc, colors)
	indicesAccessor := modeler.WriteIndices(doc, m.Indices)

	prim := &gltf.Primitive{
		Attributes: map[string]uint32{
			gltf.POSITION: uint32(posAccessor),
			gltf.NORMAL:   uint32(normalAccessor),
			gltf.COLOR_0:  uint32(colorAccessor),
		},
		Indices:  gltf.Index(uint32(indicesAccessor)),
		Material: gltf.Index(0),
	}

	material := &gltf.Material{
		Name:        "intensity",
		DoubleSided: true,
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float32{1, 1, 1, 1},
			MetallicFactor:  gltf.Float(0),
			RoughnessFactor: gltf.Float(1),
		},
		AlphaMode: gltf.AlphaOpaque,
	}
	if hasAlpha {
		material.AlphaMode = gltf.AlphaBlend
	}
	doc.Materials = []*gltf.Material{material}

	name := opts.Name
	if name == "" {
		name = "PhotometricSolid"
	}
	doc.Meshes = []*gltf.Mesh{{Name: name, Primitives: []*gltf.Primitive{prim}}}
	doc.Nodes = []*gltf.Node{{Name: name, Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(0))

	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	return nil
}
