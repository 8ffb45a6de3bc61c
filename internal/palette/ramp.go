package palette

import (
	"errors"
	"image"
	"image/color"
)

// Ramp maps a normalized intensity to a colour.
type Ramp struct {
	img *image.NRGBA
}

// NewRamp wraps img. Only the middle row is sampled.
func NewRamp(img *image.NRGBA) (*Ramp, error) {
	if img == nil || img.Rect.Dx() == 0 || img.Rect.Dy() == 0 {
		return nil, errors.New("empty ramp image")
	}
	return &Ramp{img: img}, nil
}

// Width returns the number of samples across the ramp.
func (r *Ramp) Width() int { return r.img.Rect.Dx() }

// At returns the colour for t in [0, 1]. Values outside are clamped.
func (r *Ramp) At(t float64) color.NRGBA {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return sample(r.img, t, 0.5)
}

// sample performs bilinear filtering at normalized (u, v), clamping at
// the edges.
func sample(img *image.NRGBA, u, v float64) color.NRGBA {
	w := img.Rect.Dx()
	h := img.Rect.Dy()

	fx := u * float64(w-1)
	fy := v * float64(h-1)
	x0, y0 := int(fx), int(fy)
	x1, y1 := min(x0+1, w-1), min(y0+1, h-1)
	dx, dy := fx-float64(x0), fy-float64(y0)

	stride := img.Stride
	pix := img.Pix
	i00 := y0*stride + x0*4
	i10 := y0*stride + x1*4
	i01 := y1*stride + x0*4
	i11 := y1*stride + x1*4

	w00 := (1 - dx) * (1 - dy)
	w10 := dx * (1 - dy)
	w01 := (1 - dx) * dy
	w11 := dx * dy

	var out [4]uint8
	for k := range out {
		v := float64(pix[i00+k])*w00 + float64(pix[i10+k])*w10 +
			float64(pix[i01+k])*w01 + float64(pix[i11+k])*w11
		out[k] = uint8(v + 0.5)
	}
	return color.NRGBA{R: out[0], G: out[1], B: out[2], A: out[3]}
}

// defaultStops is a dark-blue to white heat ramp.
var defaultStops = []color.NRGBA{
	{R: 20, G: 30, B: 110, A: 255},
	{R: 30, G: 120, B: 200, A: 255},
	{R: 60, G: 200, B: 160, A: 255},
	{R: 250, G: 210, B: 60, A: 255},
	{R: 255, G: 250, B: 235, A: 255},
}

// Default returns the built-in ramp used when no palette is configured.
func Default() *Ramp {
	img := image.NewNRGBA(image.Rect(0, 0, len(defaultStops), 1))
	for x, c := range defaultStops {
		img.SetNRGBA(x, 0, c)
	}
	return &Ramp{img: img}
}
